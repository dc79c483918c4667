package core

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// colorFamilies maps specific color words found in product names to the
// base color families a shopper would search for.
var colorFamilies = map[string][]string{
	"lilac":       {"purple", "pink"},
	"lavender":    {"purple", "blue"},
	"mauve":       {"purple", "pink"},
	"violet":      {"purple"},
	"indigo":      {"purple", "blue"},
	"magenta":     {"purple", "pink"},
	"amethyst":    {"purple"},
	"plum":        {"purple"},
	"hyacinth":    {"purple", "blue"},
	"blackberry":  {"purple", "black"},
	"boysenberry": {"purple", "red"},
	"nightshade":  {"purple", "black"},
	"sky":         {"blue"},
	"ocean":       {"blue"},
	"oceanic":     {"blue", "green"},
	"cyan":        {"blue", "green"},
	"aqua":        {"blue", "green"},
	"agua":        {"blue"},
	"teal":        {"blue", "green"},
	"turquoise":   {"blue", "green"},
	"cobalt":      {"blue"},
	"navy":        {"blue"},
	"sapphire":    {"blue"},
	"glacier":     {"blue", "white"},
	"midnight":    {"black", "blue"},
	"periwinkle":  {"blue", "purple"},
	"caribbean":   {"blue", "green"},
	"neptune":     {"blue", "green"},
	"lapis":       {"blue"},
	"ink":         {"blue", "black"},
	"petroleum":   {"green", "blue", "black"},
	"lagoon":      {"blue", "green"},
	"denim":       {"blue"},
	"azure":       {"blue"},
	"teally":      {"blue", "green"},
	"atlantis":    {"blue"},
	"dusk":        {"purple", "blue", "black"},
	"peacock":     {"blue", "green"},
	"zen":         {"blue", "green"},
	"lime":        {"green", "yellow"},
	"mint":        {"green"},
	"olive":       {"green", "brown"},
	"jade":        {"green"},
	"emerald":     {"green"},
	"spruce":      {"green", "blue"},
	"moss":        {"green"},
	"absinthe":    {"green"},
	"evergreen":   {"green"},
	"forest":      {"green"},
	"sage":        {"green"},
	"grass":       {"green"},
	"kelp":        {"green", "brown"},
	"avocado":     {"green"},
	"pea":         {"green"},
	"grasshopper": {"green"},
	"army":        {"green"},
	"pine":        {"green"},
	"pistachio":   {"green"},
	"shamrock":    {"green"},
	"chartreuse":  {"green", "yellow"},
	"canary":      {"yellow"},
	"lemon":       {"yellow"},
	"gold":        {"yellow"},
	"amber":       {"yellow", "orange"},
	"topaz":       {"yellow", "orange"},
	"brass":       {"yellow"},
	"goldenrod":   {"yellow", "orange"},
	"honey":       {"yellow", "orange"},
	"butterscotch": {"yellow", "orange", "brown"},
	"straw":       {"yellow", "brown"},
	"mustard":     {"yellow", "brown"},
	"mimosa":      {"yellow"},
	"daffodil":    {"yellow"},
	"banana":      {"yellow"},
	"citron":      {"yellow", "green"},
	"caramel":     {"yellow", "brown", "orange"},
	"apricot":     {"orange", "yellow"},
	"peach":       {"orange", "pink"},
	"coral":       {"orange", "pink"},
	"salmon":      {"orange", "pink"},
	"canyon":      {"orange", "brown", "red"},
	"pumpkin":     {"orange"},
	"carrot":      {"orange"},
	"persimmon":   {"orange", "red"},
	"flamingo":    {"pink", "orange"},
	"ketchup":     {"red", "orange"},
	"crimson":     {"red"},
	"scarlet":     {"red"},
	"ruby":        {"red"},
	"maroon":      {"red", "brown"},
	"burgundy":    {"red", "purple"},
	"rose":        {"red", "pink"},
	"lava":        {"red", "orange"},
	"pomegranate": {"red"},
	"garnet":      {"red"},
	"poppy":       {"red"},
	"cherry":      {"red"},
	"bubblegum":   {"pink"},
	"blush":       {"pink"},
	"raspberry":   {"red", "pink"},
	"passion":     {"red", "purple"},
	"blood":       {"red"},
	"tan":         {"brown", "orange", "yellow"},
	"beige":       {"brown", "yellow"},
	"ochre":       {"brown", "orange", "yellow"},
	"sienna":      {"brown", "red", "orange"},
	"umber":       {"brown"},
	"bronze":      {"brown", "orange"},
	"copper":      {"brown", "orange", "red"},
	"timber":      {"brown"},
	"sandstorm":   {"brown", "orange", "yellow"},
	"rootbeer":    {"brown"},
	"sand":        {"brown", "yellow"},
	"cocoa":       {"brown"},
	"walnut":      {"brown"},
	"chocolate":   {"brown"},
	"cream":       {"white", "yellow"},
	"ivory":       {"white", "yellow"},
	"pearl":       {"white"},
	"ghost":       {"white"},
	"alabaster":   {"white"},
	"vanilla":     {"white", "yellow"},
	"silver":      {"gray"},
	"charcoal":    {"black", "gray"},
	"ebony":       {"black"},
	"onyx":        {"black"},
	"jet":         {"black"},
	"raven":       {"black"},
	"eclipse":     {"black"},
	"slate":       {"gray", "blue"},
	"nimbus":      {"gray", "white"},
	"gray":        {"gray"},
	"grey":        {"gray"},
	"portland":    {"gray"},
	"multi":       {"multicolored"},
	"irrid":       {"multicolored"},
	"starry":      {"multicolored", "blue"},
	"twilight":    {"multicolored", "purple"},
	"sunrise":     {"multicolored", "orange", "yellow"},
	"plasma":      {"multicolored"},
	"serum":       {"multicolored"},
}

// standaloneColors are name words kept as tags unchanged.
var standaloneColors = []string{
	"pink", "clear", "multicolored",
	"red", "blue", "green", "yellow", "orange", "purple",
	"brown", "black", "white", "gray", "grey",
}

// propertyPatterns detect working properties mentioned in descriptions.
var propertyPatterns = map[string][]*regexp.Regexp{
	"reducing": compileAll(
		`\breducing\b`,
		`\breduc[ei](?:s|d)?\b`,
		`\breduction\b`,
	),
	"striker": compileAll(
		`\bstriking\b`,
		`\bstriker\b`,
		`\bstrike(?:s|d)?\b`,
	),
	"silver": compileAll(
		`\bsilver\s+(?:glass|fume|fuming|leaf)\b`,
		`\bcontains?\s+silver\b`,
		`\bwith\s+silver\b`,
		`\bsilvered\b`,
	),
	"amber-purple": compileAll(
		`\bamber[\s\-/]purple\b`,
		`\bamberpurple\b`,
	),
	"sparkle": compileAll(
		`\bglitter(?:y|ing|s)?\b`,
		`\bsparkle(?:s|d)?\b`,
		`\bsparkl(?:ey|y)\b`,
		`\bshimmer(?:y|ing|s)?\b`,
	),
	"uv": compileAll(
		`\buv\b`,
		`\bultraviolet\b`,
		`\bblack\s+light\b`,
		`\bblacklight\b`,
	),
	"cfl": compileAll(
		`\bcfl\b`,
		`\bfluorescent\s+light(?:ing)?\b`,
		`\bfluorescen[ct]e?\b`,
	),
	"luster": compileAll(
		`\bluster\b`,
		`\bmetal(?:s|lic)?\b`,
		`\biridescen[ct]e?\b`,
	),
}

// manufacturerNameTags are tags implied by a word in a manufacturer's
// product names.
var manufacturerNameTags = map[string]map[string][]string{
	"GA": {"passion": {"amber-purple"}},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile("(?i)" + p)
	}
	return res
}

// nameWords splits a product name into lower-case words.
func nameWords(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// ColorTags returns the color family tags implied by a product name, sorted.
// "Cobalt Stringer" yields ["blue"]; "Teal Frit" yields ["blue", "green"].
func ColorTags(name string) []string {
	found := make(map[string]struct{})
	for _, word := range nameWords(name) {
		for _, family := range colorFamilies[word] {
			found[family] = struct{}{}
		}
		if slices.Contains(standaloneColors, word) {
			found[word] = struct{}{}
		}
	}
	return sortedKeys(found)
}

// PropertyTags returns the working-property tags mentioned in a
// description, sorted: "striker", "reducing", "uv" and so on.
func PropertyTags(description string) []string {
	if strings.TrimSpace(description) == "" {
		return nil
	}
	found := make(map[string]struct{})
	for tag, patterns := range propertyPatterns {
		for _, re := range patterns {
			if re.MatchString(description) {
				found[tag] = struct{}{}
				break
			}
		}
	}
	return sortedKeys(found)
}

// manufacturerTags returns tags implied by manufacturer naming conventions.
func manufacturerTags(manufacturer, name string) []string {
	words, ok := manufacturerNameTags[strings.ToUpper(manufacturer)]
	if !ok {
		return nil
	}
	found := make(map[string]struct{})
	for _, word := range nameWords(name) {
		for _, tag := range words[word] {
			found[tag] = struct{}{}
		}
	}
	return sortedKeys(found)
}

// DeriveTags adds the color, property and manufacturer convention tags
// implied by the item's name and description. Tags the item already has,
// in any case, are not repeated.
func DeriveTags(item *Item) {
	derived := ColorTags(item.Name)
	derived = append(derived, PropertyTags(item.Description)...)
	derived = append(derived, manufacturerTags(item.Manufacturer, item.Name)...)

	for _, tag := range derived {
		if !item.HasTag(tag) {
			item.Tags = append(item.Tags, tag)
		}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
