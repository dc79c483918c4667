package search

import (
	"strings"
	"unicode/utf8"
)

// MatchTerm reports whether term matches a single field value under cfg.
//
// Matching is tried in order, stopping at the first success:
//  1. both strings are lower-cased unless cfg is case sensitive
//  2. in exact mode the value must equal the term; nothing else is tried
//  3. the value contains the term as a substring
//  4. if a fuzzy tolerance is set, the term is within that many edits of the
//     whole value or of one of its words
//
// An empty term always matches. An empty value never matches a non-empty term.
func MatchTerm(term, value string, cfg Config) bool {
	return newMatcher(term, cfg).match(value)
}

// Strength grades how well term matches a single field value under cfg,
// in [0, 1]. See matcher.strength for the grading.
func Strength(term, value string, cfg Config) float64 {
	return newMatcher(term, cfg).strength(value)
}

// matcher holds a term normalized once for matching against many values.
type matcher struct {
	cfg   Config
	term  string
	runes int
}

func newMatcher(term string, cfg Config) matcher {
	norm := cfg.normalize(term)
	return matcher{
		cfg:   cfg,
		term:  norm,
		runes: utf8.RuneCountInString(norm),
	}
}

func newMatchers(terms []string, cfg Config) []matcher {
	matchers := make([]matcher, len(terms))
	for i, term := range terms {
		matchers[i] = newMatcher(term, cfg)
	}
	return matchers
}

func (m matcher) match(value string) bool {
	if m.term == "" {
		return true
	}
	if isBlank(value) {
		return false
	}

	value = m.cfg.normalize(value)
	if m.cfg.exactMatch {
		return value == m.term
	}
	if strings.Contains(value, m.term) {
		return true
	}
	_, ok := m.fuzzyDistance(value)
	return ok
}

// strength grades how well the term matches a normalized value, in [0, 1].
// An exact match scores 1. Substring matches score between 0.5 and 0.95,
// growing with the share of the value the term covers, with a small bonus
// for a prefix. Fuzzy matches score 0.5/(1+d). Anything else scores 0.
func (m matcher) strength(value string) float64 {
	if m.term == "" || isBlank(value) {
		return 0
	}

	value = m.cfg.normalize(value)
	if value == m.term {
		return 1
	}
	if m.cfg.exactMatch {
		return 0
	}

	if idx := strings.Index(value, m.term); idx >= 0 {
		coverage := float64(m.runes) / float64(utf8.RuneCountInString(value))
		s := 0.5 + 0.4*coverage
		if idx == 0 {
			s += 0.05
		}
		return min(s, 0.95)
	}

	if d, ok := m.fuzzyDistance(value); ok {
		return 0.5 / float64(1+d)
	}
	return 0
}

// isBlank reports whether a value is empty or whitespace only. Blank values
// never match.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// fuzzyDistance returns the smallest edit distance within tolerance between
// the term and either the whole value or one of its words. Candidates whose
// rune length differs from the term's by more than the tolerance cannot
// match and are skipped without building the DP table.
func (m matcher) fuzzyDistance(value string) (int, bool) {
	tolerance, ok := m.cfg.FuzzyTolerance()
	if !ok {
		return 0, false
	}

	var termRunes []rune
	best := -1
	try := func(candidate string) {
		diff := utf8.RuneCountInString(candidate) - m.runes
		if diff > tolerance || -diff > tolerance {
			return
		}
		if termRunes == nil {
			termRunes = []rune(m.term)
		}
		d := distance(termRunes, []rune(candidate))
		if d <= tolerance && (best < 0 || d < best) {
			best = d
		}
	}

	try(value)
	if best != 0 {
		words := strings.Fields(value)
		if len(words) > 1 {
			for _, word := range words {
				try(word)
				if best == 0 {
					break
				}
			}
		}
	}

	return best, best >= 0
}
