package search

// testItem is a minimal catalog record used across the package tests.
type testItem struct {
	name string
	code string
	tags []string
}

func (i testItem) SearchableText() []string {
	text := []string{i.name, i.code}
	return append(text, i.tags...)
}

func (i testItem) SearchableFields() []Field {
	return []Field{
		{Name: "name", Values: []string{i.name}},
		{Name: "code", Values: []string{i.code}},
		{Name: "tags", Values: i.tags},
	}
}

// textRecord exposes raw values, including empty ones.
type textRecord []string

func (r textRecord) SearchableText() []string { return r }

func glassRods() []testItem {
	return []testItem{
		{name: "Red Glass Rod", code: "EF-591", tags: []string{"red", "rod"}},
		{name: "Blue Stringer", code: "EF-060", tags: []string{"blue", "opaque"}},
	}
}

func names(items []testItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

func resultNames(results []Result[testItem]) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Record.name
	}
	return out
}
