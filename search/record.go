package search

// Searchable is implemented by records that can be filtered.
// SearchableText returns the record's text values, highest-priority first
// (e.g. name before tags). Empty values are ignored.
type Searchable interface {
	SearchableText() []string
}

// Field is a named, possibly multi-valued, searchable field.
type Field struct {
	Name   string
	Values []string
}

// FieldSearchable is implemented by records that can be ranked with
// per-field weights.
type FieldSearchable interface {
	Searchable
	SearchableFields() []Field
}

// MatchesTerm reports whether term matches at least one of the record's
// values.
func MatchesTerm(record Searchable, term string, cfg Config) bool {
	return newMatcher(term, cfg).matchRecord(record)
}

// MatchesAllTerms reports whether every term matches the record. Different
// terms may match different values. An empty term list matches everything.
func MatchesAllTerms(record Searchable, terms []string, cfg Config) bool {
	return matchAll(record, newMatchers(terms, cfg))
}

func (m matcher) matchRecord(record Searchable) bool {
	if m.term == "" {
		return true
	}
	for _, value := range record.SearchableText() {
		if isBlank(value) {
			continue
		}
		if m.match(value) {
			return true
		}
	}
	return false
}

func matchAll(record Searchable, matchers []matcher) bool {
	for _, m := range matchers {
		if !m.matchRecord(record) {
			return false
		}
	}
	return true
}
