package search

import (
	"slices"
	"strings"
)

// Filter returns the records matching text, treated as a single term.
// Empty or whitespace-only text returns every record. The result is a new
// slice in input order.
func Filter[T Searchable](records []T, text string, cfg Config) []T {
	return filterRecords(records, singleTerm(text), cfg, nil)
}

// FilterQuery parses query with ParseTerms and returns the records matching
// every term. A query with no terms returns every record. The result is a
// new slice in input order.
func FilterQuery[T Searchable](records []T, query string, cfg Config) []T {
	return filterRecords(records, ParseTerms(query), cfg, nil)
}

// singleTerm returns text as a one-element term list, or an empty list
// when it is blank.
func singleTerm(text string) []string {
	if term := strings.TrimSpace(text); term != "" {
		return []string{term}
	}
	return []string{}
}

func filterRecords[T Searchable](records []T, terms []string, cfg Config, onMatch func(int)) []T {
	if len(terms) == 0 {
		if onMatch != nil {
			for i := range records {
				onMatch(i)
			}
		}
		return slices.Clone(records)
	}

	matchers := newMatchers(terms, cfg)
	kept := make([]T, 0, len(records))
	for i, record := range records {
		if matchAll(record, matchers) {
			kept = append(kept, record)
			if onMatch != nil {
				onMatch(i)
			}
		}
	}
	return kept
}
