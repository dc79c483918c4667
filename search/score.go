package search

import (
	"fmt"
	"sort"
)

// Weights maps field names to their relevance weight.
// A nil or empty Weights weighs every field 1.0. Otherwise fields without an
// entry weigh 0, and negative weights are treated as 0.
type Weights map[string]float64

// Weight returns the weight applied to the named field.
func (w Weights) Weight(field string) float64 {
	if len(w) == 0 {
		return 1
	}
	if v := w[field]; v > 0 {
		return v
	}
	return 0
}

// Validate returns ErrNegativeWeight if any weight is below zero.
func (w Weights) Validate() error {
	for name, v := range w {
		if v < 0 {
			return fmt.Errorf("%w: %s=%g", ErrNegativeWeight, name, v)
		}
	}
	return nil
}

// Result pairs a record with its relevance to a query.
type Result[T any] struct {
	Record    T
	Relevance float64
}

// Score returns the relevance of record to terms: for each term and field,
// the field weight times the best match strength among the field's values,
// summed. The result is never negative.
func Score(record FieldSearchable, terms []string, weights Weights, cfg Config) float64 {
	return score(record, newMatchers(terms, cfg), weights)
}

func score(record FieldSearchable, matchers []matcher, weights Weights) float64 {
	var total float64
	for _, field := range record.SearchableFields() {
		weight := weights.Weight(field.Name)
		if weight == 0 {
			continue
		}
		for _, m := range matchers {
			var best float64
			for _, value := range field.Values {
				if s := m.strength(value); s > best {
					best = s
				}
			}
			total += weight * best
		}
	}
	return total
}

// WeightedSearch ranks records against text using DefaultConfig.
// See WeightedSearchWithConfig.
func WeightedSearch[T FieldSearchable](records []T, text string, weights Weights) []Result[T] {
	return WeightedSearchWithConfig(records, text, weights, DefaultConfig())
}

// WeightedSearchWithConfig scores every record against the terms parsed
// from text and returns all of them ordered by descending relevance. Records
// with equal relevance keep their input order. When text has no terms every
// record is returned with relevance 0 in input order.
func WeightedSearchWithConfig[T FieldSearchable](records []T, text string, weights Weights, cfg Config) []Result[T] {
	return rank(records, ParseTerms(text), weights, cfg, nil)
}

func rank[T FieldSearchable](records []T, terms []string, weights Weights, cfg Config, onScore func(int, float64)) []Result[T] {
	results := make([]Result[T], len(records))
	if len(terms) == 0 {
		for i, record := range records {
			results[i] = Result[T]{Record: record}
		}
		return results
	}

	matchers := newMatchers(terms, cfg)
	for i, record := range records {
		relevance := score(record, matchers, weights)
		results[i] = Result[T]{Record: record, Relevance: relevance}
		if onScore != nil {
			onScore(i, relevance)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	return results
}
