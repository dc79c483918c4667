package search

import (
	"log/slog"
	"maps"
)

// Searcher filters and ranks records of type T with a fixed configuration
// and field weights. A Searcher holds no per-search state and is safe for
// concurrent use.
type Searcher[T FieldSearchable] struct {
	config  Config
	weights Weights
	logger  *slog.Logger
}

type searcherOptions struct {
	config  Config
	weights Weights
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*searcherOptions) error

// WithConfig sets the match configuration.
// Default is DefaultConfig().
func WithConfig(cfg Config) Option {
	return func(o *searcherOptions) error {
		o.config = cfg
		return nil
	}
}

// WithFieldWeights sets the field weights used by WeightedSearch.
// Default is uniform weighting. Returns ErrNegativeWeight if any weight is
// below zero.
func WithFieldWeights(weights Weights) Option {
	return func(o *searcherOptions) error {
		if err := weights.Validate(); err != nil {
			return err
		}
		o.weights = maps.Clone(weights)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *searcherOptions) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher[T FieldSearchable](opts ...Option) (*Searcher[T], error) {
	o := &searcherOptions{
		config: DefaultConfig(),
		logger: slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	return &Searcher[T]{
		config:  o.config,
		weights: o.weights,
		logger:  o.logger,
	}, nil
}

// Config returns the searcher's match configuration.
func (s *Searcher[T]) Config() Config {
	return s.config
}

// Weights returns a copy of the searcher's field weights.
// A nil result means uniform weighting.
func (s *Searcher[T]) Weights() Weights {
	return maps.Clone(s.weights)
}

// Filter returns the records matching text as a single term.
func (s *Searcher[T]) Filter(records []T, text string) []T {
	return s.FilterWithMonitor(records, text, nil)
}

// FilterWithMonitor is Filter with monitoring.
func (s *Searcher[T]) FilterWithMonitor(records []T, text string, monitor SearchMonitor) []T {
	return s.filter(records, text, singleTerm(text), monitor)
}

// FilterQuery returns the records matching every term of query.
func (s *Searcher[T]) FilterQuery(records []T, query string) []T {
	return s.FilterQueryWithMonitor(records, query, nil)
}

// FilterQueryWithMonitor is FilterQuery with monitoring.
// The monitor receives callbacks at each stage of the search.
func (s *Searcher[T]) FilterQueryWithMonitor(records []T, query string, monitor SearchMonitor) []T {
	return s.filter(records, query, ParseTerms(query), monitor)
}

func (s *Searcher[T]) filter(records []T, query string, terms []string, monitor SearchMonitor) []T {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)
	monitor.AfterParse(terms)

	kept := filterRecords(records, terms, s.config, monitor.Matched)

	monitor.Finish(len(kept), len(records))
	s.logger.Debug("filtered records",
		"query", query, "terms", len(terms), "config", s.config,
		"kept", len(kept), "scanned", len(records))

	return kept
}

// WeightedSearch ranks records by relevance to text using the searcher's
// configuration and field weights.
func (s *Searcher[T]) WeightedSearch(records []T, text string) []Result[T] {
	return s.WeightedSearchWithMonitor(records, text, nil)
}

// WeightedSearchWithMonitor is WeightedSearch with monitoring.
func (s *Searcher[T]) WeightedSearchWithMonitor(records []T, text string, monitor SearchMonitor) []Result[T] {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(text)
	terms := ParseTerms(text)
	monitor.AfterParse(terms)

	matched := 0
	results := rank(records, terms, s.weights, s.config, func(i int, relevance float64) {
		monitor.Scored(i, relevance)
		if relevance > 0 {
			matched++
		}
	})

	monitor.Finish(matched, len(records))
	s.logger.Debug("ranked records",
		"query", text, "terms", len(terms), "config", s.config,
		"matched", matched, "scanned", len(records))

	return results
}
