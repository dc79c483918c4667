package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/molten/search"
)

// Outcome is the ranked result of one query in a batch.
type Outcome[T any] struct {
	Query   string
	Results []search.Result[T]
}

// Runner executes queries concurrently against a fixed set of records.
type Runner[T search.FieldSearchable] struct {
	searcher *search.Searcher[T]
	records  []T
	pool     *ants.Pool
	progress io.Writer
	interval time.Duration
	logger   *slog.Logger
}

type runnerOptions struct {
	poolSize int
	progress io.Writer
	interval time.Duration
	logger   *slog.Logger
}

// Option configures a Runner.
type Option func(*runnerOptions) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(o *runnerOptions) error {
		if size <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidPoolSize, size)
		}
		o.poolSize = size
		return nil
	}
}

// WithProgress reports progress to w at most once per interval.
// Default is no progress output.
func WithProgress(w io.Writer, interval time.Duration) Option {
	return func(o *runnerOptions) error {
		o.progress = w
		o.interval = max(interval, 0)
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *runnerOptions) error {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
		return nil
	}
}

// NewRunner creates a Runner over records. The records slice is not copied.
func NewRunner[T search.FieldSearchable](searcher *search.Searcher[T], records []T, opts ...Option) (*Runner[T], error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	o := &runnerOptions{
		poolSize: max(runtime.NumCPU()/2, 1),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	pool, err := ants.NewPool(o.poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	return &Runner[T]{
		searcher: searcher,
		records:  records,
		pool:     pool,
		progress: o.progress,
		interval: o.interval,
		logger:   o.logger,
	}, nil
}

// Run executes every query and returns one Outcome per query, in query
// order. Cancellation is checked before each query is submitted; queries
// already running finish before Run returns the context error.
func (r *Runner[T]) Run(ctx context.Context, queries []string) ([]Outcome[T], error) {
	outcomes := make([]Outcome[T], len(queries))

	var tracker *ProgressTracker
	if r.progress != nil {
		tracker = NewProgressTracker(r.progress, len(queries), r.interval)
		tracker.Start()
	}

	start := time.Now()
	var wg sync.WaitGroup
	var runErr error

	for i, query := range queries {
		if err := ctx.Err(); err != nil {
			runErr = err
			break
		}

		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			outcomes[i] = r.runQuery(query)
			if tracker != nil {
				tracker.Increment(1)
			}
		})
		if err != nil {
			wg.Done()
			runErr = fmt.Errorf("%w %d: %w", ErrSubmit, i, err)
			break
		}
	}

	wg.Wait()
	if tracker != nil {
		tracker.Finish()
	}

	if runErr != nil {
		r.logger.Warn("batch stopped early", "queries", len(queries), "err", runErr)
		return nil, runErr
	}

	r.logger.Debug("batch finished", "queries", len(queries),
		"records", len(r.records), "elapsed", time.Since(start))
	return outcomes, nil
}

// runQuery filters the records and ranks the matches.
func (r *Runner[T]) runQuery(query string) Outcome[T] {
	matched := r.searcher.FilterQuery(r.records, query)
	return Outcome[T]{
		Query:   query,
		Results: r.searcher.WeightedSearch(matched, query),
	}
}

// PoolSize returns the worker pool capacity.
func (r *Runner[T]) PoolSize() int {
	return r.pool.Cap()
}

// Release releases the worker pool. The Runner must not be used afterwards.
func (r *Runner[T]) Release() {
	r.pool.Release()
}
