// Package batch runs many search queries concurrently over one catalog.
//
// A Runner owns an ants worker pool. Each query is filtered with the
// searcher's configuration and the matches are ranked by relevance. The
// catalog slice is shared read-only between workers, so callers must not
// modify it while a Run is in progress.
//
//	runner, err := batch.NewRunner(searcher, items, batch.WithPoolSize(4))
//	if err != nil {
//		return err
//	}
//	defer runner.Release()
//
//	outcomes, err := runner.Run(ctx, queries)
package batch
