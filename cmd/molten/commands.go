package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/poiesic/molten/batch"
	"github.com/poiesic/molten/core"
	"github.com/poiesic/molten/search"
	"github.com/urfave/cli/v2"
)

func (a *app) termsCommand(c *cli.Context) error {
	for _, term := range search.ParseTerms(query(c)) {
		fmt.Fprintln(a.out, term)
	}
	return nil
}

func (a *app) filterCommand(c *cli.Context) error {
	cfg, err := a.searchConfig(c)
	if err != nil {
		return err
	}

	cat, err := a.openCatalog(c)
	if err != nil {
		return err
	}

	searcher, err := cat.NewSearcher(search.WithConfig(cfg))
	if err != nil {
		return err
	}

	q := query(c)
	var matches []*core.Item
	if c.Bool("raw") {
		matches = searcher.FilterWithMonitor(cat.Items(), q, a.monitor(c))
	} else {
		matches = searcher.FilterQueryWithMonitor(cat.Items(), q, a.monitor(c))
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, item := range matches {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", item.Key(), item.Name, strings.Join(item.Tags, ", "))
	}
	return tw.Flush()
}

func (a *app) rankCommand(c *cli.Context) error {
	cfg, err := a.searchConfig(c)
	if err != nil {
		return err
	}

	flagWeights, err := parseWeights(c.StringSlice("weight"))
	if err != nil {
		return err
	}

	cat, err := a.openCatalog(c)
	if err != nil {
		return err
	}

	searcher, err := cat.NewSearcher(
		search.WithConfig(cfg),
		search.WithFieldWeights(mergeWeights(a.profile.FieldWeights(), flagWeights)),
	)
	if err != nil {
		return err
	}

	q := query(c)
	results := searcher.WeightedSearchWithMonitor(cat.Items(), q, a.monitor(c))
	if len(search.ParseTerms(q)) > 0 {
		results = relevant(results)
	}

	return printResults(a.out, results, c.Int("limit"), "")
}

func (a *app) batchCommand(c *cli.Context) error {
	cfg, err := a.searchConfig(c)
	if err != nil {
		return err
	}

	queries, err := readQueries(c.String("queries"))
	if err != nil {
		return err
	}

	cat, err := a.openCatalog(c)
	if err != nil {
		return err
	}

	searcher, err := cat.NewSearcher(
		search.WithConfig(cfg),
		search.WithFieldWeights(a.profile.FieldWeights()),
	)
	if err != nil {
		return err
	}

	poolSize := a.profile.Batch.PoolSize
	if c.IsSet("pool-size") {
		poolSize = c.Int("pool-size")
	}
	interval := a.profile.Batch.ReportInterval
	if c.IsSet("report-interval") {
		interval = c.Duration("report-interval")
	}

	opts := []batch.Option{batch.WithPoolSize(poolSize)}
	if interval > 0 {
		opts = append(opts, batch.WithProgress(a.errOut, interval))
	}

	runner, err := cat.NewBatchRunner(searcher, opts...)
	if err != nil {
		return err
	}
	defer runner.Release()

	outcomes, err := runner.Run(c.Context, queries)
	if err != nil {
		return err
	}

	for _, outcome := range outcomes {
		results := outcome.Results
		if len(search.ParseTerms(outcome.Query)) > 0 {
			results = relevant(results)
		}
		fmt.Fprintf(a.out, "%q: %d results\n", outcome.Query, len(results))
		if err := printResults(a.out, results, c.Int("limit"), "  "); err != nil {
			return err
		}
	}
	return nil
}

// relevant drops results that matched nothing.
func relevant(results []search.Result[*core.Item]) []search.Result[*core.Item] {
	out := results[:0:0]
	for _, r := range results {
		if r.Relevance > 0 {
			out = append(out, r)
		}
	}
	return out
}

func printResults(w io.Writer, results []search.Result[*core.Item], limit int, indent string) error {
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%s%.3f\t%s\t%s\n", indent, r.Relevance, r.Record.Key(), r.Record.Name)
	}
	return tw.Flush()
}

// readQueries reads one query per line, skipping blank lines and lines
// starting with #.
func readQueries(path string) ([]string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open queries %s: %w", path, err)
	}
	defer f.Close()

	var queries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		queries = append(queries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read queries %s: %w", path, err)
	}
	return queries, nil
}
