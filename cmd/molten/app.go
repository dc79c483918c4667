package main

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/poiesic/molten"
	"github.com/poiesic/molten/config"
	"github.com/poiesic/molten/search"
	"github.com/urfave/cli/v2"
)

// app carries the loaded profile and output streams shared by commands.
type app struct {
	profile config.Config
	out     io.Writer
	errOut  io.Writer
}

func newApp(out, errOut io.Writer) *cli.App {
	a := &app{
		profile: config.Default(),
		out:     out,
		errOut:  errOut,
	}

	return &cli.App{
		Name:      "molten",
		Usage:     "Search glass color catalogs",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML search profile",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:      "terms",
				Usage:     "Print the terms a query parses into",
				ArgsUsage: "QUERY...",
				Action:    a.termsCommand,
			},
			{
				Name:      "filter",
				Usage:     "List catalog items matching every query term",
				ArgsUsage: "QUERY...",
				Action:    a.filterCommand,
				Flags: append(matchFlags(),
					&cli.BoolFlag{
						Name:  "raw",
						Usage: "Match the whole query as a single term",
					},
				),
			},
			{
				Name:      "rank",
				Usage:     "Rank catalog items by weighted relevance",
				ArgsUsage: "QUERY...",
				Action:    a.rankCommand,
				Flags: append(matchFlags(),
					&cli.StringSliceFlag{
						Name:  "weight",
						Usage: "Field weight as field=number, may be repeated",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results, 0 for all",
						Value: 10,
					},
				),
			},
			{
				Name:   "batch",
				Usage:  "Run every query in a file concurrently",
				Action: a.batchCommand,
				Flags: append(matchFlags(),
					&cli.StringFlag{
						Name:     "queries",
						Aliases:  []string{"q"},
						Usage:    "File with one query per line",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of concurrent workers (defaults to the profile)",
					},
					&cli.DurationFlag{
						Name:  "report-interval",
						Usage: "Report progress at this interval, 0 to disable (defaults to the profile)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results per query, 0 for all",
						Value: 5,
					},
				),
			},
		},
	}
}

// matchFlags are the flags shared by every searching command.
func matchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "catalog",
			Aliases:  []string{"f"},
			Usage:    "Path to a JSON color catalog",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "exact",
			Usage: "Require terms to equal a whole field value",
		},
		&cli.IntFlag{
			Name:  "fuzzy",
			Usage: "Accept terms within N edits of a value or word",
		},
		&cli.BoolFlag{
			Name:  "case-sensitive",
			Usage: "Match case exactly",
		},
		&cli.BoolFlag{
			Name:  "explain",
			Usage: "Print search stages to stderr",
		},
	}
}

// setup loads the profile and configures the default logger. An explicit
// --log-level overrides the profile's level.
func (a *app) setup(c *cli.Context) error {
	if path := c.String("config"); path != "" {
		profile, err := config.Load(path)
		if err != nil {
			return err
		}
		a.profile = profile
	}
	if c.IsSet("log-level") {
		a.profile.Logging.Level = c.String("log-level")
	}

	level, err := config.ParseLevel(a.profile.Logging.Level)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// searchConfig layers command flags on top of the profile.
func (a *app) searchConfig(c *cli.Context) (search.Config, error) {
	cfg, err := a.profile.SearchConfig()
	if err != nil {
		return search.Config{}, err
	}

	var opts []search.ConfigOption
	if c.Bool("exact") {
		opts = append(opts, search.WithExactMatch(true))
	}
	if c.IsSet("fuzzy") {
		opts = append(opts, search.WithFuzzyTolerance(c.Int("fuzzy")))
	}
	if c.Bool("case-sensitive") {
		opts = append(opts, search.WithCaseSensitive(true))
	}
	return cfg.With(opts...), nil
}

func (a *app) openCatalog(c *cli.Context) (*molten.Catalog, error) {
	return molten.OpenCatalog(c.String("catalog"), molten.WithLogger(slog.Default()))
}

func (a *app) monitor(c *cli.Context) search.SearchMonitor {
	if !c.Bool("explain") {
		return nil
	}
	return newExplainMonitor(a.errOut)
}

func query(c *cli.Context) string {
	return strings.Join(c.Args().Slice(), " ")
}

// parseWeights parses field=number pairs.
func parseWeights(pairs []string) (search.Weights, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	weights := make(search.Weights, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid weight %q: expected field=number", pair)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", pair, err)
		}
		weights[field] = w
	}
	return weights, nil
}

// mergeWeights overlays flag weights on the profile weights.
func mergeWeights(profile, flags search.Weights) search.Weights {
	if len(flags) == 0 {
		return profile
	}
	merged := make(search.Weights, len(profile)+len(flags))
	maps.Copy(merged, profile)
	maps.Copy(merged, flags)
	return merged
}

// explainMonitor prints each search stage.
type explainMonitor struct {
	w     io.Writer
	start time.Time
}

var _ search.SearchMonitor = (*explainMonitor)(nil)

func newExplainMonitor(w io.Writer) *explainMonitor {
	return &explainMonitor{w: w}
}

func (m *explainMonitor) Start(query string) {
	m.start = time.Now()
	fmt.Fprintf(m.w, "query: %q\n", query)
}

func (m *explainMonitor) AfterParse(terms []string) {
	fmt.Fprintf(m.w, "terms: %q\n", terms)
}

func (m *explainMonitor) Matched(index int) {
	fmt.Fprintf(m.w, "  matched #%d\n", index)
}

func (m *explainMonitor) Scored(index int, relevance float64) {
	fmt.Fprintf(m.w, "  scored #%d: %.3f\n", index, relevance)
}

func (m *explainMonitor) Finish(kept, scanned int) {
	fmt.Fprintf(m.w, "kept %d of %d in %s\n", kept, scanned, time.Since(m.start).Round(time.Microsecond))
}
