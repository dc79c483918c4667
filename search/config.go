package search

import (
	"fmt"
	"log/slog"
	"strings"
)

// DefaultFuzzyTolerance is the edit distance allowed by FuzzyConfig.
const DefaultFuzzyTolerance = 2

// Preset names accepted by PresetConfig.
const (
	PresetDefault = "default"
	PresetFuzzy   = "fuzzy"
	PresetExact   = "exact"
)

// Config describes how terms are matched against field values.
// Config is an immutable value; use NewConfig, the presets, or With to
// derive a new one.
type Config struct {
	caseSensitive    bool
	exactMatch       bool
	fuzzy            bool
	fuzzyTolerance   int
	highlightMatches bool
}

// ConfigOption configures a Config.
type ConfigOption func(*Config)

// WithCaseSensitive controls whether case differences prevent a match.
func WithCaseSensitive(caseSensitive bool) ConfigOption {
	return func(c *Config) {
		c.caseSensitive = caseSensitive
	}
}

// WithExactMatch requires a term to equal the whole field value.
// Exact mode takes precedence over fuzzy matching.
func WithExactMatch(exact bool) ConfigOption {
	return func(c *Config) {
		c.exactMatch = exact
	}
}

// WithFuzzyTolerance enables fuzzy matching with the given maximum edit
// distance. A negative tolerance disables fuzzy matching.
func WithFuzzyTolerance(tolerance int) ConfigOption {
	return func(c *Config) {
		if tolerance < 0 {
			c.fuzzy = false
			c.fuzzyTolerance = 0
			return
		}
		c.fuzzy = true
		c.fuzzyTolerance = tolerance
	}
}

// WithHighlightMatches sets the highlight flag. The engine does not
// highlight anything itself; the flag is carried for callers.
func WithHighlightMatches(highlight bool) ConfigOption {
	return func(c *Config) {
		c.highlightMatches = highlight
	}
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...ConfigOption) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DefaultConfig is case-insensitive substring matching.
func DefaultConfig() Config {
	return NewConfig()
}

// FuzzyConfig is case-insensitive substring matching with a fuzzy fallback
// of DefaultFuzzyTolerance edits.
func FuzzyConfig() Config {
	return NewConfig(WithFuzzyTolerance(DefaultFuzzyTolerance))
}

// ExactConfig is case-insensitive whole-value matching.
func ExactConfig() Config {
	return NewConfig(WithExactMatch(true))
}

// PresetConfig returns the preset registered under name.
func PresetConfig(name string) (Config, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PresetDefault:
		return DefaultConfig(), nil
	case PresetFuzzy:
		return FuzzyConfig(), nil
	case PresetExact:
		return ExactConfig(), nil
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// With returns a copy of c with opts applied.
func (c Config) With(opts ...ConfigOption) Config {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// CaseSensitive reports whether matching is case sensitive.
func (c Config) CaseSensitive() bool { return c.caseSensitive }

// ExactMatch reports whether terms must equal the whole field value.
func (c Config) ExactMatch() bool { return c.exactMatch }

// FuzzyTolerance returns the maximum edit distance for fuzzy matches and
// whether fuzzy matching is enabled at all.
func (c Config) FuzzyTolerance() (int, bool) { return c.fuzzyTolerance, c.fuzzy }

// HighlightMatches reports whether callers asked for match highlighting.
func (c Config) HighlightMatches() bool { return c.highlightMatches }

// LogValue implements slog.LogValuer.
func (c Config) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Bool("case_sensitive", c.caseSensitive),
		slog.Bool("exact", c.exactMatch),
	}
	if c.fuzzy {
		attrs = append(attrs, slog.Int("fuzzy_tolerance", c.fuzzyTolerance))
	}
	if c.highlightMatches {
		attrs = append(attrs, slog.Bool("highlight", true))
	}
	return slog.GroupValue(attrs...)
}

func (c Config) normalize(s string) string {
	if c.caseSensitive {
		return s
	}
	return strings.ToLower(s)
}
