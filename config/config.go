// Package config loads molten search profiles from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/poiesic/molten/search"
	"gopkg.in/yaml.v3"
)

// Config holds a molten search profile.
type Config struct {
	Search  SearchConfig       `yaml:"search"`
	Weights map[string]float64 `yaml:"weights"`
	Batch   BatchConfig        `yaml:"batch"`
	Logging LoggingConfig      `yaml:"logging"`
}

// SearchConfig holds match settings. Explicit settings are layered on top
// of the named preset.
type SearchConfig struct {
	Preset           string `yaml:"preset"` // default, fuzzy, exact (default: default)
	CaseSensitive    bool   `yaml:"case_sensitive"`
	ExactMatch       bool   `yaml:"exact_match"`
	FuzzyTolerance   *int   `yaml:"fuzzy_tolerance"` // unset keeps the preset's tolerance
	HighlightMatches bool   `yaml:"highlight_matches"`
}

// BatchConfig holds batch runner settings.
type BatchConfig struct {
	PoolSize       int           `yaml:"pool_size"`       // default: NumCPU/2, at least 1
	ReportInterval time.Duration `yaml:"report_interval"` // 0 disables progress reports
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Default returns a profile with every default applied.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// Load reads a profile from a YAML file. ${VAR} and ${VAR:-default}
// references are expanded from the environment before parsing. Unknown
// keys are rejected.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, ErrConfigPathRequired
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(expandEnvVars(data))
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes, defaults and validates a YAML profile.
func Parse(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Search.Preset) == "" {
		c.Search.Preset = "default"
	}
	if c.Batch.PoolSize <= 0 {
		c.Batch.PoolSize = max(runtime.NumCPU()/2, 1)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the profile for correctness.
func (c *Config) Validate() error {
	if _, err := search.PresetConfig(c.Search.Preset); err != nil {
		return fmt.Errorf("%w: search.preset: %w", ErrInvalidConfig, err)
	}
	if t := c.Search.FuzzyTolerance; t != nil && *t < 0 {
		return fmt.Errorf("%w: search.fuzzy_tolerance must not be negative, got %d", ErrInvalidConfig, *t)
	}
	if err := search.Weights(c.Weights).Validate(); err != nil {
		return fmt.Errorf("%w: weights: %w", ErrInvalidConfig, err)
	}
	if c.Batch.PoolSize <= 0 {
		return fmt.Errorf("%w: batch.pool_size must be positive, got %d", ErrInvalidConfig, c.Batch.PoolSize)
	}
	if c.Batch.ReportInterval < 0 {
		return fmt.Errorf("%w: batch.report_interval must not be negative, got %s", ErrInvalidConfig, c.Batch.ReportInterval)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// SearchConfig builds the match configuration described by the profile.
func (c *Config) SearchConfig() (search.Config, error) {
	cfg, err := search.PresetConfig(c.Search.Preset)
	if err != nil {
		return search.Config{}, err
	}

	var opts []search.ConfigOption
	if c.Search.CaseSensitive {
		opts = append(opts, search.WithCaseSensitive(true))
	}
	if c.Search.ExactMatch {
		opts = append(opts, search.WithExactMatch(true))
	}
	if c.Search.FuzzyTolerance != nil {
		opts = append(opts, search.WithFuzzyTolerance(*c.Search.FuzzyTolerance))
	}
	if c.Search.HighlightMatches {
		opts = append(opts, search.WithHighlightMatches(true))
	}
	return cfg.With(opts...), nil
}

// FieldWeights returns the profile weights, or nil for uniform weighting.
func (c *Config) FieldWeights() search.Weights {
	if len(c.Weights) == 0 {
		return nil
	}
	return search.Weights(c.Weights)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: must be debug, info, warn, or error", level)
	}
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment values.
func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		name, fallback, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(name)
		if val == "" && hasDefault {
			val = fallback
		}
		return []byte(val)
	})
}
