package search

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.False(t, cfg.CaseSensitive())
		assert.False(t, cfg.ExactMatch())
		assert.False(t, cfg.HighlightMatches())
		_, fuzzy := cfg.FuzzyTolerance()
		assert.False(t, fuzzy)
	})

	t.Run("fuzzy", func(t *testing.T) {
		cfg := FuzzyConfig()
		assert.False(t, cfg.CaseSensitive())
		assert.False(t, cfg.ExactMatch())
		tolerance, fuzzy := cfg.FuzzyTolerance()
		assert.True(t, fuzzy)
		assert.Equal(t, 2, tolerance)
	})

	t.Run("exact", func(t *testing.T) {
		cfg := ExactConfig()
		assert.False(t, cfg.CaseSensitive())
		assert.True(t, cfg.ExactMatch())
		_, fuzzy := cfg.FuzzyTolerance()
		assert.False(t, fuzzy)
	})
}

func TestPresetConfig(t *testing.T) {
	tests := []struct {
		name string
		want Config
	}{
		{name: "", want: DefaultConfig()},
		{name: "default", want: DefaultConfig()},
		{name: "fuzzy", want: FuzzyConfig()},
		{name: " Exact ", want: ExactConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := PresetConfig(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}

	t.Run("unknown preset", func(t *testing.T) {
		_, err := PresetConfig("phonetic")
		assert.ErrorIs(t, err, ErrUnknownPreset)
	})
}

func TestConfigOptions(t *testing.T) {
	t.Run("negative tolerance disables fuzzy", func(t *testing.T) {
		cfg := FuzzyConfig().With(WithFuzzyTolerance(-1))
		_, fuzzy := cfg.FuzzyTolerance()
		assert.False(t, fuzzy)
	})

	t.Run("zero tolerance is enabled", func(t *testing.T) {
		tolerance, fuzzy := NewConfig(WithFuzzyTolerance(0)).FuzzyTolerance()
		assert.True(t, fuzzy)
		assert.Equal(t, 0, tolerance)
	})

	t.Run("With does not modify the receiver", func(t *testing.T) {
		base := DefaultConfig()
		derived := base.With(WithCaseSensitive(true), WithHighlightMatches(true))

		assert.False(t, base.CaseSensitive())
		assert.False(t, base.HighlightMatches())
		assert.True(t, derived.CaseSensitive())
		assert.True(t, derived.HighlightMatches())
	})

	t.Run("exact and fuzzy may both be set", func(t *testing.T) {
		cfg := NewConfig(WithExactMatch(true), WithFuzzyTolerance(2))
		assert.True(t, cfg.ExactMatch())
		_, fuzzy := cfg.FuzzyTolerance()
		assert.True(t, fuzzy)
	})
}

func TestConfig_LogValue(t *testing.T) {
	v := FuzzyConfig().LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	attrs := map[string]slog.Value{}
	for _, a := range v.Group() {
		attrs[a.Key] = a.Value
	}
	assert.False(t, attrs["case_sensitive"].Bool())
	assert.False(t, attrs["exact"].Bool())
	assert.Equal(t, int64(2), attrs["fuzzy_tolerance"].Int64())
}
