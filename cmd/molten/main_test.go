package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/poiesic/molten/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const testCatalog = `{"colors": [
  {"code": "591", "manufacturer": "Effetre", "name": "Red Glass Rod", "tags": ["red", "transparent"]},
  {"code": "060", "manufacturer": "Effetre", "name": "Blue Stringer", "tags": ["blue", "opaque"]},
  {"code": "204", "manufacturer": "Effetre", "name": "Opaque Red Frit", "tags": ["red", "opaque"]},
  {"code": "006", "manufacturer": "Effetre", "name": "Clear", "synonyms": "crystal"}
]}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	err := app.Run(append([]string{"molten"}, args...))
	return out.String(), errOut.String(), err
}

func findFlag(cmd *cli.Command, name string) cli.Flag {
	for _, flag := range cmd.Flags {
		if flag.Names()[0] == name {
			return flag
		}
	}
	return nil
}

func TestCommandFlags(t *testing.T) {
	app := newApp(&bytes.Buffer{}, &bytes.Buffer{})

	for _, name := range []string{"filter", "rank", "batch"} {
		t.Run(name+" requires catalog", func(t *testing.T) {
			cmd := app.Command(name)
			require.NotNil(t, cmd)

			f, ok := findFlag(cmd, "catalog").(*cli.StringFlag)
			require.True(t, ok)
			assert.True(t, f.Required)
			assert.Empty(t, f.Value)
		})
	}

	t.Run("rank limit has default value of 10", func(t *testing.T) {
		f, ok := findFlag(app.Command("rank"), "limit").(*cli.IntFlag)
		require.True(t, ok)
		assert.Equal(t, 10, f.Value)
	})

	t.Run("batch queries is required", func(t *testing.T) {
		f, ok := findFlag(app.Command("batch"), "queries").(*cli.StringFlag)
		require.True(t, ok)
		assert.True(t, f.Required)
	})

	t.Run("missing catalog flag fails", func(t *testing.T) {
		_, _, err := run(t, "filter", "red")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "catalog")
	})
}

func TestTermsCommand(t *testing.T) {
	out, _, err := run(t, "terms", `red "glass rod"`, "frit")
	require.NoError(t, err)
	assert.Equal(t, "red\nglass rod\nfrit\n", out)
}

func TestFilterCommand(t *testing.T) {
	catalog := writeFile(t, "colors.json", testCatalog)

	t.Run("all terms must match", func(t *testing.T) {
		out, _, err := run(t, "filter", "--catalog", catalog, "red", "opaque")
		require.NoError(t, err)
		assert.Contains(t, out, "Opaque Red Frit")
		assert.NotContains(t, out, "Red Glass Rod")
	})

	t.Run("raw matches the whole query", func(t *testing.T) {
		out, _, err := run(t, "filter", "--catalog", catalog, "--raw", "red", "opaque")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("exact", func(t *testing.T) {
		out, _, err := run(t, "filter", "--catalog", catalog, "--exact", "clear")
		require.NoError(t, err)
		assert.Contains(t, out, "Effetre-006")
		assert.Equal(t, 1, strings.Count(out, "\n"))
	})

	t.Run("fuzzy", func(t *testing.T) {
		out, _, err := run(t, "filter", "--catalog", catalog, "--fuzzy", "1", "bleu")
		require.NoError(t, err)
		assert.Empty(t, out, "bleu is two edits from blue")

		out, _, err = run(t, "filter", "--catalog", catalog, "--fuzzy", "2", "bleu")
		require.NoError(t, err)
		assert.Contains(t, out, "Blue Stringer")
	})

	t.Run("case sensitive", func(t *testing.T) {
		out, _, err := run(t, "filter", "--catalog", catalog, "--case-sensitive", "CLEAR")
		require.NoError(t, err)
		assert.Empty(t, out)

		out, _, err = run(t, "filter", "--catalog", catalog, "CLEAR")
		require.NoError(t, err)
		assert.Contains(t, out, "Effetre-006")
	})

	t.Run("derived color tags", func(t *testing.T) {
		cobalt := writeFile(t, "cobalt.json", `[{"code": "1", "manufacturer": "Effetre", "name": "Cobalt Stringer"}]`)
		out, _, err := run(t, "filter", "--catalog", cobalt, "blue")
		require.NoError(t, err)
		assert.Contains(t, out, "Cobalt Stringer")
	})

	t.Run("explain", func(t *testing.T) {
		_, errOut, err := run(t, "filter", "--catalog", catalog, "--explain", "blue")
		require.NoError(t, err)
		assert.Contains(t, errOut, `query: "blue"`)
		assert.Contains(t, errOut, `terms: ["blue"]`)
		assert.Contains(t, errOut, "matched #1")
		assert.Contains(t, errOut, "kept 1 of 4")
	})

	t.Run("missing catalog file", func(t *testing.T) {
		_, _, err := run(t, "filter", "--catalog", filepath.Join(t.TempDir(), "none.json"), "red")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRankCommand(t *testing.T) {
	catalog := writeFile(t, "colors.json", testCatalog)

	t.Run("omits records with no match", func(t *testing.T) {
		out, _, err := run(t, "rank", "--catalog", catalog, "red")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
	})

	t.Run("weights change the order", func(t *testing.T) {
		out, _, err := run(t, "rank", "--catalog", catalog, "--weight", "tags=1", "--weight", "name=0", "opaque")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Blue Stringer", "ties keep catalog order")
	})

	t.Run("limit", func(t *testing.T) {
		out, _, err := run(t, "rank", "--catalog", catalog, "--limit", "1", "red")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "\n"))
	})

	t.Run("empty query lists every record", func(t *testing.T) {
		out, _, err := run(t, "rank", "--catalog", catalog, "--limit", "0")
		require.NoError(t, err)
		assert.Equal(t, 4, strings.Count(out, "\n"))
	})

	t.Run("invalid weight", func(t *testing.T) {
		_, _, err := run(t, "rank", "--catalog", catalog, "--weight", "name", "red")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid weight")
	})

	t.Run("negative weight", func(t *testing.T) {
		_, _, err := run(t, "rank", "--catalog", catalog, "--weight", "name=-1", "red")
		assert.ErrorIs(t, err, search.ErrNegativeWeight)
	})
}

func TestBatchCommand(t *testing.T) {
	catalog := writeFile(t, "colors.json", testCatalog)
	queries := writeFile(t, "queries.txt", "# colors\nred\n\nblue\nnothing here\n")

	out, errOut, err := run(t, "batch", "--catalog", catalog, "--queries", queries,
		"--pool-size", "2", "--report-interval", "1ns")
	require.NoError(t, err)

	assert.Contains(t, out, `"red": 2 results`)
	assert.Contains(t, out, `"blue": 1 results`)
	assert.Contains(t, out, `"nothing here": 0 results`)
	assert.Less(t, strings.Index(out, `"red"`), strings.Index(out, `"blue"`))
	assert.Contains(t, errOut, "3/3")
}

func TestBatchCommand_MissingQueries(t *testing.T) {
	catalog := writeFile(t, "colors.json", testCatalog)

	_, _, err := run(t, "batch", "--catalog", catalog, "--queries", filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigProfile(t *testing.T) {
	catalog := writeFile(t, "colors.json", testCatalog)

	t.Run("profile preset applies", func(t *testing.T) {
		profile := writeFile(t, "profile.yaml", "search:\n  preset: fuzzy\n")
		out, _, err := run(t, "--config", profile, "filter", "--catalog", catalog, "bleu")
		require.NoError(t, err)
		assert.Contains(t, out, "Blue Stringer")
	})

	t.Run("flags override the profile", func(t *testing.T) {
		profile := writeFile(t, "profile.yaml", "search:\n  preset: fuzzy\n")
		out, _, err := run(t, "--config", profile, "filter", "--catalog", catalog, "--fuzzy", "0", "bleu")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("invalid profile", func(t *testing.T) {
		profile := writeFile(t, "profile.yaml", "search:\n  preset: loose\n")
		_, _, err := run(t, "--config", profile, "terms", "red")
		require.Error(t, err)
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "WaRn"} {
			t.Run(level, func(t *testing.T) {
				_, _, err := run(t, "--log-level", level, "terms", "red")
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		_, _, err := run(t, "--log-level", "invalid", "terms", "red")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("debug logs go to stderr", func(t *testing.T) {
		catalog := writeFile(t, "colors.json", testCatalog)
		_, errOut, err := run(t, "-l", "debug", "filter", "--catalog", catalog, "red")
		require.NoError(t, err)
		assert.Contains(t, errOut, "filtered records")
	})
}

func TestParseWeights(t *testing.T) {
	weights, err := parseWeights([]string{"name=2", " tags = 0.5 "})
	require.NoError(t, err)
	assert.Equal(t, search.Weights{"name": 2, "tags": 0.5}, weights)

	weights, err = parseWeights(nil)
	require.NoError(t, err)
	assert.Nil(t, weights)

	for _, bad := range []string{"name", "=2", "name=two"} {
		_, err := parseWeights([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestMergeWeights(t *testing.T) {
	profile := search.Weights{"name": 1, "tags": 1}

	assert.Equal(t, profile, mergeWeights(profile, nil))
	assert.Equal(t, search.Weights{"name": 3, "tags": 1}, mergeWeights(profile, search.Weights{"name": 3}))
	assert.Equal(t, search.Weights{"name": 1, "tags": 1}, profile, "profile weights are not modified")
}
