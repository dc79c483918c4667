package catalog

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/molten/core"
)

// LoadReport summarizes a catalog load.
type LoadReport struct {
	Total      int // Items present in the input
	Loaded     int // Items returned
	Invalid    int // Items rejected by validation
	Duplicates int // Items whose ID was already loaded
}

// Loader decodes catalogs into validated items.
type Loader struct {
	logger     *slog.Logger
	deriveTags bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// WithDerivedTags controls whether color family, property and naming
// convention tags are added to each item from its name and description.
// Default is true.
func WithDerivedTags(enabled bool) Option {
	return func(l *Loader) {
		l.deriveTags = enabled
	}
}

// NewLoader creates a catalog loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{logger: slog.Default(), deriveTags: true}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads and decodes the catalog file at path.
func (l *Loader) Load(path string) ([]*core.Item, LoadReport, error) {
	if path == "" {
		return nil, LoadReport{}, ErrCatalogPathRequired
	}

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	defer f.Close()

	items, report, err := l.Decode(f)
	if err != nil {
		return nil, report, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}

	l.logger.Info("loaded catalog", "path", path,
		"items", report.Loaded, "invalid", report.Invalid, "duplicates", report.Duplicates)
	return items, report, nil
}

// Decode reads a catalog from r. Items that fail validation or repeat an
// earlier item's ID are skipped and counted in the report. The returned
// items keep their input order.
func (l *Loader) Decode(r io.Reader) ([]*core.Item, LoadReport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, LoadReport{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	raw, err := decodeItems(data)
	if err != nil {
		return nil, LoadReport{}, err
	}

	report := LoadReport{Total: len(raw)}
	items := make([]*core.Item, 0, len(raw))
	seen := make(map[core.ID]int, len(raw))

	for i := range raw {
		item := raw[i].toItem()
		if err := core.ValidateItem(item); err != nil {
			l.logger.Warn("skipping invalid catalog item", "index", i, "name", item.Name, "err", err)
			report.Invalid++
			continue
		}
		if first, ok := seen[item.Id]; ok {
			l.logger.Warn("skipping duplicate catalog item", "index", i, "key", item.Key(), "first", first)
			report.Duplicates++
			continue
		}
		seen[item.Id] = i
		if l.deriveTags {
			core.DeriveTags(item)
		}
		items = append(items, item)
	}

	report.Loaded = len(items)
	return items, report, nil
}

// Load reads the catalog file at path with a default Loader.
func Load(path string) ([]*core.Item, error) {
	items, _, err := NewLoader().Load(path)
	return items, err
}
