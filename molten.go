// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package molten searches glass color catalogs.
package molten

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/poiesic/molten/batch"
	"github.com/poiesic/molten/catalog"
	"github.com/poiesic/molten/core"
	"github.com/poiesic/molten/search"
)

// Catalog is an immutable, validated set of catalog items together with
// factories for the components that search it.
type Catalog struct {
	items  []*core.Item
	byID   map[core.ID]*core.Item
	report catalog.LoadReport
	logger *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger for the catalog and the components it creates.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(o *catalogOptions) {
		if logger == nil {
			logger = slog.Default()
		}
		o.logger = logger
	}
}

func applyCatalogOptions(opts []CatalogOption) *catalogOptions {
	options := &catalogOptions{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// OpenCatalog loads the catalog file at path.
func OpenCatalog(path string, opts ...CatalogOption) (*Catalog, error) {
	options := applyCatalogOptions(opts)

	items, report, err := catalog.NewLoader(catalog.WithLogger(options.logger)).Load(path)
	if err != nil {
		return nil, err
	}
	return newCatalog(items, report, options.logger), nil
}

// NewCatalog builds a catalog from items. Items are normalized and
// validated; the first invalid item is returned as an error. Items are
// copied, so later changes by the caller are not observed.
func NewCatalog(items []*core.Item, opts ...CatalogOption) (*Catalog, error) {
	options := applyCatalogOptions(opts)

	copied := make([]*core.Item, 0, len(items))
	seen := make(map[core.ID]struct{}, len(items))
	report := catalog.LoadReport{Total: len(items)}

	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf("item %d: %w", i, core.ValidateItem(nil))
		}
		c := *item
		c.Synonyms = slices.Clone(item.Synonyms)
		c.Tags = slices.Clone(item.Tags)
		core.NormalizeItem(&c)
		if err := core.ValidateItem(&c); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if _, ok := seen[c.Id]; ok {
			report.Duplicates++
			continue
		}
		seen[c.Id] = struct{}{}
		copied = append(copied, &c)
	}
	report.Loaded = len(copied)

	return newCatalog(copied, report, options.logger), nil
}

func newCatalog(items []*core.Item, report catalog.LoadReport, logger *slog.Logger) *Catalog {
	byID := make(map[core.ID]*core.Item, len(items))
	for _, item := range items {
		byID[item.Id] = item
	}
	return &Catalog{
		items:  items,
		byID:   byID,
		report: report,
		logger: logger,
	}
}

// Items returns the catalog items in load order. The slice is a copy; the
// items themselves are shared and must not be modified.
func (c *Catalog) Items() []*core.Item {
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Item returns the item with the given ID.
func (c *Catalog) Item(id core.ID) (*core.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

// Report returns the load summary.
func (c *Catalog) Report() catalog.LoadReport {
	return c.report
}

// NewSearcher creates a searcher for catalog items. The catalog logger is
// used unless opts set another.
func (c *Catalog) NewSearcher(opts ...search.Option) (*search.Searcher[*core.Item], error) {
	opts = append([]search.Option{search.WithLogger(c.logger)}, opts...)
	return search.NewSearcher[*core.Item](opts...)
}

// NewBatchRunner creates a batch runner over the catalog items. Callers
// must Release the runner when done.
func (c *Catalog) NewBatchRunner(searcher *search.Searcher[*core.Item], opts ...batch.Option) (*batch.Runner[*core.Item], error) {
	opts = append([]batch.Option{batch.WithLogger(c.logger)}, opts...)
	return batch.NewRunner(searcher, c.items, opts...)
}
