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


// Package core defines the catalog domain model shared by the loader,
// the search engine facade and the command line tools.
package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
	"github.com/poiesic/molten/search"
)

// ID is a unique identifier for catalog items.
// It is derived from item content so the same manufacturer/code pair always
// maps to the same ID.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// ItemKey returns the canonical "MANUFACTURER-CODE" key for an item.
func ItemKey(manufacturer, code string) string {
	return manufacturer + "-" + code
}

// Searchable field names exposed by Item, in priority order.
const (
	FieldName         = "name"
	FieldCode         = "code"
	FieldManufacturer = "manufacturer"
	FieldSynonyms     = "synonyms"
	FieldTags         = "tags"
	FieldDescription  = "description"
	FieldCOE          = "coe"
)

// Item is a single glass catalog entry (a rod, stringer, frit or tube color).
type Item struct {
	Id           ID
	Code         string   // Manufacturer product code, e.g. "591"
	Manufacturer string   // Manufacturer abbreviation, e.g. "EF"
	Name         string   // Display name, e.g. "Red Glass Rod"
	Description  string   // Optional free text
	Synonyms     []string // Alternate names
	Tags         []string // Color and property tags, e.g. "red", "opaque"
	COE          string   // Coefficient of expansion, e.g. "104"
}

var (
	_ search.Searchable      = (*Item)(nil)
	_ search.FieldSearchable = (*Item)(nil)
)

// Key returns the item's "MANUFACTURER-CODE" key.
func (i *Item) Key() string {
	return ItemKey(i.Manufacturer, i.Code)
}

// SearchableText returns every searchable value, name first.
func (i *Item) SearchableText() []string {
	text := make([]string, 0, 5+len(i.Synonyms)+len(i.Tags))
	text = append(text, i.Name, i.Code, i.Manufacturer)
	text = append(text, i.Synonyms...)
	text = append(text, i.Tags...)
	text = append(text, i.Description, i.COE)
	return text
}

// SearchableFields returns the item's named fields for weighted search.
func (i *Item) SearchableFields() []search.Field {
	return []search.Field{
		{Name: FieldName, Values: []string{i.Name}},
		{Name: FieldCode, Values: []string{i.Code}},
		{Name: FieldManufacturer, Values: []string{i.Manufacturer}},
		{Name: FieldSynonyms, Values: i.Synonyms},
		{Name: FieldTags, Values: i.Tags},
		{Name: FieldDescription, Values: []string{i.Description}},
		{Name: FieldCOE, Values: []string{i.COE}},
	}
}

// HasTag reports whether the item carries tag, ignoring case.
func (i *Item) HasTag(tag string) bool {
	for _, t := range i.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
