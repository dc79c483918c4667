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


package core

import (
	"fmt"
	"strings"
)

// ValidateItem checks that an item has the fields every catalog entry needs.
// Returns an error wrapping ErrInvalidItem if validation fails.
func ValidateItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidItem)
	}

	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrEmptyName)
	}

	if strings.TrimSpace(item.Code) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrEmptyCode)
	}

	return nil
}

// NormalizeItem trims surrounding whitespace from every text field, drops
// empty synonyms and tags, and assigns a content ID when none is set.
func NormalizeItem(item *Item) {
	item.Code = strings.TrimSpace(item.Code)
	item.Manufacturer = strings.TrimSpace(item.Manufacturer)
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)
	item.COE = strings.TrimSpace(item.COE)
	item.Synonyms = compact(item.Synonyms)
	item.Tags = compact(item.Tags)

	if item.Id == 0 {
		item.Id = IDFromContent(item.Key())
	}
}

func compact(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
