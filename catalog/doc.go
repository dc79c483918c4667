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


// Package catalog loads glass color catalogs from JSON files.
//
// The accepted layout is the one produced by the catalog converter and
// scraper tools:
//
//	{"colors": [{"id": "EF-591", "code": "591", "manufacturer": "EF",
//	             "name": "Red", "synonyms": "rosso, rouge",
//	             "tags": ["red", "opaque"], "coe": "104"}]}
//
// A bare top-level array of items is accepted as well. Synonyms and tags may
// be given either as an array of strings or as a single comma separated
// string. Codes and COE values may be strings or numbers.
//
// Invalid and duplicate items are skipped and reported in a LoadReport
// rather than failing the whole load.
package catalog
