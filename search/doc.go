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


// Package search provides free-text filtering and relevance ranking over
// in-memory record collections.
//
// Records take part in search by implementing Searchable (an ordered list of
// text values) or FieldSearchable (named fields, needed for weighted ranking).
// A query string is split into terms by ParseTerms, honoring double-quoted
// phrases. Each term is matched against a record's values according to a
// Config:
//   - substring containment (the default)
//   - whole-value equality (ExactMatch)
//   - bounded Levenshtein distance as a fallback (FuzzyTolerance)
//
// A record matches a term when any of its values does, and matches a query
// when it matches every term. WeightedSearch ranks records by the sum of
// per-field match strengths multiplied by caller-supplied field weights,
// using a stable sort so equal scores keep their input order.
//
// Every function in this package is synchronous and side-effect free. The
// package keeps no state between calls, so it is safe to call from multiple
// goroutines over a shared, unmodified record slice.
package search
