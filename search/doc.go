// Copyright 2025 Anil Kumar Reddy K
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


// Package search provides lexical search over the portfolio content.
//
// The Searcher builds a unified in-memory index across all content
// collections and ranks records with a weighted additive substring scorer:
//
//   - Substring matches on a record's fields each contribute a fixed,
//     field-specific number of points
//   - A catch-all bonus surfaces records whose fields match only in
//     concatenation
//   - Records scoring zero are excluded; results are sorted by score
//     descending with index insertion order breaking ties
//
// Scoring is deterministic: the same content snapshot and query always
// produce the same scores and ordering.
package search
