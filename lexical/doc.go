// Copyright 2026 Wattbot Labs
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


// Package lexical implements the noun-based search engine.
//
// At build time every passage is reduced to its nouns and entered into an
// inverted index mapping noun to per-passage term frequency. At query time
// only passages sharing at least one noun with the query are candidates.
//
// Scoring policy: a candidate's score is the sum, over the query nouns it
// contains, of that noun's term frequency in the passage. This
// overlap-weighted frequency is deliberately simple; there is no
// corpus-wide IDF normalization. Ordering is descending score with ties
// broken by ascending passage ID.
package lexical
