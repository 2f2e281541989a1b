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


// Package rank orders and truncates scored candidates. Both search engines
// run their candidates through TopK so truncation and tie-break semantics
// stay identical regardless of how the scores were produced.
package rank

import (
	"slices"

	"github.com/wattbot/retrieval/core"
)

// TopK sorts candidates by descending score, breaks ties by ascending
// passage ID, and truncates to at most k results. The input slice is sorted
// in place and the returned slice aliases it. Callers validate k; a k larger
// than the candidate count simply returns everything.
func TopK(candidates []core.ScoredResult, k int) []core.ScoredResult {
	slices.SortFunc(candidates, func(a, b core.ScoredResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Passage.Id < b.Passage.Id {
			return -1
		}
		if a.Passage.Id > b.Passage.Id {
			return 1
		}
		return 0
	})

	if k >= 0 && len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
