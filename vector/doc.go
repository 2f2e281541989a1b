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


// Package vector implements the embedding-based search engine.
//
// The engine computes one fixed-dimension vector per passage at build time
// and scores queries against every passage by cosine similarity. Vectors
// are normalized to unit length at build time, so cosine similarity is a
// plain dot product in the range [-1, 1].
//
// The index is read-only after a build; rebuilding while serving queries is
// the caller's responsibility to prevent (build into a fresh engine, then
// swap).
package vector
