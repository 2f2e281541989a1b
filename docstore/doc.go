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


// Package docstore loads a JSON document collection into an ordered corpus
// of passages.
//
// The expected input is a JSON array of objects (or an object wrapping such
// an array) where each element carries at least a "content" string. Elements
// may also carry an explicit "doc_id" key, a "title" or "caption", and a
// "url". A load either succeeds completely or fails; no partial corpus is
// ever returned.
package docstore
