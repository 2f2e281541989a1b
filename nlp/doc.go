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


// Package nlp provides the shared text-processing utilities used by both
// search engines: stop-word-aware normalization and part-of-speech based
// noun extraction.
//
// The part-of-speech model is wrapped in a Resources value that is loaded
// once at process start and treated as read-only afterwards. Loading fails
// fast if the model data is unusable; nothing is downloaded at runtime.
package nlp
