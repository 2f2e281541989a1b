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


// Package embed defines the embedding function abstraction used by the
// vector search engine.
//
// The engine only requires a deterministic text-to-fixed-vector mapping;
// any concrete model is pluggable behind the Embedder interface.
// Subpackages provide implementations:
//
//   - embed/openai: OpenAI-compatible embedding APIs (Ollama, vLLM, ...)
//   - embed/tfidf:  a local, corpus-prepared TF-IDF vectorizer
//   - embed/mock:   a deterministic test double
//
// CachedEmbedder decorates any Embedder with a persistent text-to-vector
// cache so unchanged passages are never re-embedded.
package embed
