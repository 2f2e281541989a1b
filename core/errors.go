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


package core

import "errors"

// Retrieval errors. All are fatal for the failing call and are surfaced
// synchronously; nothing is retried internally.
var (
	// ErrFormat indicates a malformed or incomplete input corpus.
	ErrFormat = errors.New("malformed corpus")

	// ErrDuplicateKey indicates a corpus integrity violation: two passages
	// declared the same source-provided key.
	ErrDuplicateKey = errors.New("duplicate passage key")

	// ErrResourceUnavailable indicates the language model data required for
	// tokenization and tagging is not present. It must be resolved by the
	// provisioning step before retrying.
	ErrResourceUnavailable = errors.New("language resources unavailable")

	// ErrInvalidArgument indicates a bad result-count parameter or a query
	// against an index that has not been built.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyText indicates a passage with no text content.
	ErrEmptyText = errors.New("passage text cannot be empty")
)
