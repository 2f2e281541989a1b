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

import (
	"fmt"
	"strings"
)

// ValidatePassage validates a Passage according to domain rules.
//
// Validation rules:
//   - Text must not be empty or all whitespace
//
// NOT validated:
//   - Id (0 is a valid sequential position)
//   - Title and URL (optional metadata)
func ValidatePassage(p *Passage) error {
	if p == nil {
		return fmt.Errorf("%w: passage is nil", ErrFormat)
	}
	if strings.TrimSpace(p.Text) == "" {
		return fmt.Errorf("%w: %w", ErrFormat, ErrEmptyText)
	}
	return nil
}

// ValidateCorpus validates that all passages in a corpus are well formed and
// that no ID appears twice.
func ValidateCorpus(c Corpus) error {
	seen := make(map[ID]bool, len(c))
	for i, p := range c {
		if err := ValidatePassage(p); err != nil {
			return fmt.Errorf("passage %d: %w", i, err)
		}
		if seen[p.Id] {
			return fmt.Errorf("%w: id %d", ErrDuplicateKey, p.Id)
		}
		seen[p.Id] = true
	}
	return nil
}

// ValidateLimit validates a top-k result count parameter.
func ValidateLimit(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: k must be >= 1, got %d", ErrInvalidArgument, k)
	}
	return nil
}
