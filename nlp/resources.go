package nlp

import (
	"fmt"
	"log/slog"
	"strings"

	prose "github.com/jdkato/prose/v2"

	"github.com/wattbot/retrieval/core"
)

// Penn Treebank tags treated as nouns: singular, plural, proper, proper plural.
var nounTags = map[string]bool{
	"NN":   true,
	"NNS":  true,
	"NNP":  true,
	"NNPS": true,
}

// Resources wraps the process-wide part-of-speech tagging model.
// It is loaded once, never mutated afterwards, and safe for concurrent use.
type Resources struct {
	logger *slog.Logger
}

// Option configures Resources.
type Option func(*Resources)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resources) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// Load initializes the tagging resources and verifies they are usable.
// Returns core.ErrResourceUnavailable if the model data cannot serve a
// tagging request; this is fatal and must be fixed by reprovisioning.
func Load(opts ...Option) (*Resources, error) {
	r := &Resources{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}

	// Probe the tagger once so a broken model fails here rather than on
	// the first query.
	if _, err := prose.NewDocument("probe",
		prose.WithExtraction(false)); err != nil {
		r.logger.Error("part-of-speech model probe failed", "err", err)
		return nil, fmt.Errorf("%w: %v", core.ErrResourceUnavailable, err)
	}

	return r, nil
}

// Nouns extracts the nouns from text and returns their term frequencies.
// Text is tagged in its original casing so proper nouns keep their NNP
// signal, and tokens are lowercased only when counted. Single-character
// tokens are dropped.
//
// Deterministic for identical input: same text always yields the same counts.
func (r *Resources) Nouns(text string) (map[string]int, error) {
	if strings.TrimSpace(text) == "" {
		return map[string]int{}, nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrResourceUnavailable, err)
	}

	counts := make(map[string]int)
	for _, tok := range doc.Tokens() {
		if !nounTags[tok.Tag] {
			continue
		}
		if len(tok.Text) <= 1 {
			continue
		}
		counts[strings.ToLower(tok.Text)]++
	}
	return counts, nil
}

// NounSet extracts the distinct nouns from text. Used for queries, where
// only membership matters.
func (r *Resources) NounSet(text string) (map[string]bool, error) {
	counts, err := r.Nouns(text)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(counts))
	for noun := range counts {
		set[noun] = true
	}
	return set, nil
}
