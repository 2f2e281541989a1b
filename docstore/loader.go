package docstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/wattbot/retrieval/core"
)

// loader holds the load-time configuration.
type loader struct {
	dedup  bool
	logger *slog.Logger
}

// Option configures a corpus load.
type Option func(*loader)

// WithDeduplication drops passages whose text was already seen earlier in
// the file. Duplicate fragments are common in corpora extracted from PDFs.
func WithDeduplication() Option {
	return func(l *loader) {
		l.dedup = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// Load parses the JSON file at path into a corpus.
//
// Each element becomes one passage. The "content" field is required; a
// missing or non-string content fails the whole load with core.ErrFormat.
// A present-but-blank content marks an extraction gap in the source and is
// skipped. Passages get the element's "doc_id" when supplied, otherwise
// their position in the file; duplicate IDs fail with core.ErrDuplicateKey.
func Load(path string, opts ...Option) (core.Corpus, error) {
	l := &loader{logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file: %w", err)
	}

	elements, err := rootElements(data)
	if err != nil {
		return nil, err
	}

	corpus := make(core.Corpus, 0, len(elements))
	seenText := make(map[string]bool)
	skipped := 0

	for i, raw := range elements {
		passage, blank, err := parsePassage(raw, i)
		if err != nil {
			return nil, err
		}
		if blank {
			skipped++
			continue
		}
		if l.dedup {
			if seenText[passage.Text] {
				skipped++
				continue
			}
			seenText[passage.Text] = true
		}
		corpus = append(corpus, passage)
	}

	if err := core.ValidateCorpus(corpus); err != nil {
		return nil, err
	}

	l.logger.Info("corpus loaded",
		"path", path, "passages", len(corpus), "skipped", skipped)
	return corpus, nil
}

// rootElements accepts either a top-level array or an object wrapping one
// under a well-known key.
func rootElements(data []byte) ([]json.RawMessage, error) {
	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err == nil {
		return elements, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrFormat, err)
	}
	for _, key := range []string{"passages", "documents", "data"} {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &elements); err != nil {
			return nil, fmt.Errorf("%w: %q is not an array: %v", core.ErrFormat, key, err)
		}
		return elements, nil
	}
	return nil, fmt.Errorf("%w: no passage array found at document root", core.ErrFormat)
}

// parsePassage decodes one corpus element. The bool result reports a blank
// passage that should be skipped rather than loaded.
func parsePassage(raw json.RawMessage, position int) (*core.Passage, bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false, fmt.Errorf("%w: element %d is not an object: %v", core.ErrFormat, position, err)
	}

	contentRaw, ok := fields["content"]
	if !ok {
		return nil, false, fmt.Errorf("%w: element %d has no content field", core.ErrFormat, position)
	}

	var content *string
	if err := json.Unmarshal(contentRaw, &content); err != nil {
		return nil, false, fmt.Errorf("%w: element %d content is not a string", core.ErrFormat, position)
	}
	if content == nil || strings.TrimSpace(*content) == "" {
		return nil, true, nil
	}

	passage := &core.Passage{
		Id:   core.ID(position),
		Text: strings.TrimSpace(*content),
	}

	if idRaw, ok := fields["doc_id"]; ok {
		var id uint64
		if err := json.Unmarshal(idRaw, &id); err != nil {
			return nil, false, fmt.Errorf("%w: element %d doc_id is not an unsigned integer", core.ErrFormat, position)
		}
		passage.Id = core.ID(id)
	}

	if titleRaw, ok := fields["title"]; ok {
		var title string
		if err := json.Unmarshal(titleRaw, &title); err == nil {
			passage.Title = title
		}
	}

	// Tables and figures carry their caption separately; folding it into the
	// text makes them retrievable by what they describe.
	if capRaw, ok := fields["caption"]; ok {
		var caption string
		if err := json.Unmarshal(capRaw, &caption); err == nil && strings.TrimSpace(caption) != "" {
			caption = strings.TrimSpace(caption)
			if passage.Title == "" {
				passage.Title = caption
			}
			passage.Text = caption + "\n" + passage.Text
		}
	}

	if urlRaw, ok := fields["url"]; ok {
		var url string
		if err := json.Unmarshal(urlRaw, &url); err == nil {
			passage.URL = url
		}
	}

	return passage, false, nil
}
