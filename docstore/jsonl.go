package docstore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// maxLineSize bounds a single JSONL record; passages are short by nature.
const maxLineSize = 4 * 1024 * 1024

// ConvertJSONL converts a JSONL stream into the JSON array format Load
// expects. List-valued content fields are flattened into a single string and
// blank content becomes null so the loader can recognize and skip it.
// Invalid lines are logged and dropped rather than failing the conversion.
func ConvertJSONL(r io.Reader, w io.Writer, opts ...Option) error {
	l := &loader{logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []map[string]any
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var record map[string]any
		if err := json.Unmarshal([]byte(text), &record); err != nil {
			l.logger.Warn("skipping invalid JSONL line", "line", line, "err", err)
			continue
		}

		if content, ok := record["content"]; ok {
			record["content"] = flattenContent(content)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading JSONL input: %w", err)
	}

	out, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding corpus JSON: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("writing corpus JSON: %w", err)
	}

	l.logger.Info("converted JSONL records", "records", len(records))
	return nil
}

// flattenContent joins list-valued content into one string and coerces
// scalars to strings. Blank content maps to nil.
func flattenContent(content any) any {
	var text string
	switch v := content.(type) {
	case string:
		text = v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		text = strings.Join(parts, " ")
	case nil:
		return nil
	default:
		text = fmt.Sprint(v)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	return text
}
