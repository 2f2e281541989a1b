package docstore

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertJSONL(t *testing.T) {
	t.Run("converts lines to array", func(t *testing.T) {
		in := strings.NewReader(
			`{"doc_id": 0, "content": "first passage"}` + "\n" +
				`{"doc_id": 1, "content": "second passage"}` + "\n")
		var out bytes.Buffer
		require.NoError(t, ConvertJSONL(in, &out))

		var records []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "first passage", records[0]["content"])
	})

	t.Run("flattens list content", func(t *testing.T) {
		in := strings.NewReader(`{"content": ["part one", "part two"]}` + "\n")
		var out bytes.Buffer
		require.NoError(t, ConvertJSONL(in, &out))

		var records []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &records))
		assert.Equal(t, "part one part two", records[0]["content"])
	})

	t.Run("blank content becomes null", func(t *testing.T) {
		in := strings.NewReader(`{"content": "   "}` + "\n")
		var out bytes.Buffer
		require.NoError(t, ConvertJSONL(in, &out))

		var records []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Nil(t, records[0]["content"])
	})

	t.Run("scalar content coerced to string", func(t *testing.T) {
		in := strings.NewReader(`{"content": 42}` + "\n")
		var out bytes.Buffer
		require.NoError(t, ConvertJSONL(in, &out))

		var records []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &records))
		assert.Equal(t, "42", records[0]["content"])
	})

	t.Run("invalid lines skipped", func(t *testing.T) {
		in := strings.NewReader(
			`{"content": "good"}` + "\n" +
				`{broken` + "\n" +
				`{"content": "also good"}` + "\n")
		var out bytes.Buffer
		require.NoError(t, ConvertJSONL(in, &out))

		var records []map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &records))
		assert.Len(t, records, 2)
	})

	t.Run("converted output loads", func(t *testing.T) {
		in := strings.NewReader(
			`{"content": ["GPU", "hours"]}` + "\n" +
				`{"content": null}` + "\n")
		var out bytes.Buffer
		require.NoError(t, ConvertJSONL(in, &out))

		path := writeCorpus(t, out.String())
		corpus, err := Load(path)
		require.NoError(t, err)
		require.Len(t, corpus, 1)
		assert.Equal(t, "GPU hours", corpus[0].Text)
	})
}
