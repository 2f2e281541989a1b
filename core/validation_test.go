package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassage(t *testing.T) {
	t.Run("valid passage", func(t *testing.T) {
		err := ValidatePassage(&Passage{Id: 0, Text: "JetMoE-8B uses 8 GPUs for pretraining."})
		assert.NoError(t, err)
	})

	t.Run("nil passage", func(t *testing.T) {
		err := ValidatePassage(nil)
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("empty text", func(t *testing.T) {
		err := ValidatePassage(&Passage{Id: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFormat)
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("whitespace only text", func(t *testing.T) {
		err := ValidatePassage(&Passage{Id: 1, Text: "  \n\t "})
		assert.ErrorIs(t, err, ErrEmptyText)
	})
}

func TestValidateCorpus(t *testing.T) {
	t.Run("valid corpus", func(t *testing.T) {
		corpus := Corpus{
			{Id: 0, Text: "first"},
			{Id: 1, Text: "second"},
		}
		assert.NoError(t, ValidateCorpus(corpus))
	})

	t.Run("empty corpus is valid", func(t *testing.T) {
		assert.NoError(t, ValidateCorpus(Corpus{}))
	})

	t.Run("duplicate IDs", func(t *testing.T) {
		corpus := Corpus{
			{Id: 3, Text: "first"},
			{Id: 3, Text: "second"},
		}
		assert.ErrorIs(t, ValidateCorpus(corpus), ErrDuplicateKey)
	})

	t.Run("invalid passage reported with position", func(t *testing.T) {
		corpus := Corpus{
			{Id: 0, Text: "fine"},
			{Id: 1, Text: ""},
		}
		err := ValidateCorpus(corpus)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "passage 1")
	})
}

func TestValidateLimit(t *testing.T) {
	assert.NoError(t, ValidateLimit(1))
	assert.NoError(t, ValidateLimit(100))
	assert.ErrorIs(t, ValidateLimit(0), ErrInvalidArgument)
	assert.ErrorIs(t, ValidateLimit(-5), ErrInvalidArgument)
}
