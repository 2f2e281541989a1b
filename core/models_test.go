package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		id1 := IDFromContent("the model requires 1000 GPU hours")
		id2 := IDFromContent("the model requires 1000 GPU hours")
		assert.Equal(t, id1, id2)
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		id1 := IDFromContent("first passage")
		id2 := IDFromContent("second passage")
		assert.NotEqual(t, id1, id2)
	})

	t.Run("empty content is valid input", func(t *testing.T) {
		id := IDFromContent("")
		assert.NotZero(t, id)
	})
}

func TestCorpusGet(t *testing.T) {
	corpus := Corpus{
		{Id: 0, Text: "first"},
		{Id: 7, Text: "second"},
	}

	t.Run("existing passage", func(t *testing.T) {
		p := corpus.Get(7)
		assert.NotNil(t, p)
		assert.Equal(t, "second", p.Text)
	})

	t.Run("missing passage", func(t *testing.T) {
		assert.Nil(t, corpus.Get(42))
	})

	t.Run("empty corpus", func(t *testing.T) {
		assert.Nil(t, Corpus{}.Get(0))
	})
}

func TestCorpusTexts(t *testing.T) {
	corpus := Corpus{
		{Id: 0, Text: "alpha"},
		{Id: 1, Text: "beta"},
	}
	assert.Equal(t, []string{"alpha", "beta"}, corpus.Texts())
	assert.Empty(t, Corpus{}.Texts())
}
