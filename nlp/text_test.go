package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("lowercases and trims punctuation", func(t *testing.T) {
		tokens := Normalize("GPU hours, (pretraining)!")
		assert.Equal(t, []string{"gpu", "hours", "pretraining"}, tokens)
	})

	t.Run("removes stop words", func(t *testing.T) {
		tokens := Normalize("the model is trained on a cluster")
		assert.Equal(t, []string{"model", "trained", "cluster"}, tokens)
	})

	t.Run("stop-word-only input yields nothing", func(t *testing.T) {
		assert.Empty(t, Normalize("the of and"))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Normalize(""))
		assert.Empty(t, Normalize("   \n\t"))
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Normalize("How many GPUs were used?")
		b := Normalize("How many GPUs were used?")
		assert.Equal(t, a, b)
	})
}

func TestNormalizeSet(t *testing.T) {
	set := NormalizeSet("model model MODEL training")
	assert.Len(t, set, 2)
	assert.True(t, set["model"])
	assert.True(t, set["training"])
}

func TestIsStopWord(t *testing.T) {
	assert.True(t, IsStopWord("the"))
	assert.False(t, IsStopWord("gpu"))
}
