package tfidf

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var corpus = []string{
	"JetMoE-8B uses 8 GPUs for pretraining.",
	"The model requires 1000 GPU hours.",
	"Training data was filtered before use.",
}

func TestPrepareCorpus(t *testing.T) {
	t.Run("builds vocabulary", func(t *testing.T) {
		e := NewEmbedder()
		require.NoError(t, e.PrepareCorpus(corpus))
		assert.Greater(t, e.Dimension(), 0)
	})

	t.Run("empty corpus", func(t *testing.T) {
		e := NewEmbedder()
		assert.Error(t, e.PrepareCorpus(nil))
	})

	t.Run("stop-word-only corpus", func(t *testing.T) {
		e := NewEmbedder()
		assert.Error(t, e.PrepareCorpus([]string{"the of and", "a an"}))
	})

	t.Run("same corpus yields same dimension", func(t *testing.T) {
		a, b := NewEmbedder(), NewEmbedder()
		require.NoError(t, a.PrepareCorpus(corpus))
		require.NoError(t, b.PrepareCorpus(corpus))
		assert.Equal(t, a.Dimension(), b.Dimension())
	})
}

func TestEmbedText(t *testing.T) {
	ctx := context.Background()
	e := NewEmbedder()
	require.NoError(t, e.PrepareCorpus(corpus))

	t.Run("unprepared embedder fails", func(t *testing.T) {
		_, err := NewEmbedder().EmbedText(ctx, "anything")
		assert.Error(t, err)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := e.EmbedText(ctx, "GPU hours for pretraining")
		require.NoError(t, err)
		b, err := e.EmbedText(ctx, "GPU hours for pretraining")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("unit length", func(t *testing.T) {
		vec, err := e.EmbedText(ctx, "model training hours")
		require.NoError(t, err)
		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		assert.InDelta(t, 1.0, norm, 1e-5)
	})

	t.Run("out-of-vocabulary text embeds to zero vector", func(t *testing.T) {
		vec, err := e.EmbedText(ctx, "zebra xylophone")
		require.NoError(t, err)
		for _, v := range vec {
			assert.Zero(t, v)
		}
	})

	t.Run("fixed dimension", func(t *testing.T) {
		vec, err := e.EmbedText(ctx, "model")
		require.NoError(t, err)
		assert.Len(t, vec, e.Dimension())
	})
}

func TestEmbedTexts(t *testing.T) {
	ctx := context.Background()
	e := NewEmbedder()
	require.NoError(t, e.PrepareCorpus(corpus))

	vectors, err := e.EmbedTexts(ctx, []string{"GPU hours", "training data"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)

	single, err := e.EmbedText(ctx, "GPU hours")
	require.NoError(t, err)
	assert.Equal(t, single, vectors[0])
}
