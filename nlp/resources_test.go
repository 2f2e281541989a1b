package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	res, err := Load()
	require.NoError(t, err)
	assert.NotNil(t, res)
}

func TestNouns(t *testing.T) {
	res, err := Load()
	require.NoError(t, err)

	t.Run("extracts nouns lowercased", func(t *testing.T) {
		counts, err := res.Nouns("The cat sat on the mat.")
		require.NoError(t, err)
		assert.Contains(t, counts, "cat")
		assert.Contains(t, counts, "mat")
		assert.NotContains(t, counts, "sat")
		assert.NotContains(t, counts, "the")
	})

	t.Run("counts repeated nouns", func(t *testing.T) {
		counts, err := res.Nouns("The farmer thanked the farmer.")
		require.NoError(t, err)
		assert.Equal(t, 2, counts["farmer"])
	})

	t.Run("empty input", func(t *testing.T) {
		counts, err := res.Nouns("   ")
		require.NoError(t, err)
		assert.Empty(t, counts)
	})

	t.Run("deterministic", func(t *testing.T) {
		a, err := res.Nouns("The model requires 1000 GPU hours.")
		require.NoError(t, err)
		b, err := res.Nouns("The model requires 1000 GPU hours.")
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestNounSet(t *testing.T) {
	res, err := Load()
	require.NoError(t, err)

	set, err := res.NounSet("The farmer thanked the farmer.")
	require.NoError(t, err)
	assert.True(t, set["farmer"])
	assert.False(t, set["thanked"])
}
