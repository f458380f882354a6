package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeL2Copy(t *testing.T) {
	t.Run("UnitNorm", func(t *testing.T) {
		v, ok := NormalizeL2Copy([]float32{3, 4})
		require.True(t, ok)
		assert.InDelta(t, 0.6, v[0], 1e-6)
		assert.InDelta(t, 0.8, v[1], 1e-6)
	})

	t.Run("ZeroNorm", func(t *testing.T) {
		_, ok := NormalizeL2Copy([]float32{0, 0, 0})
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := NormalizeL2Copy(nil)
		assert.False(t, ok)
	})

	t.Run("DoesNotMutateSource", func(t *testing.T) {
		src := []float32{3, 4}
		_, ok := NormalizeL2Copy(src)
		require.True(t, ok)
		assert.Equal(t, []float32{3, 4}, src)
	})
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, CosineSimilarity([]float32{1, 0}, []float32{2, 0}), 1e-6)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-6)
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 0}, []float32{-1, 0}), 1e-6)
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}), 1e-6)
}

func TestEuclideanMonotonicWithCosine(t *testing.T) {
	// On normalized vectors, smaller L2 distance must mean larger cosine
	// similarity.
	a, _ := NormalizeL2Copy([]float32{1, 0.1})
	b, _ := NormalizeL2Copy([]float32{1, 0.2})
	c, _ := NormalizeL2Copy([]float32{0.1, 1})

	require.Less(t, SquaredL2(a, b), SquaredL2(a, c))
	require.Greater(t, CosineSimilarity(a, b), CosineSimilarity(a, c))
}
