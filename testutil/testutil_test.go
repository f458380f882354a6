package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/tabgroup/distance"
)

func TestUniformVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UniformVectors(8, 32)

	assert.Equal(t, 8, len(v))
	assert.Equal(t, 32, len(v[0]))
	assert.LessOrEqual(t, v[0][0], float32(1.0))
	assert.GreaterOrEqual(t, v[1][0], float32(0.0))
}

func TestUnitVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.UnitVectors(8, 32)

	assert.Equal(t, 8, len(v))
	for _, vec := range v {
		assert.InDelta(t, 1.0, float64(distance.Dot(vec, vec)), 1e-4)
	}
}

func TestTightVectors(t *testing.T) {
	rng := NewRNG(4711)

	v := rng.TightVectors(12, 16, 0.95)

	for i := range v {
		for j := i + 1; j < len(v); j++ {
			assert.Greater(t, distance.CosineSimilarity(v[i], v[j]), float32(0.95))
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(99)

	a := rng.UniformVectors(4, 8)
	rng.Reset()
	b := rng.UniformVectors(4, 8)

	assert.Equal(t, a, b)
}

func TestEmbeddings(t *testing.T) {
	vecs := OrthogonalVectors(3)
	embeddings := Embeddings(vecs)
	tabs := Tabs(3)

	assert.Len(t, embeddings, 3)
	for i := range embeddings {
		assert.Equal(t, tabs[i].ID, embeddings[i].TabID)
		assert.Equal(t, vecs[i], embeddings[i].Vector)
	}
}
