package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDot(t *testing.T) {
	assert.InDelta(t, 11.0, Dot([]float32{1, 2, 3}, []float32{3, 1, 2}), 1e-6)
	assert.InDelta(t, 0.0, Dot([]float32{1, 0}, []float32{0, 1}), 1e-6)
}

func TestSquaredL2(t *testing.T) {
	assert.InDelta(t, 0.0, SquaredL2([]float32{1, 2}, []float32{1, 2}), 1e-6)
	assert.InDelta(t, 8.0, SquaredL2([]float32{0, 0}, []float32{2, 2}), 1e-6)
}

func TestNorm(t *testing.T) {
	assert.InDelta(t, 5.0, Norm([]float32{3, 4}), 1e-6)
	assert.InDelta(t, 0.0, Norm([]float32{0, 0}), 1e-6)
}

func TestMean(t *testing.T) {
	mean := Mean([][]float32{
		{1, 2},
		{3, 4},
	})
	require.Len(t, mean, 2)
	assert.InDelta(t, 2.0, mean[0], 1e-6)
	assert.InDelta(t, 3.0, mean[1], 1e-6)

	assert.Nil(t, Mean(nil))
}

func TestScaleInPlace(t *testing.T) {
	v := []float32{2, 4}
	ScaleInPlace(v, 0.5)
	assert.Equal(t, []float32{1, 2}, v)
}
