package hdbscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blob(cx, cy float32) [][]float32 {
	return [][]float32{
		{cx, cy},
		{cx + 0.01, cy},
		{cx, cy + 0.01},
		{cx + 0.01, cy + 0.01},
	}
}

func TestClusterTwoBlobs(t *testing.T) {
	vecs := append(blob(0, 0), blob(5, 5)...)

	labels, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1})
	require.NoError(t, err)
	require.Len(t, labels, len(vecs))

	// One label per blob, no noise.
	for i := 1; i < 4; i++ {
		assert.Equal(t, labels[0], labels[i])
	}
	for i := 5; i < 8; i++ {
		assert.Equal(t, labels[4], labels[i])
	}
	assert.NotEqual(t, labels[0], labels[4])
	assert.NotContains(t, labels, Noise)
}

func TestClusterOutlierIsNoise(t *testing.T) {
	vecs := append(blob(0, 0), blob(5, 5)...)
	vecs = append(vecs, []float32{40, 40})

	labels, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1})
	require.NoError(t, err)

	assert.Equal(t, Noise, labels[len(labels)-1])
	assert.NotEqual(t, Noise, labels[0])
	assert.NotEqual(t, Noise, labels[4])
}

func TestClusterOrthogonalIsAllNoise(t *testing.T) {
	// Mutually equidistant points have no density structure: the hierarchy
	// sheds them one by one and selects nothing.
	dim := 8
	vecs := make([][]float32, dim)
	for i := range vecs {
		vecs[i] = make([]float32, dim)
		vecs[i][i] = 1
	}

	labels, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1})
	require.NoError(t, err)

	for _, l := range labels {
		assert.Equal(t, Noise, l)
	}
}

func TestClusterSelectionEpsilonMergesCloseClusters(t *testing.T) {
	// Two sub-blobs 0.3 apart plus one distant blob.
	vecs := append(blob(0, 0), blob(0.3, 0)...)
	vecs = append(vecs, blob(10, 10)...)

	t.Run("SmallEpsilonKeepsSubClusters", func(t *testing.T) {
		labels, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1, SelectionEpsilon: 0.05})
		require.NoError(t, err)
		assert.Equal(t, 3, numClusters(labels))
		assert.NotEqual(t, labels[0], labels[4])
	})

	t.Run("LargeEpsilonMergesSubClusters", func(t *testing.T) {
		labels, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1, SelectionEpsilon: 0.5})
		require.NoError(t, err)
		assert.Equal(t, 2, numClusters(labels))
		assert.Equal(t, labels[0], labels[4])
		assert.NotEqual(t, labels[0], labels[8])
	})
}

func TestClusterDuplicateVectors(t *testing.T) {
	// Identical vectors must not blow up the lambda scale.
	vecs := [][]float32{
		{1, 1}, {1, 1}, {1, 1}, {1, 1},
		{9, 9}, {9, 9}, {9, 9}, {9, 9},
	}

	labels, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, numClusters(labels))
}

func TestClusterDeterministic(t *testing.T) {
	vecs := append(blob(0, 0), blob(3, 3)...)
	vecs = append(vecs, blob(6, 0)...)

	a, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1, SelectionEpsilon: 0.05})
	require.NoError(t, err)
	b, err := Cluster(vecs, Options{MinClusterSize: 2, MinSamples: 1, SelectionEpsilon: 0.05})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestClusterEdgeCases(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		labels, err := Cluster(nil, Options{})
		require.NoError(t, err)
		assert.Nil(t, labels)
	})

	t.Run("SinglePoint", func(t *testing.T) {
		labels, err := Cluster([][]float32{{1, 2}}, Options{})
		require.NoError(t, err)
		assert.Equal(t, []int{Noise}, labels)
	})

	t.Run("TwoPointsNeverCluster", func(t *testing.T) {
		labels, err := Cluster([][]float32{{0, 0}, {0, 0.001}}, Options{})
		require.NoError(t, err)
		assert.Equal(t, []int{Noise, Noise}, labels)
	})

	t.Run("DimensionMismatch", func(t *testing.T) {
		_, err := Cluster([][]float32{{1, 2}, {1, 2, 3}}, Options{})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("MinSamplesClamped", func(t *testing.T) {
		labels, err := Cluster(append(blob(0, 0), blob(4, 4)...), Options{MinClusterSize: 2, MinSamples: 100})
		require.NoError(t, err)
		assert.Len(t, labels, 8)
	})
}

func numClusters(labels []int) int {
	seen := make(map[int]bool)
	for _, l := range labels {
		if l != Noise {
			seen[l] = true
		}
	}
	return len(seen)
}
