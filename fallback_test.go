package tabgroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgroup/internal/kmeans"
)

func TestFallbackPartition(t *testing.T) {
	kopts := kmeans.Options{Seed: 42}

	t.Run("TwoGroups", func(t *testing.T) {
		vecs := [][]float32{
			{1, 0}, {0.99, 0.01}, {0.98, 0.02},
			{0, 1}, {0.01, 0.99}, {0.02, 0.98},
		}

		labels, k := fallbackPartition(vecs, []int{2, 3, 4, 5}, kopts)

		require.Equal(t, 2, k)
		require.Len(t, labels, 6)
		assert.Equal(t, labels[0], labels[1])
		assert.Equal(t, labels[0], labels[2])
		assert.Equal(t, labels[3], labels[4])
		assert.Equal(t, labels[3], labels[5])
		assert.NotEqual(t, labels[0], labels[3])
	})

	t.Run("SingletonGroupsBecomeNoise", func(t *testing.T) {
		// Three points cannot split 2-and-2; with k=2 one group is a
		// singleton and its member is left unclustered.
		vecs := [][]float32{
			{1, 0}, {0.99, 0.01},
			{0, 1},
		}

		labels, k := fallbackPartition(vecs, []int{2}, kopts)

		require.Equal(t, 2, k)
		noise := 0
		for _, l := range labels {
			if l == Noise {
				noise++
			}
		}
		assert.Equal(t, 1, noise)
	})

	t.Run("CandidatesLargerThanInputSkipped", func(t *testing.T) {
		vecs := [][]float32{
			{1, 0}, {0.99, 0.01},
			{0, 1}, {0.01, 0.99},
		}

		labels, k := fallbackPartition(vecs, []int{5, 2}, kopts)

		assert.Equal(t, 2, k)
		assert.Len(t, labels, 4)
	})

	t.Run("AllCandidatesFail", func(t *testing.T) {
		vecs := [][]float32{{1, 0}}

		labels, k := fallbackPartition(vecs, []int{2, 3, 4, 5}, kopts)

		assert.Equal(t, 0, k)
		assert.Nil(t, labels)
	})
}
