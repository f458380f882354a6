package tabgroup

import (
	"github.com/hupe1980/tabgroup/internal/kmeans"
)

// fallbackPartition recovers from a density pass that found nothing. It
// tries each candidate group count in order, partitioning the full vector
// set and keeping only groups with at least two members. The first candidate
// that yields a valid group wins.
//
// Returns the new labels (Noise for members of rejected groups) and the
// accepted candidate count. k == 0 means every candidate failed; the caller
// reports an empty result rather than an error.
func fallbackPartition(vecs [][]float32, candidates []int, opts kmeans.Options) (labels []int, k int) {
	for _, candidate := range candidates {
		if candidate > len(vecs) {
			continue
		}

		strategy := centroidStrategy{k: candidate, opts: opts}
		assignments, err := strategy.Partition(vecs)
		if err != nil {
			continue
		}

		counts := make([]int, candidate)
		for _, label := range assignments {
			counts[label]++
		}

		labels = make([]int, len(assignments))
		valid := 0
		for i, label := range assignments {
			if counts[label] >= 2 {
				labels[i] = label
			} else {
				labels[i] = Noise
			}
		}
		for _, c := range counts {
			if c >= 2 {
				valid++
			}
		}

		if valid > 0 {
			return labels, candidate
		}
	}

	return nil, 0
}
