package tabgroup

import (
	"github.com/hupe1980/tabgroup/distance"
)

// reassignNoise relabels noise vectors whose best cosine similarity to a
// clustered vector strictly exceeds threshold, adopting that vector's label.
// The pass is local and non-iterative: the clustered set is snapshotted up
// front, so reassigned points never become targets themselves. Ties resolve
// to the first clustered index encountered.
//
// labels is modified in place; the number of reassigned points is returned.
func reassignNoise(vecs [][]float32, labels []int, threshold float32) int {
	var clustered []int
	for i, label := range labels {
		if label != Noise {
			clustered = append(clustered, i)
		}
	}
	if len(clustered) == 0 || len(clustered) == len(labels) {
		return 0
	}

	moved := 0
	for i, label := range labels {
		if label != Noise {
			continue
		}

		best := Noise
		var bestSim float32
		for _, j := range clustered {
			if sim := distance.CosineSimilarity(vecs[i], vecs[j]); best == Noise || sim > bestSim {
				best = labels[j]
				bestSim = sim
			}
		}

		if bestSim > threshold {
			labels[i] = best
			moved++
		}
	}

	return moved
}
