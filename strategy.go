package tabgroup

import (
	"math"

	"github.com/hupe1980/tabgroup/hdbscan"
	"github.com/hupe1980/tabgroup/internal/kmeans"
)

// Noise labels a vector that no clustering strategy could assign to a group.
const Noise = hdbscan.Noise

// Strategy partitions a vector set into labeled groups. Implementations
// return one label per vector: a group id in [0, numGroups) or Noise.
type Strategy interface {
	// Name identifies the strategy in cluster metadata.
	Name() string

	// Partition labels every vector.
	Partition(vecs [][]float32) ([]int, error)
}

// euclideanSlack converts a cosine-distance slack to the equivalent
// Euclidean radius on unit vectors, where 1 - cos(a, b) = d(a, b)^2 / 2.
// The pipeline configures its selection slack on the cosine scale, like the
// noise reassignment threshold; hdbscan measures plain Euclidean distance.
func euclideanSlack(cosineSlack float64) float64 {
	return math.Sqrt(2 * cosineSlack)
}

// densityStrategy groups vectors by density, leaving outliers as Noise.
type densityStrategy struct {
	opts hdbscan.Options
}

func (densityStrategy) Name() string { return "hdbscan" }

func (s densityStrategy) Partition(vecs [][]float32) ([]int, error) {
	return hdbscan.Cluster(vecs, s.opts)
}

// centroidStrategy partitions vectors into exactly k groups by iterative
// relocation. It never produces Noise labels.
type centroidStrategy struct {
	k    int
	opts kmeans.Options
}

func (centroidStrategy) Name() string { return "kmeans" }

func (s centroidStrategy) Partition(vecs [][]float32) ([]int, error) {
	result, err := kmeans.Partition(vecs, s.k, s.opts)
	if err != nil {
		return nil, err
	}
	return result.Assignments, nil
}
