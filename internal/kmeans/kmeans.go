package kmeans

import (
	"errors"
	"math"
	"math/rand"

	"github.com/hupe1980/tabgroup/internal/math32"
	"golang.org/x/sync/errgroup"
)

// Defaults for partitional clustering. Restarts and iteration counts follow
// the usual n_init/max_iter conventions for Lloyd's algorithm.
const (
	DefaultRestarts = 10
	DefaultMaxIter  = 100
)

var (
	// ErrInvalidK is returned when k is not positive or exceeds the number
	// of vectors.
	ErrInvalidK = errors.New("k must be in [1, len(vectors)]")

	// ErrNoVectors is returned when the input is empty.
	ErrNoVectors = errors.New("no vectors to partition")
)

// Result holds the outcome of one k-means run.
type Result struct {
	// Assignments maps each input vector index to a group in [0, k).
	Assignments []int
	// Centroids holds the k group centroids.
	Centroids [][]float32
	// Inertia is the total within-group squared L2 distance.
	Inertia float32
}

// Options configures Partition.
type Options struct {
	// Seed is the base seed for centroid initialization. Restart i derives
	// its own seed as Seed+i, so results are reproducible regardless of
	// scheduling.
	Seed int64
	// Restarts is the number of independent runs; the one with the lowest
	// inertia wins. Defaults to DefaultRestarts.
	Restarts int
	// MaxIter bounds Lloyd iterations per run. Defaults to DefaultMaxIter.
	MaxIter int
}

// Partition groups vecs into k clusters by iterative relocation, running
// multiple seeded restarts concurrently and keeping the best objective.
// Ties on inertia resolve to the lowest restart index, keeping the reduction
// deterministic.
func Partition(vecs [][]float32, k int, opts Options) (*Result, error) {
	if len(vecs) == 0 {
		return nil, ErrNoVectors
	}
	if k < 1 || k > len(vecs) {
		return nil, ErrInvalidK
	}

	restarts := opts.Restarts
	if restarts <= 0 {
		restarts = DefaultRestarts
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = DefaultMaxIter
	}

	results := make([]*Result, restarts)

	var g errgroup.Group
	for i := range restarts {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(opts.Seed + int64(i)))
			results[i] = lloyd(vecs, k, maxIter, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Inertia < best.Inertia {
			best = r
		}
	}

	return best, nil
}

// lloyd performs one seeded k-means run with k-means++ initialization.
func lloyd(vecs [][]float32, k, maxIter int, rng *rand.Rand) *Result {
	n := len(vecs)
	dim := len(vecs[0])

	centroids := seedPlusPlus(vecs, k, rng)

	assignments := make([]int, n)
	counts := make([]int, k)
	sums := make([]float32, k*dim)

	for range maxIter {
		changed := false

		// Assignment step
		for i, vec := range vecs {
			best := nearestCentroid(vec, centroids)
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update step
		for i := range sums {
			sums[i] = 0
		}
		for i := range counts {
			counts[i] = 0
		}
		for i, vec := range vecs {
			c := assignments[i]
			math32.AddInPlace(sums[c*dim:(c+1)*dim], vec)
			counts[c]++
		}

		for j := range k {
			if counts[j] > 0 {
				scale := 1 / float32(counts[j])
				for d := range dim {
					centroids[j][d] = sums[j*dim+d] * scale
				}
			} else {
				// Re-seed empty cluster with a random point.
				copy(centroids[j], vecs[rng.Intn(n)])
			}
		}
	}

	var inertia float32
	for i, vec := range vecs {
		inertia += math32.SquaredL2(vec, centroids[assignments[i]])
	}

	return &Result{
		Assignments: assignments,
		Centroids:   centroids,
		Inertia:     inertia,
	}
}

// seedPlusPlus chooses k initial centroids with k-means++ sampling:
// each new centroid is drawn proportional to squared distance from the
// nearest already-chosen one.
func seedPlusPlus(vecs [][]float32, k int, rng *rand.Rand) [][]float32 {
	n := len(vecs)
	dim := len(vecs[0])

	data := make([]float32, k*dim)
	centroids := make([][]float32, k)
	for i := range centroids {
		centroids[i] = data[i*dim : (i+1)*dim]
	}

	copy(centroids[0], vecs[rng.Intn(n)])

	// minDistSq tracks each vector's squared distance to its nearest chosen
	// centroid.
	minDistSq := make([]float32, n)
	var sum float32
	for i, vec := range vecs {
		d := math32.SquaredL2(vec, centroids[0])
		minDistSq[i] = d
		sum += d
	}

	for c := 1; c < k; c++ {
		if sum == 0 {
			copy(centroids[c], vecs[rng.Intn(n)])
			continue
		}

		target := rng.Float32() * sum
		var cumsum float32
		chosen := 0
		for i, d := range minDistSq {
			cumsum += d
			if cumsum >= target {
				chosen = i
				break
			}
		}
		copy(centroids[c], vecs[chosen])

		sum = 0
		for i, vec := range vecs {
			d := math32.SquaredL2(vec, centroids[c])
			if d < minDistSq[i] {
				minDistSq[i] = d
			}
			sum += minDistSq[i]
		}
	}

	return centroids
}

// nearestCentroid finds the index of the nearest centroid to a vector.
func nearestCentroid(vec []float32, centroids [][]float32) int {
	minDist := float32(math.MaxFloat32)
	nearest := 0

	for i, centroid := range centroids {
		dist := math32.SquaredL2(vec, centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}
