package hdbscan

import (
	"errors"
	"math"
	"sort"

	"github.com/hupe1980/tabgroup/internal/math32"
)

// Noise is the label for vectors that belong to no cluster.
const Noise = -1

// Defaults matching the pipeline's configuration surface.
const (
	DefaultMinClusterSize = 2
	DefaultMinSamples     = 1
)

// ErrDimensionMismatch is returned when input vectors differ in length.
var ErrDimensionMismatch = errors.New("hdbscan: vectors must share a dimensionality")

// Options configures a clustering pass.
type Options struct {
	// MinClusterSize is the smallest group of vectors treated as a cluster
	// candidate in the density hierarchy. Values below 2 are raised to 2,
	// since a singleton can never be a density cluster.
	MinClusterSize int

	// MinSamples is the neighbor count used for core distances; larger
	// values make the algorithm more conservative about density. Clamped
	// to len(vectors)-1.
	MinSamples int

	// SelectionEpsilon merges selected clusters born within this distance,
	// selecting their common ancestor in the condensed hierarchy instead.
	// Zero disables merging.
	SelectionEpsilon float64
}

func (o Options) withDefaults() Options {
	if o.MinClusterSize < DefaultMinClusterSize {
		o.MinClusterSize = DefaultMinClusterSize
	}
	if o.MinSamples < 1 {
		o.MinSamples = DefaultMinSamples
	}
	return o
}

// Cluster labels every vector with a cluster id in [0, numClusters) or
// Noise. Vectors are compared with Euclidean distance; callers clustering by
// cosine similarity should L2-normalize first.
func Cluster(vecs [][]float32, opts Options) ([]int, error) {
	opts = opts.withDefaults()

	n := len(vecs)
	if n == 0 {
		return nil, nil
	}

	dim := len(vecs[0])
	for _, v := range vecs {
		if len(v) != dim {
			return nil, ErrDimensionMismatch
		}
	}

	labels := make([]int, n)
	if n < opts.MinClusterSize {
		for i := range labels {
			labels[i] = Noise
		}
		return labels, nil
	}

	dists := pairwiseDistances(vecs)
	core := coreDistances(dists, min(opts.MinSamples, n-1))
	edges := primMST(dists, core)

	sort.Slice(edges, func(i, j int) bool { return edges[i].weight < edges[j].weight })

	linkage := singleLinkage(n, edges)
	tree := condense(linkage, opts.MinClusterSize)
	selected := tree.selectClusters(opts.SelectionEpsilon)

	return tree.label(selected), nil
}

// pairwiseDistances computes the full Euclidean distance matrix.
func pairwiseDistances(vecs [][]float32) [][]float64 {
	n := len(vecs)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := float64(math32.L2(vecs[i], vecs[j]))
			d[i][j] = dist
			d[j][i] = dist
		}
	}

	return d
}

// coreDistances returns, per vector, the distance to its k-th nearest
// other vector.
func coreDistances(dists [][]float64, k int) []float64 {
	n := len(dists)
	core := make([]float64, n)
	row := make([]float64, 0, n-1)

	for i := range dists {
		row = row[:0]
		for j := range dists {
			if j != i {
				row = append(row, dists[i][j])
			}
		}
		sort.Float64s(row)
		core[i] = row[k-1]
	}

	return core
}

type edge struct {
	a, b   int
	weight float64
}

// mutualReachability lifts a raw distance to the mutual-reachability scale.
func mutualReachability(dist, coreA, coreB float64) float64 {
	return math.Max(dist, math.Max(coreA, coreB))
}

// primMST builds a minimum spanning tree over the complete
// mutual-reachability graph in O(n^2).
func primMST(dists [][]float64, core []float64) []edge {
	n := len(dists)
	inTree := make([]bool, n)
	minWeight := make([]float64, n)
	minFrom := make([]int, n)
	for i := range minWeight {
		minWeight[i] = math.Inf(1)
	}

	edges := make([]edge, 0, n-1)
	current := 0
	inTree[0] = true

	for len(edges) < n-1 {
		next := -1
		for j := range n {
			if inTree[j] {
				continue
			}
			w := mutualReachability(dists[current][j], core[current], core[j])
			if w < minWeight[j] {
				minWeight[j] = w
				minFrom[j] = current
			}
			if next == -1 || minWeight[j] < minWeight[next] {
				next = j
			}
		}

		inTree[next] = true
		edges = append(edges, edge{a: minFrom[next], b: next, weight: minWeight[next]})
		current = next
	}

	return edges
}

// linkageNode is one merge in the single-linkage dendrogram. Nodes are
// numbered n..2n-2; ids below n are leaf points.
type linkageNode struct {
	left, right int
	dist        float64
	size        int
}

type linkageTree struct {
	n     int
	nodes []linkageNode
}

// root returns the id of the final merge.
func (t *linkageTree) root() int {
	return t.n + len(t.nodes) - 1
}

func (t *linkageTree) node(id int) linkageNode {
	return t.nodes[id-t.n]
}

func (t *linkageTree) size(id int) int {
	if id < t.n {
		return 1
	}
	return t.node(id).size
}

// leaves appends all leaf point ids under id to out.
func (t *linkageTree) leaves(id int, out []int) []int {
	if id < t.n {
		return append(out, id)
	}
	node := t.node(id)
	out = t.leaves(node.left, out)
	return t.leaves(node.right, out)
}

// singleLinkage builds the dendrogram from MST edges sorted by weight, using
// union-find over current merge roots.
func singleLinkage(n int, edges []edge) *linkageTree {
	tree := &linkageTree{
		n:     n,
		nodes: make([]linkageNode, 0, n-1),
	}

	// parent[i] points at the merge node that absorbed i, or -1 for roots.
	parent := make([]int, 2*n-1)
	for i := range parent {
		parent[i] = -1
	}

	find := func(x int) int {
		root := x
		for parent[root] != -1 {
			root = parent[root]
		}
		for parent[x] != -1 {
			parent[x], x = root, parent[x]
		}
		return root
	}

	next := n
	for _, e := range edges {
		ra, rb := find(e.a), find(e.b)
		tree.nodes = append(tree.nodes, linkageNode{
			left:  ra,
			right: rb,
			dist:  e.weight,
			size:  tree.size(ra) + tree.size(rb),
		})
		parent[ra] = next
		parent[rb] = next
		next++
	}

	return tree
}
