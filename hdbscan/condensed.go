package hdbscan

// Density hierarchies use lambda = 1/distance; distances are floored so
// duplicate vectors (distance 0) keep lambdas finite.
const minLambdaDist = 1e-8

func toLambda(dist float64) float64 {
	if dist < minLambdaDist {
		dist = minLambdaDist
	}
	return 1 / dist
}

// condensedTree is the hierarchy of candidate clusters left after pruning
// every dendrogram split whose side holds fewer than minClusterSize points.
// Cluster 0 is the root (all points); child ids are always greater than
// their parent's.
type condensedTree struct {
	n int

	parent        []int     // cluster -> parent cluster (root: -1)
	birthLambda   []float64 // cluster -> lambda at which it appeared
	childClusters [][]int   // cluster -> child clusters
	size          []int     // cluster -> points at birth

	pointCluster []int     // point -> cluster it fell out of
	pointLambda  []float64 // point -> lambda at which it fell out
}

// condense walks the dendrogram top-down. At each split, sides smaller than
// minClusterSize fall out of the current cluster as points; if both sides
// qualify, two child clusters are born; if only one qualifies it continues
// as the same cluster.
func condense(t *linkageTree, minClusterSize int) *condensedTree {
	ct := &condensedTree{
		n:             t.n,
		parent:        []int{-1},
		birthLambda:   []float64{0},
		childClusters: [][]int{nil},
		size:          []int{t.n},
		pointCluster:  make([]int, t.n),
		pointLambda:   make([]float64, t.n),
	}

	var scratch []int

	fallOut := func(node, cluster int, lambda float64) {
		scratch = t.leaves(node, scratch[:0])
		for _, p := range scratch {
			ct.pointCluster[p] = cluster
			ct.pointLambda[p] = lambda
		}
	}

	newCluster := func(parent int, lambda float64, size int) int {
		id := len(ct.parent)
		ct.parent = append(ct.parent, parent)
		ct.birthLambda = append(ct.birthLambda, lambda)
		ct.childClusters = append(ct.childClusters, nil)
		ct.size = append(ct.size, size)
		ct.childClusters[parent] = append(ct.childClusters[parent], id)
		return id
	}

	// Iterative pre-order walk so the left/right split of a node is handled
	// under the cluster the node currently belongs to.
	type frame struct {
		node, cluster int
	}
	stack := []frame{{node: t.root(), cluster: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.node(f.node)
		lambda := toLambda(node.dist)
		leftSize, rightSize := t.size(node.left), t.size(node.right)

		switch {
		case leftSize >= minClusterSize && rightSize >= minClusterSize:
			lc := newCluster(f.cluster, lambda, leftSize)
			rc := newCluster(f.cluster, lambda, rightSize)
			stack = append(stack, frame{node: node.left, cluster: lc})
			stack = append(stack, frame{node: node.right, cluster: rc})

		case leftSize < minClusterSize && rightSize < minClusterSize:
			fallOut(node.left, f.cluster, lambda)
			fallOut(node.right, f.cluster, lambda)

		case leftSize < minClusterSize:
			fallOut(node.left, f.cluster, lambda)
			stack = append(stack, frame{node: node.right, cluster: f.cluster})

		default:
			fallOut(node.right, f.cluster, lambda)
			stack = append(stack, frame{node: node.left, cluster: f.cluster})
		}
	}

	return ct
}

// stabilities computes per-cluster excess of mass: for every point and child
// cluster that left a cluster, the lambda span it spent inside, summed.
func (ct *condensedTree) stabilities() []float64 {
	stability := make([]float64, len(ct.parent))

	for p := range ct.n {
		c := ct.pointCluster[p]
		stability[c] += ct.pointLambda[p] - ct.birthLambda[c]
	}

	for c, children := range ct.childClusters {
		for _, cc := range children {
			stability[c] += (ct.birthLambda[cc] - ct.birthLambda[c]) * float64(ct.size[cc])
		}
	}

	return stability
}

// selectClusters picks the set of clusters maximizing aggregate stability
// (excess of mass), then applies the selection-epsilon merge. The root is
// never selectable.
func (ct *condensedTree) selectClusters(selectionEpsilon float64) []bool {
	numClusters := len(ct.parent)
	stability := ct.stabilities()

	selected := make([]bool, numClusters)
	value := make([]float64, numClusters)

	// Children always carry larger ids than parents, so a reverse scan is
	// bottom-up.
	for c := numClusters - 1; c >= 1; c-- {
		var childSum float64
		for _, cc := range ct.childClusters[c] {
			childSum += value[cc]
		}

		if len(ct.childClusters[c]) == 0 || stability[c] >= childSum {
			selected[c] = true
			value[c] = stability[c]
			for _, cc := range ct.childClusters[c] {
				ct.deselectSubtree(cc, selected)
			}
		} else {
			value[c] = childSum
		}
	}

	if selectionEpsilon > 0 {
		ct.mergeByEpsilon(selected, selectionEpsilon)
	}

	return selected
}

func (ct *condensedTree) deselectSubtree(c int, selected []bool) {
	selected[c] = false
	for _, cc := range ct.childClusters[c] {
		ct.deselectSubtree(cc, selected)
	}
}

// birthDistance is the distance scale at which a cluster appeared.
func (ct *condensedTree) birthDistance(c int) float64 {
	return 1 / ct.birthLambda[c]
}

// mergeByEpsilon replaces selected clusters born closer than epsilon with
// their nearest ancestor born at or beyond epsilon (stopping below the
// root), de-duplicating clusters that merge into the same ancestor.
func (ct *condensedTree) mergeByEpsilon(selected []bool, epsilon float64) {
	processed := make([]bool, len(ct.parent))

	for c := 1; c < len(ct.parent); c++ {
		if !selected[c] || processed[c] {
			continue
		}
		if ct.birthDistance(c) >= epsilon {
			continue
		}

		target := c
		for {
			parent := ct.parent[target]
			if parent == 0 {
				break
			}
			target = parent
			if ct.birthDistance(target) >= epsilon {
				break
			}
		}

		selected[c] = false
		ct.markSubtree(target, processed, selected)
		selected[target] = true
	}
}

func (ct *condensedTree) markSubtree(c int, processed, selected []bool) {
	processed[c] = true
	selected[c] = false
	for _, cc := range ct.childClusters[c] {
		ct.markSubtree(cc, processed, selected)
	}
}

// label assigns each point the nearest selected ancestor of the cluster it
// fell out of, or Noise. Selected clusters are renumbered 0..m-1 in
// hierarchy order, so labels are deterministic.
func (ct *condensedTree) label(selected []bool) []int {
	clusterLabel := make([]int, len(ct.parent))
	next := 0
	for c := range selected {
		if selected[c] {
			clusterLabel[c] = next
			next++
		}
	}

	labels := make([]int, ct.n)
	for p := range ct.n {
		labels[p] = Noise
		for c := ct.pointCluster[p]; c != -1; c = ct.parent[c] {
			if selected[c] {
				labels[p] = clusterLabel[c]
				break
			}
		}
	}

	return labels
}
