package tabgroup

import (
	"github.com/hupe1980/tabgroup/internal/math32"
)

// centroidOf computes the component-wise mean of a group's member vectors.
// Returns nil for a group with no members.
func centroidOf(g *clusterGroup, vecs [][]float32) []float32 {
	members := make([][]float32, 0, g.members.Cardinality())
	for i := range g.members.All() {
		members = append(members, vecs[i])
	}
	return math32.Mean(members)
}
