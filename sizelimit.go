package tabgroup

import (
	"context"
	"strconv"

	"github.com/hupe1980/tabgroup/internal/bitmap"
	"github.com/hupe1980/tabgroup/internal/kmeans"
	"github.com/hupe1980/tabgroup/model"
)

// clusterGroup is a cluster under construction: identity and provenance plus
// the set of vector indices it owns. Tab ids and centroids are resolved only
// once membership is final.
type clusterGroup struct {
	id      string
	name    string
	meta    map[string]string
	members *bitmap.IndexSet
}

func (g *clusterGroup) indices() []int {
	out := make([]int, 0, g.members.Cardinality())
	for i := range g.members.All() {
		out = append(out, i)
	}
	return out
}

// enforceSizeLimit splits every cluster larger than maxSize into
// ceil(size/maxSize) sub-groups, re-queueing the results until all clusters
// fit. Fragments smaller than minSize are dropped; their members become
// unclustered. If a split fails or produces no viable fragment, the
// oversized cluster is kept whole rather than losing all its members.
func (p *Pipeline) enforceSizeLimit(ctx context.Context, session *session, groups []*clusterGroup, vecs [][]float32) []*clusterGroup {
	kopts := kmeans.Options{Seed: p.opts.seed, Restarts: p.opts.restarts}

	var out []*clusterGroup

	queue := append([]*clusterGroup(nil), groups...)
	for len(queue) > 0 {
		g := queue[0]
		queue = queue[1:]

		size := g.members.Cardinality()
		if size <= p.opts.maxClusterSize {
			out = append(out, g)
			continue
		}

		idx := g.indices()
		sub := make([][]float32, len(idx))
		for i, v := range idx {
			sub[i] = vecs[v]
		}

		k := (size + p.opts.maxClusterSize - 1) / p.opts.maxClusterSize
		if k < 2 {
			k = 2
		}

		result, err := kmeans.Partition(sub, k, kopts)
		if err != nil {
			p.opts.logger.LogSplit(ctx, g.id, size, 0, 0, err)
			p.opts.metricsCollector.RecordSplit(0, 0)
			out = append(out, g)
			continue
		}

		fragments := make([]*bitmap.IndexSet, k)
		for i := range fragments {
			fragments[i] = bitmap.New()
		}
		for i, label := range result.Assignments {
			fragments[label].Add(idx[i])
		}

		kept := 0
		dropped := 0
		var produced []*clusterGroup
		for _, frag := range fragments {
			if frag.IsEmpty() {
				continue
			}
			n := frag.Cardinality()
			if n < p.opts.minClusterSize {
				dropped += n
				continue
			}
			id, name := session.nextCluster()
			produced = append(produced, &clusterGroup{
				id:   id,
				name: name,
				meta: map[string]string{
					model.MetaParentCluster: g.id,
					model.MetaSplitMethod:   "kmeans",
					model.MetaCandidateK:    strconv.Itoa(k),
				},
				members: frag,
			})
			kept += n
		}

		// A split that produced nothing viable, or a single fragment
		// identical to its parent, cannot make progress: keep the
		// oversized cluster whole rather than losing its members.
		if len(produced) == 0 || (len(produced) == 1 && kept == size) {
			p.opts.logger.LogSplit(ctx, g.id, size, 0, 0, nil)
			p.opts.metricsCollector.RecordSplit(0, 0)
			out = append(out, g)
			continue
		}

		p.opts.logger.LogSplit(ctx, g.id, size, len(produced), dropped, nil)
		p.opts.metricsCollector.RecordSplit(len(produced), dropped)

		// Fragments can still exceed the limit when the split is skewed.
		queue = append(queue, produced...)
	}

	return out
}
