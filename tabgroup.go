package tabgroup

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hupe1980/tabgroup/hdbscan"
	"github.com/hupe1980/tabgroup/internal/bitmap"
	"github.com/hupe1980/tabgroup/internal/kmeans"
	"github.com/hupe1980/tabgroup/model"
)

// Pipeline clusters embedding vectors into bounded-size groups. A Pipeline
// is immutable after construction and safe for concurrent runs; all per-run
// state lives in the session created by each Run call.
type Pipeline struct {
	opts options
}

// New creates a Pipeline with the given options.
func New(optFns ...Option) *Pipeline {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Pipeline{opts: opts}
}

// Result holds the outcome of one clustering run.
type Result struct {
	// RunID identifies the run session that produced this result.
	RunID string

	// Clusters in the order they were produced. Empty when no meaningful
	// grouping was possible; that is a valid outcome, not an error.
	Clusters []model.Cluster

	// Unclustered lists the tab ids of vectors that ended up in no
	// cluster: irrecoverable noise and members dropped during splitting.
	Unclustered []string
}

// Run executes the full pipeline over the given embeddings: normalize,
// density-cluster, fall back to centroid partitioning if nothing was found,
// reassign recoverable noise, split oversized clusters, and compute
// centroids. The pipeline itself is synchronous and performs no I/O;
// callers wrapping concurrent runs are responsible for bounding total work.
func (p *Pipeline) Run(ctx context.Context, embeddings []model.Embedding) (*Result, error) {
	start := time.Now()
	session := newSession()
	logger := p.opts.logger.WithRunID(session.RunID())

	result, err := p.run(ctx, session, logger, embeddings)
	p.opts.metricsCollector.RecordRun(time.Since(start), err)

	if err != nil {
		logger.LogRun(ctx, len(embeddings), 0, 0, time.Since(start), err)
		return nil, err
	}

	logger.LogRun(ctx, len(embeddings), len(result.Clusters), len(result.Unclustered), time.Since(start), nil)
	return result, nil
}

func (p *Pipeline) run(ctx context.Context, session *session, logger *Logger, embeddings []model.Embedding) (*Result, error) {
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("%w: no embeddings", ErrInvalidInput)
	}

	vecs, err := normalize(embeddings)
	if err != nil {
		return nil, err
	}

	density := densityStrategy{opts: hdbscan.Options{
		MinClusterSize:   p.opts.minClusterSize,
		MinSamples:       p.opts.minSamples,
		SelectionEpsilon: euclideanSlack(p.opts.selectionEpsilon),
	}}

	densityStart := time.Now()
	labels, err := density.Partition(vecs)
	if err != nil {
		return nil, fmt.Errorf("density clustering: %w", err)
	}

	found, noise := countLabels(labels)
	logger.LogDensity(ctx, found, noise, time.Since(densityStart))
	p.opts.metricsCollector.RecordDensity(found, noise, time.Since(densityStart))

	algorithm := density.Name()
	candidateK := 0

	if found == 0 {
		fallbackStart := time.Now()
		kopts := kmeans.Options{Seed: p.opts.seed, Restarts: p.opts.restarts}
		labels, candidateK = fallbackPartition(vecs, p.opts.fallbackCandidates, kopts)
		groups, _ := countLabels(labels)
		logger.LogFallback(ctx, candidateK, groups)
		p.opts.metricsCollector.RecordFallback(candidateK, time.Since(fallbackStart))

		if candidateK == 0 {
			// Total clustering failure: no grouping was possible.
			return &Result{
				RunID:       session.RunID(),
				Unclustered: tabIDs(embeddings),
			}, nil
		}
		algorithm = "kmeans_fallback"
	}

	moved := reassignNoise(vecs, labels, p.opts.similarityThreshold)
	_, remaining := countLabels(labels)
	logger.LogReassign(ctx, moved, remaining)
	p.opts.metricsCollector.RecordReassign(moved)

	groups := p.buildGroups(session, labels, algorithm, candidateK)
	groups = p.enforceSizeLimit(ctx, session, groups, vecs)

	for _, g := range groups {
		session.setCentroid(g.id, centroidOf(g, vecs))
	}

	return p.materialize(session, groups, embeddings), nil
}

// buildGroups turns per-vector labels into cluster groups in ascending label
// order, assigning each a fresh id from the session.
func (p *Pipeline) buildGroups(session *session, labels []int, algorithm string, candidateK int) []*clusterGroup {
	byLabel := make(map[int]*bitmap.IndexSet)
	for i, label := range labels {
		if label == Noise {
			continue
		}
		set, ok := byLabel[label]
		if !ok {
			set = bitmap.New()
			byLabel[label] = set
		}
		set.Add(i)
	}

	order := make([]int, 0, len(byLabel))
	for label := range byLabel {
		order = append(order, label)
	}
	sort.Ints(order)

	groups := make([]*clusterGroup, 0, len(order))
	for _, label := range order {
		id, name := session.nextCluster()
		meta := map[string]string{model.MetaAlgorithm: algorithm}
		if candidateK > 0 {
			meta[model.MetaCandidateK] = fmt.Sprintf("%d", candidateK)
		}
		groups = append(groups, &clusterGroup{
			id:      id,
			name:    name,
			meta:    meta,
			members: byLabel[label],
		})
	}
	return groups
}

// materialize resolves groups into final clusters with tab ids and the
// centroids recorded on the session, and collects the ids of unclustered
// vectors.
func (p *Pipeline) materialize(session *session, groups []*clusterGroup, embeddings []model.Embedding) *Result {
	clustered := bitmap.New()
	clusters := make([]model.Cluster, 0, len(groups))

	for _, g := range groups {
		centroid, _ := session.Centroid(g.id)

		ids := make([]string, 0, g.members.Cardinality())
		for i := range g.members.All() {
			ids = append(ids, embeddings[i].TabID)
		}
		clustered.Or(g.members)

		clusters = append(clusters, model.Cluster{
			ID:        g.id,
			Name:      g.name,
			TabIDs:    ids,
			Centroid:  centroid,
			CreatedAt: session.createdAt,
			Metadata:  g.meta,
		})
	}

	var unclustered []string
	for i, e := range embeddings {
		if !clustered.Contains(i) {
			unclustered = append(unclustered, e.TabID)
		}
	}

	return &Result{
		RunID:       session.RunID(),
		Clusters:    clusters,
		Unclustered: unclustered,
	}
}

func countLabels(labels []int) (clusters, noise int) {
	seen := make(map[int]struct{})
	for _, label := range labels {
		if label == Noise {
			noise++
			continue
		}
		seen[label] = struct{}{}
	}
	return len(seen), noise
}

func tabIDs(embeddings []model.Embedding) []string {
	out := make([]string, len(embeddings))
	for i, e := range embeddings {
		out[i] = e.TabID
	}
	return out
}
