// Package naming assigns display names to clusters. The pipeline produces
// placeholder names; a Namer replaces them with topical ones.
package naming

import (
	"context"

	"github.com/hupe1980/tabgroup"
	"github.com/hupe1980/tabgroup/model"
)

// Namer generates display names for clusters. The returned map is keyed by
// cluster id; clusters missing from the map keep their placeholder names.
type Namer interface {
	NameClusters(ctx context.Context, clusters []model.Cluster, lookup tabgroup.TabLookup) (map[string]string, error)
}

// NoopNamer leaves every placeholder name in place.
type NoopNamer struct{}

// NameClusters implements Namer.
func (NoopNamer) NameClusters(context.Context, []model.Cluster, tabgroup.TabLookup) (map[string]string, error) {
	return map[string]string{}, nil
}

// Apply overwrites cluster names with those in names, keeping placeholders
// for clusters the namer did not cover.
func Apply(clusters []model.Cluster, names map[string]string) {
	for i := range clusters {
		if name, ok := names[clusters[i].ID]; ok && name != "" {
			clusters[i].Name = name
		}
	}
}
