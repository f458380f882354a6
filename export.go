package tabgroup

import (
	"github.com/hupe1980/tabgroup/model"
)

// TabLookup resolves tab ids to full tab records. The storage backing it is
// treated as a non-authoritative read-through cache: ids it cannot resolve
// are dropped from the export rather than failing the run.
type TabLookup interface {
	Tab(id string) (model.Tab, bool)
}

// Export maps each cluster's member ids to full tab records, preserving
// cluster order. Unresolvable ids are omitted.
func Export(clusters []model.Cluster, lookup TabLookup) []model.ClusterExport {
	out := make([]model.ClusterExport, 0, len(clusters))
	for _, c := range clusters {
		tabs := make([]model.Tab, 0, len(c.TabIDs))
		for _, id := range c.TabIDs {
			if tab, ok := lookup.Tab(id); ok {
				tabs = append(tabs, tab)
			}
		}
		out = append(out, model.ClusterExport{
			ID:   c.ID,
			Name: c.Name,
			Tabs: tabs,
		})
	}
	return out
}
