package tabgroup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgroup/model"
)

type mapLookup map[string]model.Tab

func (m mapLookup) Tab(id string) (model.Tab, bool) {
	tab, ok := m[id]
	return tab, ok
}

func TestExport(t *testing.T) {
	lookup := mapLookup{
		"tab_0": {ID: "tab_0", Name: "Go docs"},
		"tab_1": {ID: "tab_1", Name: "Go blog"},
		"tab_2": {ID: "tab_2", Name: "News"},
	}

	clusters := []model.Cluster{
		{ID: "cluster_0", Name: "Cluster 0", TabIDs: []string{"tab_0", "tab_1"}},
		{ID: "cluster_1", Name: "Cluster 1", TabIDs: []string{"tab_2", "tab_missing"}},
	}

	exports := Export(clusters, lookup)

	require.Len(t, exports, 2)

	assert.Equal(t, "cluster_0", exports[0].ID)
	assert.Equal(t, []model.Tab{
		{ID: "tab_0", Name: "Go docs"},
		{ID: "tab_1", Name: "Go blog"},
	}, exports[0].Tabs)

	// Unresolvable ids are dropped, not errors.
	assert.Equal(t, []model.Tab{{ID: "tab_2", Name: "News"}}, exports[1].Tabs)
}

func TestExportPreservesOrder(t *testing.T) {
	lookup := mapLookup{"tab_0": {ID: "tab_0", Name: "Only"}}

	clusters := []model.Cluster{
		{ID: "cluster_2", TabIDs: []string{"tab_0"}},
		{ID: "cluster_0", TabIDs: []string{"tab_0"}},
		{ID: "cluster_1", TabIDs: []string{"tab_0"}},
	}

	exports := Export(clusters, lookup)

	require.Len(t, exports, 3)
	assert.Equal(t, "cluster_2", exports[0].ID)
	assert.Equal(t, "cluster_0", exports[1].ID)
	assert.Equal(t, "cluster_1", exports[2].ID)
}
