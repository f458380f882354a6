package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/tabgroup/model"
)

func TestStoreTabs(t *testing.T) {
	s := New()
	s.AddTabs([]model.Tab{
		{ID: "tab_0", Name: "Go docs"},
		{ID: "tab_1", Name: "Go blog"},
	})

	tab, ok := s.Tab("tab_0")
	require.True(t, ok)
	assert.Equal(t, "Go docs", tab.Name)

	_, ok = s.Tab("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, s.TabCount())
}

func TestStoreEmbeddings(t *testing.T) {
	s := New()
	s.AddEmbedding(model.Embedding{TabID: "tab_0", Vector: []float32{1, 0}})

	e, ok := s.Embedding("tab_0")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0}, e.Vector)

	_, ok = s.Embedding("tab_1")
	assert.False(t, ok)
}

func TestStoreClustersAreIsolated(t *testing.T) {
	s := New()
	original := model.Cluster{ID: "cluster_0", TabIDs: []string{"tab_0"}}
	s.AddCluster(original)

	got, ok := s.Cluster("cluster_0")
	require.True(t, ok)

	// Mutating the returned copy must not affect the stored cluster.
	got.TabIDs[0] = "tab_9"
	again, _ := s.Cluster("cluster_0")
	assert.Equal(t, "tab_0", again.TabIDs[0])
}

func TestTabsByCluster(t *testing.T) {
	s := New()
	s.AddTabs([]model.Tab{
		{ID: "tab_0", Name: "A"},
		{ID: "tab_1", Name: "B"},
	})
	s.AddCluster(model.Cluster{ID: "cluster_0", TabIDs: []string{"tab_0", "tab_1", "tab_gone"}})

	tabs := s.TabsByCluster("cluster_0")
	assert.Len(t, tabs, 2)
	assert.Nil(t, s.TabsByCluster("missing"))
}
