// Package store provides an in-memory read-through store for tabs,
// embeddings, and clusters. It backs one service process; persistence is out
// of scope, so data lives only as long as the process.
package store

import (
	"sync"

	"github.com/hupe1980/tabgroup/model"
)

// InMemoryStore holds tabs, embeddings, and clusters behind a single lock.
// It implements tabgroup.TabLookup. Safe for concurrent use.
type InMemoryStore struct {
	mu         sync.RWMutex
	tabs       map[string]model.Tab
	embeddings map[string]model.Embedding
	clusters   map[string]model.Cluster
}

// New creates an empty InMemoryStore.
func New() *InMemoryStore {
	return &InMemoryStore{
		tabs:       make(map[string]model.Tab),
		embeddings: make(map[string]model.Embedding),
		clusters:   make(map[string]model.Cluster),
	}
}

// AddTab stores a tab, replacing any previous record with the same id.
func (s *InMemoryStore) AddTab(tab model.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs[tab.ID] = tab
}

// AddTabs stores multiple tabs.
func (s *InMemoryStore) AddTabs(tabs []model.Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tab := range tabs {
		s.tabs[tab.ID] = tab
	}
}

// Tab returns the tab with the given id.
func (s *InMemoryStore) Tab(id string) (model.Tab, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tab, ok := s.tabs[id]
	return tab, ok
}

// TabCount returns the number of stored tabs.
func (s *InMemoryStore) TabCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tabs)
}

// AddEmbedding stores an embedding keyed by its tab id.
func (s *InMemoryStore) AddEmbedding(e model.Embedding) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.embeddings[e.TabID] = e
}

// Embedding returns the embedding for a tab id.
func (s *InMemoryStore) Embedding(tabID string) (model.Embedding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.embeddings[tabID]
	return e, ok
}

// AddCluster stores a cluster under its id.
func (s *InMemoryStore) AddCluster(c model.Cluster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clusters[c.ID] = c.Clone()
}

// Cluster returns the cluster with the given id.
func (s *InMemoryStore) Cluster(id string) (model.Cluster, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clusters[id]
	if !ok {
		return model.Cluster{}, false
	}
	return c.Clone(), true
}

// TabsByCluster returns the resolvable tabs of a stored cluster.
func (s *InMemoryStore) TabsByCluster(clusterID string) []model.Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.clusters[clusterID]
	if !ok {
		return nil
	}

	tabs := make([]model.Tab, 0, len(c.TabIDs))
	for _, id := range c.TabIDs {
		if tab, ok := s.tabs[id]; ok {
			tabs = append(tabs, tab)
		}
	}
	return tabs
}
