package model

import (
	"time"
)

// Tab represents a single item to be clustered.
// It is immutable once created and owned by the caller.
type Tab struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Embedding represents an embedding vector for a tab.
// All embeddings within one clustering run must share a dimensionality.
type Embedding struct {
	TabID     string    `json:"tab_id"`
	Vector    []float32 `json:"vector"`
	ModelName string    `json:"model_name"`
	CreatedAt time.Time `json:"created_at"`
}

// Dimension returns the dimensionality of the embedding vector.
func (e Embedding) Dimension() int {
	return len(e.Vector)
}

// Metadata keys recorded by the pipeline for cluster provenance.
const (
	MetaAlgorithm     = "algorithm"
	MetaParentCluster = "parent_cluster"
	MetaSplitMethod   = "split_method"
	MetaCandidateK    = "candidate_k"
)

// Cluster represents a group of related tabs produced by one clustering run.
//
// The ID is unique for the lifetime of the run that produced it. Name starts
// as a placeholder and is assigned later by a naming collaborator. Metadata
// records provenance such as the originating algorithm and, for clusters
// produced by a split, the parent cluster ID.
type Cluster struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	TabIDs    []string          `json:"tab_ids"`
	Centroid  []float32         `json:"centroid,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Size returns the number of tabs in the cluster.
func (c Cluster) Size() int {
	return len(c.TabIDs)
}

// Clone returns a deep copy of the cluster.
func (c Cluster) Clone() Cluster {
	out := c
	out.TabIDs = append([]string(nil), c.TabIDs...)
	out.Centroid = append([]float32(nil), c.Centroid...)
	if c.Metadata != nil {
		out.Metadata = make(map[string]string, len(c.Metadata))
		for k, v := range c.Metadata {
			out.Metadata[k] = v
		}
	}
	return out
}

// ClusterRecord is the lossless serialized form of a Cluster.
// Converting a Cluster to a record and back preserves ID, name, members,
// and centroid values exactly.
type ClusterRecord struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	TabIDs    []string          `json:"tab_ids"`
	Centroid  []float32         `json:"centroid,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Record converts the cluster to its serialized form.
func (c Cluster) Record() ClusterRecord {
	clone := c.Clone()
	return ClusterRecord{
		ID:        clone.ID,
		Name:      clone.Name,
		TabIDs:    clone.TabIDs,
		Centroid:  clone.Centroid,
		CreatedAt: clone.CreatedAt,
		Metadata:  clone.Metadata,
	}
}

// Cluster converts a serialized record back to a Cluster.
func (r ClusterRecord) Cluster() Cluster {
	c := Cluster{
		ID:        r.ID,
		Name:      r.Name,
		TabIDs:    r.TabIDs,
		Centroid:  r.Centroid,
		CreatedAt: r.CreatedAt,
		Metadata:  r.Metadata,
	}
	return c.Clone()
}

// ClusterExport is the presentation shape of a cluster: member tab IDs
// resolved to full tab records.
type ClusterExport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tabs []Tab  `json:"tabs"`
}
