// Package model defines the core types used throughout tabgroup.
//
// # Data Types
//
//   - Tab: An item to be clustered, identified by an opaque ID
//   - Embedding: A float32 vector for one tab, tagged with its producing model
//   - Cluster: A group of tab IDs with provenance metadata and an optional centroid
//   - ClusterExport: The wire shape of a cluster with resolved tab records
//
// Tabs are owned by the caller and referenced by ID only inside the
// clustering pipeline. Clusters are created by the pipeline; their IDs are
// unique within a single clustering run.
package model
