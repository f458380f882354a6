// Package kmeans implements seeded k-means clustering for the
// partitional steps of the pipeline.
//
// Used by the fallback partitioner (when density clustering finds nothing)
// and by the size limiter (to split oversized clusters).
package kmeans
