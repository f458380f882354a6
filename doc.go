// Package tabgroup groups embedding vectors into bounded-size topical
// clusters.
//
// The pipeline normalizes the input vectors, runs density-based clustering,
// falls back to centroid-based partitioning when no density structure is
// found, reassigns recoverable noise points, splits oversized clusters, and
// computes a centroid per final cluster. Every randomized step takes an
// explicit seed, so identical input and configuration always produce
// identical cluster membership.
//
// Each invocation runs inside its own session, which owns the cluster-id
// counter and the centroid table. Concurrent runs never share mutable state.
package tabgroup
