// Package testutil provides testing utilities for tabgroup.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for random vectors with known structure
// (tight blobs, multi-cluster spreads, orthogonal sets) and for matching
// tab and embedding records.
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.ClusteredVectors(40, 64, 4, 0.05)
//	embeddings := testutil.Embeddings(vecs)
package testutil
