// Package hdbscan implements hierarchical density-based clustering over
// small-to-medium vector sets.
//
// The algorithm builds a minimum spanning tree over mutual-reachability
// distances, condenses the resulting single-linkage hierarchy into a tree of
// candidate clusters parameterized by density, and selects the subset of
// nodes that maximizes total stability (excess of mass). A selection epsilon
// merges clusters born closer together than the given radius, trading
// granularity for robustness against near-duplicate vectors.
//
// Vectors the algorithm cannot confidently assign to any cluster are labeled
// Noise.
package hdbscan
