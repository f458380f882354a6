// Package distance provides vector distance calculations for the
// clustering pipeline.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricCosine: Cosine similarity
//   - MetricDot: Dot product (inner product)
//
// Euclidean distance on L2-normalized vectors is monotonic with cosine
// distance, which is why the pipeline normalizes before clustering.
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.CosineSimilarity(a, b)
//	normalized, ok := distance.NormalizeL2Copy(vec)
package distance
