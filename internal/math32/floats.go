// Package math32 provides float32 vector kernels for the clustering
// pipeline. This is an internal package - external users should use the
// distance package.
package math32

import "math"

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	var ret float32
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 (Euclidean) distance.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var distance float32
	for i := range a {
		distance += (a[i] - b[i]) * (a[i] - b[i])
	}

	return distance
}

// L2 calculates the L2 (Euclidean) distance.
func L2(a, b []float32) float32 {
	return Sqrt(SquaredL2(a, b))
}

// Norm calculates the L2 norm of a vector.
func Norm(a []float32) float32 {
	return Sqrt(Dot(a, a))
}

// Sqrt returns the square root of x as a float32.
func Sqrt(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}

// AddInPlace adds b to a element-wise.
// Assumes vectors are the same length.
func AddInPlace(a, b []float32) {
	for i := range a {
		a[i] += b[i]
	}
}

// Mean computes the component-wise mean of vecs into a new vector.
// Returns nil if vecs is empty. All vectors must share a dimensionality.
func Mean(vecs [][]float32) []float32 {
	if len(vecs) == 0 {
		return nil
	}

	mean := make([]float32, len(vecs[0]))
	for _, v := range vecs {
		AddInPlace(mean, v)
	}
	ScaleInPlace(mean, 1/float32(len(vecs)))

	return mean
}
