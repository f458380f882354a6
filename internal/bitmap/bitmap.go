// Package bitmap wraps Roaring Bitmaps for tracking vector indices during a
// clustering run (assigned members, noise points, split survivors).
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// IndexSet is a set of vector indices backed by a 32-bit Roaring Bitmap.
type IndexSet struct {
	rb *roaring.Bitmap
}

// New creates a new empty index set.
func New() *IndexSet {
	return &IndexSet{
		rb: roaring.New(),
	}
}

// FromSlice creates an index set containing the given indices.
func FromSlice(indices []int) *IndexSet {
	s := New()
	for _, i := range indices {
		s.Add(i)
	}
	return s
}

// Add adds an index to the set.
func (s *IndexSet) Add(i int) {
	s.rb.Add(uint32(i))
}

// Contains checks if an index is in the set.
func (s *IndexSet) Contains(i int) bool {
	return s.rb.Contains(uint32(i))
}

// IsEmpty returns true if the set is empty.
func (s *IndexSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of indices in the set.
func (s *IndexSet) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// Or computes the union of two sets in place.
func (s *IndexSet) Or(other *IndexSet) {
	s.rb.Or(other.rb)
}

// All returns an iterator over the set in ascending order.
func (s *IndexSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}
