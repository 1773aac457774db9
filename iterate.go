package vec

import "iter"

// All returns an index/value iterator over the live range [0, Len()).
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.items.At(i)) {
				return
			}
		}
	}
}

// Values returns a value-only iterator over the live range.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.At(i)) {
				return
			}
		}
	}
}

// Slice returns the live range as a slice aliasing the vector's storage.
// Writes through it are writes into the vector. The view is valid until
// the next reallocation. Its capacity is clipped to Len() so that append
// on the view cannot write into the vector's spare slots.
func (v *Vector[T]) Slice() []T {
	return v.items.Slice()[:v.size:v.size]
}
