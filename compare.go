package vec

import "cmp"

// Equal reports whether a and b hold the same live elements in the same
// order. Capacity does not participate.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if *a.items.At(i) != *b.items.At(i) {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(*a.items.At(i), *b.items.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their live elements and
// returns -1, 0, or +1. A proper prefix orders before the longer vector.
// The derived relations follow: a < b is Compare < 0, a <= b is
// Compare <= 0, and so on.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := cmp.Compare(*a.items.At(i), *b.items.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// CompareFunc is Compare with a caller-supplied element comparison,
// which must return a negative, zero, or positive value.
func CompareFunc[T any](a, b *Vector[T], compare func(x, y T) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := compare(*a.items.At(i), *b.items.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.size, b.size)
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}
