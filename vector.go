package vec

// Vector is a resizable array of T backed by a single owned Block.
// The first Len() slots are live elements; slots in [Len(), Cap()) are
// spare capacity holding unspecified placeholder values.
//
// Not goroutine-safe for mutation. Concurrent readers are fine while no
// writer is active.
type Vector[T any] struct {
	items    Block[T]
	size     int
	capacity int
}

// New returns an empty vector with no allocated storage.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSize returns a vector of n zero-valued live elements,
// with capacity equal to n.
func NewSize[T any](n int) *Vector[T] {
	assertf(n >= 0, "NewSize: negative size %d", n)
	return &Vector[T]{items: NewBlock[T](n), size: n, capacity: n}
}

// NewFill returns a vector of n live copies of value.
func NewFill[T any](n int, value T) *Vector[T] {
	v := NewSize[T](n)
	for i := 0; i < n; i++ {
		*v.items.At(i) = value
	}
	return v
}

// Of returns a vector holding the given values in order.
// Capacity equals the number of values.
func Of[T any](values ...T) *Vector[T] {
	v := NewSize[T](len(values))
	copy(v.items.Slice(), values)
	return v
}

// WithCapacity returns an empty vector with the hint's capacity
// pre-allocated. No live elements are created.
func WithCapacity[T any](h CapacityHint) *Vector[T] {
	v := New[T]()
	v.Reserve(h.Capacity())
	return v
}

// Clone returns a deep copy of the vector's live elements.
// The clone's capacity equals the source's Len(), not the source's
// capacity: spare capacity is deliberately not carried over.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{items: NewBlock[T](v.size), size: v.size, capacity: v.size}
	copy(c.items.Slice(), v.items.Slice()[:v.size])
	return c
}

// Move transfers the vector's storage into a fresh vector and returns it.
// The receiver is left empty with zero capacity, valid only for
// reassignment or further Move/Swap.
func (v *Vector[T]) Move() *Vector[T] {
	m := New[T]()
	m.Swap(v)
	return m
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// Empty reports whether the vector has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Get returns the element at index i without a range check beyond the
// runtime's own. The index must be in [0, Len()); build with -tags vecdebug
// to assert the contract.
func (v *Vector[T]) Get(i int) T {
	assertf(i >= 0 && i < v.size, "Get: index %d out of range [0, %d)", i, v.size)
	return *v.items.At(i)
}

// Set stores x at index i. Same contract as Get.
func (v *Vector[T]) Set(i int, x T) {
	assertf(i >= 0 && i < v.size, "Set: index %d out of range [0, %d)", i, v.size)
	*v.items.At(i) = x
}

// Ref returns a pointer to the element at index i. Same contract as Get.
// The pointer is valid until the next reallocation (growth, Reserve).
func (v *Vector[T]) Ref(i int) *T {
	assertf(i >= 0 && i < v.size, "Ref: index %d out of range [0, %d)", i, v.size)
	return v.items.At(i)
}

// At returns the element at index i, or an OutOfRangeError when i is not a
// live index. This is the only operation that reports a range violation as
// a recoverable error instead of a contract violation.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T
		return zero, &OutOfRangeError{Index: i, Len: v.size}
	}
	return *v.items.At(i), nil
}

// Clear resets the length to zero. Capacity is kept and the stored values
// are not touched; the slots are reused by the next growth.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Resize changes the length to n. Shrinking resets the removed range to
// zero values without shrinking capacity. Growing zero-fills the newly
// exposed range; when n exceeds capacity the storage is reallocated to
// max(n, 2*Cap()).
func (v *Vector[T]) Resize(n int) {
	assertf(n >= 0, "Resize: negative size %d", n)
	switch {
	case n == v.size:
		return
	case n < v.size:
		var zero T
		for i := n; i < v.size; i++ {
			*v.items.At(i) = zero
		}
	case n > v.capacity:
		grown := NewBlock[T](max(n, 2*v.capacity))
		copy(grown.Slice(), v.items.Slice()[:v.size])
		v.items.Swap(&grown)
		v.capacity = v.items.Len()
	default:
		// Growth within capacity: spare slots are not guaranteed to hold
		// zero values (Clear keeps old contents), so reset them here.
		var zero T
		for i := v.size; i < n; i++ {
			*v.items.At(i) = zero
		}
	}
	v.size = n
}

// Reserve grows capacity to exactly n slots. A no-op when n <= Cap().
// Length never changes.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.capacity {
		return
	}
	grown := NewBlock[T](n)
	copy(grown.Slice(), v.items.Slice()[:v.size])
	v.items.Swap(&grown)
	v.capacity = n
}

// PushBack appends x. When the vector is full, capacity grows to
// max(1, 2*Cap()), so a sequence of appends costs amortized O(1).
func (v *Vector[T]) PushBack(x T) {
	if v.size < v.capacity {
		*v.items.At(v.size) = x
	} else {
		grown := NewBlock[T](max(1, 2*v.capacity))
		copy(grown.Slice(), v.items.Slice()[:v.size])
		*grown.At(v.size) = x
		v.items.Swap(&grown)
		v.capacity = v.items.Len()
	}
	v.size++
}

// Insert places x at index i, shifting the suffix one slot rightward.
// i must be in [0, Len()]; i == Len() is equivalent to PushBack.
// Returns the index of the inserted element.
func (v *Vector[T]) Insert(i int, x T) int {
	assertf(i >= 0 && i <= v.size, "Insert: position %d out of range [0, %d]", i, v.size)
	if v.size < v.capacity {
		s := v.items.Slice()
		copy(s[i+1:v.size+1], s[i:v.size])
		s[i] = x
	} else {
		grown := NewBlock[T](max(1, 2*v.capacity))
		g := grown.Slice()
		s := v.items.Slice()
		copy(g, s[:i])
		copy(g[i+1:v.size+1], s[i:v.size])
		g[i] = x
		v.items.Swap(&grown)
		v.capacity = v.items.Len()
	}
	v.size++
	return i
}

// Erase removes the element at index i, shifting the suffix one slot
// leftward. i must be in [0, Len()). Returns i, now the index of the
// removed element's old successor (== Len() when the last element went).
func (v *Vector[T]) Erase(i int) int {
	assertf(i >= 0 && i < v.size, "Erase: index %d out of range [0, %d)", i, v.size)
	s := v.items.Slice()
	copy(s[i:v.size-1], s[i+1:v.size])
	// The vacated tail slot goes back to the zero value so the spare
	// range never pins a value the caller already removed.
	var zero T
	s[v.size-1] = zero
	v.size--
	return i
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	assertf(v.size > 0, "PopBack: empty vector")
	v.Erase(v.size - 1)
}

// Swap exchanges storage, length, and capacity with other in O(1).
// No allocation, no failure path.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}
