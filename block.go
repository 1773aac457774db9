package vec

// Block is a single-owner heap allocation of a fixed number of slots.
// It is the storage primitive underneath Vector: Vector decides how many
// slots to allocate and which of them are live, Block only owns the memory.
//
// A Block is move-only. Ownership transfers through Swap (or wholesale
// assignment of the containing struct); copying a Block aliases the same
// storage and must be avoided outside of transfer operations.
type Block[T any] struct {
	data []T
}

// NewBlock allocates a block of n zero-valued slots.
// n <= 0 yields an empty block with no allocation.
func NewBlock[T any](n int) Block[T] {
	if n <= 0 {
		return Block[T]{}
	}
	return Block[T]{data: make([]T, n)}
}

// Len returns the number of slots the block owns.
func (b *Block[T]) Len() int {
	return len(b.data)
}

// At returns a pointer to slot i. The index must be in [0, Len()).
func (b *Block[T]) At(i int) *T {
	return &b.data[i]
}

// Ptr returns a pointer to the first slot, or nil for an empty block.
func (b *Block[T]) Ptr() *T {
	if len(b.data) == 0 {
		return nil
	}
	return &b.data[0]
}

// Slice returns the full slot range as a slice aliasing the block's storage.
func (b *Block[T]) Slice() []T {
	return b.data
}

// Swap exchanges ownership of the two blocks' storage in O(1).
// No slots are touched and no allocation happens.
func (b *Block[T]) Swap(other *Block[T]) {
	b.data, other.data = other.data, b.data
}

// Release drops the block's storage. The block reads as empty afterwards
// and may be reused by assigning a new block over it.
func (b *Block[T]) Release() {
	b.data = nil
}
