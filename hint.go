package vec

// CapacityHint asks a constructor for pre-allocated capacity without
// creating any live elements. It carries the request only; build one with
// Reserve and hand it to WithCapacity.
type CapacityHint struct {
	capacity int
}

// Reserve returns a hint requesting capacity for n elements.
func Reserve(n int) CapacityHint {
	return CapacityHint{capacity: n}
}

// Capacity returns the requested capacity.
func (h CapacityHint) Capacity() int {
	return h.capacity
}
