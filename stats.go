package vec

// Stats is a snapshot of a vector's storage accounting.
type Stats struct {
	Len         int     // live elements
	Cap         int     // allocated slots
	Spare       int     // Cap - Len
	Utilization float64 // Len / Cap (0.0 when Cap is 0)
}

// Stats returns the vector's current storage accounting.
func (v *Vector[T]) Stats() Stats {
	u := 0.0
	if v.capacity > 0 {
		u = float64(v.size) / float64(v.capacity)
	}
	return Stats{
		Len:         v.size,
		Cap:         v.capacity,
		Spare:       v.capacity - v.size,
		Utilization: u,
	}
}
