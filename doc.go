// Package vec implements a generic resizable array (dynamic vector) built
// on a raw owned buffer, with explicit, observable capacity management.
//
// # Overview
//
// A Vector owns exactly one Block of allocated slots. The first Len()
// slots are live elements; the rest is spare capacity that absorbs future
// growth without reallocating. Unlike a builtin slice, the capacity policy
// is part of the contract: growth doubles (max(1, 2*cap) on append,
// max(n, 2*cap) on resize), Reserve allocates exactly what was asked, and
// Cap() reports the real allocation. This is useful when allocation
// behavior must be predictable and testable rather than left to the
// runtime's append heuristics.
//
// # Basic Usage
//
//	v := vec.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 99)          // [1 99 2]
//	v.Erase(0)               // [99 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
//	w := vec.WithCapacity[int](vec.Reserve(64)) // len 0, cap 64
//
// # Error Model
//
// Preconditions (index ranges on Get/Set/Ref, Insert/Erase positions,
// PopBack on a non-empty vector) are the caller's responsibility. Build
// with -tags vecdebug to panic on violations; release builds pay nothing
// and fall back to the runtime's slice bounds checks. The one checked
// operation is At, which returns an OutOfRangeError instead.
//
// # Ownership
//
// Storage ownership is always singular. Move and Swap transfer it in O(1);
// Clone duplicates the live elements into a fresh block sized to Len(),
// deliberately not carrying the source's spare capacity. A reallocation
// fully populates the new block before swapping it in, so the old storage
// stays consistent until the new one is live.
//
// # Thread Safety
//
// Vectors are not safe for concurrent mutation. Concurrent read-only
// access is fine while no writer is active.
//
// # Performance Characteristics
//
//   - PushBack: O(1) amortized
//   - Get/Set/Ref/At: O(1)
//   - Insert/Erase: O(n) in the suffix length
//   - Move/Swap/Clear: O(1)
//   - Clone/Reserve/growth: O(n)
package vec
