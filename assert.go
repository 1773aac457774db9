//go:build !vecdebug

package vec

// Contract checks compile out of release builds. Build with -tags vecdebug
// to panic on violated preconditions; without the tag, out-of-range slot
// access still stops at the runtime's slice bounds check.
func assertf(bool, string, ...any) {}
