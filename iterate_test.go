package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	t.Parallel()

	v := Of(10, 20, 30)

	var idxs []int
	var vals []int
	for i, x := range v.All() {
		idxs = append(idxs, i)
		vals = append(vals, x)
	}

	assert.Equal(t, []int{0, 1, 2}, idxs)
	assert.Equal(t, []int{10, 20, 30}, vals)
}

func TestAll_EarlyBreak(t *testing.T) {
	t.Parallel()

	v := Of(10, 20, 30)

	seen := 0
	for i := range v.All() {
		seen++
		if i == 1 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestValues_SkipsSpareCapacity(t *testing.T) {
	t.Parallel()

	v := WithCapacity[int](Reserve(8))
	v.PushBack(1)

	count := 0
	for range v.Values() {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestValues(t *testing.T) {
	t.Parallel()

	v := Of("a", "b")

	var got []string
	for x := range v.Values() {
		got = append(got, x)
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSlice_AliasesLiveRange(t *testing.T) {
	t.Parallel()

	v := Of(1, 2, 3)
	s := v.Slice()
	require.Len(t, s, 3)

	s[0] = 99
	assert.Equal(t, 99, v.Get(0))
}

func TestSlice_AppendCannotReachSpareSlots(t *testing.T) {
	t.Parallel()

	v := Of(1, 2, 3)
	v.PopBack() // len 2, cap 3

	s := v.Slice()
	require.Equal(t, len(s), cap(s))

	// Append on the view must reallocate instead of writing into the
	// vector's spare slot.
	s = append(s, 99)
	v.Resize(3)
	assert.Equal(t, 0, v.Get(2))
	assert.Equal(t, 99, s[2])
}

func TestSlice_EmptyVector(t *testing.T) {
	t.Parallel()

	v := New[int]()
	assert.Empty(t, v.Slice())
}
