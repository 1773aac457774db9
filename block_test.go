package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero slots", 0, 0},
		{"negative clamps to empty", -3, 0},
		{"allocates exactly n", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := NewBlock[int](tt.n)
			assert.Equal(t, tt.want, b.Len())
		})
	}
}

func TestBlock_ZeroValuedSlots(t *testing.T) {
	t.Parallel()

	b := NewBlock[string](3)
	for i := 0; i < b.Len(); i++ {
		assert.Empty(t, *b.At(i))
	}
}

func TestBlock_AtWritesThrough(t *testing.T) {
	t.Parallel()

	b := NewBlock[int](2)
	*b.At(0) = 10
	*b.At(1) = 20

	assert.Equal(t, []int{10, 20}, b.Slice())
	assert.Same(t, b.At(0), b.Ptr())
}

func TestBlock_PtrNilWhenEmpty(t *testing.T) {
	t.Parallel()

	b := NewBlock[int](0)
	assert.Nil(t, b.Ptr())
}

func TestBlock_Swap(t *testing.T) {
	t.Parallel()

	a := NewBlock[int](2)
	*a.At(0) = 1
	b := NewBlock[int](5)
	*b.At(0) = 9

	pa, pb := a.Ptr(), b.Ptr()
	a.Swap(&b)

	// Pure ownership exchange: the storage itself moves untouched.
	require.Same(t, pb, a.Ptr())
	require.Same(t, pa, b.Ptr())
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 9, *a.At(0))
	assert.Equal(t, 1, *b.At(0))
}

func TestBlock_Release(t *testing.T) {
	t.Parallel()

	b := NewBlock[int](4)
	b.Release()

	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Ptr())
}
