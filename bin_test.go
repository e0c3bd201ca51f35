package o1heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinIndexForSizeUsesFloor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		size uint
		want uint
	}{
		{sizeMin, 0},
		{sizeMin * 2, 1},
		{sizeMin*2 + sizeMin/2, 1}, // not a power of two multiple: floor, not ceil
		{sizeMin * 4, 2},
		{sizeMin*4 - 1, 1},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, binIndexForSize(tt.size), "size=%d", tt.size)
	}
}

func TestBinIndexForRequestUsesCeil(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sizeClass uint
		want      uint
	}{
		{sizeMin, 0},
		{sizeMin * 2, 1},
		{sizeMin*2 + 1, 2}, // smallest excess rounds up a whole bin
		{sizeMin * 4, 2},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, binIndexForRequest(tt.sizeClass), "sizeClass=%d", tt.sizeClass)
	}
}

// rebin always places a fragment in a bin whose declared range covers
// the fragment's actual size, and the bitmap bit for that bin is set iff
// the bin is nonempty.
func TestRebinUnbinMaintainMask(t *testing.T) {
	h := mustNewHeap(t, 1<<20)
	root := h.bins[binIndexForSize(h.diagnostics.Capacity)]
	require.NotNil(t, root)

	idx := binIndexForSize(root.size)
	require.NotZero(t, h.nonemptyBinMask&pow2(idx))

	h.unbin(root)
	require.Zero(t, h.nonemptyBinMask&pow2(idx))
	require.Nil(t, h.bins[idx])

	h.rebin(root)
	require.NotZero(t, h.nonemptyBinMask&pow2(idx))
	require.Equal(t, root, h.bins[idx])
}

// A bin's free list is exactly the set of free fragments sharing that
// bin index, threaded through freeLinks in both directions. Fragments are
// freed with a used separator between each pair so none of them coalesce,
// keeping three distinct entries in the same bin.
func TestBinFreeListDoublyLinked(t *testing.T) {
	h := mustNewHeap(t, 1<<20)

	p1, err := h.Allocate(64)
	require.NoError(t, err)
	sep1, err := h.Allocate(64)
	require.NoError(t, err)
	p2, err := h.Allocate(64)
	require.NoError(t, err)
	sep2, err := h.Allocate(64)
	require.NoError(t, err)
	p3, err := h.Allocate(64)
	require.NoError(t, err)
	sep3, err := h.Allocate(64)
	require.NoError(t, err)

	h.Free(p1)
	h.Free(p2)
	h.Free(p3)

	f1, f2, f3 := headerFromPayload(p1), headerFromPayload(p2), headerFromPayload(p3)
	for _, f := range []*fragmentHeader{f1, f2, f3} {
		idx := binIndexForSize(f.size)
		found := false
		for cur := h.bins[idx]; cur != nil; cur = cur.freeLinks().nextFree {
			if cur == f {
				found = true
			}
			if cur.freeLinks().nextFree != nil {
				require.Equal(t, cur, cur.freeLinks().nextFree.freeLinks().prevFree)
			}
		}
		require.True(t, found)
	}

	h.Free(sep1)
	h.Free(sep2)
	h.Free(sep3)
}
