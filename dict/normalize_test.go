package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturatingSub(t *testing.T) {
	cases := []struct {
		v, sub, want Pos
	}{
		{0, 5, emptyPos},
		{3, 5, emptyPos},
		{10, 5, 5},
		{5, 5, emptyPos},
		{100, 0, 100},
	}
	for _, c := range cases {
		got := saturatingSub(c.v, c.sub)
		assert.Equalf(t, c.want, got, "saturatingSub(%d, %d)", c.v, c.sub)
	}
}

func TestNormalize3PreservesEmptySlots(t *testing.T) {
	items := []Pos{emptyPos, 10, emptyPos, 20, 5}
	Normalize3(8, items)
	require.Equal(t, []Pos{emptyPos, 2, emptyPos, 12, emptyPos}, items)
}

func TestNormalize3MatchesScalarAndWidePaths(t *testing.T) {
	// Any split between the simd wide pass and the scalar remainder must
	// produce byte-identical output; this is the mandatory property the
	// Position Normalizer's bit-identical-fallback requirement rests on.
	items := make([]Pos, 200)
	for i := range items {
		items[i] = Pos(i * 7)
	}
	want := make([]Pos, len(items))
	copy(want, items)
	normalize3Scalar(50, want)

	got := make([]Pos, len(items))
	copy(got, items)
	Normalize3(50, got)

	require.Equal(t, want, got)
}

func TestNormalizeHashChainBlocksSkipsSlotZeroAndEmptyBlocks(t *testing.T) {
	const slotSize = 8
	items := make([]Pos, slotSize*2)
	// Block 0: empty (head==0), must be left untouched entirely.
	items[0] = emptyPos
	for i := 1; i < slotSize; i++ {
		items[i] = Pos(100 + i)
	}
	// Block 1: active head, chain nodes normalized, slot 0 (the head index,
	// not a position) must never be treated as a position value.
	items[slotSize] = 3 // any nonzero head value marks the block active
	for i := 1; i < slotSize; i++ {
		items[slotSize+i] = Pos(50 + i)
	}

	NormalizeHashChainBlocks(10, items, slotSize)

	if items[0] != emptyPos {
		t.Errorf("empty block's head slot was modified: %d", items[0])
	}
	for i := 1; i < slotSize; i++ {
		if items[i] != Pos(100+i) {
			t.Errorf("empty block's chain slot %d was modified: %d", i, items[i])
		}
	}
	if items[slotSize] != 3 {
		t.Errorf("active block's head index was normalized as a position: %d", items[slotSize])
	}
	for i := 1; i < slotSize; i++ {
		want := saturatingSub(Pos(50+i), 10)
		if items[slotSize+i] != want {
			t.Errorf("chain slot %d = %d, want %d", i, items[slotSize+i], want)
		}
	}
}
