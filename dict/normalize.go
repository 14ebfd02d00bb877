package dict

import "github.com/aocl-go/lzdict/simd"

// saturatingSub reduces a single stored position by subValue, clamping
// empty slots and anything that would go negative to the empty marker
// instead of wrapping. Grounded on the SASUB_32 macro used by both the
// reference and cache-efficient normalization paths in the original match
// finder; both reduce to the same clamp-to-zero rule.
func saturatingSub(v, subValue Pos) Pos {
	if v == emptyPos || v < subValue {
		return emptyPos
	}
	return v - subValue
}

// Normalize3 applies saturatingSub to every stored position in items: the
// fixed 2-/3-byte hash tables and, for BT/HC-ref layouts, the full son
// array. It tries a batched SIMD pass first and falls back to the scalar
// loop for whatever the batched pass didn't handle (unaligned remainder),
// so results are bit-identical regardless of which path ran.
func Normalize3(subValue Pos, items []Pos) {
	done := simd.NormalizeWide(subValue, items)
	normalize3Scalar(subValue, items[done:])
}

func normalize3Scalar(subValue Pos, items []Pos) {
	for i, v := range items {
		items[i] = saturatingSub(v, subValue)
	}
}

// NormalizeHashChainBlocks applies the block-aware HC-CE normalization:
// items is laid out as consecutive fixed-size blocks of slotSize positions;
// slot 0 of each block is a circular-buffer head index (not a stored
// position) and is left untouched, while slots 1..slotSize-1 are the
// chain's stored positions and are saturating-subtracted the same as
// Normalize3. A block whose head is empty has no chain to normalize and is
// skipped entirely, matching AOCL_NORMALIZE_HASH_CHAIN_TABLE.
func NormalizeHashChainBlocks(subValue Pos, items []Pos, slotSize uint32) {
	for base := uint32(0); base+slotSize <= uint32(len(items)); base += slotSize {
		block := items[base : base+slotSize]
		if block[0] == emptyPos {
			continue
		}
		for j := 1; j < len(block); j++ {
			block[j] = saturatingSub(block[j], subValue)
		}
	}
}
