package dict

// crcTable implements the hash functions' CRC-32 (reverse polynomial
// 0xEDB88320) byte table, grounded on MatchFinder_Construct's CRC-32 init
// in the reference match finder. It is built once per MatchFinder instance
// because nothing else depends on process-wide state here.
type crcTable [256]uint32

func newCRCTable() crcTable {
	var t crcTable
	for i := uint32(0); i < 256; i++ {
		r := i
		for j := 0; j < 8; j++ {
			if r&1 != 0 {
				r = (r >> 1) ^ kCrcPoly
			} else {
				r >>= 1
			}
		}
		t[i] = r
	}
	return t
}

// hash3 computes the 3-byte-prefix hash used by the BT/HC-ref layouts'
// fixed 3-byte table. Also returns the H2 value computed along the way,
// since H4/H5 build on the same intermediate.
func (t *crcTable) hash3(cur []byte) (h2, h3 uint32) {
	temp := t[cur[0]] ^ uint32(cur[1])
	h2 = temp & (kHash2Size - 1)
	h3 = (temp ^ (uint32(cur[2]) << 8)) & (kHash3Size - 1)
	return h2, h3
}

// hash4 computes the 4-byte-prefix hash masked to hashMask, plus h2 and h3
// (h3 only meaningful for non-AOCL / reference callers; cache-efficient
// callers ignore it). If two cursors collide on hv, cur[1] and cur[2] are
// guaranteed identical for both, provided hashMask >= 0xFFFF (invariant 7).
func (t *crcTable) hash4(cur []byte, hashMask uint32) (h2, h3, hv uint32) {
	temp := t[cur[0]] ^ uint32(cur[1])
	h2 = temp & (kHash2Size - 1)
	temp ^= uint32(cur[2]) << 8
	h3 = temp & (kHash3Size - 1)
	hv = (temp ^ (t[cur[3]] << kLzHashCrcShift1)) & hashMask
	return h2, h3, hv
}

// hash4CacheEfficient is the cache-efficient variant that skips computing
// h3 (the HC-CE layout never keeps a 3-byte fixed table, spec.md's second
// Open Question).
func (t *crcTable) hash4CacheEfficient(cur []byte, hashMask uint32) (h2, hv uint32) {
	temp := t[cur[0]] ^ uint32(cur[1])
	h2 = temp & (kHash2Size - 1)
	temp ^= uint32(cur[2]) << 8
	hv = (temp ^ (t[cur[3]] << kLzHashCrcShift1)) & hashMask
	return h2, hv
}

// hash5 extends hash4 with a fifth byte.
func (t *crcTable) hash5(cur []byte, hashMask uint32) (h2, h3, hv uint32) {
	temp := t[cur[0]] ^ uint32(cur[1])
	h2 = temp & (kHash2Size - 1)
	temp ^= uint32(cur[2]) << 8
	h3 = temp & (kHash3Size - 1)
	temp ^= t[cur[3]] << kLzHashCrcShift1
	hv = (temp ^ (t[cur[4]] << kLzHashCrcShift2)) & hashMask
	return h2, h3, hv
}

// hash5CacheEfficient mirrors hash5 without computing h3.
func (t *crcTable) hash5CacheEfficient(cur []byte, hashMask uint32) (h2, hv uint32) {
	temp := t[cur[0]] ^ uint32(cur[1])
	h2 = temp & (kHash2Size - 1)
	temp ^= uint32(cur[2]) << 8
	temp ^= t[cur[3]] << kLzHashCrcShift1
	hv = (temp ^ (t[cur[4]] << kLzHashCrcShift2)) & hashMask
	return h2, hv
}

// computeHashMask rounds sz down to the largest (2^N - 1) not exceeding
// blockCount-1, then forces the low 16 bits set so the result is never
// smaller than kHashGuarantee-1, preserving the H4/H5 collision
// guarantee (invariant 7) regardless of how small sz or blockCount are.
// Grounded on AOCL_HC_COMPUTE_HASH_MASK in LzFind.c.
func computeHashMask(sz, blockCount uint32) uint32 {
	hs := sz
	if hs != 0 {
		hs--
	}
	hs |= hs >> 1
	hs |= hs >> 2
	hs |= hs >> 4
	hs |= hs >> 8
	for blockCount > 0 && hs > blockCount-1 {
		hs >>= 1
	}
	hs |= kHashGuarantee - 1
	return hs
}

// computeCacheEfficientHashMask derives the block-count mask for the HC-CE
// layout: the smaller of historySize/expectedDataSize divided by the
// block's slot count gives a candidate block count, which computeHashMask
// then rounds down to a power-of-two-minus-one no larger than that
// candidate (and no smaller than kHashGuarantee-1).
func computeCacheEfficientHashMask(historySize, expectedDataSize, slotSize uint32) uint32 {
	hs := historySize
	if hs > expectedDataSize {
		hs = expectedDataSize
	}
	blockCandidate := hs / slotSize
	return computeHashMask(blockCandidate, blockCandidate)
}

// computeReferenceHashMask derives the hash-table mask for the BT and
// HC-ref layouts from the smaller of historySize/expectedDataSize,
// propagating bits the same way computeHashMask does but without the
// block-count clamp. Once the mask reaches 2^24 it is capped at 2^24-1 for
// numHashBytes 3 and halved for the other widths; the floor is always the
// low 16 bits, widened to 18 bits for numHashBytes 5. Grounded on the non-cache-efficient branch of
// AOCL_MatchFinder_Create / MatchFinder_Create in LzFind.c.
func computeReferenceHashMask(numHashBytes uint32, historySize, expectedDataSize uint32) uint32 {
	if numHashBytes == 2 {
		return (1 << 16) - 1
	}

	hs := historySize
	if hs > expectedDataSize {
		hs = expectedDataSize
	}
	if hs != 0 {
		hs--
	}
	hs |= hs >> 1
	hs |= hs >> 2
	hs |= hs >> 4
	hs |= hs >> 8
	hs >>= 1

	if hs >= (1 << 24) {
		if numHashBytes == 3 {
			hs = (1 << 24) - 1
		} else {
			hs >>= 1
		}
	}

	hs |= (1 << 16) - 1
	if numHashBytes >= 5 {
		hs |= (256 << kLzHashCrcShift2) - 1
	}
	return hs
}
