package dict

import "testing"

func TestCRCTableMatchesKnownValue(t *testing.T) {
	crc := newCRCTable()
	// crc[1] for the standard 0xEDB88320 reversed polynomial is a
	// well-known constant used to sanity-check table construction.
	const want = 0x77073096
	if crc[1] != want {
		t.Errorf("crc[1] = 0x%08X, want 0x%08X", crc[1], want)
	}
	if crc[0] != 0 {
		t.Errorf("crc[0] = 0x%08X, want 0", crc[0])
	}
}

func TestHash4Deterministic(t *testing.T) {
	crc := newCRCTable()
	data := []byte("abcdabcd")
	_, _, hv1 := crc.hash4(data[0:], 0xFFFFFF)
	_, _, hv2 := crc.hash4(data[4:], 0xFFFFFF)
	if hv1 != hv2 {
		t.Errorf("identical 4-byte prefixes hashed differently: %d != %d", hv1, hv2)
	}
}

func TestHash4CollisionImpliesH2H3Match(t *testing.T) {
	// Invariant 7: whenever two cursors collide on H4's hash value (with a
	// hashMask wide enough to include the low 16 bits), their first three
	// bytes must already be equal. We can't force a collision directly, but
	// we can verify the converse never happens: distinct first-3-byte
	// prefixes should essentially never collide across a reasonably sized
	// sample, and when h2/h3 do differ, hv must differ too given a
	// sufficiently wide mask.
	crc := newCRCTable()
	const hashMask = (1 << 22) - 1 // wide enough to carry low 16 bits
	seen := map[uint32][2]uint32{} // hv -> (h2,h3) first seen
	for i := 0; i < 4096; i++ {
		buf := []byte{byte(i), byte(i >> 8), byte(i >> 4), byte(i ^ 0x55)}
		h2, h3, hv := crc.hash4(buf, hashMask)
		if prev, ok := seen[hv]; ok {
			if prev[0] != h2 || prev[1] != h3 {
				t.Fatalf("hv=%d collided across different (h2,h3) pairs: %v vs %v", hv, prev, [2]uint32{h2, h3})
			}
		} else {
			seen[hv] = [2]uint32{h2, h3}
		}
	}
}

func TestComputeHashMaskFloor(t *testing.T) {
	mask := computeHashMask(0, 0)
	if mask != kHashGuarantee-1 {
		t.Errorf("computeHashMask(0,0) = %d, want %d", mask, kHashGuarantee-1)
	}
}

func TestComputeReferenceHashMaskWidensForNumHashBytes5(t *testing.T) {
	m4 := computeReferenceHashMask(4, 1<<20, 1<<20)
	m5 := computeReferenceHashMask(5, 1<<20, 1<<20)
	if m5 < m4 {
		t.Errorf("numHashBytes=5 mask (%d) should be >= numHashBytes=4 mask (%d)", m5, m4)
	}
	if m4&0xFFFF != 0xFFFF {
		t.Errorf("reference hash mask must always carry the low 16 bits set, got %#x", m4)
	}
}

func TestComputeCacheEfficientHashMaskRespectsBlockCount(t *testing.T) {
	mask := computeCacheEfficientHashMask(1<<20, 1<<20, blockSlotsLarge)
	blocks := mask + 1
	if blocks&(blocks-1) != 0 {
		t.Errorf("block count %d is not a power of two", blocks)
	}
}
