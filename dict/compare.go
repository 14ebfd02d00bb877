package dict

import (
	"encoding/binary"
	"math/bits"
)

// extendMatch returns how far two candidate match regions in base agree,
// starting from the already-confirmed prefix length start and never
// exceeding limit. It compares four bytes at a time and uses the trailing
// zero count of the XOR to locate the first differing byte, the portable
// equivalent of the reference match finder's 32-bit XOR + __builtin_ctz
// comparator (AOCL_FIND_MATCHING_BYTES_LEN); the tail under four bytes
// falls back to a byte-wise loop. Grounded also on the _getLE64 +
// bits.TrailingZeros64 idiom used for the same purpose in ulikunitz's LZ
// hash matcher.
func extendMatch(base []byte, curOff, candOff int, start, limit uint32) uint32 {
	n := start
	for n+4 <= limit {
		c1 := binary.LittleEndian.Uint32(base[candOff+int(n):])
		c2 := binary.LittleEndian.Uint32(base[curOff+int(n):])
		if d := c1 ^ c2; d != 0 {
			return n + uint32(bits.TrailingZeros32(d))>>3
		}
		n += 4
	}
	for n < limit && base[candOff+int(n)] == base[curOff+int(n)] {
		n++
	}
	return n
}
