package dict

import "encoding/binary"

// HeaderSize is the length in bytes of the stream header this package
// knows how to produce: everything past it (the entropy-coded payload) is
// owned by the caller.
const HeaderSize = 5

// EncodeHeader writes the 5-byte LZMA stream header for cfg: byte 0 packs
// the literal-context parameters, bytes 1..4 are the little-endian
// dictionary size. Per spec, a decoder clamps the dictionary size up to a
// minimum of 4 KiB; this encoder writes the configured size verbatim.
func EncodeHeader(cfg *Config) ([HeaderSize]byte, error) {
	var out [HeaderSize]byte
	b0, err := cfg.HeaderByte0()
	if err != nil {
		return out, err
	}
	out[0] = b0
	binary.LittleEndian.PutUint32(out[1:], cfg.DictSize)
	return out, nil
}

// DecodeHeader recovers (lc, lp, pb, dictSize) from a 5-byte header,
// clamping dictSize up to the 4 KiB minimum a decoder is required to
// honor.
func DecodeHeader(header [HeaderSize]byte) (lc, lp, pb int, dictSize uint32) {
	v := int(header[0])
	lc = v % 9
	v /= 9
	lp = v % 5
	pb = v / 5

	dictSize = binary.LittleEndian.Uint32(header[1:])
	if dictSize < minDictSize {
		dictSize = minDictSize
	}
	return lc, lp, pb, dictSize
}
