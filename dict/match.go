package dict

// dictLayout is the shape every main dictionary structure (BT, HC-ref,
// HC-CE) presents to the match enumerator. seed means different things per
// layout: a stored position for BT/HC-ref, a raw hash value for HC-CE,
// both representable as Pos since Pos is a plain uint32 alias. The
// enumerator never needs to know which; it just passes through whatever
// mainSeed handed it.
type dictLayout interface {
	getMatches(w *Window, seed uint32, cutValue, maxLen uint32, dst []Pair) ([]Pair, uint32)
	skip(w *Window, seed uint32, cutValue uint32)
	normalize(subValue Pos)
}

// computeHashes derives the short-match (h2, h3) and main-dictionary (hv)
// hash values for the bytes at the cursor, per the active configuration.
// hasH3 mirrors fixedHashTables' own gating exactly (true only when
// numHashBytes==5 and the layout isn't cache-efficient) so callers never
// need to re-derive it.
func (mf *MatchFinder) computeHashes(cur []byte) (h2, h3, hv uint32, hasH3 bool) {
	if mf.cfg.CacheEfficientSearch {
		if mf.cfg.NumHashBytes == 5 {
			h2, hv = mf.crc.hash5CacheEfficient(cur, mf.hashMask)
		} else {
			h2, hv = mf.crc.hash4CacheEfficient(cur, mf.hashMask)
		}
		return h2, 0, hv, false
	}
	if mf.cfg.NumHashBytes == 5 {
		h2, h3, hv = mf.crc.hash5(cur, mf.hashMask)
		return h2, h3, hv, true
	}
	h2, h3, hv = mf.crc.hash4(cur, mf.hashMask)
	return h2, h3, hv, false
}

// mainSeed reads (for BT/HC-ref) and replaces the main hash table's prior
// occupant for hv with pos, or (for HC-CE, which keeps no separate head
// table) simply returns hv itself, since hcCEDict derives its own head from
// the hash value.
func (mf *MatchFinder) mainSeed(hv uint32, pos Pos) uint32 {
	if mf.cfg.CacheEfficientSearch {
		return hv
	}
	prev := mf.mainHash[hv]
	mf.mainHash[hv] = pos
	return prev
}

// probeShort checks the 2-byte and (when present) 3-byte fixed tables for a
// candidate ahead of the main dictionary search, inserting pos into both
// along the way. Grounded on the hash2/hash3 candidate checks that precede
// the tree/chain walk in Bt4MatchFinder_GetMatches and Hc4_MatchFinder_
// GetMatches, simplified to share extendMatch instead of duplicating the
// byte-compare loop per candidate.
func (mf *MatchFinder) probeShort(base []byte, curOff int, pos, lenLimit, maxLen uint32, h2, h3 uint32, hasH3 bool, dst []Pair) ([]Pair, uint32) {
	if prev2 := mf.fixed.insert2(h2, pos); prev2 != emptyPos {
		if delta := pos - prev2; delta < mf.win.CyclicBufferSize() {
			candOff := curOff - int(delta)
			if base[candOff] == base[curOff] {
				length := extendMatch(base, curOff, candOff, 1, lenLimit)
				if length > maxLen {
					maxLen = length
					dst = append(dst, Pair{Len: length, Dist: delta - 1})
				}
			}
		}
	}

	if hasH3 {
		if prev3 := mf.fixed.insert3(h3, pos); prev3 != emptyPos {
			if delta := pos - prev3; delta < mf.win.CyclicBufferSize() {
				candOff := curOff - int(delta)
				if maxLen < lenLimit && base[candOff+int(maxLen-1)] == base[curOff+int(maxLen-1)] {
					length := extendMatch(base, curOff, candOff, 0, lenLimit)
					if length >= 3 && length > maxLen {
						maxLen = length
						dst = append(dst, Pair{Len: length, Dist: delta - 1})
					}
				}
			}
		}
	}

	return dst, maxLen
}

// GetMatches advances the window by one byte and returns every match found
// at the position it was sitting on before advancing, strictly increasing
// in Len, longest last. An empty result (nil when dst is nil) means no match
// of at least 2 bytes was found there. dst's existing contents are
// discarded; its backing array is reused when there's room.
func (mf *MatchFinder) GetMatches(dst []Pair) ([]Pair, error) {
	dst = dst[:0]

	if mf.win.LenLimit() < mf.cfg.NumHashBytes {
		mf.win.AdvanceCyclicBufferPos()
		if mf.win.Advance() {
			if _, _, err := mf.win.CheckLimits(); err != nil {
				return dst, err
			}
		}
		return dst, nil
	}

	base := mf.win.base
	curOff := mf.win.bufPos
	cur := mf.win.CurrentCursor()
	pos := mf.win.Pos()
	lenLimit := mf.win.LenLimit()

	h2, h3, hv, hasH3 := mf.computeHashes(cur)

	maxLen := uint32(1)
	dst, maxLen = mf.probeShort(base, curOff, pos, lenLimit, maxLen, h2, h3, hasH3, dst)

	seed := mf.mainSeed(hv, pos)

	if maxLen < lenLimit {
		dst, _ = mf.layout.getMatches(mf.win, seed, mf.cfg.MC, maxLen, dst)
	} else {
		mf.layout.skip(mf.win, seed, mf.cfg.MC)
	}

	mf.win.AdvanceCyclicBufferPos()
	if mf.win.Advance() {
		normalize, subValue, err := mf.win.CheckLimits()
		if err != nil {
			return dst, err
		}
		if normalize {
			mf.normalizeAll(subValue)
		}
	}

	return dst, nil
}

// Skip advances the window num bytes without collecting matches, inserting
// every skipped position into the fixed tables, the main hash table (if
// any), and the active dictionary layout, so a later GetMatches still sees
// them as match candidates. Grounded on Bt4MatchFinder_Skip/Hc4_
// MatchFinder_Skip.
func (mf *MatchFinder) Skip(num uint32) error {
	for i := uint32(0); i < num; i++ {
		if mf.win.LenLimit() < mf.cfg.NumHashBytes {
			mf.win.AdvanceCyclicBufferPos()
			if mf.win.Advance() {
				if _, _, err := mf.win.CheckLimits(); err != nil {
					return err
				}
			}
			continue
		}

		cur := mf.win.CurrentCursor()
		pos := mf.win.Pos()
		h2, h3, hv, hasH3 := mf.computeHashes(cur)

		mf.fixed.insert2(h2, pos)
		if hasH3 {
			mf.fixed.insert3(h3, pos)
		}

		seed := mf.mainSeed(hv, pos)
		mf.layout.skip(mf.win, seed, mf.cfg.MC)

		mf.win.AdvanceCyclicBufferPos()
		if mf.win.Advance() {
			normalize, subValue, err := mf.win.CheckLimits()
			if err != nil {
				return err
			}
			if normalize {
				mf.normalizeAll(subValue)
			}
		}
	}
	return nil
}

// normalizeAll subtracts subValue from every stored position this
// MatchFinder owns: the fixed tables, the main hash table (BT/HC-ref only),
// and the active layout's own son/chain array.
func (mf *MatchFinder) normalizeAll(subValue Pos) {
	mf.fixed.normalize(subValue)
	mf.layout.normalize(subValue)
	if mf.mainHash != nil {
		Normalize3(subValue, mf.mainHash)
	}
}
