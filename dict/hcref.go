package dict

// hcRefDict is the reference hash-chain dictionary layout: a single array
// of one Pos per cyclic-buffer slot, where son[cyclicBufferPos] links back
// to whatever position previously occupied that slot. Walking a chain
// means repeatedly looking up that link at the delta-adjusted slot for the
// current candidate, exactly mirroring a singly linked list without ever
// storing a pointer. Grounded on Hc_GetMatchesSpec in the reference match
// finder, with the chain-walk's "fetch next link before comparing bytes"
// order kept as-is, and on the resume-from-a-probe-byte idiom in
// slidingWindowDict.searchBestMatch for the maxLen pre-check.
type hcRefDict struct {
	son []Pos
}

func newHCRefDict(cyclicBufferSize uint32) *hcRefDict {
	return &hcRefDict{son: make([]Pos, cyclicBufferSize)}
}

// getMatches inserts pos at the chain's current cyclic slot, linking to
// prevHead (the hash table's prior occupant for this hash value), then
// walks the chain emitting strictly-increasing-length pairs until cutValue
// nodes have been visited, the chain runs out, or lenLimit is reached.
func (d *hcRefDict) getMatches(w *Window, prevHead Pos, cutValue, maxLen uint32, dst []Pair) ([]Pair, uint32) {
	base := w.base
	curOff := w.bufPos
	pos := w.pos
	cyclicBufferPos := w.cyclicBufferPos
	cyclicBufferSize := w.cyclicBufferSize
	lenLimit := w.lenLimit

	d.son[cyclicBufferPos] = prevHead
	curMatch := prevHead

	for curMatch != emptyPos && cutValue > 0 {
		delta := pos - curMatch
		if delta >= cyclicBufferSize {
			break
		}

		idx := cyclicBufferPos - delta
		if delta > cyclicBufferPos {
			idx += cyclicBufferSize
		}
		next := d.son[idx]

		candOff := curOff - int(delta)
		if maxLen < lenLimit && base[candOff+int(maxLen)] == base[curOff+int(maxLen)] {
			length := extendMatch(base, curOff, candOff, 0, lenLimit)
			if length > maxLen {
				maxLen = length
				dst = append(dst, Pair{Len: length, Dist: delta - 1})
				if length == lenLimit {
					return dst, maxLen
				}
			}
		}

		curMatch = next
		cutValue--
	}
	return dst, maxLen
}

// skip inserts pos into the chain without searching it, for the match
// enumerator's fast-forward path. cutValue is unused here (insertion is
// O(1) regardless of chain length) and present only so every dictionary
// layout's skip has the same shape.
func (d *hcRefDict) skip(w *Window, prevHead Pos, _ uint32) {
	d.son[w.cyclicBufferPos] = prevHead
}

func (d *hcRefDict) normalize(subValue Pos) { Normalize3(subValue, d.son) }
