package dict

// btDict is the binary-tree dictionary layout used at the higher
// compression levels: son holds two Pos values (left child, right child)
// per cyclic-buffer slot, and every lookup both searches the tree rooted
// at the hashed position and re-splices it so the next lookup at that hash
// value starts from an up-to-date tree. Grounded on GetMatchesSpec1 in the
// reference match finder; the left/right slot convention (slot*2 = left
// child value, slot*2+1 = right child value) and the "insert by splicing
// out the exact-match node" behavior are kept as-is.
type btDict struct {
	son []Pos
}

func newBTDict(cyclicBufferSize uint32) *btDict {
	return &btDict{son: make([]Pos, uint64(cyclicBufferSize)*2)}
}

// getMatches searches the tree for curMatch's hash bucket, emitting
// strictly-increasing-length pairs, and splices the current position into
// the tree in the process. cutValue bounds how many tree nodes are visited.
func (d *btDict) getMatches(w *Window, curMatch Pos, cutValue, maxLen uint32, dst []Pair) ([]Pair, uint32) {
	base := w.base
	curOff := w.bufPos
	pos := w.pos
	cyclicBufferPos := w.cyclicBufferPos
	cyclicBufferSize := w.cyclicBufferSize
	lenLimit := w.lenLimit

	ptr0 := cyclicBufferPos*2 + 1 // root's right-child slot, filled in on exit
	ptr1 := cyclicBufferPos * 2   // root's left-child slot, filled in on exit
	var len0, len1 uint32

	var cmCheck Pos
	if pos > cyclicBufferSize {
		cmCheck = pos - cyclicBufferSize
	}

	for cmCheck < curMatch && cutValue > 0 {
		delta := pos - curMatch
		pairIdx := cyclicBufferPos - delta
		if delta > cyclicBufferPos {
			pairIdx += cyclicBufferSize
		}
		pairIdx *= 2
		candOff := curOff - int(delta)

		length := len0
		if len1 < length {
			length = len1
		}
		pairLeft := d.son[pairIdx]
		pairRight := d.son[pairIdx+1]

		cb := base[candOff+int(length)]
		cc := base[curOff+int(length)]
		if cb == cc {
			length = extendMatch(base, curOff, candOff, length, lenLimit)
			if maxLen < length {
				maxLen = length
				dst = append(dst, Pair{Len: length, Dist: delta - 1})
				if length == lenLimit {
					d.son[ptr1] = pairLeft
					d.son[ptr0] = pairRight
					return dst, maxLen
				}
			}
			cb = base[candOff+int(length)]
			cc = base[curOff+int(length)]
		}

		if cb < cc {
			d.son[ptr1] = curMatch
			curMatch = pairRight
			ptr1 = pairIdx + 1
			len1 = length
		} else {
			d.son[ptr0] = curMatch
			curMatch = pairLeft
			ptr0 = pairIdx
			len0 = length
		}

		cutValue--
	}

	d.son[ptr0] = emptyPos
	d.son[ptr1] = emptyPos
	return dst, maxLen
}

// skip walks and re-splices the tree the same way getMatches does, without
// collecting any pairs. It mirrors SkipMatchesSpec rather than calling
// getMatches with an unreachable maxLen: on a candidate that matches all the
// way to lenLimit, the tree must still be spliced (both subtrees swapped in
// under the current node) and the walk must stop there, exactly as
// getMatches does on that same condition. Driving getMatches with
// maxLen = lenLimit+1 looks equivalent but isn't: the "maxLen < length"
// branch that performs that splice-and-return never fires, so a full-length
// candidate falls through and the walk reads past the matched region and
// keeps descending one-directionally, building a different tree than
// getMatches would from the same position.
func (d *btDict) skip(w *Window, curMatch Pos, cutValue uint32) {
	base := w.base
	curOff := w.bufPos
	pos := w.pos
	cyclicBufferPos := w.cyclicBufferPos
	cyclicBufferSize := w.cyclicBufferSize
	lenLimit := w.lenLimit

	ptr0 := cyclicBufferPos*2 + 1
	ptr1 := cyclicBufferPos * 2
	var len0, len1 uint32

	var cmCheck Pos
	if pos > cyclicBufferSize {
		cmCheck = pos - cyclicBufferSize
	}

	for cmCheck < curMatch && cutValue > 0 {
		delta := pos - curMatch
		pairIdx := cyclicBufferPos - delta
		if delta > cyclicBufferPos {
			pairIdx += cyclicBufferSize
		}
		pairIdx *= 2
		candOff := curOff - int(delta)

		length := len0
		if len1 < length {
			length = len1
		}
		pairLeft := d.son[pairIdx]
		pairRight := d.son[pairIdx+1]

		if base[candOff+int(length)] == base[curOff+int(length)] {
			length = extendMatch(base, curOff, candOff, length, lenLimit)
			if length == lenLimit {
				d.son[ptr1] = pairLeft
				d.son[ptr0] = pairRight
				return
			}
		}

		if base[candOff+int(length)] < base[curOff+int(length)] {
			d.son[ptr1] = curMatch
			curMatch = pairRight
			ptr1 = pairIdx + 1
			len1 = length
		} else {
			d.son[ptr0] = curMatch
			curMatch = pairLeft
			ptr0 = pairIdx
			len0 = length
		}

		cutValue--
	}

	d.son[ptr0] = emptyPos
	d.son[ptr1] = emptyPos
}

func (d *btDict) normalize(subValue Pos) { Normalize3(subValue, d.son) }
