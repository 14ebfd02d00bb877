package dict

import "encoding/binary"

// blockLayout parameterizes the cache-efficient hash-chain dictionary over
// its fixed block size, so the Go compiler monomorphizes one copy of
// hcCEDict's methods per layout instead of branching on a block-size field
// at every access. This generalizes the macro-based code generation the
// reference match finder uses to produce its 8-slot and 16-slot variants
// (AOCL_HC_GETMATCHES_SPEC(HASH_CHAIN_SLOT_SZ_8/16, ...)), following the
// same generics-over-index-width pattern used elsewhere in this module's
// matcher code.
type blockLayout interface {
	slotSize() uint32
	maxChain() uint32
}

// block8 is the layout used below level 2: 1 head slot + 7 chain nodes.
type block8 struct{}

func (block8) slotSize() uint32 { return blockSlotsSmall }
func (block8) maxChain() uint32 { return blockChainMaxSmall }

// block16 is the layout used at level 2 and above: 1 head slot + 15 chain
// nodes, trading memory for longer chains per hash bucket.
type block16 struct{}

func (block16) slotSize() uint32 { return blockSlotsLarge }
func (block16) maxChain() uint32 { return blockChainMaxLarge }

// circIncHead/circDecHead are the generic equivalents of
// AOCL_COMMON_CEHCFIX_CIRC_INC_HEAD/_CIRC_DEC_HEAD: cur must stay within
// [hcBase+1, hcBase+maxChain], wrapping across the block's slots 1..N-1
// while always skipping slot 0 (the head pointer).
func circIncHead[L blockLayout](l L, cur uint32) uint32 {
	sz, mx := l.slotSize(), l.maxChain()
	if (cur+1)%sz != 0 {
		return cur + 1
	}
	return cur + 1 - mx
}

func circDecHead[L blockLayout](l L, cur uint32) uint32 {
	sz, mx := l.slotSize(), l.maxChain()
	if (cur-1)%sz != 0 {
		return cur - 1
	}
	return cur + mx - 1
}

// hcCEDict is the cache-efficient hash-chain dictionary: chain is a flat
// array of fixed-size blocks, one block per hash value, where slot 0 holds
// a head index (into the same block) and slots 1..N-1 are a circular
// buffer of chain nodes. Because every hash value's chain lives in one
// contiguous block, a chain walk never leaves the cache line(s) its head
// lookup already touched, the property the layout is named for. Grounded
// on aoclHashChain.h's AOCL_COMMON_CEHCFIX_* macros and
// AOCL_Hc_GetMatchesSpec_8/_16 in LzFind.c.
type hcCEDict[L blockLayout] struct {
	layout L
	chain  []Pos
}

func newHCCEDict[L blockLayout](layout L, hashMask uint32) *hcCEDict[L] {
	blocks := uint64(hashMask) + 1
	return &hcCEDict[L]{
		layout: layout,
		chain:  make([]Pos, blocks*uint64(layout.slotSize())),
	}
}

// getHead returns the block's base index and its current head slot,
// defaulting an empty block's head to its first chain node (hcBase+1), per
// AOCL_COMMON_CEHCFIX_GET_HEAD.
func (d *hcCEDict[L]) getHead(hv uint32) (hcBase, headPos uint32) {
	hcBase = hv * d.layout.slotSize()
	headPos = uint32(d.chain[hcBase])
	if headPos == uint32(emptyPos) {
		headPos = hcBase + 1
	}
	return hcBase, headPos
}

// insert links val in as the new chain head: it decrements circularly to
// the next slot (the oldest node, overwritten, once the block is full),
// writes val there, and repoints the block's head slot at it. Per
// AOCL_COMMON_CEHCFIX_INSERT, chains grow backward, so a forward walk from
// the head always visits the newest node first.
func (d *hcCEDict[L]) insert(hcBase uint32, headPos *uint32, val Pos) {
	newHead := circDecHead(d.layout, *headPos)
	assertInvariant(newHead > hcBase && newHead < hcBase+d.layout.slotSize(),
		"headPos %d outside block [%d, %d]", newHead, hcBase+1, hcBase+d.layout.maxChain())
	assertInvariant(val != emptyPos, "inserted position collides with the empty-slot marker")
	d.chain[newHead] = val
	d.chain[hcBase] = Pos(newHead)
	*headPos = newHead
}

// getMatches walks the chain for hv, a delta-bounded 2-then-4-byte probe at
// the current best length before committing to a full byte comparison
// (AOCL_HC_GETMATCHES_SPEC), then inserts pos at the chain head. Returns
// the extended dst slice and the new running maxLen.
func (d *hcCEDict[L]) getMatches(w *Window, hv, cutValue, maxLen uint32, dst []Pair) ([]Pair, uint32) {
	base := w.base
	curOff := w.bufPos
	pos := w.pos
	cyclicBufferSize := w.cyclicBufferSize
	lenLimit := w.lenLimit

	hcBase, headPos := d.getHead(hv)
	hcCur := headPos
	curMatch := d.chain[hcCur]

	if maxLen == 0 {
		maxLen = 1
	}

	if curMatch != emptyPos {
		delta := pos - curMatch
		if delta < cyclicBufferSize {
			checkLen := maxLen - 1
			for {
				diff := -int(delta)
				checkOff := curOff + int(checkLen)
				if binary.LittleEndian.Uint16(base[checkOff:]) == binary.LittleEndian.Uint16(base[checkOff+diff:]) &&
					binary.LittleEndian.Uint32(base[curOff:]) == binary.LittleEndian.Uint32(base[curOff+diff:]) {

					length := extendMatch(base, curOff, curOff+diff, 4, lenLimit)
					if length > maxLen {
						dst = append(dst, Pair{Len: length, Dist: delta - 1})
						if length == lenLimit {
							d.insert(hcBase, &headPos, pos)
							return dst, length
						}
						maxLen = length
						checkLen = maxLen
						if maxLen >= lenLimit-1 {
							checkLen = maxLen - 1
						}
					}
				}

				hcCur = circIncHead(d.layout, hcCur)
				if hcCur == headPos {
					break
				}
				val := d.chain[hcCur]
				if val == emptyPos {
					break
				}
				curMatch = val
				delta = pos - curMatch
				if delta >= cyclicBufferSize {
					break
				}
				if cutValue == 0 {
					break
				}
				cutValue--
			}
		}
	}

	d.insert(hcBase, &headPos, pos)
	return dst, maxLen
}

// skip inserts pos into hv's chain without searching it. cutValue is
// unused, kept only so every dictionary layout's skip has the same shape.
func (d *hcCEDict[L]) skip(w *Window, hv uint32, _ uint32) {
	hcBase, headPos := d.getHead(hv)
	d.insert(hcBase, &headPos, w.pos)
}

func (d *hcCEDict[L]) normalize(subValue Pos) {
	NormalizeHashChainBlocks(subValue, d.chain, d.layout.slotSize())
}
