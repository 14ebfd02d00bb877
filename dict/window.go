package dict

import (
	"errors"
	"fmt"
	"io"
)

// Window is the sliding input buffer: a single fixed-size byte slice holding
// the "keep before" history a dictionary may still reference, the bytes at
// and ahead of the cursor available for matching, and a read-ahead margin
// refilled from an attached io.Reader as the cursor advances.
//
// Window owns the position bookkeeping shared by every dictionary layout
// (pos, posLimit, lenLimit, the cyclic buffer index) but not the dictionary's
// own stored positions (son/chain arrays); those live in bt.go/hcref.go/
// hcce.go and are normalized by the caller when CheckLimits reports it.
type Window struct {
	base   []byte
	bufPos int // cursor offset into base
	loaded int // end of valid data in base; loaded >= bufPos

	pos              Pos
	posLimit         Pos
	lenLimit         uint32
	cyclicBufferPos  uint32
	cyclicBufferSize uint32

	keepSizeBefore uint32
	keepSizeAfter  uint32
	matchMaxLen    uint32
	historySize    uint32
	numHashBytes   uint32
	blockSize      uint32

	// normalizeThreshold is the pos value that triggers normalization.
	// Zero reproduces the reference encoder's production behavior: rely on
	// natural uint32 wraparound (normalize only once pos overflows back to
	// 0), which in practice never fires below 4 GiB of input. Tests set a
	// small threshold so the normalization path is exercised without
	// processing gigabytes of data (SPEC_FULL.md §11: configurable
	// normalization threshold).
	normalizeThreshold Pos

	src         io.Reader
	streamEnded bool
	err         error
}

// NewWindow computes the keep-before/keep-after margins and backing block
// size the way MatchFinder_Create does, without allocating the buffer or
// attaching an input source yet (see Attach).
func NewWindow(historySize, matchMaxLen, keepAddBefore, keepAddAfter, numHashBytes uint32, normalizeThreshold Pos) (*Window, error) {
	if historySize > maxHistorySize {
		return nil, configErr("historySize", historySize, errors.New("exceeds 3 GiB ceiling"))
	}

	// We need one additional byte in keepSizeBefore since MoveBlock runs
	// after pos++ and before the dictionary uses the new position.
	keepSizeBefore := historySize + keepAddBefore + 1
	if keepSizeBefore < historySize {
		return nil, configErr("historySize", historySize, errors.New("keepSizeBefore overflowed 32 bits"))
	}

	keepAddAfter += matchMaxLen
	if keepAddAfter < numHashBytes {
		keepAddAfter = numHashBytes
	}
	keepSizeAfter := keepAddAfter

	blockSize, ok := computeBlockSize(keepSizeBefore, keepSizeAfter)
	if !ok {
		return nil, configErr("historySize", historySize, errors.New("block size computation overflowed or was rejected as too slow"))
	}

	return &Window{
		keepSizeBefore:     keepSizeBefore,
		keepSizeAfter:      keepSizeAfter,
		matchMaxLen:        matchMaxLen,
		historySize:        historySize,
		numHashBytes:       numHashBytes,
		blockSize:          blockSize,
		cyclicBufferSize:   historySize + 1,
		normalizeThreshold: normalizeThreshold,
	}, nil
}

// computeBlockSize mirrors GetBlockSize in the reference match finder: it
// pads keepSizeBefore+keepSizeAfter with a reserve (so MoveBlock doesn't run
// on every single ReadBlock) and rejects sizes that would make the reserve
// too small to be worth the moves it saves.
func computeBlockSize(keepSizeBefore, keepSizeAfter uint32) (uint32, bool) {
	blockSize := keepSizeBefore + keepSizeAfter
	if blockSize < keepSizeBefore {
		return 0, false
	}

	const kBlockSizeMax = ^uint32(0) - kBlockSizeAlign
	rem := kBlockSizeMax - blockSize
	shift := uint32(1)
	if blockSize >= (1 << 30) {
		shift = 2
	}
	reserve := (blockSize >> shift) + (1 << 12) + kBlockMoveAlign + kBlockSizeAlign

	if blockSize >= kBlockSizeMax || rem < kBlockSizeReserveMin {
		return 0, false
	}
	if reserve >= rem {
		blockSize = kBlockSizeMax
	} else {
		blockSize += reserve
		blockSize &^= uint32(kBlockSizeAlign - 1)
	}
	return blockSize, true
}

// Attach allocates the backing buffer, binds src as the input source, loads
// the first block, and primes pos/posLimit/lenLimit. It corresponds to
// MatchFinder_Init's buffer/position half (hash-table init lives in the
// dictionary layouts, not here).
func (w *Window) Attach(src io.Reader) error {
	w.base = make([]byte, w.blockSize)
	w.bufPos = 0
	w.loaded = 0
	w.src = src
	w.streamEnded = false
	w.err = nil

	// pos starts at 1: 0 is reserved as the "empty slot" marker in every
	// hash/chain table, so no real position may ever equal it.
	w.pos = 1
	w.cyclicBufferPos = w.pos

	if err := w.ReadBlock(); err != nil {
		return err
	}
	w.setLimits()
	return nil
}

// CurrentCursor returns the bytes at and ahead of the cursor currently held
// in the buffer. Callers must not retain it across a MoveBlock/ReadBlock.
func (w *Window) CurrentCursor() []byte { return w.base[w.bufPos:w.loaded] }

// ByteAt returns the byte offsetFromCursor positions from the cursor:
// 0 is the cursor byte, positive offsets look ahead, and negative offsets
// reach back into history (-1 is the immediately preceding byte).
func (w *Window) ByteAt(offsetFromCursor int) byte { return w.base[w.bufPos+offsetFromCursor] }

// AvailableBytes is the number of valid, unconsumed bytes starting at the
// cursor.
func (w *Window) AvailableBytes() uint32 { return uint32(w.loaded - w.bufPos) }

func (w *Window) Pos() Pos                   { return w.pos }
func (w *Window) PosLimit() Pos              { return w.posLimit }
func (w *Window) LenLimit() uint32           { return w.lenLimit }
func (w *Window) CyclicBufferPos() uint32    { return w.cyclicBufferPos }
func (w *Window) CyclicBufferSize() uint32   { return w.cyclicBufferSize }
func (w *Window) HistorySize() uint32        { return w.historySize }
func (w *Window) StreamEndWasReached() bool  { return w.streamEnded && w.err == nil }

// NeedMove reports whether the room left between the cursor and the end of
// the allocated buffer has shrunk to the read-ahead margin, meaning the
// buffer must be compacted before more data can be read in.
func (w *Window) NeedMove() bool {
	return len(w.base)-w.bufPos <= int(w.keepSizeAfter)
}

// MoveBlock compacts the buffer, discarding history beyond keepSizeBefore
// and sliding everything else down to base[0]. The copy source start is
// rounded down to a kBlockMoveAlign boundary, matching MatchFinder_MoveBlock,
// so repeated moves stay cheap and cache-friendly.
func (w *Window) MoveBlock() {
	offset := w.bufPos - int(w.keepSizeBefore)
	keepBefore := (offset & (kBlockMoveAlign - 1)) + int(w.keepSizeBefore)
	start := w.bufPos - keepBefore
	if start < 0 {
		start = 0
	}
	if start == 0 {
		return
	}
	copy(w.base, w.base[start:w.loaded])
	w.bufPos -= start
	w.loaded -= start
}

// ReadBlock fills the buffer until the read-ahead margin is satisfied or the
// source is exhausted. A non-EOF error is latched, wrapped in
// ErrSourceExhausted, and returned by the call that hit it; every later
// call returns nil without touching the source again.
func (w *Window) ReadBlock() error {
	if w.streamEnded {
		return nil
	}
	for int(w.AvailableBytes()) <= int(w.keepSizeAfter) {
		if w.loaded >= len(w.base) {
			break
		}
		n, err := w.src.Read(w.base[w.loaded:])
		if n > 0 {
			w.loaded += n
		}
		if err != nil {
			if err != io.EOF {
				w.err = fmt.Errorf("%w: %w", ErrSourceExhausted, err)
			}
			w.streamEnded = true
			break
		}
		if n == 0 {
			break
		}
	}
	return w.err
}

// Advance steps the cursor by one byte and reports whether pos has reached
// posLimit, in which case the caller must invoke CheckLimits before using
// the window again (mirrors MOVE_POS's inline check in the reference
// match finder).
func (w *Window) Advance() (atLimit bool) {
	w.bufPos++
	w.pos++
	return w.pos == w.posLimit
}

// CheckLimits refills the buffer when exactly keepSizeAfter bytes remain
// available, and reports whether the caller's own stored positions (the
// dictionary's son/chain arrays) must be normalized before anything else
// touches them. When normalize is true, the caller subtracts subValue
// (saturating at zero) from every stored position.
func (w *Window) CheckLimits() (normalize bool, subValue Pos, err error) {
	if w.keepSizeAfter == w.AvailableBytes() {
		if w.NeedMove() {
			w.MoveBlock()
		}
		err = w.ReadBlock()
	}

	trigger := w.pos == w.normalizeThreshold
	if trigger && w.AvailableBytes() >= w.numHashBytes {
		subValue = w.pos - w.historySize - 1
		w.pos -= subValue
		w.posLimit -= subValue
		normalize = true
	}

	if w.cyclicBufferPos == w.cyclicBufferSize {
		w.cyclicBufferPos = 0
	}
	w.setLimits()
	return normalize, subValue, err
}

// AdvanceCyclicBufferPos steps the cyclic buffer index a dictionary uses to
// index its son/chain arrays. It is separate from Advance/pos because a
// layout may choose not to advance it for skipped bytes (none currently do,
// but the split matches the reference source's independent fields).
func (w *Window) AdvanceCyclicBufferPos() { w.cyclicBufferPos++ }

// setLimits recomputes posLimit and lenLimit from the current pos, cyclic
// buffer state, and available bytes, following MatchFinder_SetLimits.
func (w *Window) setLimits() {
	n := w.normalizeThreshold - w.pos
	if n == 0 {
		n = ^uint32(0)
	}

	if k := w.cyclicBufferSize - w.cyclicBufferPos; k < n {
		n = k
	}

	k := w.AvailableBytes()
	ksa := w.keepSizeAfter
	mm := w.matchMaxLen
	if k > ksa {
		k -= ksa
	} else if k >= mm {
		k -= mm
		k++
	} else {
		mm = k
		if k != 0 {
			k = 1
		}
	}
	w.lenLimit = mm
	if k < n {
		n = k
	}
	w.posLimit = w.pos + n
}
