package dict

import (
	"io"

	"github.com/aocl-go/lzdict/internal/logging"
)

// MatchFinder is the assembled dictionary search engine: a Window feeding a
// CRC-based hash front end, a pair of fixed short-match tables, and one of
// the three interchangeable main dictionary layouts (BT, HC-ref, HC-CE)
// selected by Config. It is the type every other package in this module
// drives through GetMatches/Skip.
type MatchFinder struct {
	cfg *Config
	win *Window
	crc crcTable
	log *logging.Logger

	fixed    *fixedHashTables
	layout   dictLayout
	hashMask uint32

	// mainHash holds the main dictionary's per-hash-value head position.
	// BT and HC-ref keep their chain/tree links entirely inside son, so they
	// need this external head table; HC-CE folds the head into slot 0 of
	// each chain block instead, so mainHash stays nil when
	// CacheEfficientSearch is set.
	mainHash []Pos
}

// New builds a MatchFinder from a resolved Config. It allocates the hash
// tables and the chosen dictionary layout's backing array but does not read
// any input yet; call Attach for that.
func New(cfg *Config, log *logging.Logger) (*MatchFinder, error) {
	if log == nil {
		log = logging.NewNop()
	}

	win, err := NewWindow(cfg.DictSize, cfg.FB, 0, 0, cfg.NumHashBytes, cfg.NormalizeThreshold)
	if err != nil {
		return nil, err
	}

	expected := cfg.DictSize
	if cfg.ExpectedDataSize != 0 {
		if cfg.ExpectedDataSize > uint64(^uint32(0)) {
			expected = ^uint32(0)
		} else {
			expected = uint32(cfg.ExpectedDataSize)
		}
	}

	var hashMask uint32
	if cfg.CacheEfficientSearch {
		hashMask = computeCacheEfficientHashMask(cfg.DictSize, expected, cfg.BlockSlots)
	} else {
		hashMask = computeReferenceHashMask(cfg.NumHashBytes, cfg.DictSize, expected)
	}
	if hashMask < kHashGuarantee-1 {
		return nil, configErr("hashMask", hashMask, ErrHashMaskTooSmall)
	}

	var layout dictLayout
	var mainHash []Pos
	switch {
	case cfg.CacheEfficientSearch && cfg.BlockSlots == blockSlotsLarge:
		layout = newHCCEDict(block16{}, hashMask)
	case cfg.CacheEfficientSearch:
		layout = newHCCEDict(block8{}, hashMask)
	case cfg.BtMode:
		layout = newBTDict(win.CyclicBufferSize())
		mainHash = make([]Pos, uint64(hashMask)+1)
	default:
		layout = newHCRefDict(win.CyclicBufferSize())
		mainHash = make([]Pos, uint64(hashMask)+1)
	}

	mf := &MatchFinder{
		cfg:      cfg,
		win:      win,
		crc:      newCRCTable(),
		log:      log,
		fixed:    newFixedHashTables(cfg.NumHashBytes, cfg.CacheEfficientSearch),
		layout:   layout,
		hashMask: hashMask,
		mainHash: mainHash,
	}
	log.Debugw("match finder constructed",
		"btMode", cfg.BtMode, "cacheEfficientSearch", cfg.CacheEfficientSearch,
		"numHashBytes", cfg.NumHashBytes, "hashMask", hashMask, "dictSize", cfg.DictSize)

	return mf, nil
}

// Attach binds src as the byte source the window reads ahead from and
// primes the initial position. It must be called exactly once, before the
// first GetMatches/Skip call.
func (mf *MatchFinder) Attach(src io.Reader) error {
	return mf.win.Attach(src)
}

// AvailableBytes is the number of valid, unconsumed bytes starting at the
// current cursor.
func (mf *MatchFinder) AvailableBytes() uint32 { return mf.win.AvailableBytes() }

// CurrentCursor returns the bytes at and ahead of the cursor. The slice is
// only valid until the next GetMatches/Skip call.
func (mf *MatchFinder) CurrentCursor() []byte { return mf.win.CurrentCursor() }

// Pos is the number of bytes consumed from the input so far.
func (mf *MatchFinder) Pos() Pos { return mf.win.Pos() }

// StreamEndWasReached reports whether the attached source has been fully
// drained with no outstanding read error.
func (mf *MatchFinder) StreamEndWasReached() bool { return mf.win.StreamEndWasReached() }

// Config returns the resolved configuration this MatchFinder was built
// from.
func (mf *MatchFinder) Config() *Config { return mf.cfg }
