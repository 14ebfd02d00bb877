package dict

import (
	"fmt"

	"github.com/aocl-go/lzdict/internal/logging"
)

// thresholds from the reference match finder's header: below this input
// size, cache-efficient search never pays for itself; above it, it always
// does. Between them it only kicks in for a 4-byte hash.
const (
	maxSizeForCacheEfficientOff = 1 << 15           // 32 KiB
	minSizeForCacheEfficientOn  = kHashGuarantee * blockSlotsSmall // 512 KiB
)

// levelParams is the level-indexed table of derived defaults, in the shape
// of a classic LZMA encoder preset table (dictSize, fast-bytes, cut-value
// grow with level; lc/lp/pb stay at their conventional defaults
// regardless of level and are overridden independently).
type levelParams struct {
	dictSize uint32
	fb       uint32
	mc       uint32
}

var fixedLevels = [10]levelParams{
	{1 << 16, 32, 16},
	{1 << 20, 32, 32},
	{1 << 20, 32, 32},
	{1 << 20, 32, 32},
	{1 << 22, 32, 16},
	{1 << 24, 32, 32},
	{1 << 24, 32, 32},
	{1 << 25, 64, 64},
	{1 << 26, 64, 64},
	{1 << 26, 64, 64},
}

const defaultLevel = 6

// Options is the user-facing, partially-specified configuration: any field
// left at its zero/unset sentinel is derived from Level. -1 is the unset
// sentinel for fields whose valid range includes 0; a nil pointer is the
// unset sentinel for tri-state booleans.
type Options struct {
	Level            int // -1: default (6)
	ExpectedDataSize uint64

	DictSize     uint32 // 0: derive from level
	FB           uint32 // 0: derive from level
	MC           uint32 // 0: derive from level
	NumHashBytes uint32 // 0: derive from btMode

	LC int // -1: derive (3)
	LP int // -1: derive (0)
	PB int // -1: derive (2)

	BtMode               *bool
	CacheEfficientSearch *bool

	// NormalizeThreshold overrides the pos value that triggers Position
	// Normalizer; zero reproduces production behavior (normalize only on
	// natural uint32 wraparound). Tests set a small value so normalization
	// runs without gigabytes of input.
	NormalizeThreshold Pos
}

// Config is the fully resolved, validated configuration a MatchFinder is
// built from. Grounded on AOCL_MatchFinder_Create's level-derived sizing
// and the MAX_SIZE_FOR_CE_HC_OFF/MIN_SIZE_FOR_CE_HC_ON thresholds in
// LzFind.h.
type Config struct {
	Level                int
	ExpectedDataSize     uint64
	BtMode               bool
	NumHashBytes         uint32
	CacheEfficientSearch bool
	DictSize             uint32
	FB                   uint32
	MC                   uint32
	LC, LP, PB           int
	BlockSlots           uint32 // 8 or 16, meaningful only when CacheEfficientSearch
	NormalizeThreshold   Pos
}

// HeaderByte0 computes the packed literal-parameter byte an LZMA stream
// header stores, rejecting combinations the format cannot represent.
func (c *Config) HeaderByte0() (byte, error) {
	v := (c.PB*5+c.LP)*9 + c.LC
	if v >= 225 {
		return 0, fmt.Errorf("%w: (pb*5+lp)*9+lc=%d", ErrHeaderFieldOutOfRange, v)
	}
	return byte(v), nil
}

// NewConfig resolves opts against the level table and validates every
// field, synchronously and before any allocation, per the Configuration
// error taxonomy: a rejected Options value leaves nothing behind to clean
// up.
func NewConfig(opts Options, log *logging.Logger) (*Config, error) {
	if log == nil {
		log = logging.NewNop()
	}

	level := opts.Level
	if level < 0 {
		level = defaultLevel
	}
	if level > 9 {
		return nil, configErr("level", opts.Level, ErrInvalidLevel)
	}
	lp := fixedLevels[level]

	btMode := level >= 5
	if opts.BtMode != nil {
		btMode = *opts.BtMode
	}

	numHashBytes := uint32(5)
	if btMode {
		numHashBytes = 4
	}
	if opts.NumHashBytes != 0 {
		numHashBytes = opts.NumHashBytes
	}
	// Only the 4- and 5-byte hash widths drive a main dictionary in this
	// implementation (Bt4/Bt5/Hc4/Hc5 and their cache-efficient
	// counterparts in the reference source); the legacy bt2/bt3/hc3zip
	// variants the original format also defines are out of scope.
	if numHashBytes != 4 && numHashBytes != 5 {
		return nil, configErr("numHashBytes", numHashBytes, ErrInvalidNumHashBytes)
	}

	dictSize := lp.dictSize
	if opts.DictSize != 0 {
		dictSize = opts.DictSize
	}

	fb := lp.fb
	if opts.FB != 0 {
		fb = opts.FB
	}
	if fb < minFastBytes || fb > maxFastBytes {
		return nil, configErr("fb", fb, ErrInvalidFastBytes)
	}

	mc := lp.mc
	if opts.MC != 0 {
		mc = opts.MC
	}
	if mc < 1 || mc > maxCutValue {
		return nil, configErr("mc", mc, ErrInvalidCutValue)
	}

	lc, lpBits, pb := 3, 0, 2
	if opts.LC != -1 {
		lc = opts.LC
	}
	if opts.LP != -1 {
		lpBits = opts.LP
	}
	if opts.PB != -1 {
		pb = opts.PB
	}
	if lc < 0 || lc > 8 {
		return nil, configErr("lc", lc, ErrInvalidLiteralContext)
	}
	if lpBits < 0 || lpBits > 4 {
		return nil, configErr("lp", lpBits, ErrInvalidLiteralPosition)
	}
	if pb < 0 || pb > 4 {
		return nil, configErr("pb", pb, ErrInvalidPositionBits)
	}

	ces := false
	if !btMode {
		big := opts.ExpectedDataSize >= minSizeForCacheEfficientOn
		mid := opts.ExpectedDataSize >= maxSizeForCacheEfficientOff &&
			opts.ExpectedDataSize < minSizeForCacheEfficientOn &&
			numHashBytes == 4
		ces = big || mid
	}
	if opts.CacheEfficientSearch != nil {
		if *opts.CacheEfficientSearch && btMode {
			return nil, configErr("cacheEfficientSearch", true, fmt.Errorf("requires btMode=false"))
		}
		ces = *opts.CacheEfficientSearch
	}

	blockSlots := uint32(blockSlotsSmall)
	if level >= hashChain16Level {
		blockSlots = blockSlotsLarge
	}
	if ces {
		minDict := uint32(kHashGuarantee) * blockSlots
		if dictSize < minDict {
			dictSize = minDict
		}
	}
	if dictSize < minDictSize || dictSize > maxDictSize {
		return nil, configErr("dictSize", dictSize, ErrInvalidDictSize)
	}

	cfg := &Config{
		Level:                level,
		ExpectedDataSize:     opts.ExpectedDataSize,
		BtMode:               btMode,
		NumHashBytes:         numHashBytes,
		CacheEfficientSearch: ces,
		DictSize:             dictSize,
		FB:                   fb,
		MC:                   mc,
		LC:                   lc,
		LP:                   lpBits,
		PB:                   pb,
		BlockSlots:           blockSlots,
		NormalizeThreshold:   opts.NormalizeThreshold,
	}
	if _, err := cfg.HeaderByte0(); err != nil {
		return nil, err
	}

	log.Infow("resolved dictionary config",
		"level", cfg.Level, "btMode", cfg.BtMode, "numHashBytes", cfg.NumHashBytes,
		"cacheEfficientSearch", cfg.CacheEfficientSearch, "dictSize", cfg.DictSize,
		"fb", cfg.FB, "mc", cfg.MC, "lc", cfg.LC, "lp", cfg.LP, "pb", cfg.PB)

	return cfg, nil
}

// DefaultOptions returns an Options value whose every field is the unset
// sentinel, letting NewConfig derive everything from Level alone.
func DefaultOptions() Options {
	return Options{Level: -1, LC: -1, LP: -1, PB: -1}
}
