package dict

import (
	"errors"
	"fmt"
)

// Sentinel configuration errors. Wrapped with field/value context inside
// ConfigError; callers can still match them with errors.Is.
var (
	ErrInvalidLevel           = errors.New("dict: level must be in [0, 9]")
	ErrInvalidLiteralContext  = errors.New("dict: lc must be in [0, 8]")
	ErrInvalidLiteralPosition = errors.New("dict: lp must be in [0, 4]")
	ErrInvalidPositionBits    = errors.New("dict: pb must be in [0, 4]")
	ErrInvalidFastBytes       = errors.New("dict: fb must be in [5, 273]")
	ErrInvalidCutValue        = errors.New("dict: mc must be in [1, 1<<30]")
	ErrInvalidNumHashBytes    = errors.New("dict: numHashBytes must be 4 or 5")
	ErrInvalidDictSize        = errors.New("dict: dictSize must be in [4KiB, 3GiB]")
	ErrHashMaskTooSmall       = errors.New("dict: hashMask must be >= 0xFFFF to preserve the H4/H5 collision guarantee")
	ErrHeaderFieldOutOfRange  = errors.New("dict: header byte 0 must be < 225")

	// ErrSourceExhausted wraps a latched input-source read failure; a
	// Window surfaces it exactly once, from the ReadBlock call that hit the
	// failure, then GetMatches/Skip observe zero read-ahead and clamp
	// lenLimit instead of erroring again.
	ErrSourceExhausted = errors.New("dict: input source read failed")
)

// ConfigError reports an invalid configuration field, synchronously and
// before any allocation takes place.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("dict: invalid %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(field string, value any, err error) error {
	return &ConfigError{Field: field, Value: value, Err: err}
}

// Debug gates debug-only invariant assertions (the HC-CE headPos range and
// an inserted position colliding with the empty-slot marker 0). The
// reference C source aborts the process on these from an assert() compiled
// only into debug builds; Go's equivalent is a panic gated behind this
// flag, which is off by default. Production code leaves it false so a
// violated invariant never takes down a caller that didn't ask for the
// check.
var Debug = false

func assertInvariant(cond bool, msg string, args ...any) {
	if Debug && !cond {
		panic(fmt.Sprintf("dict: invariant violated: "+msg, args...))
	}
}
