package dict

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig(DefaultOptions(), nil)
	require.NoError(t, err)
	require.Equal(t, defaultLevel, cfg.Level)
	require.True(t, cfg.BtMode)
	require.Equal(t, uint32(4), cfg.NumHashBytes)
	require.False(t, cfg.CacheEfficientSearch)
	require.Equal(t, 3, cfg.LC)
	require.Equal(t, 0, cfg.LP)
	require.Equal(t, 2, cfg.PB)
}

func TestNewConfigLowLevelDerivesHashChain(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = 1
	cfg, err := NewConfig(opts, nil)
	require.NoError(t, err)
	require.False(t, cfg.BtMode)
	require.Equal(t, uint32(5), cfg.NumHashBytes)
}

func TestNewConfigCacheEfficientDerivation(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = 1
	opts.ExpectedDataSize = 64 << 20 // well above minSizeForCacheEfficientOn
	cfg, err := NewConfig(opts, nil)
	require.NoError(t, err)
	require.True(t, cfg.CacheEfficientSearch)
	require.GreaterOrEqual(t, cfg.DictSize, kHashGuarantee*cfg.BlockSlots)
}

func TestNewConfigRejectsBtModeWithCacheEfficientSearch(t *testing.T) {
	opts := DefaultOptions()
	btOn := true
	ceOn := true
	opts.BtMode = &btOn
	opts.CacheEfficientSearch = &ceOn
	_, err := NewConfig(opts, nil)
	require.Error(t, err)
}

func TestNewConfigValidatesNumHashBytes(t *testing.T) {
	opts := DefaultOptions()
	opts.NumHashBytes = 3
	_, err := NewConfig(opts, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidNumHashBytes))
}

func TestNewConfigValidatesLiteralParams(t *testing.T) {
	for _, tt := range []struct {
		name string
		mod  func(*Options)
		want error
	}{
		{"lc too high", func(o *Options) { o.LC = 9 }, ErrInvalidLiteralContext},
		{"lp too high", func(o *Options) { o.LP = 5 }, ErrInvalidLiteralPosition},
		{"pb too high", func(o *Options) { o.PB = 5 }, ErrInvalidPositionBits},
		{"fb too low", func(o *Options) { o.FB = 1 }, ErrInvalidFastBytes},
		{"mc too high", func(o *Options) { o.MC = maxCutValue + 1 }, ErrInvalidCutValue},
		{"level too high", func(o *Options) { o.Level = 10 }, ErrInvalidLevel},
	} {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mod(&opts)
			_, err := NewConfig(opts, nil)
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestHeaderByte0RejectsOutOfRangeCombination(t *testing.T) {
	cfg := &Config{LC: 8, LP: 4, PB: 5}
	_, err := cfg.HeaderByte0()
	require.Error(t, err)
}
