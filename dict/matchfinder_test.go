package dict

import (
	"bytes"
	"testing"

	"github.com/aocl-go/lzdict/internal/corpus"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func buildMatchFinder(t *testing.T, opts Options) *MatchFinder {
	t.Helper()
	cfg, err := NewConfig(opts, nil)
	require.NoError(t, err)
	mf, err := New(cfg, nil)
	require.NoError(t, err)
	return mf
}

func collectAllMatches(t *testing.T, mf *MatchFinder, data []byte) []Pair {
	t.Helper()
	require.NoError(t, mf.Attach(bytes.NewReader(data)))

	var all []Pair
	var pairs []Pair
	var err error
	for mf.AvailableBytes() > 0 {
		pairs, err = mf.GetMatches(pairs)
		require.NoError(t, err)
		for _, p := range pairs {
			require.GreaterOrEqual(t, p.Len, uint32(2))
			all = append(all, p)
		}
	}
	return all
}

func TestMatchFinderVariantsFindMatchesInRepetitiveData(t *testing.T) {
	data := corpus.Repetitive(1<<14, []byte("the quick brown fox jumps over the lazy dog"))

	variants := []struct {
		name string
		opts Options
	}{
		{"bt4", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(true), NumHashBytes: 4, DictSize: 1 << 20}},
		{"bt5", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(true), NumHashBytes: 5, DictSize: 1 << 20}},
		{"hc-ref4", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(false), NumHashBytes: 4, DictSize: 1 << 20}},
		{"hc-ref5", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(false), NumHashBytes: 5, DictSize: 1 << 20}},
		{"hc-ce-8", Options{Level: 0, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(true), NumHashBytes: 4}},
		{"hc-ce-16", Options{Level: 2, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(true), NumHashBytes: 5}},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			mf := buildMatchFinder(t, v.opts)
			matches := collectAllMatches(t, mf, data)
			require.NotEmptyf(t, matches, "variant %s found no matches in highly repetitive data", v.name)

			longest := uint32(0)
			for _, p := range matches {
				if p.Len > longest {
					longest = p.Len
				}
			}
			require.GreaterOrEqualf(t, longest, uint32(8), "variant %s: longest match %d too short for tiled pattern", v.name, longest)
		})
	}
}

func TestMatchFinderLengthsStrictlyIncreasingPerCall(t *testing.T) {
	data := corpus.Repetitive(1<<13, nil)
	mf := buildMatchFinder(t, Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(true), NumHashBytes: 4, DictSize: 1 << 20})
	require.NoError(t, mf.Attach(bytes.NewReader(data)))

	var pairs []Pair
	var err error
	for mf.AvailableBytes() > 0 {
		pairs, err = mf.GetMatches(pairs)
		require.NoError(t, err)
		for i := 1; i < len(pairs); i++ {
			require.Greaterf(t, pairs[i].Len, pairs[i-1].Len, "match lengths not strictly increasing: %v", pairs)
		}
	}
}

func TestMatchFinderFindsNoLongMatchesInRandomData(t *testing.T) {
	data := corpus.Random(1<<14, 42)
	mf := buildMatchFinder(t, Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(true), NumHashBytes: 4, DictSize: 1 << 20})
	matches := collectAllMatches(t, mf, data)

	for _, p := range matches {
		require.LessOrEqualf(t, p.Len, uint32(16), "unexpectedly long match (%d) in random data", p.Len)
	}
}

func TestMatchFinderSkipAdvancesWithoutPanicking(t *testing.T) {
	data := corpus.Mixed(1<<14, 7)
	mf := buildMatchFinder(t, Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(false), NumHashBytes: 5, DictSize: 1 << 20})
	require.NoError(t, mf.Attach(bytes.NewReader(data)))

	require.NoError(t, mf.Skip(100))

	var pairs []Pair
	var err error
	for mf.AvailableBytes() > 0 {
		pairs, err = mf.GetMatches(pairs)
		require.NoError(t, err)
		_ = pairs
	}
}

func TestMatchFinderEmittedPairsPointAtEqualBytes(t *testing.T) {
	data := corpus.Mixed(1<<14, 99)

	variants := []struct {
		name string
		opts Options
	}{
		{"bt4", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(true), NumHashBytes: 4, DictSize: 1 << 20}},
		{"hc-ref5", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(false), NumHashBytes: 5, DictSize: 1 << 20}},
		{"hc-ce-8", Options{Level: 0, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(true), NumHashBytes: 4}},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			mf := buildMatchFinder(t, v.opts)
			require.NoError(t, mf.Attach(bytes.NewReader(data)))

			var pairs []Pair
			var err error
			for mf.AvailableBytes() > 0 {
				pos := mf.Pos()
				pairs, err = mf.GetMatches(pairs)
				require.NoError(t, err)

				curIdx := int(pos) - 1
				for _, p := range pairs {
					candIdx := curIdx - int(p.Dist+1)
					require.GreaterOrEqualf(t, candIdx, 0,
						"pair (len=%d dist=%d) at pos %d reaches before the start of data", p.Len, p.Dist, pos)
					require.LessOrEqualf(t, curIdx+int(p.Len), len(data),
						"pair (len=%d dist=%d) at pos %d extends past available data", p.Len, p.Dist, pos)
					require.Equalf(t, data[candIdx:candIdx+int(p.Len)], data[curIdx:curIdx+int(p.Len)],
						"pair (len=%d dist=%d) at pos %d does not point at equal bytes", p.Len, p.Dist, pos)
				}
			}
		})
	}
}

func TestMatchFinderRoundTripReconstructsInput(t *testing.T) {
	corpora := []struct {
		name string
		data []byte
	}{
		{"repetitive", corpus.Repetitive(1<<14, []byte("round-trip-me"))},
		{"random", corpus.Random(1<<14, 17)},
		{"mixed", corpus.Mixed(1<<14, 23)},
		{"collisions", corpus.HashCollisions(1<<14, 5)},
	}

	variants := []struct {
		name string
		opts Options
	}{
		{"bt4", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(true), NumHashBytes: 4, DictSize: 1 << 20}},
		{"hc-ref4", Options{Level: -1, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(false), NumHashBytes: 4, DictSize: 1 << 20}},
		{"hc-ce-16", Options{Level: 2, LC: -1, LP: -1, PB: -1, BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(true), NumHashBytes: 5}},
	}

	for _, c := range corpora {
		for _, v := range variants {
			t.Run(c.name+"/"+v.name, func(t *testing.T) {
				mf := buildMatchFinder(t, v.opts)
				require.NoError(t, mf.Attach(bytes.NewReader(c.data)))

				tokens, err := GreedyParse(mf)
				require.NoError(t, err)

				got := Reconstruct(tokens)
				require.Equal(t, c.data, got, "reconstructed output diverges from source")
			})
		}
	}
}

func TestMatchFinderNormalizationDoesNotCorruptMatches(t *testing.T) {
	data := corpus.Repetitive(1<<12, []byte("normalize-me-"))
	opts := Options{
		Level: -1, LC: -1, LP: -1, PB: -1,
		BtMode: boolPtr(false), CacheEfficientSearch: boolPtr(false),
		NumHashBytes:       4,
		DictSize:           1 << 12,
		NormalizeThreshold: 300,
	}
	mf := buildMatchFinder(t, opts)
	matches := collectAllMatches(t, mf, data)
	require.NotEmpty(t, matches)
}
