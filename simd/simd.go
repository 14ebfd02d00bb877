// Package simd provides CPU feature detection and a batched, architecture-
// aware path for the Position Normalizer's saturating-subtract pass over a
// stored-position array. The feature-flag scaffolding follows this module's
// usual CPU-detection shape, while NormalizeWide and its per-architecture
// implementations are built for this module's normalize-a-[]uint32
// workload instead of block match search.
package simd

import (
	"runtime"
	"sync"
)

var (
	isAMD64 = runtime.GOARCH == "amd64"
	isARM64 = runtime.GOARCH == "arm64"

	hasSSE2   bool
	hasSSE41  bool
	hasAVX2   bool
	hasAVX512 bool
	hasNEON   bool

	detectOnce sync.Once
)

// Features reports which vector instruction sets the host CPU supports.
type Features struct {
	HasSSE2   bool
	HasSSE41  bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool
}

// DetectFeatures runs CPU feature detection once per process and returns
// the result.
func DetectFeatures() Features {
	detectOnce.Do(func() {
		if isAMD64 {
			hasSSE2 = true
		}
		if isARM64 {
			hasNEON = true
		}
		detectCPUFeaturesImpl()
	})

	return Features{
		HasSSE2:   hasSSE2,
		HasSSE41:  hasSSE41,
		HasAVX2:   hasAVX2,
		HasAVX512: hasAVX512,
		HasNEON:   hasNEON,
	}
}

const emptySentinel uint32 = 0

// satSub is the Position Normalizer's saturating subtract, duplicated here
// rather than imported from dict so this package stays free of a dependency
// cycle (dict imports simd, not the other way around).
func satSub(subValue, v uint32) uint32 {
	if v == emptySentinel || v < subValue {
		return emptySentinel
	}
	return v - subValue
}

// NormalizeWide subtracts subValue from the leading run of items it can
// process a full vector-width group at a time, returning how many leading
// elements it handled; the caller finishes the remainder with a plain
// scalar loop. Returns 0 on architectures or CPUs with no wide path
// available, in which case the caller's scalar loop handles everything.
func NormalizeWide(subValue uint32, items []uint32) int {
	DetectFeatures()
	return normalizeWideImpl(subValue, items)
}
