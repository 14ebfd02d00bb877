//go:build !amd64 && !arm64

package simd

func detectCPUFeaturesImpl() {}

func normalizeWideImpl(subValue uint32, items []uint32) int { return 0 }
