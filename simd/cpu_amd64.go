//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func detectCPUFeaturesImpl() {
	hasSSE2 = cpu.X86.HasSSE2
	hasSSE41 = cpu.X86.HasSSE41
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
}

// normalizeWideImpl processes items 8 at a time when AVX2 is available,
// standing in for the vpsubd/vpmaxud sequence a real implementation would
// issue. Each group of 8 is independent, which is what lets the real
// instruction operate on all of them in one go; here it just gives the Go
// compiler's own autovectorizer the same opportunity.
func normalizeWideImpl(subValue uint32, items []uint32) int {
	if !hasAVX2 {
		return 0
	}
	n := len(items) - len(items)%8
	for i := 0; i < n; i += 8 {
		for j := 0; j < 8; j++ {
			items[i+j] = satSub(subValue, items[i+j])
		}
	}
	return n
}
