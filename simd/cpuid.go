package simd

import "github.com/klauspost/cpuid/v2"

// BrandName is the host CPU's marketing name, as reported by CPUID leaf 2
// / 0x80000002-4. Used by the bench CLI's --cpu-info flag.
func BrandName() string { return cpuid.CPU.BrandName }

// LogicalCores is the number of logical cores CPUID reports, which may
// differ from runtime.NumCPU under a cgroup CPU quota.
func LogicalCores() int { return cpuid.CPU.LogicalCores }
