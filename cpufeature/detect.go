// File: detect.go
// Role: process-wide-once SIMD feature detection for the parsimony
//       scorer's fast path. Grounded on spec.md §5's "SIMD feature
//       detection" collaborator; golang.org/x/sys/cpu is the only pack
//       dependency doing CPU feature detection (no example repo rolls
//       its own CPUID parsing), so it alone is adopted for this concern.
package cpufeature

import (
	"sync"

	"golang.org/x/sys/cpu"
)

var (
	once      sync.Once
	available bool
)

// Detect reports whether the current CPU supports the vector width the
// parsimony package's fast path targets (128-bit integer SIMD: SSE2 on
// amd64, NEON/ASIMD on arm64). The underlying CPUID/auxval probe runs
// exactly once per process; subsequent calls are a memory read.
//
// Complexity: O(1) amortized.
func Detect() bool {
	once.Do(func() {
		available = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
	})
	return available
}
