// Package cpufeature reports, once per process, whether the current CPU
// supports the vector instructions the parsimony scorer's fast path
// needs (spec.md §5: "the SIMD feature flag is a process-wide immutable
// boolean set once at startup").
package cpufeature
