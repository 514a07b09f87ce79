// Package cpufeat wraps golang.org/x/sys/cpu's feature flags into the small
// boolean set the dispatcher (root package, dispatch.go) needs, so that
// selection logic can be unit-tested against an arbitrary Set value instead
// of only against whatever CPU the test happens to run on.
package cpufeat

import "golang.org/x/sys/cpu"

// Set is the CPU capability surface the dispatcher's selection table reads.
// Exactly which fields matter depends on GOARCH: amd64 uses SSE42, CLMUL and
// AVX2/AVX512; arm64 uses ARMCRC32 and ARMPMULL. Fields that do not apply to
// the running GOARCH are always false.
type Set struct {
	SSE42   bool
	CLMUL   bool
	AVX2    bool
	AVX512F bool

	ARMCRC32 bool
	ARMPMULL bool
}

// Current probes the running CPU once and returns its feature Set. The
// dispatcher calls this once per CRC variant, from within that variant's
// sync.Once, and keeps the result for the process lifetime — CPU features
// cannot change at runtime.
func Current() Set {
	return Set{
		SSE42:   cpu.X86.HasSSE42,
		CLMUL:   cpu.X86.HasPCLMULQDQ,
		AVX2:    cpu.X86.HasAVX2,
		AVX512F: cpu.X86.HasAVX512F,

		ARMCRC32: cpu.ARM64.HasCRC32,
		ARMPMULL: cpu.ARM64.HasPMULL,
	}
}
