//go:build arm64

package cpufeat

// probeArch marks NEON present: Advanced SIMD is part of the ARMv8-A base
// architecture.
func probeArch(f *Features) {
	f.HasNEON = true
}
