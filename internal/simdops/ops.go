// Package simdops provides the float32 SIMD primitives behind the wide
// convolution kernels.
//
// With Profile-Guided Optimization (Go 1.22+), function pointer calls in hot paths
// can be devirtualized and inlined, achieving near-zero overhead.
package simdops

import (
	"github.com/tphakala/simd/f32"
)

// Ops holds SIMD-accelerated float32 operations.
// Function pointers keep the kernels independent of the backing library.
type Ops struct {
	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []float32) float32

	// ConvolveValid computes the valid convolution of signal with kernel:
	// len(dst) = len(signal) - len(kernel) + 1 and
	// dst[i] = Σ signal[i+k] * kernel[k].
	ConvolveValid func(dst, signal, kernel []float32)
}

// ops32 is package-level to avoid repeated allocation.
var ops32 = Ops{
	DotProductUnsafe: f32.DotProductUnsafe,
	ConvolveValid:    f32.ConvolveValid,
}

// Float32Ops returns the float32 SIMD operations.
func Float32Ops() *Ops {
	return &ops32
}
