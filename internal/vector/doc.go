// Package vector implements the wide filter kernels.
//
// Pixels are processed sixteen at a time in Structure-of-Arrays lane groups
// built from fixed-size arrays, which the Go compiler can lower to SSE, AVX or
// NEON instructions. The Gaussian blur runs on deinterleaved float32 planes
// through the SIMD convolution primitives in internal/simdops.
//
// Every kernel handles the columns left after the last full group with the
// matching routine from internal/scalar, so any width is accepted. The integer
// filters share their per-pixel arithmetic with the scalar package and are
// bit-identical to it; the blur differs only by float32 summation order.
package vector
