package vector

import "github.com/tphakala/go-pixelfx/internal/pixel"

// Lanes is the number of pixels processed per group.
const Lanes = 16

// GroupBytes is the size of one group of packed RGBA pixels.
const GroupBytes = Lanes * pixel.BytesPerPixel

// U8x16 holds one 8-bit channel of a lane group.
type U8x16 [Lanes]uint8

// I32x16 holds widened channel values or accumulators.
type I32x16 [Lanes]int32

// Batch is a deinterleaved group of 16 RGBA pixels.
type Batch struct {
	R, G, B, A U8x16
}

// Load deinterleaves 16 packed pixels from p.
func (b *Batch) Load(p []byte) {
	p = p[:GroupBytes]
	for i := range Lanes {
		o := i * pixel.BytesPerPixel
		b.R[i] = p[o+pixel.OffR]
		b.G[i] = p[o+pixel.OffG]
		b.B[i] = p[o+pixel.OffB]
		b.A[i] = p[o+pixel.OffA]
	}
}

// Store interleaves the group back into p.
func (b *Batch) Store(p []byte) {
	p = p[:GroupBytes]
	for i := range Lanes {
		o := i * pixel.BytesPerPixel
		p[o+pixel.OffR] = b.R[i]
		p[o+pixel.OffG] = b.G[i]
		p[o+pixel.OffB] = b.B[i]
		p[o+pixel.OffA] = b.A[i]
	}
}

// Widen zero-extends each lane to int32.
func (v U8x16) Widen() I32x16 {
	var out I32x16
	for i := range v {
		out[i] = int32(v[i])
	}
	return out
}

// Invert computes 255 - v for each lane.
func (v U8x16) Invert() U8x16 {
	var out U8x16
	for i := range v {
		out[i] = 255 - v[i]
	}
	return out
}

// SplatI32 returns a vector with every lane set to n.
func SplatI32(n int32) I32x16 {
	var out I32x16
	for i := range out {
		out[i] = n
	}
	return out
}

// MulAdd returns v + x*w.
func (v I32x16) MulAdd(x I32x16, w int32) I32x16 {
	for i := range v {
		v[i] += x[i] * w
	}
	return v
}

// AddScalar returns v + n.
func (v I32x16) AddScalar(n int32) I32x16 {
	for i := range v {
		v[i] += n
	}
	return v
}

// Clamp saturates each lane to [0, 255].
func (v I32x16) Clamp() U8x16 {
	var out U8x16
	for i := range v {
		out[i] = pixel.Clamp255(v[i])
	}
	return out
}

// Gray returns the fixed-point BT.601 luma of each lane.
func Gray(r, g, b U8x16) U8x16 {
	var out U8x16
	for i := range out {
		out[i] = pixel.Gray(r[i], g[i], b[i])
	}
	return out
}

// EmbossLuma returns the emboss luma of each lane.
func EmbossLuma(r, g, b U8x16) I32x16 {
	var out I32x16
	for i := range out {
		out[i] = pixel.EmbossLuma(r[i], g[i], b[i])
	}
	return out
}

// SobelMagnitude returns the saturated gradient magnitude of each lane.
func SobelMagnitude(gx, gy I32x16) U8x16 {
	var out U8x16
	for i := range out {
		out[i] = pixel.SobelMagnitude(gx[i], gy[i])
	}
	return out
}
