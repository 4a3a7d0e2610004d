// Package pixel holds the buffer views and per-pixel arithmetic shared by the
// scalar and vector kernels. Both paths call the same helpers, so the integer
// filters agree bit for bit.
package pixel

import "math"

// BytesPerPixel is the size of one packed RGBA8888 pixel.
const BytesPerPixel = 4

// Channel offsets within a pixel.
const (
	OffR = 0
	OffG = 1
	OffB = 2
	OffA = 3
)

// Fixed-point BT.601 luma weights (scaled by 256).
const (
	grayWeightR = 77
	grayWeightG = 150
	grayWeightB = 29
	grayRound   = 128
	grayShift   = 8
)

// Emboss luma weights.
const (
	embossWeightR float32 = 0.3
	embossWeightG float32 = 0.59
	embossWeightB float32 = 0.11
)

// BT.601 limited-range YUV to RGB coefficients (scaled by 256).
const (
	LumaOffset   = 16
	ChromaOffset = 128
	OpaqueAlpha  = 255

	coeffY     = 298
	coeffRV    = 409
	coeffGU    = 100
	coeffGV    = 208
	coeffBU    = 516
	yuvRound   = 128
	yuvShift   = 8
	maxChannel = 255
)

// Image is a stride-aware view over packed RGBA8888 memory.
type Image struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
}

// Offset returns the byte offset of pixel (x, y).
func (m Image) Offset(x, y int) int {
	return y*m.Stride + x*BytesPerPixel
}

// Row returns the Width*4 addressable bytes of row y, excluding padding.
func (m Image) Row(y int) []byte {
	off := y * m.Stride
	return m.Pix[off : off+m.Width*BytesPerPixel]
}

// Packed returns a tightly packed copy of m (Stride == Width*4).
func (m Image) Packed() Image {
	stride := m.Width * BytesPerPixel
	out := Image{
		Pix:    make([]byte, stride*m.Height),
		Width:  m.Width,
		Height: m.Height,
		Stride: stride,
	}
	for y := range m.Height {
		copy(out.Pix[y*stride:(y+1)*stride], m.Row(y))
	}
	return out
}

// YUV is a view over a 4:2:0 frame. Chroma for pixel (x, y) lives at
// U[(y>>1)*UStride + (x>>1)*UPixelStride], likewise for V.
type YUV struct {
	Y, U, V      []byte
	Width        int
	Height       int
	YStride      int
	UStride      int
	VStride      int
	UPixelStride int
	VPixelStride int
}

// Clamp255 saturates v to [0, 255].
func Clamp255(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > maxChannel {
		return maxChannel
	}
	return uint8(v)
}

// ClampFloat saturates v to [0, 255] and truncates toward zero.
func ClampFloat(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= maxChannel {
		return maxChannel
	}
	return uint8(v)
}

// Gray returns the fixed-point BT.601 luma of an RGB triple.
func Gray(r, g, b uint8) uint8 {
	y := (grayWeightR*int32(r) + grayWeightG*int32(g) + grayWeightB*int32(b) + grayRound) >> grayShift
	return Clamp255(y)
}

// EmbossLuma returns the truncated 0.3R+0.59G+0.11B luma used by the emboss
// filter. The explicit conversions stop the compiler from fusing the
// multiply-adds, so every caller sees the same rounding.
func EmbossLuma(r, g, b uint8) int32 {
	l := float32(embossWeightR*float32(r)) + float32(embossWeightG*float32(g))
	l += float32(embossWeightB * float32(b))
	return int32(l)
}

// SobelMagnitude returns trunc(sqrt(gx²+gy²)) saturated to 255.
func SobelMagnitude(gx, gy int32) uint8 {
	m := math.Sqrt(float64(gx*gx + gy*gy))
	if m >= maxChannel {
		return maxChannel
	}
	return uint8(m)
}

// YUVToRGB converts one BT.601 limited-range sample to RGB.
func YUVToRGB(y, u, v uint8) (r, g, b uint8) {
	return YUVToRGBWide(int32(y)-LumaOffset, int32(u)-ChromaOffset, int32(v)-ChromaOffset)
}

// YUVToRGBWide is YUVToRGB on pre-centered int32 operands, used by the lane
// kernels that subtract the offsets once per group.
func YUVToRGBWide(c, d, e int32) (r, g, b uint8) {
	r = Clamp255((coeffY*c + coeffRV*e + yuvRound) >> yuvShift)
	g = Clamp255((coeffY*c - coeffGU*d - coeffGV*e + yuvRound) >> yuvShift)
	b = Clamp255((coeffY*c + coeffBU*d + yuvRound) >> yuvShift)
	return r, g, b
}
