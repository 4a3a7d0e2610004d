// Package testutil provides reusable test helpers for the pixel filter tests.
package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-pixelfx/internal/pixel"
)

// PaddingByte fills the bytes between the end of a row and the next stride.
const PaddingByte = 0xA5

// Common image shapes exercising full lane groups, tails and sub-group widths.
var Widths = []int{1, 2, 3, 7, 15, 16, 17, 31, 32, 33, 64, 67}

// NewImage allocates a w x h image whose rows are padded by pad extra bytes
// filled with PaddingByte.
func NewImage(w, h, pad int) pixel.Image {
	stride := w*pixel.BytesPerPixel + pad
	img := pixel.Image{
		Pix:    make([]byte, stride*h),
		Width:  w,
		Height: h,
		Stride: stride,
	}
	for y := range h {
		row := img.Pix[y*stride : (y+1)*stride]
		for i := w * pixel.BytesPerPixel; i < stride; i++ {
			row[i] = PaddingByte
		}
	}
	return img
}

// RandomImage returns a padded image filled with deterministic noise.
func RandomImage(seed uint64, w, h, pad int) pixel.Image {
	img := NewImage(w, h, pad)
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for y := range h {
		row := img.Row(y)
		for i := range row {
			row[i] = uint8(rng.UintN(256))
		}
	}
	return img
}

// UniformImage returns a padded image with every pixel set to c.
func UniformImage(w, h, pad int, c [4]uint8) pixel.Image {
	img := NewImage(w, h, pad)
	for y := range h {
		row := img.Row(y)
		for i := 0; i < len(row); i += pixel.BytesPerPixel {
			copy(row[i:i+pixel.BytesPerPixel], c[:])
		}
	}
	return img
}

// Clone returns a deep copy of img with the same stride.
func Clone(img pixel.Image) pixel.Image {
	out := img
	out.Pix = append([]byte(nil), img.Pix...)
	return out
}

// PixelAt returns the four channels of pixel (x, y).
func PixelAt(img pixel.Image, x, y int) [4]uint8 {
	o := img.Offset(x, y)
	return [4]uint8(img.Pix[o : o+pixel.BytesPerPixel])
}

// AssertImagesEqual verifies that two images hold identical pixels,
// reporting the first mismatch by coordinate.
func AssertImagesEqual(t *testing.T, want, got pixel.Image, msgAndArgs ...any) bool {
	t.Helper()
	return AssertImagesWithin(t, want, got, 0, msgAndArgs...)
}

// AssertImagesWithin verifies that every channel of got is within tolerance
// of want.
func AssertImagesWithin(t *testing.T, want, got pixel.Image, tolerance int, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, want.Width, got.Width, msgAndArgs...) ||
		!assert.Equal(t, want.Height, got.Height, msgAndArgs...) {
		return false
	}
	for y := range want.Height {
		for x := range want.Width {
			a, b := PixelAt(want, x, y), PixelAt(got, x, y)
			for c := range pixel.BytesPerPixel {
				d := int(a[c]) - int(b[c])
				if d < -tolerance || d > tolerance {
					return assert.Fail(t, "pixel mismatch",
						"(%d,%d) channel %d: want %d, got %d (tolerance %d) %v",
						x, y, c, a[c], b[c], tolerance, msgAndArgs)
				}
			}
		}
	}
	return true
}

// AssertPaddingUntouched verifies that every byte past Width*4 in each row
// still holds PaddingByte.
func AssertPaddingUntouched(t *testing.T, img pixel.Image) bool {
	t.Helper()
	for y := range img.Height {
		for i := img.Width * pixel.BytesPerPixel; i < img.Stride; i++ {
			if v := img.Pix[y*img.Stride+i]; v != PaddingByte {
				return assert.Fail(t, "padding modified",
					"row %d byte %d: got %#x, want %#x", y, i, v, PaddingByte)
			}
		}
	}
	return true
}

// AssertBorderUnchanged verifies that pixels within radius of any edge are
// identical in before and after.
func AssertBorderUnchanged(t *testing.T, before, after pixel.Image, radius int) bool {
	t.Helper()
	for y := range before.Height {
		for x := range before.Width {
			if x >= radius && x < before.Width-radius && y >= radius && y < before.Height-radius {
				continue
			}
			if a, b := PixelAt(before, x, y), PixelAt(after, x, y); a != b {
				return assert.Fail(t, "border pixel modified",
					"(%d,%d): was %v, now %v", x, y, a, b)
			}
		}
	}
	return true
}

// YUVFrame allocates a planar 4:2:0 frame with the given pixel strides and
// deterministic noise. Interleaved chroma (pixel stride 2) shares one backing
// buffer with U at even and V at odd offsets.
func YUVFrame(seed uint64, w, h, chromaPixelStride int) pixel.YUV {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	cw, ch := (w+1)/2, (h+1)/2
	f := pixel.YUV{
		Y:            make([]byte, w*h),
		Width:        w,
		Height:       h,
		YStride:      w,
		UPixelStride: chromaPixelStride,
		VPixelStride: chromaPixelStride,
	}
	for i := range f.Y {
		f.Y[i] = uint8(rng.UintN(256))
	}
	if chromaPixelStride == 2 {
		uv := make([]byte, cw*2*ch)
		for i := range uv {
			uv[i] = uint8(rng.UintN(256))
		}
		f.U, f.V = uv, uv[1:]
		f.UStride, f.VStride = cw*2, cw*2
		return f
	}
	f.U, f.V = make([]byte, cw*ch), make([]byte, cw*ch)
	for i := range f.U {
		f.U[i] = uint8(rng.UintN(256))
		f.V[i] = uint8(rng.UintN(256))
	}
	f.UStride, f.VStride = cw, cw
	return f
}
