package scalar

import (
	"github.com/tphakala/go-pixelfx/internal/kernel"
	"github.com/tphakala/go-pixelfx/internal/pixel"
)

// InteriorRows clips [y0, y1) to the rows at least radius away from the top
// and bottom edges of an image of the given height.
func InteriorRows(height, radius, y0, y1 int) (int, int) {
	return max(y0, radius), min(y1, height-radius)
}

// SharpenSpan writes sharpened pixels [x0, x1) of row y into dst.
// The caller guarantees 1 <= x0, x1 <= Width-1 and 1 <= y < Height-1.
func SharpenSpan(dst, src pixel.Image, y, x0, x1 int) {
	k := &kernel.Sharpen
	for x := x0; x < x1; x++ {
		var r, g, b int32
		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				w := k.At(kx, ky)
				o := src.Offset(x+kx, y+ky)
				r += int32(src.Pix[o+pixel.OffR]) * w
				g += int32(src.Pix[o+pixel.OffG]) * w
				b += int32(src.Pix[o+pixel.OffB]) * w
			}
		}
		d := dst.Offset(x, y)
		dst.Pix[d+pixel.OffR] = pixel.Clamp255(r)
		dst.Pix[d+pixel.OffG] = pixel.Clamp255(g)
		dst.Pix[d+pixel.OffB] = pixel.Clamp255(b)
		dst.Pix[d+pixel.OffA] = src.Pix[src.Offset(x, y)+pixel.OffA]
	}
}

// EmbossSpan writes embossed pixels [x0, x1) of row y into dst.
func EmbossSpan(dst, src pixel.Image, y, x0, x1 int) {
	k := &kernel.Emboss
	for x := x0; x < x1; x++ {
		var acc int32
		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				o := src.Offset(x+kx, y+ky)
				l := pixel.EmbossLuma(src.Pix[o+pixel.OffR], src.Pix[o+pixel.OffG], src.Pix[o+pixel.OffB])
				acc += l * k.At(kx, ky)
			}
		}
		v := pixel.Clamp255(acc + 128)
		d := dst.Offset(x, y)
		dst.Pix[d+pixel.OffR] = v
		dst.Pix[d+pixel.OffG] = v
		dst.Pix[d+pixel.OffB] = v
		dst.Pix[d+pixel.OffA] = src.Pix[src.Offset(x, y)+pixel.OffA]
	}
}

// EdgeDetectSpan writes Sobel magnitudes for pixels [x0, x1) of row y into
// dst, each channel filtered independently.
func EdgeDetectSpan(dst, src pixel.Image, y, x0, x1 int) {
	kx3, ky3 := &kernel.SobelX, &kernel.SobelY
	for x := x0; x < x1; x++ {
		var gx, gy [3]int32
		for ky := -1; ky <= 1; ky++ {
			for kx := -1; kx <= 1; kx++ {
				wx, wy := kx3.At(kx, ky), ky3.At(kx, ky)
				o := src.Offset(x+kx, y+ky)
				for c := range 3 {
					v := int32(src.Pix[o+c])
					gx[c] += v * wx
					gy[c] += v * wy
				}
			}
		}
		d := dst.Offset(x, y)
		for c := range 3 {
			dst.Pix[d+c] = pixel.SobelMagnitude(gx[c], gy[c])
		}
		dst.Pix[d+pixel.OffA] = src.Pix[src.Offset(x, y)+pixel.OffA]
	}
}

// GaussianBlurSpan writes blurred pixels [x0, x1) of row y into dst.
// The caller guarantees the (2r+1)² window around every pixel is in bounds.
func GaussianBlurSpan(dst, src pixel.Image, k kernel.Kernel, y, x0, x1 int) {
	radius := k.Radius
	for x := x0; x < x1; x++ {
		var r, g, b float32
		for ky := -radius; ky <= radius; ky++ {
			for kx := -radius; kx <= radius; kx++ {
				w := k.At(kx, ky)
				o := src.Offset(x+kx, y+ky)
				r += float32(src.Pix[o+pixel.OffR]) * w
				g += float32(src.Pix[o+pixel.OffG]) * w
				b += float32(src.Pix[o+pixel.OffB]) * w
			}
		}
		d := dst.Offset(x, y)
		dst.Pix[d+pixel.OffR] = pixel.ClampFloat(r)
		dst.Pix[d+pixel.OffG] = pixel.ClampFloat(g)
		dst.Pix[d+pixel.OffB] = pixel.ClampFloat(b)
		dst.Pix[d+pixel.OffA] = src.Pix[src.Offset(x, y)+pixel.OffA]
	}
}

// Sharpen filters the interior of rows [y0, y1) from src into dst.
func Sharpen(dst, src pixel.Image, y0, y1 int) {
	y0, y1 = InteriorRows(src.Height, 1, y0, y1)
	for y := y0; y < y1; y++ {
		SharpenSpan(dst, src, y, 1, src.Width-1)
	}
}

// Emboss filters the interior of rows [y0, y1) from src into dst.
func Emboss(dst, src pixel.Image, y0, y1 int) {
	y0, y1 = InteriorRows(src.Height, 1, y0, y1)
	for y := y0; y < y1; y++ {
		EmbossSpan(dst, src, y, 1, src.Width-1)
	}
}

// EdgeDetect filters the interior of rows [y0, y1) from src into dst.
func EdgeDetect(dst, src pixel.Image, y0, y1 int) {
	y0, y1 = InteriorRows(src.Height, 1, y0, y1)
	for y := y0; y < y1; y++ {
		EdgeDetectSpan(dst, src, y, 1, src.Width-1)
	}
}

// GaussianBlur filters the interior of rows [y0, y1) from src into dst.
// Pixels within k.Radius of any edge are not written.
func GaussianBlur(dst, src pixel.Image, k kernel.Kernel, y0, y1 int) {
	y0, y1 = InteriorRows(src.Height, k.Radius, y0, y1)
	for y := y0; y < y1; y++ {
		GaussianBlurSpan(dst, src, k, y, k.Radius, src.Width-k.Radius)
	}
}
