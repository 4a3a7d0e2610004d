package scalar

import "github.com/tphakala/go-pixelfx/internal/pixel"

// GrayscaleSpan converts a run of packed pixels to luma in place.
func GrayscaleSpan(pix []byte) {
	for i := 0; i+pixel.BytesPerPixel <= len(pix); i += pixel.BytesPerPixel {
		y := pixel.Gray(pix[i+pixel.OffR], pix[i+pixel.OffG], pix[i+pixel.OffB])
		pix[i+pixel.OffR] = y
		pix[i+pixel.OffG] = y
		pix[i+pixel.OffB] = y
	}
}

// NegativeSpan inverts the color channels of a run of packed pixels in place.
func NegativeSpan(pix []byte) {
	for i := 0; i+pixel.BytesPerPixel <= len(pix); i += pixel.BytesPerPixel {
		pix[i+pixel.OffR] = 255 - pix[i+pixel.OffR]
		pix[i+pixel.OffG] = 255 - pix[i+pixel.OffG]
		pix[i+pixel.OffB] = 255 - pix[i+pixel.OffB]
	}
}

// Grayscale converts rows [y0, y1) of img in place.
func Grayscale(img pixel.Image, y0, y1 int) {
	for y := y0; y < y1; y++ {
		GrayscaleSpan(img.Row(y))
	}
}

// Negative inverts rows [y0, y1) of img in place.
func Negative(img pixel.Image, y0, y1 int) {
	for y := y0; y < y1; y++ {
		NegativeSpan(img.Row(y))
	}
}
