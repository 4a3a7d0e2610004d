package vector

import (
	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/scalar"
)

// GrayscaleGroups converts lane groups [g0, g1) of a packed pixel run in
// place. Group g covers bytes [g*GroupBytes, (g+1)*GroupBytes).
func GrayscaleGroups(pix []byte, g0, g1 int) {
	var b Batch
	for g := g0; g < g1; g++ {
		p := pix[g*GroupBytes : (g+1)*GroupBytes]
		b.Load(p)
		y := Gray(b.R, b.G, b.B)
		b.R, b.G, b.B = y, y, y
		b.Store(p)
	}
}

// NegativeGroups inverts lane groups [g0, g1) of a packed pixel run in place.
func NegativeGroups(pix []byte, g0, g1 int) {
	var b Batch
	for g := g0; g < g1; g++ {
		p := pix[g*GroupBytes : (g+1)*GroupBytes]
		b.Load(p)
		b.R, b.G, b.B = b.R.Invert(), b.G.Invert(), b.B.Invert()
		b.Store(p)
	}
}

// Grayscale converts rows [y0, y1) of img in place.
func Grayscale(img pixel.Image, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := img.Row(y)
		n := len(row) / GroupBytes
		GrayscaleGroups(row, 0, n)
		scalar.GrayscaleSpan(row[n*GroupBytes:])
	}
}

// Negative inverts rows [y0, y1) of img in place.
func Negative(img pixel.Image, y0, y1 int) {
	for y := y0; y < y1; y++ {
		row := img.Row(y)
		n := len(row) / GroupBytes
		NegativeGroups(row, 0, n)
		scalar.NegativeSpan(row[n*GroupBytes:])
	}
}
