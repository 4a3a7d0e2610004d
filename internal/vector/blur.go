package vector

import (
	"github.com/tphakala/go-pixelfx/internal/kernel"
	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/scalar"
	"github.com/tphakala/go-pixelfx/internal/simdops"
)

// Blur holds the float32 channel planes of a source image. It is built once
// per call and shared read-only by all row partitions.
type Blur struct {
	src     pixel.Image
	k       kernel.Kernel
	r, g, b []float32
	ops     *simdops.Ops
}

// NewBlur deinterleaves src into R, G and B planes of Width*Height samples.
func NewBlur(src pixel.Image, k kernel.Kernel) *Blur {
	n := src.Width * src.Height
	bl := &Blur{
		src: src,
		k:   k,
		r:   make([]float32, n),
		g:   make([]float32, n),
		b:   make([]float32, n),
		ops: simdops.Float32Ops(),
	}
	for y := range src.Height {
		row := src.Row(y)
		base := y * src.Width
		for x := range src.Width {
			o := x * pixel.BytesPerPixel
			bl.r[base+x] = float32(row[o+pixel.OffR])
			bl.g[base+x] = float32(row[o+pixel.OffG])
			bl.b[base+x] = float32(row[o+pixel.OffB])
		}
	}
	return bl
}

// Rows writes the blurred interior of rows [y0, y1) into dst.
//
// Each kernel row is applied to the matching plane row with one valid
// convolution producing every interior column at once. Interiors narrower
// than one lane group use a dot product per pixel instead.
func (bl *Blur) Rows(dst pixel.Image, y0, y1 int) {
	rad := bl.k.Radius
	w := bl.src.Width
	y0, y1 = scalar.InteriorRows(bl.src.Height, rad, y0, y1)
	inner := w - 2*rad
	if inner <= 0 || y0 >= y1 {
		return
	}
	if inner < Lanes {
		bl.narrowRows(dst, y0, y1)
		return
	}

	side := bl.k.Side()
	accR := make([]float32, inner)
	accG := make([]float32, inner)
	accB := make([]float32, inner)
	tmp := make([]float32, inner)

	for y := y0; y < y1; y++ {
		clear(accR)
		clear(accG)
		clear(accB)
		for ky := range side {
			base := (y - rad + ky) * w
			kr := bl.k.Row(ky)
			bl.accumulate(accR, tmp, bl.r[base:base+w], kr)
			bl.accumulate(accG, tmp, bl.g[base:base+w], kr)
			bl.accumulate(accB, tmp, bl.b[base:base+w], kr)
		}
		bl.storeRow(dst, y, rad, accR, accG, accB)
	}
}

func (bl *Blur) accumulate(acc, tmp, signal, kr []float32) {
	bl.ops.ConvolveValid(tmp, signal, kr)
	for i, v := range tmp {
		acc[i] += v
	}
}

func (bl *Blur) narrowRows(dst pixel.Image, y0, y1 int) {
	rad := bl.k.Radius
	w := bl.src.Width
	side := bl.k.Side()
	inner := w - 2*rad
	accR := make([]float32, inner)
	accG := make([]float32, inner)
	accB := make([]float32, inner)

	for y := y0; y < y1; y++ {
		for i := range inner {
			var r, g, b float32
			for ky := range side {
				base := (y-rad+ky)*w + i
				kr := bl.k.Row(ky)
				r += bl.ops.DotProductUnsafe(bl.r[base:base+side], kr)
				g += bl.ops.DotProductUnsafe(bl.g[base:base+side], kr)
				b += bl.ops.DotProductUnsafe(bl.b[base:base+side], kr)
			}
			accR[i], accG[i], accB[i] = r, g, b
		}
		bl.storeRow(dst, y, rad, accR, accG, accB)
	}
}

// storeRow writes interior columns [rad, rad+len(accR)) of row y, keeping
// the source alpha.
func (bl *Blur) storeRow(dst pixel.Image, y, rad int, accR, accG, accB []float32) {
	srow := bl.src.Row(y)
	drow := dst.Row(y)
	for i := range accR {
		o := (rad + i) * pixel.BytesPerPixel
		drow[o+pixel.OffR] = pixel.ClampFloat(accR[i])
		drow[o+pixel.OffG] = pixel.ClampFloat(accG[i])
		drow[o+pixel.OffB] = pixel.ClampFloat(accB[i])
		drow[o+pixel.OffA] = srow[o+pixel.OffA]
	}
}
