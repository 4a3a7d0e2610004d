package vector

import (
	"github.com/tphakala/go-pixelfx/internal/kernel"
	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/scalar"
)

type (
	groupFunc func(dst, src pixel.Image, x, y int)
	spanFunc  func(dst, src pixel.Image, y, x0, x1 int)
)

// rows3x3 walks the interior of rows [y0, y1). Full groups start at x and
// cover x..x+15, which needs x+16 <= Width-1 so the right neighbor column is
// in bounds. Remaining interior columns go to tail.
func rows3x3(dst, src pixel.Image, y0, y1 int, group groupFunc, tail spanFunc) {
	y0, y1 = scalar.InteriorRows(src.Height, 1, y0, y1)
	end := src.Width - 1
	for y := y0; y < y1; y++ {
		x := 1
		for ; x+Lanes <= end; x += Lanes {
			group(dst, src, x, y)
		}
		if x < end {
			tail(dst, src, y, x, end)
		}
	}
}

// Sharpen filters the interior of rows [y0, y1) from src into dst.
func Sharpen(dst, src pixel.Image, y0, y1 int) {
	rows3x3(dst, src, y0, y1, sharpenGroup, scalar.SharpenSpan)
}

// Emboss filters the interior of rows [y0, y1) from src into dst.
func Emboss(dst, src pixel.Image, y0, y1 int) {
	rows3x3(dst, src, y0, y1, embossGroup, scalar.EmbossSpan)
}

// EdgeDetect filters the interior of rows [y0, y1) from src into dst.
func EdgeDetect(dst, src pixel.Image, y0, y1 int) {
	rows3x3(dst, src, y0, y1, edgeGroup, scalar.EdgeDetectSpan)
}

func sharpenGroup(dst, src pixel.Image, x, y int) {
	var (
		tap              Batch
		alpha            U8x16
		accR, accG, accB I32x16
	)
	k := &kernel.Sharpen
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			tap.Load(src.Pix[src.Offset(x+kx, y+ky):])
			if kx == 0 && ky == 0 {
				alpha = tap.A
			}
			w := k.At(kx, ky)
			accR = accR.MulAdd(tap.R.Widen(), w)
			accG = accG.MulAdd(tap.G.Widen(), w)
			accB = accB.MulAdd(tap.B.Widen(), w)
		}
	}
	out := Batch{R: accR.Clamp(), G: accG.Clamp(), B: accB.Clamp(), A: alpha}
	out.Store(dst.Pix[dst.Offset(x, y):])
}

func embossGroup(dst, src pixel.Image, x, y int) {
	var (
		tap   Batch
		alpha U8x16
		acc   I32x16
	)
	k := &kernel.Emboss
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			tap.Load(src.Pix[src.Offset(x+kx, y+ky):])
			if kx == 0 && ky == 0 {
				alpha = tap.A
			}
			acc = acc.MulAdd(EmbossLuma(tap.R, tap.G, tap.B), k.At(kx, ky))
		}
	}
	v := acc.AddScalar(128).Clamp()
	out := Batch{R: v, G: v, B: v, A: alpha}
	out.Store(dst.Pix[dst.Offset(x, y):])
}

func edgeGroup(dst, src pixel.Image, x, y int) {
	var (
		tap                          Batch
		alpha                        U8x16
		gxR, gxG, gxB, gyR, gyG, gyB I32x16
	)
	sx, sy := &kernel.SobelX, &kernel.SobelY
	for ky := -1; ky <= 1; ky++ {
		for kx := -1; kx <= 1; kx++ {
			tap.Load(src.Pix[src.Offset(x+kx, y+ky):])
			if kx == 0 && ky == 0 {
				alpha = tap.A
			}
			r, g, b := tap.R.Widen(), tap.G.Widen(), tap.B.Widen()
			if wx := sx.At(kx, ky); wx != 0 {
				gxR, gxG, gxB = gxR.MulAdd(r, wx), gxG.MulAdd(g, wx), gxB.MulAdd(b, wx)
			}
			if wy := sy.At(kx, ky); wy != 0 {
				gyR, gyG, gyB = gyR.MulAdd(r, wy), gyG.MulAdd(g, wy), gyB.MulAdd(b, wy)
			}
		}
	}
	out := Batch{
		R: SobelMagnitude(gxR, gyR),
		G: SobelMagnitude(gxG, gyG),
		B: SobelMagnitude(gxB, gyB),
		A: alpha,
	}
	out.Store(dst.Pix[dst.Offset(x, y):])
}
