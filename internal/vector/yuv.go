package vector

import (
	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/scalar"
)

// chromaLanes is the number of chroma samples feeding one lane group.
const chromaLanes = Lanes / 2

// YUVToRGBA converts rows [y0, y1) of src into dst.
func YUVToRGBA(dst pixel.Image, src pixel.YUV, y0, y1 int) {
	w := src.Width
	for y := y0; y < y1; y++ {
		cy := y >> 1
		dRow := dst.Pix[y*dst.Stride:]
		yRow := src.Y[y*src.YStride:]
		uRow := src.U[cy*src.UStride:]
		vRow := src.V[cy*src.VStride:]

		x := 0
		for ; x+Lanes <= w; x += Lanes {
			yuvGroup(dRow[x*pixel.BytesPerPixel:], yRow[x:x+Lanes], uRow, vRow, x>>1, src.UPixelStride, src.VPixelStride)
		}
		if x < w {
			scalar.YUVRow(dRow, yRow, uRow, vRow, w, x, src.UPixelStride, src.VPixelStride)
		}
	}
}

// yuvGroup converts 16 pixels starting at chroma column cx. Each chroma
// sample is shared by two horizontally adjacent pixels.
func yuvGroup(dst, ys, uRow, vRow []byte, cx, uStride, vStride int) {
	var u, v [chromaLanes]uint8
	gatherChroma(&u, uRow, cx, uStride)
	gatherChroma(&v, vRow, cx, vStride)

	var c, d, e I32x16
	for i := range Lanes {
		c[i] = int32(ys[i]) - pixel.LumaOffset
		d[i] = int32(u[i>>1]) - pixel.ChromaOffset
		e[i] = int32(v[i>>1]) - pixel.ChromaOffset
	}

	var out Batch
	for i := range Lanes {
		out.R[i], out.G[i], out.B[i] = pixel.YUVToRGBWide(c[i], d[i], e[i])
		out.A[i] = pixel.OpaqueAlpha
	}
	out.Store(dst)
}

// gatherChroma loads 8 chroma samples. Planar rows are contiguous; any other
// pixel stride is gathered one byte at a time.
func gatherChroma(out *[chromaLanes]uint8, row []byte, cx, stride int) {
	if stride == 1 {
		copy(out[:], row[cx:cx+chromaLanes])
		return
	}
	for i := range chromaLanes {
		out[i] = row[(cx+i)*stride]
	}
}
