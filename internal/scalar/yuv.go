package scalar

import "github.com/tphakala/go-pixelfx/internal/pixel"

// YUVRow converts columns [xStart, width) of one row. dstRow starts at the
// row's first pixel; uRow and vRow start at the row's chroma line.
func YUVRow(dstRow, yRow, uRow, vRow []byte, width, xStart, uPixelStride, vPixelStride int) {
	for x := xStart; x < width; x++ {
		cx := x >> 1
		r, g, b := pixel.YUVToRGB(yRow[x], uRow[cx*uPixelStride], vRow[cx*vPixelStride])
		d := x * pixel.BytesPerPixel
		dstRow[d+pixel.OffR] = r
		dstRow[d+pixel.OffG] = g
		dstRow[d+pixel.OffB] = b
		dstRow[d+pixel.OffA] = pixel.OpaqueAlpha
	}
}

// YUVToRGBA converts rows [y0, y1) of src into dst.
func YUVToRGBA(dst pixel.Image, src pixel.YUV, y0, y1 int) {
	for y := y0; y < y1; y++ {
		cy := y >> 1
		YUVRow(
			dst.Pix[y*dst.Stride:],
			src.Y[y*src.YStride:],
			src.U[cy*src.UStride:],
			src.V[cy*src.VStride:],
			src.Width, 0, src.UPixelStride, src.VPixelStride,
		)
	}
}
