package pixelfx

import (
	"fmt"

	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/scalar"
	"github.com/tphakala/go-pixelfx/internal/vector"
	"github.com/tphakala/go-pixelfx/internal/workerpool"
)

// YUV420Buffer describes a BT.601 limited-range 4:2:0 frame. Each chroma
// sample covers a 2x2 block of luma samples.
//
// Chroma for pixel (x, y) is read from U[(y/2)*UStride + (x/2)*UPixelStride]
// and likewise for V. A pixel stride of 1 describes planar I420/YV12 data;
// a pixel stride of 2 with U and V slicing one buffer at offsets 0 and 1
// describes interleaved NV12/NV21.
type YUV420Buffer struct {
	Y, U, V []byte

	Width  int
	Height int

	YStride int
	UStride int
	VStride int

	UPixelStride int
	VPixelStride int
}

func (b *YUV420Buffer) validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil yuv buffer", ErrInvalidBuffer)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if b.Width == 0 || b.Height == 0 {
		return nil
	}
	if b.YStride < b.Width {
		return fmt.Errorf("%w: y stride %d shorter than width %d", ErrInvalidBuffer, b.YStride, b.Width)
	}
	if !spanFits(b.Height, b.YStride, b.Width) {
		return fmt.Errorf("%w: %d rows of y stride %d overflow", ErrInvalidBuffer, b.Height, b.YStride)
	}
	if need := (b.Height-1)*b.YStride + b.Width; len(b.Y) < need {
		return fmt.Errorf("%w: y plane has %d bytes, need %d", ErrInvalidBuffer, len(b.Y), need)
	}

	cw, ch := (b.Width+1)/2, (b.Height+1)/2
	if err := validateChroma("u", b.U, b.UStride, b.UPixelStride, cw, ch); err != nil {
		return err
	}
	return validateChroma("v", b.V, b.VStride, b.VPixelStride, cw, ch)
}

func validateChroma(name string, plane []byte, stride, pixelStride, cw, ch int) error {
	if pixelStride <= 0 {
		return fmt.Errorf("%w: %s pixel stride %d", ErrInvalidBuffer, name, pixelStride)
	}
	if !spanFits(cw, pixelStride, 1) {
		return fmt.Errorf("%w: %s pixel stride %d overflows", ErrInvalidBuffer, name, pixelStride)
	}
	row := (cw-1)*pixelStride + 1
	if stride < row {
		return fmt.Errorf("%w: %s stride %d shorter than chroma row of %d bytes", ErrInvalidBuffer, name, stride, row)
	}
	if !spanFits(ch, stride, row) {
		return fmt.Errorf("%w: %s stride %d overflows", ErrInvalidBuffer, name, stride)
	}
	if need := (ch-1)*stride + row; len(plane) < need {
		return fmt.Errorf("%w: %s plane has %d bytes, need %d", ErrInvalidBuffer, name, len(plane), need)
	}
	return nil
}

func (b *YUV420Buffer) view() pixel.YUV {
	return pixel.YUV{
		Y: b.Y, U: b.U, V: b.V,
		Width:        b.Width,
		Height:       b.Height,
		YStride:      b.YStride,
		UStride:      b.UStride,
		VStride:      b.VStride,
		UPixelStride: b.UPixelStride,
		VPixelStride: b.VPixelStride,
	}
}

// ConvertYUV420ToRGBA converts src into dst, which must be an RGBA8888
// buffer of the same size. Alpha is set to 255.
//
// preferVector requests the parallel lane converter. When the processor runs
// the scalar path the request is refused with a warning and the frame is
// converted by the reference routine, which produces identical output.
func (p *Processor) ConvertYUV420ToRGBA(src *YUV420Buffer, dst *PixelBuffer, preferVector bool) error {
	if err := src.validate(); err != nil {
		p.log.Warn("pixelfx: yuv source rejected", "error", err)
		return err
	}
	if err := p.check("yuv", dst); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		err := fmt.Errorf("%w: destination %dx%d does not match source %dx%d",
			ErrInvalidBuffer, dst.Width, dst.Height, src.Width, src.Height)
		p.log.Warn("pixelfx: yuv destination rejected", "error", err)
		return err
	}
	if src.Width == 0 || src.Height == 0 {
		return nil
	}

	in, out := src.view(), dst.view()
	if preferVector && !p.vector {
		p.log.Warn("pixelfx: vector yuv conversion unavailable, using scalar",
			"path", p.path.String(), "arch", p.Info().Arch)
	}
	if !preferVector || !p.vector {
		scalar.YUVToRGBA(out, in, 0, in.Height)
		return nil
	}

	p.log.Debug("pixelfx: dispatch", "op", "yuv", "path", "vector", "rows", in.Height, "workers", p.workers)
	workerpool.Run(p.workers, in.Height, func(y0, y1 int) {
		vector.YUVToRGBA(out, in, y0, y1)
	})
	return nil
}
