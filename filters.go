package pixelfx

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-pixelfx/internal/kernel"
	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/scalar"
	"github.com/tphakala/go-pixelfx/internal/vector"
	"github.com/tphakala/go-pixelfx/internal/workerpool"
)

// rowsFunc filters rows [y0, y1) of an image in place.
type rowsFunc func(img pixel.Image, y0, y1 int)

// convFunc filters rows [y0, y1) from a read-only snapshot into dst.
type convFunc func(dst, src pixel.Image, y0, y1 int)

// Grayscale replaces R, G and B of every pixel with its BT.601 luma.
func (p *Processor) Grayscale(buf *PixelBuffer) error {
	return p.point("grayscale", buf, scalar.Grayscale, vector.Grayscale, vector.GrayscaleGroups, scalar.GrayscaleSpan)
}

// Negative inverts R, G and B of every pixel.
func (p *Processor) Negative(buf *PixelBuffer) error {
	return p.point("negative", buf, scalar.Negative, vector.Negative, vector.NegativeGroups, scalar.NegativeSpan)
}

// GaussianBlur convolves buf with a normalized (2r+1)² Gaussian kernel.
// Pixels within radius of an edge keep their values. Radius 0 leaves the
// buffer unchanged.
func (p *Processor) GaussianBlur(buf *PixelBuffer, radius int, sigma float64) error {
	if err := p.check("blur", buf); err != nil {
		return err
	}
	k, err := kernel.Gaussian(radius, sigma)
	if err != nil {
		p.log.Warn("pixelfx: blur parameters rejected", "radius", radius, "sigma", sigma, "error", err)
		return err
	}
	if radius == 0 {
		return nil
	}

	return p.neighborhood("blur", buf, radius,
		func(dst, src pixel.Image, y0, y1 int) {
			scalar.GaussianBlur(dst, src, k, y0, y1)
		},
		func(src pixel.Image) convFunc {
			bl := vector.NewBlur(src, k)
			return func(dst, _ pixel.Image, y0, y1 int) {
				bl.Rows(dst, y0, y1)
			}
		})
}

// Sharpen applies the 3x3 sharpening kernel. Edge pixels keep their values.
func (p *Processor) Sharpen(buf *PixelBuffer) error {
	if err := p.check("sharpen", buf); err != nil {
		return err
	}
	return p.neighborhood("sharpen", buf, 1, scalar.Sharpen, fixed(vector.Sharpen))
}

// Emboss applies the 3x3 emboss kernel to luma, offset by 128, and writes
// the result as gray. Edge pixels keep their values.
func (p *Processor) Emboss(buf *PixelBuffer) error {
	if err := p.check("emboss", buf); err != nil {
		return err
	}
	return p.neighborhood("emboss", buf, 1, scalar.Emboss, fixed(vector.Emboss))
}

// EdgeDetect writes the per-channel Sobel gradient magnitude. Edge pixels
// keep their values.
func (p *Processor) EdgeDetect(buf *PixelBuffer) error {
	if err := p.check("edge", buf); err != nil {
		return err
	}
	return p.neighborhood("edge", buf, 1, scalar.EdgeDetect, fixed(vector.EdgeDetect))
}

func fixed(fn convFunc) func(pixel.Image) convFunc {
	return func(pixel.Image) convFunc { return fn }
}

// point runs a per-pixel filter. Tightly packed buffers are split into
// 16-pixel groups of the flat pixel run with the remainder done by span;
// padded buffers are split by rows.
func (p *Processor) point(op string, buf *PixelBuffer, scalarRows, vectorRows rowsFunc, groups func(pix []byte, g0, g1 int), span func(pix []byte)) error {
	if err := p.check(op, buf); err != nil {
		return err
	}
	img := buf.view()
	if img.Width == 0 || img.Height == 0 {
		return nil
	}

	if !p.vector {
		p.log.Debug("pixelfx: dispatch", "op", op, "path", "scalar", "width", img.Width, "height", img.Height)
		scalarRows(img, 0, img.Height)
		return nil
	}

	if img.Stride == img.Width*pixel.BytesPerPixel {
		pix := img.Pix[:img.Height*img.Stride]
		n := len(pix) / vector.GroupBytes
		p.log.Debug("pixelfx: dispatch", "op", op, "path", "vector", "groups", n, "workers", p.workers)
		workerpool.Run(p.workers, n, func(g0, g1 int) {
			groups(pix, g0, g1)
		})
		span(pix[n*vector.GroupBytes:])
		return nil
	}

	p.log.Debug("pixelfx: dispatch", "op", op, "path", "vector", "rows", img.Height, "workers", p.workers)
	workerpool.Run(p.workers, img.Height, func(y0, y1 int) {
		vectorRows(img, y0, y1)
	})
	return nil
}

// neighborhood runs a filter that reads a (2r+1)² window. The source is
// snapshotted first so every task reads unmodified input; interior rows
// [r, Height-r) are partitioned across workers.
func (p *Processor) neighborhood(op string, buf *PixelBuffer, radius int, scalarFn convFunc, vectorFn func(src pixel.Image) convFunc) error {
	img := buf.view()
	if img.Width <= 2*radius || img.Height <= 2*radius {
		p.log.Debug("pixelfx: no interior", "op", op, "width", img.Width, "height", img.Height, "radius", radius)
		return nil
	}

	src := img.Packed()
	if !p.vector {
		p.log.Debug("pixelfx: dispatch", "op", op, "path", "scalar", "width", img.Width, "height", img.Height)
		scalarFn(img, src, 0, img.Height)
		return nil
	}

	fn := vectorFn(src)
	rows := img.Height - 2*radius
	p.log.Debug("pixelfx: dispatch", "op", op, "path", "vector", "rows", rows, "workers", p.workers)
	workerpool.Run(p.workers, rows, func(y0, y1 int) {
		fn(img, src, y0+radius, y1+radius)
	})
	return nil
}

// Filter names an in-place buffer operation.
type Filter int

const (
	FilterGrayscale Filter = iota
	FilterNegative
	FilterBlur
	FilterSharpen
	FilterEmboss
	FilterEdge
)

var filterNames = [...]string{
	FilterGrayscale: "grayscale",
	FilterNegative:  "negative",
	FilterBlur:      "blur",
	FilterSharpen:   "sharpen",
	FilterEmboss:    "emboss",
	FilterEdge:      "edge",
}

// String returns the canonical filter name.
func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("Filter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseFilter converts a filter name to a Filter. "gray" and "sobel" are
// accepted as aliases.
func ParseFilter(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grayscale", "gray", "grey":
		return FilterGrayscale, nil
	case "negative", "invert":
		return FilterNegative, nil
	case "blur", "gaussian":
		return FilterBlur, nil
	case "sharpen":
		return FilterSharpen, nil
	case "emboss":
		return FilterEmboss, nil
	case "edge", "sobel":
		return FilterEdge, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

// Params carries the blur parameters for Apply. Zero fields select
// DefaultBlurRadius and DefaultBlurSigma.
type Params struct {
	Radius int
	Sigma  float64
}

// Apply runs filter f on buf.
func (p *Processor) Apply(f Filter, buf *PixelBuffer, params Params) error {
	switch f {
	case FilterGrayscale:
		return p.Grayscale(buf)
	case FilterNegative:
		return p.Negative(buf)
	case FilterBlur:
		radius, sigma := params.Radius, params.Sigma
		if radius == 0 {
			radius = DefaultBlurRadius
		}
		if sigma == 0 {
			sigma = DefaultBlurSigma
		}
		return p.GaussianBlur(buf, radius, sigma)
	case FilterSharpen:
		return p.Sharpen(buf)
	case FilterEmboss:
		return p.Emboss(buf)
	case FilterEdge:
		return p.EdgeDetect(buf)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFilter, f)
	}
}
