package pixelfx

import (
	"fmt"
	"image"

	"github.com/tphakala/go-pixelfx/internal/pixel"
)

// NewPixelBuffer allocates a tightly packed RGBA8888 buffer.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width, height = max(width, 0), max(height, 0)
	stride := width * pixel.BytesPerPixel
	return &PixelBuffer{
		Pix:    make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: FormatRGBA8888,
	}
}

// Clone returns a deep copy of b with the same stride.
func (b *PixelBuffer) Clone() *PixelBuffer {
	out := *b
	out.Pix = append([]byte(nil), b.Pix...)
	return &out
}

// FromRGBA returns a buffer sharing m's pixels. Filters applied to the
// buffer modify m. The bytes are processed as stored; premultiplied colors
// are not converted.
func FromRGBA(m *image.RGBA) *PixelBuffer {
	r := m.Rect
	return &PixelBuffer{
		Pix:    m.Pix[m.PixOffset(r.Min.X, r.Min.Y):],
		Width:  r.Dx(),
		Height: r.Dy(),
		Stride: m.Stride,
		Format: FormatRGBA8888,
	}
}

// FromNRGBA returns a buffer sharing m's pixels.
func FromNRGBA(m *image.NRGBA) *PixelBuffer {
	r := m.Rect
	return &PixelBuffer{
		Pix:    m.Pix[m.PixOffset(r.Min.X, r.Min.Y):],
		Width:  r.Dx(),
		Height: r.Dy(),
		Stride: m.Stride,
		Format: FormatRGBA8888,
	}
}

// RGBA returns an *image.RGBA sharing b's pixels, or nil if b is not a valid
// RGBA8888 buffer.
func (b *PixelBuffer) RGBA() *image.RGBA {
	if b.validate() != nil {
		return nil
	}
	return &image.RGBA{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// NRGBA returns an *image.NRGBA sharing b's pixels, or nil if b is not a
// valid RGBA8888 buffer. Use it for buffers filled from FromNRGBA so that
// translucent pixels keep their straight-alpha meaning.
func (b *PixelBuffer) NRGBA() *image.NRGBA {
	if b.validate() != nil {
		return nil
	}
	return &image.NRGBA{
		Pix:    b.Pix,
		Stride: b.Stride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}
}

// FromYCbCr returns a YUV420Buffer sharing m's planes. m must use 4:2:0
// subsampling and start on an even pixel. Samples are interpreted as
// limited-range video levels.
func FromYCbCr(m *image.YCbCr) (*YUV420Buffer, error) {
	if m.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		return nil, fmt.Errorf("%w: subsample ratio %v is not 4:2:0", ErrUnsupportedFormat, m.SubsampleRatio)
	}
	r := m.Rect
	if r.Min.X%2 != 0 || r.Min.Y%2 != 0 {
		return nil, fmt.Errorf("%w: 4:2:0 image must start on an even pixel, got %v", ErrInvalidBuffer, r.Min)
	}
	c := m.COffset(r.Min.X, r.Min.Y)
	b := &YUV420Buffer{
		Y:            m.Y[m.YOffset(r.Min.X, r.Min.Y):],
		U:            m.Cb[c:],
		V:            m.Cr[c:],
		Width:        r.Dx(),
		Height:       r.Dy(),
		YStride:      m.YStride,
		UStride:      m.CStride,
		VStride:      m.CStride,
		UPixelStride: 1,
		VPixelStride: 1,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}
