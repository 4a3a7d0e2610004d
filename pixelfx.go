package pixelfx

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"strings"

	"github.com/tphakala/go-pixelfx/internal/cpufeat"
	"github.com/tphakala/go-pixelfx/internal/kernel"
	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/workerpool"
)

// Format identifies the memory layout of a PixelBuffer.
type Format int

const (
	// FormatUnknown is the zero value and is always rejected.
	FormatUnknown Format = iota

	// FormatRGBA8888 is 4 bytes per pixel in R, G, B, A order.
	// It is the only layout the filters accept.
	FormatRGBA8888

	// FormatRGB565 is 16-bit packed RGB.
	FormatRGB565

	// FormatRGBA4444 is 16-bit packed RGBA.
	FormatRGBA4444

	// FormatA8 is 8-bit alpha only.
	FormatA8

	// FormatRGBAF16 is four half-precision floats per pixel.
	FormatRGBAF16
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatRGB565:
		return "RGB565"
	case FormatRGBA4444:
		return "RGBA4444"
	case FormatA8:
		return "A8"
	case FormatRGBAF16:
		return "RGBAF16"
	default:
		return "unknown"
	}
}

// PixelBuffer describes caller-owned pixel memory. The engine never retains
// it past the call that receives it.
//
// Row y starts at Pix[y*Stride]. Bytes past Width*4 in a row are padding and
// are never read or written.
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
	Stride int
	Format Format
}

// Path selects the kernel implementation.
type Path int

const (
	// PathAuto uses the vector kernels when the CPU supports wide vectors.
	PathAuto Path = iota

	// PathScalar forces the single-threaded reference kernels.
	PathScalar

	// PathVector forces the parallel lane kernels on any CPU.
	PathVector
)

// String returns the path name.
func (p Path) String() string {
	switch p {
	case PathAuto:
		return "auto"
	case PathScalar:
		return "scalar"
	case PathVector:
		return "vector"
	default:
		return fmt.Sprintf("Path(%d)", int(p))
	}
}

// ParsePath converts "auto", "scalar" or "vector" to a Path.
func ParsePath(s string) (Path, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PathAuto, nil
	case "scalar":
		return PathScalar, nil
	case "vector", "simd":
		return PathVector, nil
	default:
		return PathAuto, fmt.Errorf("%w: unknown path %q", ErrInvalidConfig, s)
	}
}

// Common errors returned by the processor.
var (
	// ErrInvalidConfig indicates invalid processor configuration.
	ErrInvalidConfig = errors.New("invalid pixelfx configuration")

	// ErrUnsupportedFormat indicates a buffer that is not RGBA8888.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")

	// ErrInvalidBuffer indicates inconsistent dimensions, strides or lengths.
	ErrInvalidBuffer = errors.New("invalid pixel buffer")

	// ErrInvalidRadius indicates a blur radius outside 0-128.
	ErrInvalidRadius = kernel.ErrInvalidRadius

	// ErrInvalidSigma indicates a non-positive or non-finite blur sigma.
	ErrInvalidSigma = kernel.ErrInvalidSigma

	// ErrUnknownFilter indicates a filter name that ParseFilter does not know.
	ErrUnknownFilter = errors.New("unknown filter")
)

// Config holds processor configuration.
type Config struct {
	// Workers is the number of goroutines used by the vector path.
	// Zero selects runtime.NumCPU(), or 4 on single-CPU systems.
	Workers int

	// Path selects scalar or vector kernels. PathAuto probes the CPU once.
	Path Path

	// Logger receives dispatch diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	if c.Workers > maxWorkers {
		return fmt.Errorf("%w: too many workers (max %d)", ErrInvalidConfig, maxWorkers)
	}

	if c.Path < PathAuto || c.Path > PathVector {
		return fmt.Errorf("%w: unknown path %d", ErrInvalidConfig, int(c.Path))
	}

	return nil
}

// Processor applies filters to pixel buffers. The strategy is fixed when the
// processor is created. A Processor holds no per-call state and is safe for
// concurrent use on distinct buffers.
type Processor struct {
	path    Path
	vector  bool
	workers int
	log     *slog.Logger
}

// New creates a processor with the specified configuration.
func New(config *Config) (*Processor, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	p := &Processor{
		path:    config.Path,
		workers: config.Workers,
		log:     config.Logger,
	}
	if p.workers == 0 {
		p.workers = workerpool.DefaultWorkers()
	}
	if p.log == nil {
		p.log = nopLogger()
	}

	switch config.Path {
	case PathScalar:
		p.vector = false
	case PathVector:
		p.vector = true
	default:
		p.vector = cpufeat.SupportsWideVector()
	}

	p.log.Debug("pixelfx: processor created",
		"path", p.path.String(),
		"vector", p.vector,
		"workers", p.workers)
	return p, nil
}

// Info reports the processor's strategy and the detected CPU features.
type Info struct {
	// Path is the configured path.
	Path Path

	// Vector reports whether the lane kernels are in use.
	Vector bool

	// Workers is the number of goroutines per vector call.
	Workers int

	// Arch is runtime.GOARCH.
	Arch string

	// HasNEON reports ARM Advanced SIMD.
	HasNEON bool

	// HasAVX2 reports x86 AVX2. It does not affect kernel selection.
	HasAVX2 bool

	// WideVector reports what the CPU probe found, independent of Path.
	WideVector bool

	// SIMDInfo describes the SIMD instruction sets for diagnostics.
	SIMDInfo string
}

// Info returns information about the processor.
func (p *Processor) Info() Info {
	f := cpufeat.Detect()
	return Info{
		Path:       p.path,
		Vector:     p.vector,
		Workers:    p.workers,
		Arch:       runtime.GOARCH,
		HasNEON:    f.HasNEON,
		HasAVX2:    f.HasAVX2,
		WideVector: f.WideVector,
		SIMDInfo:   f.SIMDInfo,
	}
}

// validate checks a buffer descriptor before any byte is touched.
func (b *PixelBuffer) validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidBuffer)
	}
	if b.Format != FormatRGBA8888 {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, b.Format)
	}
	if b.Width < 0 || b.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrInvalidBuffer, b.Width, b.Height)
	}
	if b.Width > math.MaxInt/pixel.BytesPerPixel {
		return fmt.Errorf("%w: width %d too large", ErrInvalidBuffer, b.Width)
	}
	if b.Stride < b.Width*pixel.BytesPerPixel {
		return fmt.Errorf("%w: stride %d shorter than row of %d pixels", ErrInvalidBuffer, b.Stride, b.Width)
	}
	if b.Width == 0 || b.Height == 0 {
		return nil
	}
	if !spanFits(b.Height, b.Stride, b.Width*pixel.BytesPerPixel) {
		return fmt.Errorf("%w: %d rows of stride %d overflow", ErrInvalidBuffer, b.Height, b.Stride)
	}
	if need := (b.Height-1)*b.Stride + b.Width*pixel.BytesPerPixel; len(b.Pix) < need {
		return fmt.Errorf("%w: %d bytes, need %d", ErrInvalidBuffer, len(b.Pix), need)
	}
	return nil
}

// spanFits reports whether (rows-1)*stride + last fits in an int.
// rows >= 1 and stride, last >= 0.
func spanFits(rows, stride, last int) bool {
	if rows == 1 || stride == 0 {
		return last >= 0
	}
	return stride <= (math.MaxInt-last)/(rows-1)
}

// view returns the internal image view of b.
func (b *PixelBuffer) view() pixel.Image {
	return pixel.Image{Pix: b.Pix, Width: b.Width, Height: b.Height, Stride: b.Stride}
}

// check validates buf and logs rejections.
func (p *Processor) check(op string, buf *PixelBuffer) error {
	if err := buf.validate(); err != nil {
		p.log.Warn("pixelfx: buffer rejected", "op", op, "error", err)
		return err
	}
	return nil
}
