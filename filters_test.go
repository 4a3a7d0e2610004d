package pixelfx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-pixelfx/internal/testutil"
)

var bothPaths = []Path{PathScalar, PathVector}

func TestNegative_Involution(t *testing.T) {
	for _, path := range bothPaths {
		t.Run(path.String(), func(t *testing.T) {
			p := newTestProcessor(t, path, 0)
			img := testutil.RandomImage(3, 37, 13, 8)
			orig := testutil.Clone(img)
			buf := bufferOf(img)

			require.NoError(t, p.Negative(buf))
			for y := range img.Height {
				for x := range img.Width {
					a, b := testutil.PixelAt(orig, x, y), testutil.PixelAt(img, x, y)
					assert.Equal(t, [4]uint8{255 - a[0], 255 - a[1], 255 - a[2], a[3]}, b)
				}
			}

			require.NoError(t, p.Negative(buf))
			testutil.AssertImagesEqual(t, orig, img)
			testutil.AssertPaddingUntouched(t, img)
		})
	}
}

func TestGrayscale_EqualChannelsAndStable(t *testing.T) {
	for _, path := range bothPaths {
		t.Run(path.String(), func(t *testing.T) {
			p := newTestProcessor(t, path, 0)
			img := testutil.RandomImage(4, 50, 9, 0)
			orig := testutil.Clone(img)
			buf := bufferOf(img)

			require.NoError(t, p.Grayscale(buf))
			for y := range img.Height {
				for x := range img.Width {
					px := testutil.PixelAt(img, x, y)
					assert.Equal(t, px[0], px[1])
					assert.Equal(t, px[1], px[2])
					assert.Equal(t, testutil.PixelAt(orig, x, y)[3], px[3], "alpha preserved")
				}
			}

			once := testutil.Clone(img)
			require.NoError(t, p.Grayscale(buf))
			testutil.AssertImagesWithin(t, once, img, 1)
		})
	}
}

func TestGaussianBlur_RadiusZeroIsIdentity(t *testing.T) {
	for _, path := range bothPaths {
		p := newTestProcessor(t, path, 0)
		img := testutil.RandomImage(5, 20, 20, 4)
		orig := testutil.Clone(img)

		require.NoError(t, p.GaussianBlur(bufferOf(img), 0, 2.0))
		testutil.AssertImagesEqual(t, orig, img, path.String())
	}
}

func TestGaussianBlur_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		radius int
		sigma  float64
		want   error
	}{
		{"negative radius", -1, 1.0, ErrInvalidRadius},
		{"oversized radius", 129, 1.0, ErrInvalidRadius},
		{"zero sigma", 2, 0, ErrInvalidSigma},
		{"negative sigma", 2, -1, ErrInvalidSigma},
		{"nan sigma", 2, math.NaN(), ErrInvalidSigma},
		{"infinite sigma", 2, math.Inf(1), ErrInvalidSigma},
	}

	p := newTestProcessor(t, PathAuto, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := testutil.RandomImage(6, 8, 8, 0)
			orig := testutil.Clone(img)

			err := p.GaussianBlur(bufferOf(img), tt.radius, tt.sigma)
			require.ErrorIs(t, err, tt.want)
			testutil.AssertImagesEqual(t, orig, img)
		})
	}
}

func TestGaussianBlur_ChecksBufferBeforeParameters(t *testing.T) {
	p := newTestProcessor(t, PathAuto, 0)
	b := NewPixelBuffer(4, 4)
	b.Format = FormatRGB565

	require.ErrorIs(t, p.GaussianBlur(b, -1, 1.0), ErrUnsupportedFormat)
	require.ErrorIs(t, p.GaussianBlur(b, 2, math.NaN()), ErrUnsupportedFormat)
	require.ErrorIs(t, p.GaussianBlur(nil, 200, 0), ErrInvalidBuffer)
	require.ErrorIs(t, p.Apply(FilterBlur, b, Params{Radius: -1, Sigma: 1}), ErrUnsupportedFormat)
}

func TestEdgeDetect_UniformInteriorIsBlack(t *testing.T) {
	for _, path := range bothPaths {
		t.Run(path.String(), func(t *testing.T) {
			p := newTestProcessor(t, path, 0)
			img := testutil.UniformImage(40, 12, 0, [4]uint8{120, 60, 200, 255})
			orig := testutil.Clone(img)

			require.NoError(t, p.EdgeDetect(bufferOf(img)))
			for y := 1; y < img.Height-1; y++ {
				for x := 1; x < img.Width-1; x++ {
					assert.Equal(t, [4]uint8{0, 0, 0, 255}, testutil.PixelAt(img, x, y))
				}
			}
			testutil.AssertBorderUnchanged(t, orig, img, 1)
		})
	}
}

func TestNeighborhood_BorderKeepsSource(t *testing.T) {
	for _, path := range bothPaths {
		p := newTestProcessor(t, path, 0)
		for _, fc := range filterCases[2:] {
			t.Run(path.String()+"/"+fc.name, func(t *testing.T) {
				img := testutil.RandomImage(8, 35, 19, 8)
				orig := testutil.Clone(img)

				require.NoError(t, fc.apply(p, bufferOf(img)))
				radius := 1
				if fc.name == "blur" {
					radius = 2
				}
				testutil.AssertBorderUnchanged(t, orig, img, radius)
				testutil.AssertPaddingUntouched(t, img)
			})
		}
	}
}

func TestNeighborhood_NoInteriorUnchanged(t *testing.T) {
	for _, path := range bothPaths {
		p := newTestProcessor(t, path, 0)
		for _, size := range [][2]int{{1, 1}, {2, 9}, {9, 2}} {
			img := testutil.RandomImage(9, size[0], size[1], 0)
			orig := testutil.Clone(img)

			require.NoError(t, p.Sharpen(bufferOf(img)))
			require.NoError(t, p.Emboss(bufferOf(img)))
			require.NoError(t, p.EdgeDetect(bufferOf(img)))
			testutil.AssertImagesEqual(t, orig, img)
		}

		img := testutil.RandomImage(10, 6, 30, 0)
		orig := testutil.Clone(img)
		require.NoError(t, p.GaussianBlur(bufferOf(img), 3, 2.0))
		testutil.AssertImagesEqual(t, orig, img)
	}
}

func TestFilters_RejectBadDescriptors(t *testing.T) {
	tests := []struct {
		name string
		buf  func() *PixelBuffer
		want error
	}{
		{"nil buffer", func() *PixelBuffer { return nil }, ErrInvalidBuffer},
		{"unknown format", func() *PixelBuffer {
			b := NewPixelBuffer(4, 4)
			b.Format = FormatUnknown
			return b
		}, ErrUnsupportedFormat},
		{"rgb565", func() *PixelBuffer {
			b := NewPixelBuffer(4, 4)
			b.Format = FormatRGB565
			return b
		}, ErrUnsupportedFormat},
		{"short stride", func() *PixelBuffer {
			b := NewPixelBuffer(4, 4)
			b.Stride = 15
			return b
		}, ErrInvalidBuffer},
		{"short pix", func() *PixelBuffer {
			b := NewPixelBuffer(4, 4)
			b.Pix = b.Pix[:len(b.Pix)-1]
			return b
		}, ErrInvalidBuffer},
		{"negative height", func() *PixelBuffer {
			b := NewPixelBuffer(4, 4)
			b.Height = -1
			return b
		}, ErrInvalidBuffer},
		{"stride overflows", func() *PixelBuffer {
			b := NewPixelBuffer(1, 4)
			b.Height = 3
			b.Stride = math.MaxInt/2 + 1
			return b
		}, ErrInvalidBuffer},
		{"width overflows", func() *PixelBuffer {
			b := NewPixelBuffer(1, 1)
			b.Width = math.MaxInt / 2
			b.Stride = math.MaxInt
			return b
		}, ErrInvalidBuffer},
	}

	p := newTestProcessor(t, PathVector, 0)
	for _, tt := range tests {
		for _, f := range []Filter{FilterGrayscale, FilterNegative, FilterBlur, FilterSharpen, FilterEmboss, FilterEdge} {
			t.Run(tt.name+"/"+f.String(), func(t *testing.T) {
				buf := tt.buf()
				var before []byte
				if buf != nil {
					for i := range buf.Pix {
						buf.Pix[i] = uint8(i)
					}
					before = append([]byte(nil), buf.Pix...)
				}

				err := p.Apply(f, buf, Params{})
				require.ErrorIs(t, err, tt.want)
				if buf != nil {
					assert.Equal(t, before, buf.Pix, "buffer mutated on error")
				}
			})
		}
	}
}

func TestFilters_EmptyBufferIsNoop(t *testing.T) {
	p := newTestProcessor(t, PathVector, 0)
	for _, f := range []Filter{FilterGrayscale, FilterNegative, FilterBlur, FilterSharpen, FilterEmboss, FilterEdge} {
		assert.NoError(t, p.Apply(f, NewPixelBuffer(0, 0), Params{}), f.String())
		assert.NoError(t, p.Apply(f, NewPixelBuffer(5, 0), Params{}), f.String())
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
	}{
		{"gray", FilterGrayscale},
		{"Grayscale", FilterGrayscale},
		{"negative", FilterNegative},
		{"blur", FilterBlur},
		{"sharpen", FilterSharpen},
		{"emboss", FilterEmboss},
		{" edge ", FilterEdge},
		{"sobel", FilterEdge},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFilter("posterize")
	require.ErrorIs(t, err, ErrUnknownFilter)

	for f := FilterGrayscale; f <= FilterEdge; f++ {
		got, err := ParseFilter(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestApply_UnknownFilter(t *testing.T) {
	p := newTestProcessor(t, PathScalar, 0)
	err := p.Apply(Filter(42), NewPixelBuffer(2, 2), Params{})
	require.ErrorIs(t, err, ErrUnknownFilter)
}

func TestConvenienceFunctions(t *testing.T) {
	img := testutil.RandomImage(12, 18, 18, 0)
	buf := bufferOf(img)

	require.NoError(t, Grayscale(buf))
	require.NoError(t, Negative(buf))
	require.NoError(t, GaussianBlur(buf, 1, 0.8))
	require.NoError(t, Sharpen(buf))
	require.NoError(t, Emboss(buf))
	require.NoError(t, EdgeDetect(buf))
	require.ErrorIs(t, Sharpen(nil), ErrInvalidBuffer)
}
