package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-pixelfx/internal/kernel"
	"github.com/tphakala/go-pixelfx/internal/pixel"
	"github.com/tphakala/go-pixelfx/internal/testutil"
)

func TestGrayscaleSpan(t *testing.T) {
	tests := []struct {
		name string
		in   [4]uint8
		want [4]uint8
	}{
		{"black", [4]uint8{0, 0, 0, 255}, [4]uint8{0, 0, 0, 255}},
		{"white", [4]uint8{255, 255, 255, 255}, [4]uint8{255, 255, 255, 255}},
		{"pure red", [4]uint8{255, 0, 0, 10}, [4]uint8{77, 77, 77, 10}},
		{"pure green", [4]uint8{0, 255, 0, 0}, [4]uint8{149, 149, 149, 0}},
		{"pure blue", [4]uint8{0, 0, 255, 200}, [4]uint8{29, 29, 29, 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pix := tt.in
			GrayscaleSpan(pix[:])
			assert.Equal(t, tt.want, pix)
		})
	}
}

func TestNegativeSpan_Involution(t *testing.T) {
	img := testutil.RandomImage(1, 19, 5, 0)
	orig := testutil.Clone(img)

	NegativeSpan(img.Pix)
	for i := 0; i < len(img.Pix); i += pixel.BytesPerPixel {
		assert.Equal(t, 255-orig.Pix[i], img.Pix[i])
		assert.Equal(t, orig.Pix[i+pixel.OffA], img.Pix[i+pixel.OffA], "alpha preserved")
	}

	NegativeSpan(img.Pix)
	assert.Equal(t, orig.Pix, img.Pix)
}

func TestPointRows_SkipPadding(t *testing.T) {
	img := testutil.RandomImage(2, 7, 6, 12)
	Grayscale(img, 0, img.Height)
	testutil.AssertPaddingUntouched(t, img)

	Negative(img, 2, 4)
	testutil.AssertPaddingUntouched(t, img)
}

func TestInteriorRows(t *testing.T) {
	tests := []struct {
		name           string
		height, radius int
		y0, y1         int
		want0, want1   int
	}{
		{"whole image", 10, 1, 0, 10, 1, 9},
		{"middle slice", 10, 1, 3, 6, 3, 6},
		{"top slice", 10, 2, 0, 3, 2, 3},
		{"no interior", 2, 1, 0, 2, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := InteriorRows(tt.height, tt.radius, tt.y0, tt.y1)
			assert.Equal(t, tt.want0, a)
			assert.Equal(t, tt.want1, b)
		})
	}
}

func TestSharpen_UniformUnchanged(t *testing.T) {
	src := testutil.UniformImage(9, 7, 4, [4]uint8{90, 140, 33, 77})
	dst := testutil.Clone(src)

	Sharpen(dst, src, 0, src.Height)
	testutil.AssertImagesEqual(t, src, dst)
	testutil.AssertPaddingUntouched(t, dst)
}

func TestSharpen_Saturates(t *testing.T) {
	// A bright center on a dark field overshoots; dark neighbours undershoot.
	src := testutil.UniformImage(5, 5, 0, [4]uint8{0, 0, 0, 255})
	o := src.Offset(2, 2)
	src.Pix[o], src.Pix[o+1], src.Pix[o+2] = 200, 200, 200
	dst := testutil.Clone(src)

	Sharpen(dst, src, 0, 5)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, testutil.PixelAt(dst, 2, 2))
	assert.Equal(t, [4]uint8{0, 0, 0, 255}, testutil.PixelAt(dst, 1, 1))
}

func TestEmboss_BlackIsMidGray(t *testing.T) {
	src := testutil.UniformImage(6, 6, 0, [4]uint8{0, 0, 0, 42})
	dst := testutil.Clone(src)

	Emboss(dst, src, 0, src.Height)
	for y := 1; y < 5; y++ {
		for x := 1; x < 5; x++ {
			assert.Equal(t, [4]uint8{128, 128, 128, 42}, testutil.PixelAt(dst, x, y))
		}
	}
	testutil.AssertBorderUnchanged(t, src, dst, 1)
}

func TestEdgeDetect_UniformIsZero(t *testing.T) {
	src := testutil.UniformImage(8, 5, 8, [4]uint8{12, 200, 99, 255})
	dst := testutil.Clone(src)

	EdgeDetect(dst, src, 0, src.Height)
	for y := 1; y < 4; y++ {
		for x := 1; x < 7; x++ {
			assert.Equal(t, [4]uint8{0, 0, 0, 255}, testutil.PixelAt(dst, x, y))
		}
	}
	testutil.AssertBorderUnchanged(t, src, dst, 1)
	testutil.AssertPaddingUntouched(t, dst)
}

func TestEdgeDetect_VerticalStep(t *testing.T) {
	// Left half 0, right half 100 on the red channel only.
	src := testutil.UniformImage(4, 3, 0, [4]uint8{0, 0, 0, 255})
	for y := range 3 {
		for x := 2; x < 4; x++ {
			src.Pix[src.Offset(x, y)] = 100
		}
	}
	dst := testutil.Clone(src)

	EdgeDetect(dst, src, 0, 3)
	// Gx = (1+2+1)*100 = 400 saturates; Gy = 0.
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, testutil.PixelAt(dst, 1, 1))
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, testutil.PixelAt(dst, 2, 1))
}

func TestGaussianBlur_RadiusZeroIdentity(t *testing.T) {
	k, err := kernel.Gaussian(0, 1.5)
	require.NoError(t, err)

	src := testutil.RandomImage(3, 13, 9, 4)
	dst := testutil.Clone(src)
	GaussianBlur(dst, src, k, 0, src.Height)
	testutil.AssertImagesEqual(t, src, dst)
}

func TestGaussianBlur_UniformWithinOne(t *testing.T) {
	k, err := kernel.Gaussian(2, 1.0)
	require.NoError(t, err)

	src := testutil.UniformImage(10, 10, 0, [4]uint8{200, 100, 50, 255})
	dst := testutil.Clone(src)
	GaussianBlur(dst, src, k, 0, src.Height)
	testutil.AssertImagesWithin(t, src, dst, 1)
	testutil.AssertBorderUnchanged(t, src, dst, 2)
}

func TestGaussianBlur_NoInterior(t *testing.T) {
	k, err := kernel.Gaussian(3, 2.0)
	require.NoError(t, err)

	src := testutil.RandomImage(4, 6, 6, 0)
	dst := testutil.Clone(src)
	GaussianBlur(dst, src, k, 0, src.Height)
	testutil.AssertImagesEqual(t, src, dst)
}

func TestNeighborhood_RowPartitionsMatchWhole(t *testing.T) {
	k, err := kernel.Gaussian(2, 1.2)
	require.NoError(t, err)

	filters := map[string]func(dst, src pixel.Image, y0, y1 int){
		"sharpen": Sharpen,
		"emboss":  Emboss,
		"edge":    EdgeDetect,
		"blur": func(dst, src pixel.Image, y0, y1 int) {
			GaussianBlur(dst, src, k, y0, y1)
		},
	}

	for name, fn := range filters {
		t.Run(name, func(t *testing.T) {
			src := testutil.RandomImage(5, 21, 17, 8)
			whole := testutil.Clone(src)
			fn(whole, src, 0, src.Height)

			split := testutil.Clone(src)
			for _, cut := range [][2]int{{0, 4}, {4, 5}, {5, 12}, {12, 17}} {
				fn(split, src, cut[0], cut[1])
			}
			testutil.AssertImagesEqual(t, whole, split)
		})
	}
}

func TestYUVToRGBA_Reference(t *testing.T) {
	tests := []struct {
		name    string
		y, u, v uint8
		want    [4]uint8
	}{
		{"black", 16, 128, 128, [4]uint8{0, 0, 0, 255}},
		{"white", 235, 128, 128, [4]uint8{255, 255, 255, 255}},
		{"below black clamps", 0, 128, 128, [4]uint8{0, 0, 0, 255}},
		{"red-ish", 81, 90, 240, [4]uint8{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := pixel.YUV{
				Y: []byte{tt.y, tt.y, tt.y, tt.y}, U: []byte{tt.u}, V: []byte{tt.v},
				Width: 2, Height: 2, YStride: 2, UStride: 1, VStride: 1,
				UPixelStride: 1, VPixelStride: 1,
			}
			dst := testutil.NewImage(2, 2, 0)
			YUVToRGBA(dst, src, 0, 2)
			for y := range 2 {
				for x := range 2 {
					assert.Equal(t, tt.want, testutil.PixelAt(dst, x, y))
				}
			}
		})
	}
}

func TestYUVToRGBA_InterleavedMatchesPlanar(t *testing.T) {
	for _, w := range []int{1, 2, 5, 16, 33} {
		nv := testutil.YUVFrame(uint64(w), w, 7, 2)

		planar := nv
		cw, ch := (w+1)/2, 4
		planar.U, planar.V = make([]byte, cw*ch), make([]byte, cw*ch)
		for cy := range ch {
			for cx := range cw {
				planar.U[cy*cw+cx] = nv.U[cy*nv.UStride+cx*2]
				planar.V[cy*cw+cx] = nv.V[cy*nv.VStride+cx*2]
			}
		}
		planar.UStride, planar.VStride = cw, cw
		planar.UPixelStride, planar.VPixelStride = 1, 1

		a := testutil.NewImage(w, 7, 4)
		b := testutil.NewImage(w, 7, 4)
		YUVToRGBA(a, nv, 0, 7)
		YUVToRGBA(b, planar, 0, 7)
		testutil.AssertImagesEqual(t, a, b, "width %d", w)
		testutil.AssertPaddingUntouched(t, a)
	}
}
