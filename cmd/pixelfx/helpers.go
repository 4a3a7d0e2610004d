package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tphakala/go-pixelfx"
)

// loadImage decodes any registered format and reports its name.
func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, format, nil
}

// toBuffer returns an RGBA8888 buffer holding img together with an image
// sharing the same pixels in the matching color model. RGBA and NRGBA images
// are shared without copying; anything else is converted to NRGBA first.
func toBuffer(img image.Image) (*pixelfx.PixelBuffer, image.Image) {
	switch m := img.(type) {
	case *image.RGBA:
		return pixelfx.FromRGBA(m), m
	case *image.NRGBA:
		return pixelfx.FromNRGBA(m), m
	}
	b := img.Bounds()
	m := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(m, m.Bounds(), img, b.Min, draw.Src)
	return pixelfx.FromNRGBA(m), m
}

// applyFilter runs the named filter on the pixels of img and returns the
// filtered image in img's color model.
func applyFilter(proc *pixelfx.Processor, img image.Image, name string, params pixelfx.Params) (image.Image, error) {
	f, err := pixelfx.ParseFilter(name)
	if err != nil {
		return nil, err
	}
	buf, out := toBuffer(img)
	if err := proc.Apply(f, buf, params); err != nil {
		return nil, fmt.Errorf("%s failed: %w", f, err)
	}
	return out, nil
}

// convertYUV converts a 4:2:0 YCbCr image, as produced by the JPEG and lossy
// WebP decoders, to opaque RGBA. Samples are read as limited-range video
// levels even though JPEG stores full range.
func convertYUV(proc *pixelfx.Processor, img image.Image) (*image.RGBA, error) {
	var ycc *image.YCbCr
	switch m := img.(type) {
	case *image.YCbCr:
		ycc = m
	case *image.NYCbCrA:
		ycc = &m.YCbCr
	default:
		return nil, fmt.Errorf("yuv conversion needs a YCbCr input, got %T", img)
	}

	src, err := pixelfx.FromYCbCr(ycc)
	if err != nil {
		return nil, err
	}
	dst := pixelfx.NewPixelBuffer(src.Width, src.Height)
	if err := proc.ConvertYUV420ToRGBA(src, dst, true); err != nil {
		return nil, fmt.Errorf("yuv conversion failed: %w", err)
	}
	return dst.RGBA(), nil
}

// saveImage encodes img in the format named by the file extension.
func saveImage(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
