package pixelfx

import "sync"

// defaultProcessor is shared by the package-level functions. It uses
// PathAuto and the default worker count.
var defaultProcessor = sync.OnceValue(func() *Processor {
	p, err := New(&Config{})
	if err != nil {
		panic(err) // zero Config always validates
	}
	return p
})

// Grayscale converts buf to gray using the default processor.
func Grayscale(buf *PixelBuffer) error {
	return defaultProcessor().Grayscale(buf)
}

// Negative inverts buf using the default processor.
func Negative(buf *PixelBuffer) error {
	return defaultProcessor().Negative(buf)
}

// GaussianBlur blurs buf using the default processor.
func GaussianBlur(buf *PixelBuffer, radius int, sigma float64) error {
	return defaultProcessor().GaussianBlur(buf, radius, sigma)
}

// Sharpen sharpens buf using the default processor.
func Sharpen(buf *PixelBuffer) error {
	return defaultProcessor().Sharpen(buf)
}

// Emboss embosses buf using the default processor.
func Emboss(buf *PixelBuffer) error {
	return defaultProcessor().Emboss(buf)
}

// EdgeDetect runs Sobel edge detection on buf using the default processor.
func EdgeDetect(buf *PixelBuffer) error {
	return defaultProcessor().EdgeDetect(buf)
}

// ConvertYUV420ToRGBA converts a 4:2:0 frame using the default processor.
func ConvertYUV420ToRGBA(src *YUV420Buffer, dst *PixelBuffer, preferVector bool) error {
	return defaultProcessor().ConvertYUV420ToRGBA(src, dst, preferVector)
}
