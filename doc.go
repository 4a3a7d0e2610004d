// Package pixelfx provides parallel image filters over caller-owned RGBA8888
// pixel memory, plus BT.601 YUV 4:2:0 to RGBA conversion.
//
// Every filter has a scalar reference implementation and a vector
// implementation that processes sixteen pixels per lane group and splits the
// image across a per-call goroutine pool. The vector path is selected
// automatically on ARM CPUs with NEON and can be forced on or off through
// [Config].
//
// # Features
//
//   - Grayscale and negative point filters
//   - Gaussian blur with any radius from 0 to 128
//   - Sharpen, emboss and Sobel edge detection
//   - YUV 4:2:0 to RGBA for planar and interleaved chroma layouts
//   - Stride-aware buffers: row padding is never read or written
//   - Views over [image.RGBA], [image.NRGBA] and [image.YCbCr] without copying
//
// # Quick Start
//
//	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
//	buf := pixelfx.FromRGBA(img)
//	if err := pixelfx.GaussianBlur(buf, 3, 1.5); err != nil {
//	    log.Fatal(err)
//	}
//
// For explicit control over the kernel path and worker count:
//
//	p, err := pixelfx.New(&pixelfx.Config{
//	    Path:    pixelfx.PathVector,
//	    Workers: 8,
//	    Logger:  slog.Default(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = p.EdgeDetect(buf)
//
// # Borders
//
// Neighborhood filters write only pixels whose whole window lies inside the
// image. Pixels within the kernel radius of an edge keep their source
// values, and an image too small to have an interior is left unchanged.
//
// # Concurrency
//
// A call blocks until all of its work is done and retains nothing afterwards.
// A [Processor] may be shared by goroutines working on distinct buffers;
// concurrent calls on the same buffer are the caller's responsibility.
//
// # Errors
//
// Descriptors are validated before any byte is written. Failures wrap
// [ErrUnsupportedFormat], [ErrInvalidBuffer], [ErrInvalidRadius] or
// [ErrInvalidSigma] and can be tested with [errors.Is].
package pixelfx
