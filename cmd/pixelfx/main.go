// Command pixelfx applies an image filter to a file.
//
// Usage:
//
//	pixelfx -filter gray input.png output.png
//	pixelfx -filter blur -radius 5 -sigma 2.5 photo.jpg blurred.png
//	pixelfx -filter edge -path scalar input.bmp edges.tiff
//	pixelfx -filter yuv camera.jpg rgba.png        # 4:2:0 input only
//
// Input may be PNG, JPEG, BMP, TIFF or WebP. The output format follows the
// output file extension: .png, .jpg, .bmp or .tif.
//
// The yuv filter reads the decoded YCbCr planes as limited-range (16-235)
// video levels. JPEG stores full-range YCbCr, so yuv output from a JPEG
// looks contrast-stretched and clipped compared to a normal decode.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/tphakala/go-pixelfx"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	filterName := flag.String("filter", defaultFilter, "Filter: gray, negative, blur, sharpen, emboss, edge, yuv (limited-range 4:2:0)")
	radius := flag.Int("radius", pixelfx.DefaultBlurRadius, "Blur radius in pixels (0-128)")
	sigma := flag.Float64("sigma", pixelfx.DefaultBlurSigma, "Blur standard deviation")
	pathName := flag.String("path", "auto", "Kernel path: auto, scalar, vector")
	workers := flag.Int("workers", 0, "Worker goroutines for the vector path (0 = number of CPUs)")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file (for PGO)")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input output\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -filter gray in.png out.png\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -filter blur -radius 5 -sigma 2.5 in.jpg out.png\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -filter yuv camera.jpg out.png\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nThe yuv filter treats YCbCr as limited-range (16-235) video levels;\n")
		fmt.Fprintf(os.Stderr, "full-range JPEG input comes out contrast-stretched.\n")
		return fmt.Errorf("insufficient arguments")
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	path, err := pixelfx.ParsePath(*pathName)
	if err != nil {
		return err
	}

	config := &pixelfx.Config{Path: path, Workers: *workers}
	if *verbose {
		config.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	proc, err := pixelfx.New(config)
	if err != nil {
		return err
	}

	inputPath, outputPath := args[0], args[1]
	name := strings.ToLower(*filterName)

	if *verbose {
		info := proc.Info()
		log.Printf("Input: %s", inputPath)
		log.Printf("Output: %s", outputPath)
		log.Printf("Filter: %s", name)
		log.Printf("Path: %s (vector=%v, workers=%d, arch=%s)", info.Path, info.Vector, info.Workers, info.Arch)
		log.Printf("SIMD: %s (neon=%v, avx2=%v)", info.SIMDInfo, info.HasNEON, info.HasAVX2)
	}

	img, format, err := loadImage(inputPath)
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("Decoded %s image %v", format, img.Bounds().Size())
	}

	start := time.Now()
	var out image.Image
	if name == yuvFilter {
		out, err = convertYUV(proc, img)
	} else {
		out, err = applyFilter(proc, img, name, pixelfx.Params{Radius: *radius, Sigma: *sigma})
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := saveImage(outputPath, out); err != nil {
		return err
	}

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	size := out.Bounds().Size()
	fmt.Printf("  %s, %dx%d\n", name, size.X, size.Y)
	fmt.Printf("  Duration: %.2fms, %.1f Mpixel/s\n",
		float64(elapsed.Microseconds())/1000,
		float64(size.X*size.Y)/elapsed.Seconds()/1e6)

	return nil
}
