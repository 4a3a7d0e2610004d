// Package kernel builds the convolution kernels used by the neighborhood
// filters.
package kernel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// maxRadius bounds the Gaussian window to a 257x257 matrix.
	maxRadius = 128

	// gaussianVarianceFactor is the 2 in exp(-(dx²+dy²)/(2σ²)).
	gaussianVarianceFactor = 2.0
)

var (
	// ErrInvalidRadius indicates a negative or oversized kernel radius.
	ErrInvalidRadius = errors.New("invalid kernel radius")

	// ErrInvalidSigma indicates a non-positive or non-finite sigma.
	ErrInvalidSigma = errors.New("invalid gaussian sigma")
)

// Kernel is a square, row-major weight matrix of side 2*Radius+1.
type Kernel struct {
	Radius  int
	Weights []float32
}

// Side returns the kernel side length.
func (k Kernel) Side() int {
	return 2*k.Radius + 1
}

// Row returns the weights of kernel row ky, 0 <= ky < Side().
func (k Kernel) Row(ky int) []float32 {
	side := k.Side()
	return k.Weights[ky*side : (ky+1)*side]
}

// At returns the weight at offset (dx, dy) from the center.
func (k Kernel) At(dx, dy int) float32 {
	return k.Weights[(dy+k.Radius)*k.Side()+dx+k.Radius]
}

// Gaussian returns a normalized Gaussian kernel.
//
// Each weight is exp(-(dx²+dy²)/(2σ²))/(2πσ²) before normalization; the
// matrix is then scaled so the weights sum to 1. Radius 0 yields the single
// weight 1.
func Gaussian(radius int, sigma float64) (Kernel, error) {
	if radius < 0 || radius > maxRadius {
		return Kernel{}, fmt.Errorf("%w: %d (want 0-%d)", ErrInvalidRadius, radius, maxRadius)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return Kernel{}, fmt.Errorf("%w: %v", ErrInvalidSigma, sigma)
	}

	side := 2*radius + 1
	s := gaussianVarianceFactor * sigma * sigma
	w := make([]float64, side*side)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			d2 := float64(dx*dx + dy*dy)
			w[(dy+radius)*side+dx+radius] = math.Exp(-d2/s) / (math.Pi * s)
		}
	}

	// Tiny sigmas underflow every off-center tap; the center always survives.
	sum := floats.Sum(w)
	if sum == 0 || math.IsInf(sum, 0) {
		return Kernel{}, fmt.Errorf("%w: %v underflows the kernel", ErrInvalidSigma, sigma)
	}
	floats.Scale(1/sum, w)

	k := Kernel{Radius: radius, Weights: make([]float32, len(w))}
	for i, v := range w {
		k.Weights[i] = float32(v)
	}
	return k, nil
}

// Fixed3x3 is an integer 3x3 kernel, row-major.
type Fixed3x3 [9]int32

// At returns the weight at offset (dx, dy), both in [-1, 1].
func (k *Fixed3x3) At(dx, dy int) int32 {
	return k[(dy+1)*3+dx+1]
}

// Fixed kernels for the 1-pixel-radius filters.
var (
	Sharpen = Fixed3x3{
		-1, -1, -1,
		-1, 9, -1,
		-1, -1, -1,
	}

	Emboss = Fixed3x3{
		-2, -1, 0,
		-1, 1, 1,
		0, 1, 2,
	}

	SobelX = Fixed3x3{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}

	SobelY = Fixed3x3{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}
)
