// Package scalar contains the reference, single-pixel implementations of
// every filter and of the YUV 4:2:0 converter.
//
// The routines are portable and carry no architecture assumptions; the
// vector kernels fall back to them for the pixels left after the last full
// lane group. Row-range entry points take half-open [y0, y1) intervals and
// clip them to the rows the filter is defined on, so callers can hand in any
// partition of the image.
package scalar
