package main

// Command-line defaults
const (
	minRequiredArgs = 2
	defaultFilter   = "grayscale"
)

// Output encoding
const (
	jpegQuality = 95
)

// yuvFilter selects YUV 4:2:0 to RGBA conversion instead of a buffer filter.
const yuvFilter = "yuv"
