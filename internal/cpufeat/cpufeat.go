// Package cpufeat probes the running CPU for the wide-vector support that
// selects between the scalar and vector kernels.
//
// The probe is pure and memoized: the first call records the result and
// every later call returns it.
package cpufeat

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	simdcpu "github.com/tphakala/simd/cpu"
)

// NoSIMDEnv names the environment variable that forces the scalar path when
// set to any truthy value.
const NoSIMDEnv = "PIXELFX_NO_SIMD"

// Features describes the capabilities relevant to kernel selection.
type Features struct {
	// Arch is runtime.GOARCH.
	Arch string

	// HasNEON reports ARM Advanced SIMD. Always true on arm64.
	HasNEON bool

	// HasAVX2 is reported through Info; the wide kernels are keyed on NEON only.
	HasAVX2 bool

	// WideVector is the dispatch decision: NEON present and not disabled
	// through NoSIMDEnv.
	WideVector bool

	// SIMDInfo describes the instruction set used by the float32 SIMD
	// primitives.
	SIMDInfo string
}

var detected = sync.OnceValue(probe)

// Detect returns the memoized CPU features.
func Detect() Features {
	return detected()
}

// SupportsWideVector reports whether the vector kernels should be selected.
// True on 64-bit ARM and on 32-bit ARM with NEON, false everywhere else.
func SupportsWideVector() bool {
	return detected().WideVector
}

func probe() Features {
	f := Features{
		Arch:     runtime.GOARCH,
		SIMDInfo: simdcpu.Info(),
	}
	probeArch(&f)
	f.WideVector = f.HasNEON && !noSIMD()
	return f
}

// noSIMD reports whether NoSIMDEnv disables the wide path. Any non-empty
// value that does not parse as a boolean counts as true.
func noSIMD() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
