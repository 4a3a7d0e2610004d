//go:build arm

package cpufeat

import "golang.org/x/sys/cpu"

func probeArch(f *Features) {
	f.HasNEON = cpu.ARM.HasNEON
}
