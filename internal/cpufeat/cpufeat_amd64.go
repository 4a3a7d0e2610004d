//go:build amd64

package cpufeat

import "golang.org/x/sys/cpu"

func probeArch(f *Features) {
	f.HasAVX2 = cpu.X86.HasAVX2
}
