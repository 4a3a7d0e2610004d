package pixelfx

import (
	"fmt"
	"testing"

	"github.com/tphakala/go-pixelfx/internal/testutil"
)

const (
	benchWidth  = 1920
	benchHeight = 1080
)

// BenchmarkFilters compares the scalar and vector paths on a 1080p frame.
func BenchmarkFilters(b *testing.B) {
	src := testutil.RandomImage(1, benchWidth, benchHeight, 0)

	for _, fc := range filterCases {
		for _, path := range []Path{PathScalar, PathVector} {
			b.Run(fmt.Sprintf("%s/%s", fc.name, path), func(b *testing.B) {
				p := newTestProcessor(b, path, 0)
				img := testutil.Clone(src)
				buf := bufferOf(img)

				b.SetBytes(int64(len(img.Pix)))
				b.ReportAllocs()
				for b.Loop() {
					copy(img.Pix, src.Pix)
					if err := fc.apply(p, buf); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkYUV420ToRGBA measures frame conversion throughput.
func BenchmarkYUV420ToRGBA(b *testing.B) {
	src := yuvBufferOf(testutil.YUVFrame(1, benchWidth, benchHeight, 2))
	dst := NewPixelBuffer(benchWidth, benchHeight)

	for _, path := range []Path{PathScalar, PathVector} {
		b.Run(path.String(), func(b *testing.B) {
			p := newTestProcessor(b, path, 0)
			b.SetBytes(int64(len(dst.Pix)))
			for b.Loop() {
				if err := p.ConvertYUV420ToRGBA(src, dst, true); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
