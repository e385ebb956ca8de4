package preview

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath/line"
)

// hatchLines returns n horizontal lines evenly spread over a size×size area.
func hatchLines(size, n int) []line.Segment {
	segs := make([]line.Segment, n)
	step := float64(size) / float64(n+1)
	for i := range segs {
		y := step * float64(i+1)
		segs[i] = seg(0.05*float64(size), y, 0.95*float64(size), y+0.1*float64(size))
	}
	return segs
}

// BenchmarkStroke benchmarks our rasterizer drawing a hatch pattern.
func BenchmarkStroke(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			r.Width = 1
			segs := hatchLines(size, size/4)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ReportAllocs()
			for b.Loop() {
				r.Stroke(segs, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorStroke benchmarks x/image/vector drawing the same pattern.
func BenchmarkVectorStroke(b *testing.B) {
	for _, size := range []int{20, 200, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			segs := hatchLines(size, size/4)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				for _, s := range segs {
					addQuad(r, s, 0.5)
				}
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// addQuad adds the butt-capped outline of s to a vector rasterizer.
func addQuad(r *vector.Rasterizer, s line.Segment, d float64) {
	t := s.B.Sub(s.A)
	t = t.Mul(1 / t.Length())
	n := t.Mul(d)
	n.X, n.Y = -n.Y, n.X

	p0, p1 := s.A.Sub(n), s.B.Sub(n)
	p2, p3 := s.B.Add(n), s.A.Add(n)
	r.MoveTo(float32(p0.X), float32(p0.Y))
	r.LineTo(float32(p1.X), float32(p1.Y))
	r.LineTo(float32(p2.X), float32(p2.Y))
	r.LineTo(float32(p3.X), float32(p3.Y))
	r.ClosePath()
}
