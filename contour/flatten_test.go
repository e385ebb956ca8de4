package contour

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func TestSquare(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 10)).
		LineTo(pt(0, 10)).
		Close()

	segs := NewFlattener().Segments(p.Iter())
	require.Len(t, segs, 4)
	assert.Equal(t, pt(0, 10), segs[3].A)
	assert.Equal(t, pt(0, 0), segs[3].B)
	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1].B, segs[i].A)
	}
}

func TestOpenAndDegenerate(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(5, 0)).
		LineTo(pt(5, 0)). // zero length, dropped
		LineTo(pt(5, 5)).
		MoveTo(pt(20, 20)).
		Close() // single point, nothing to emit

	segs := NewFlattener().Segments(p.Iter())
	require.Len(t, segs, 2)
	assert.Equal(t, pt(5, 5), segs[1].B)
}

func TestClosedExplicitly(t *testing.T) {
	// the last LineTo already returns to the start
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(4, 0)).
		LineTo(pt(0, 3)).
		LineTo(pt(0, 0)).
		Close()
	segs := NewFlattener().Segments(p.Iter())
	assert.Len(t, segs, 3)
}

func TestCTM(t *testing.T) {
	p := (&path.Data{}).MoveTo(pt(1, 0)).LineTo(pt(2, 0))

	f := NewFlattener()
	f.CTM = matrix.Scale(2, 2).Translate(1, 1)
	segs := f.Segments(p.Iter())
	require.Len(t, segs, 1)
	assert.InDelta(t, 3, segs[0].A.X, 1e-12)
	assert.InDelta(t, 1, segs[0].A.Y, 1e-12)
	assert.InDelta(t, 5, segs[0].B.X, 1e-12)
}

// circle returns a closed circle made of four cubic arcs.
func circle(cx, cy, r float64) *path.Data {
	const k = 0.5522847498307936
	kr := k * r
	return (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
		Close()
}

func TestCubicFlatness(t *testing.T) {
	for _, flatness := range []float64{1, 0.1, 0.01} {
		f := &Flattener{CTM: matrix.Identity, Flatness: flatness}
		segs := f.Segments(circle(0, 0, 10).Iter())
		require.Greater(t, len(segs), 4)

		for _, s := range segs {
			// end points lie on the circle, up to the Bézier approximation error
			assert.InDelta(t, 10, s.A.Length(), 0.003)
			// chord midpoints stay within the tolerance
			mid := s.A.Add(s.B).Mul(0.5)
			assert.Less(t, 10-mid.Length(), flatness+0.003)
		}
	}

	coarse := (&Flattener{CTM: matrix.Identity, Flatness: 1}).Segments(circle(0, 0, 10).Iter())
	fine := (&Flattener{CTM: matrix.Identity, Flatness: 0.01}).Segments(circle(0, 0, 10).Iter())
	assert.Less(t, len(coarse), len(fine))
}

func TestQuadratic(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(pt(0, 0)).
		QuadTo(pt(5, 10), pt(10, 0))

	segs := NewFlattener().Segments(p.Iter())
	require.Greater(t, len(segs), 1)
	assert.Equal(t, pt(0, 0), segs[0].A)
	assert.InDelta(t, 10, segs[len(segs)-1].B.X, 1e-12)
	assert.InDelta(t, 0, segs[len(segs)-1].B.Y, 1e-12)

	// the apex of the curve is at (5, 5)
	top := 0.0
	for _, s := range segs {
		top = math.Max(top, s.B.Y)
	}
	assert.InDelta(t, 5, top, DefaultFlatness)
}
