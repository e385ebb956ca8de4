package line

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestProbeForm(t *testing.T) {
	p := NewProbe(seg(0, 1, 2, 2))
	assert.False(t, p.Steep)
	assert.InDelta(t, 0.5, p.Slope, 1e-12)
	assert.InDelta(t, 1, p.Intercept, 1e-12)

	v := NewProbe(seg(3, 0, 3, 7))
	assert.True(t, v.Steep)
	assert.Equal(t, 0.0, v.Slope)
	assert.Equal(t, 3.0, v.Intercept)

	z := NewProbe(seg(4, 4, 4, 4))
	assert.True(t, z.Steep)
	assert.Equal(t, 4.0, z.Intercept)
}

func TestProbePassesThrough(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	cases := []struct {
		name string
		s    Segment
		want bool
	}{
		{"horizontal inside", seg(-5, 5, -4, 5), true},
		{"horizontal on top edge", seg(20, 10, 30, 10), true},
		{"horizontal above", seg(0, 11, 10, 11), false},
		{"vertical on left edge", seg(0, -5, 0, -4), true},
		{"vertical right of box", seg(10.5, 0, 10.5, 1), false},
		{"diagonal through corner", seg(-1, 11, 0, 10), true},
		{"diagonal missing corner", seg(-1, 10, 0, 11), false},
		{"steep crossing", seg(5, -100, 5.01, 100), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NewProbe(c.s).PassesThrough(r))
		})
	}
}

// A probe may accept rectangles which the finite segment does not reach:
// only the infinite line counts.
func TestProbeFalsePositiveAllowed(t *testing.T) {
	r := rect.Rect{LLx: 0, LLy: 0, URx: 1, URy: 1}
	far := seg(100, 0.5, 101, 0.5)
	_, hits := far.Intersect(seg(0.5, 0, 0.5, 1))
	assert.False(t, hits)
	assert.True(t, NewProbe(far).PassesThrough(r))
}

// A probe must never reject a rectangle containing a true intersection of
// the probe segment with a segment inside the rectangle.
func TestProbeNoFalseNegatives(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	point := func(lo, hi float64) vec.Vec2 {
		return vec.Vec2{X: lo + rng.Float64()*(hi-lo), Y: lo + rng.Float64()*(hi-lo)}
	}
	for range 20000 {
		x0 := rng.Float64()*200 - 100
		y0 := rng.Float64()*200 - 100
		w := rng.Float64() * 5
		r := rect.Rect{LLx: x0, LLy: y0, URx: x0 + w, URy: y0 + w}

		inner := Segment{A: point(0, 1), B: point(0, 1)}
		inner.A = vec.Vec2{X: x0 + inner.A.X*w, Y: y0 + inner.A.Y*w}
		inner.B = vec.Vec2{X: x0 + inner.B.X*w, Y: y0 + inner.B.Y*w}

		probe := Segment{A: point(-150, 150), B: point(-150, 150)}
		if _, ok := probe.Intersect(inner); !ok {
			continue
		}
		if !NewProbe(probe).PassesThrough(r) {
			t.Fatalf("probe %v rejected %v containing an intersection with %v", probe, r, inner)
		}
	}
}
