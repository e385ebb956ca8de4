// seehuhn.de/go/toolpath - hatch fill and tiling for sliced contours
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package contour turns sliced outlines into straight line segments.
package contour

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/line"
)

// DefaultFlatness is the default curve tolerance in output units.
const DefaultFlatness = 0.01

// zeroLengthThreshold is the length below which output segments are dropped.
const zeroLengthThreshold = 1e-12

// Flattener converts paths into line segments.  Curves are replaced by
// polylines that stay within Flatness of the true curve, and every point is
// mapped through CTM.  Create one instance and reuse it for multiple paths.
//
// A Flattener is not safe for concurrent use.
type Flattener struct {
	// CTM maps path coordinates to output coordinates.
	CTM matrix.Matrix

	// Flatness is the maximal distance, in output units, between a curve
	// and its approximation.  Must be positive.
	Flatness float64

	segs []line.Segment
}

// NewFlattener returns a Flattener with the identity transformation and
// DefaultFlatness.
func NewFlattener() *Flattener {
	return &Flattener{
		CTM:      matrix.Identity,
		Flatness: DefaultFlatness,
	}
}

// Segments returns the flattened outline of p in output coordinates.
//
// Open sub-paths are kept open; ClosePath adds the closing segment.
// Commands before the first MoveTo are ignored.  The returned slice is
// newly allocated.
func (f *Flattener) Segments(p path.Path) []line.Segment {
	f.segs = f.segs[:0]

	var current, start vec.Vec2
	inSubpath := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			current = pts[0]
			start = current
			inSubpath = true

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			f.add(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			f.flattenQuadratic(current, pts[0], pts[1])
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			f.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if current != start {
				f.add(current, start)
			}
			current = start
			inSubpath = false
		}
	}

	res := make([]line.Segment, len(f.segs))
	copy(res, f.segs)
	return res
}

// add appends the segment from a to b, given in path coordinates.
func (f *Flattener) add(a, b vec.Vec2) {
	s := line.Segment{A: line.Apply(f.CTM, a), B: line.Apply(f.CTM, b)}
	if s.Length() < zeroLengthThreshold {
		return
	}
	f.segs = append(f.segs, s)
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (f *Flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

func (f *Flattener) flatness() float64 {
	if f.Flatness > 0 {
		return f.Flatness
	}
	return DefaultFlatness
}

// flattenQuadratic replaces the quadratic Bézier curve p0, p1, p2 by line
// segments.
func (f *Flattener) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4 bounds the deviation from the chord
	e := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if dev := e.Length(); dev > f.flatness() {
		n = int(math.Ceil(math.Sqrt(dev / f.flatness())))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		f.add(prev, pt)
		prev = pt
	}
}

// flattenCubic replaces the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's formula for the number of pieces.
func (f *Flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.flatness())); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		f.add(prev, pt)
		prev = pt
	}
}
