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

// Package line provides the straight-segment geometry shared by the
// quadtree, hatch and tile packages.
package line

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a straight line segment from A to B.
//
// Segments are plain values.  Methods never modify the receiver; functions
// which need a changed segment return a new one.
type Segment struct {
	A, B vec.Vec2
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.B.Sub(s.A).Length()
}

// Gradient returns the rise over run of the segment.
// Vertical segments have gradient +Inf or -Inf, depending on direction.
// Zero-length segments have gradient 0.
func (s Segment) Gradient() float64 {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	if dx == 0 {
		switch {
		case dy > 0:
			return math.Inf(1)
		case dy < 0:
			return math.Inf(-1)
		default:
			return 0
		}
	}
	return dy / dx
}

// Angle returns the direction of the segment in radians, in the range
// [-π, π].
func (s Segment) Angle() float64 {
	return math.Atan2(s.B.Y-s.A.Y, s.B.X-s.A.X)
}

// Reverse returns the segment with start and end point swapped.
func (s Segment) Reverse() Segment {
	return Segment{A: s.B, B: s.A}
}

// Bounds returns the smallest axis-aligned rectangle containing the segment.
func (s Segment) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(s.A.X, s.B.X),
		LLy: min(s.A.Y, s.B.Y),
		URx: max(s.A.X, s.B.X),
		URy: max(s.A.Y, s.B.Y),
	}
}

// Transform applies the affine map m to both end points.
func (s Segment) Transform(m matrix.Matrix) Segment {
	return Segment{A: Apply(m, s.A), B: Apply(m, s.B)}
}

// Apply maps the point p through the affine transformation m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// RotateAbout returns the matrix which rotates by deg degrees
// (counter-clockwise) about the point c.
func RotateAbout(c vec.Vec2, deg float64) matrix.Matrix {
	return matrix.Identity.Translate(-c.X, -c.Y).RotateDeg(deg).Translate(c.X, c.Y)
}

// Intersect returns the point where s and o cross.
//
// Both parameter ranges are closed, so touching end points count as an
// intersection.  Parallel segments, including collinear overlapping ones,
// never intersect: a scan line running along a contour edge does not enter
// or leave the contour there.
func (s Segment) Intersect(o Segment) (vec.Vec2, bool) {
	r := s.B.Sub(s.A)
	q := o.B.Sub(o.A)
	denom := cross(r, q)
	if denom == 0 {
		return vec.Vec2{}, false
	}

	d := o.A.Sub(s.A)
	t := cross(d, q) / denom
	u := cross(d, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return vec.Vec2{}, false
	}
	return s.A.Add(r.Mul(t)), true
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
