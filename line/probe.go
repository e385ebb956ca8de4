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

package line

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Probe is the infinite line through a segment, in slope/intercept form.
//
// Shallow lines (|dy| <= |dx|) are stored as y = Slope*x + Intercept, steep
// lines as x = Slope*y + Intercept.  This keeps |Slope| <= 1, so vertical
// lines need no special values and round-off stays bounded.
type Probe struct {
	Steep     bool
	Slope     float64
	Intercept float64
}

// NewProbe returns the probe for the line through s.
// A zero-length segment gives the vertical line through its point.
func NewProbe(s Segment) Probe {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	if math.Abs(dy) > math.Abs(dx) || dx == 0 {
		var m float64
		if dy != 0 {
			m = dx / dy
		}
		return Probe{Steep: true, Slope: m, Intercept: s.A.X - m*s.A.Y}
	}
	m := dy / dx
	return Probe{Slope: m, Intercept: s.A.Y - m*s.A.X}
}

// PassesThrough reports whether the line crosses the closed rectangle r.
//
// Over the horizontal span of r (vertical span for steep lines) the line is
// monotone, so it meets one of the four edges exactly when the range of
// values it takes over that span overlaps the other span of r.  The spans
// are widened by a small tolerance: the test may report rectangles which the
// line just misses, but it never rejects a rectangle the line touches.
func (p Probe) PassesThrough(r rect.Rect) bool {
	lo0, hi0, lo1, hi1 := r.LLx, r.URx, r.LLy, r.URy
	if p.Steep {
		lo0, hi0, lo1, hi1 = r.LLy, r.URy, r.LLx, r.URx
	}

	tol := probeTolerance * max(1, math.Abs(r.LLx), math.Abs(r.URx), math.Abs(r.LLy), math.Abs(r.URy))

	v0 := p.Slope*(lo0-tol) + p.Intercept
	v1 := p.Slope*(hi0+tol) + p.Intercept
	vMin, vMax := min(v0, v1), max(v0, v1)
	return vMax >= lo1-tol && vMin <= hi1+tol
}

// probeTolerance is the relative amount by which PassesThrough widens
// rectangle spans.
const probeTolerance = 1e-9
