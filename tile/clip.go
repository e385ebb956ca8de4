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

package tile

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/line"
)

// Outcodes for the Cohen-Sutherland algorithm.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

// minClipLength is the length below which a clipped segment counts as empty.
const minClipLength = 1e-12

func outcode(p vec.Vec2, r rect.Rect) int {
	code := outInside
	if p.X < r.LLx {
		code |= outLeft
	} else if p.X > r.URx {
		code |= outRight
	}
	if p.Y < r.LLy {
		code |= outBottom
	} else if p.Y > r.URy {
		code |= outTop
	}
	return code
}

// ClipSegment clips s to the closed rectangle r, keeping its direction.
// The second return value is false if nothing of positive length remains.
func ClipSegment(s line.Segment, r rect.Rect) (line.Segment, bool) {
	p0, p1 := s.A, s.B
	code0 := outcode(p0, r)
	code1 := outcode(p1, r)

	// Each pass moves one end point onto a boundary line; four passes
	// suffice for any segment.
	for range 8 {
		if code0|code1 == 0 {
			res := line.Segment{A: p0, B: p1}
			return res, res.Length() >= minClipLength
		}
		if code0&code1 != 0 {
			return line.Segment{}, false
		}

		codeOut := code0
		if codeOut == 0 {
			codeOut = code1
		}

		var p vec.Vec2
		switch {
		case codeOut&outTop != 0:
			p.X = p0.X + (p1.X-p0.X)*(r.URy-p0.Y)/(p1.Y-p0.Y)
			p.Y = r.URy
		case codeOut&outBottom != 0:
			p.X = p0.X + (p1.X-p0.X)*(r.LLy-p0.Y)/(p1.Y-p0.Y)
			p.Y = r.LLy
		case codeOut&outRight != 0:
			p.Y = p0.Y + (p1.Y-p0.Y)*(r.URx-p0.X)/(p1.X-p0.X)
			p.X = r.URx
		case codeOut&outLeft != 0:
			p.Y = p0.Y + (p1.Y-p0.Y)*(r.LLx-p0.X)/(p1.X-p0.X)
			p.X = r.LLx
		}

		if codeOut == code0 {
			p0 = p
			code0 = outcode(p0, r)
		} else {
			p1 = p
			code1 = outcode(p1, r)
		}
	}
	return line.Segment{}, false
}
