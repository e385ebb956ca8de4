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
	"seehuhn.de/go/geom/vec"
)

// Extents is the axis-aligned bounding box of a set of segments.
// The zero value is empty.
type Extents struct {
	Box   rect.Rect
	valid bool
}

// NewExtents returns extents covering the rectangle r.
func NewExtents(r rect.Rect) Extents {
	return Extents{Box: r, valid: true}
}

// ExtentsOf returns the bounding box of all segments in all batches.
func ExtentsOf(batches ...[]Segment) Extents {
	var e Extents
	for _, segs := range batches {
		for _, s := range segs {
			e = e.add(s.A).add(s.B)
		}
	}
	return e
}

func (e Extents) add(p vec.Vec2) Extents {
	if !e.valid {
		return Extents{Box: rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}, valid: true}
	}
	e.Box.LLx = min(e.Box.LLx, p.X)
	e.Box.LLy = min(e.Box.LLy, p.Y)
	e.Box.URx = max(e.Box.URx, p.X)
	e.Box.URy = max(e.Box.URy, p.Y)
	return e
}

// IsEmpty reports whether no point has been added to the extents.
func (e Extents) IsEmpty() bool {
	return !e.valid
}

// Width returns the horizontal size of the box.
func (e Extents) Width() float64 {
	return e.Box.URx - e.Box.LLx
}

// Height returns the vertical size of the box.
func (e Extents) Height() float64 {
	return e.Box.URy - e.Box.LLy
}

// Centre returns the centroid of the box.
func (e Extents) Centre() vec.Vec2 {
	return vec.Vec2{
		X: (e.Box.LLx + e.Box.URx) / 2,
		Y: (e.Box.LLy + e.Box.URy) / 2,
	}
}

// Diagonal returns the length of the box diagonal.
func (e Extents) Diagonal() float64 {
	return math.Hypot(e.Width(), e.Height())
}

// Grow returns the extents enlarged by dx on the left and right and by dy at
// the top and bottom.
func (e Extents) Grow(dx, dy float64) Extents {
	if !e.valid {
		return e
	}
	e.Box.LLx -= dx
	e.Box.URx += dx
	e.Box.LLy -= dy
	e.Box.URy += dy
	return e
}

// Contains reports whether p lies inside the box or on its boundary.
func (e Extents) Contains(p vec.Vec2) bool {
	return e.valid &&
		p.X >= e.Box.LLx && p.X <= e.Box.URx &&
		p.Y >= e.Box.LLy && p.Y <= e.Box.URy
}
