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

package hatch

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/line"
)

// ScanLines returns the scan lines for hatching the given extents, in
// generation order.
//
// The lines are horizontal before rotation, spaced by the pitch, and
// cover a square of the extents' diagonal centred on the extents' centre.
// Each line is twice the diagonal long, so that every rotation still spans
// the whole contour.
func ScanLines(ext line.Extents, s Settings) []line.Segment {
	return appendScanLines(nil, ext, s)
}

func appendScanLines(dst []line.Segment, ext line.Extents, s Settings) []line.Segment {
	if ext.IsEmpty() {
		return dst
	}

	pitch := max(s.Pitch, MinPitch)
	size := ext.Diagonal()
	c := ext.Centre()
	count := int(math.Ceil(size / pitch))
	yStart := c.Y - size/2
	m := line.RotateAbout(c, s.Angle)

	first := len(dst)
	for i := range count {
		y := yStart + float64(i)*pitch
		l := line.Segment{
			A: vec.Vec2{X: c.X - size, Y: y},
			B: vec.Vec2{X: c.X + size, Y: y},
		}
		if s.Style.IsSerpentine() && i%2 == 1 {
			l = l.Reverse()
		}
		dst = append(dst, l.Transform(m))
	}

	if s.Style.IsGrid() {
		m90 := line.RotateAbout(c, 90)
		last := len(dst)
		for i := first; i < last; i++ {
			dst = append(dst, dst[i].Transform(m90))
		}
	}
	return dst
}
