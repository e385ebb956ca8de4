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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/hatch"
)

var curveCases = []TestCase{
	{
		Name:    "circle",
		Contour: circle(20, 20, 20),
		Hatch:   hatch.Settings{Pitch: 1, Style: hatch.Raster},
		Tile:    grid(25),
		Want:    Expect{Hatches: -1, Tiles: 4},
	},
	{
		Name:    "annulus",
		Contour: join(circle(30, 30, 30), reversed(circle(30, 30, 12))),
		Hatch:   hatch.Settings{Pitch: 0.8, Angle: 45, Style: hatch.SerpentineGrid},
		Tile:    grid(25),
		Want:    Expect{Hatches: -1, Tiles: 9},
	},
}

// reversed returns the flattened path p traversed backwards.  Only closed
// single sub-path outlines are supported.
func reversed(p path.Path) path.Path {
	segs := (&TestCase{Contour: p}).Segments()
	pts := make([]vec.Vec2, 0, len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		pts = append(pts, segs[i].B)
	}
	return polygon(pts...)
}

// star builds a star with n points, alternating between the outer and
// inner radius.
func star(cx, cy, outer, inner float64, n int) path.Path {
	pts := make([]vec.Vec2, 0, 2*n)
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := math.Pi/2 + float64(i)*math.Pi/float64(n)
		pts = append(pts, pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
	return polygon(pts...)
}
