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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/contour"
	"seehuhn.de/go/toolpath/hatch"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/tile"
)

// TestCase defines a single toolpath planning test.
type TestCase struct {
	Name    string         // lowercase a-z and _ only
	Contour path.Path      // the sliced outline
	Open    bool           // the outline has open sub-paths
	Hatch   hatch.Settings // hatch settings
	Tile    tile.Settings  // tile grid
	Want    Expect         // known results
}

// Expect lists results which are known in advance.
// Negative counts are not checked.
type Expect struct {
	Hatches int // number of hatch lines
	Tiles   int // number of tiles in the grid
}

// Segments returns the flattened contour.
func (tc *TestCase) Segments() []line.Segment {
	return contour.NewFlattener().Segments(tc.Contour)
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
	}
}

// rectangle builds a counter-clockwise rectangle.
func rectangle(x0, y0, x1, y1 float64) path.Path {
	return polygon(pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1))
}

// rectangleCW builds a clockwise rectangle, for holes.
func rectangleCW(x0, y0, x1, y1 float64) path.Path {
	return polygon(pt(x0, y0), pt(x0, y1), pt(x1, y1), pt(x1, y0))
}

// join concatenates paths.
func join(paths ...path.Path) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, p := range paths {
			for cmd, pts := range p {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// circle builds a counter-clockwise circle from four cubic Bézier arcs.
func circle(cx, cy, r float64) path.Path {
	const k = 0.5522847498
	kr := k * r
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+r, cy)}) {
			return
		}
		arcs := [4][3]vec.Vec2{
			{pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)},
			{pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)},
			{pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)},
			{pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)},
		}
		for i := range arcs {
			if !yield(path.CmdCubeTo, arcs[i][:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
