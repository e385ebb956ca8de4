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

// Package toolpath plans hatch fill toolpaths for sliced contours.
//
// A contour is a set of straight line segments, usually one layer of a
// sliced model.  [Plan] indexes the contour in a quadtree, fills its inside
// (or outside) with parallel hatch lines, and lays a grid of tiles over the
// result.  [Toolpath.EmitTiles] then hands the pattern of every non-empty
// tile to a machine driver.
//
// The pieces are available separately: see packages line, quadtree, hatch,
// tile, contour and preview.
package toolpath

//go:generate go run ./testcases/export
