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
	"seehuhn.de/go/toolpath/hatch"
	"seehuhn.de/go/toolpath/tile"
)

var tileCases = []TestCase{
	{
		// scan lines at y = 5i - 41.42..., forty of them cross the square
		Name:    "large_square",
		Contour: rectangle(0, 0, 200, 200),
		Hatch:   hatch.Settings{Pitch: 5, Style: hatch.Serpentine},
		Tile:    tile.Settings{Width: 50, Height: 50, PaddingX: 10, PaddingY: 10},
		Want:    Expect{Hatches: 40, Tiles: 25},
	},
	{
		Name:    "offset_grid",
		Contour: rectangle(0, 0, 40, 40),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Raster},
		Tile:    tile.Settings{Width: 15, Height: 15, OffsetX: 3, OffsetY: -2},
		Want:    Expect{Hatches: 10, Tiles: 9},
	},
	{
		Name:    "single_tile",
		Contour: rectangle(0, 0, 40, 40),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.RasterGrid},
		Tile:    tile.Settings{Width: 100, Height: 100},
		Want:    Expect{Hatches: 20, Tiles: 1},
	},
	{
		// The grid is 4x2 with seams at x = 0, 10, 20 and y = 10.  Two
		// edges of the hole lie on seams.  No scan line reaches the
		// pointed ends, so the extents are exact.
		Name: "seam_hole",
		Contour: join(
			polygon(pt(0, 0), pt(20, 0), pt(30, 10), pt(20, 20), pt(0, 20), pt(-10, 10)),
			rectangleCW(10, 10, 15, 15),
		),
		Hatch: hatch.Settings{Pitch: 2, Style: hatch.Raster},
		Tile:  grid(10),
		Want:  Expect{Hatches: 12, Tiles: 8},
	},
}

// grid returns square tiles of the given size.
func grid(size float64) tile.Settings {
	return tile.Settings{Width: size, Height: size}
}
