package testcases

import "seehuhn.de/go/toolpath/hatch"

var openCases = []TestCase{
	{
		// a square with one side missing
		Name:    "open_square",
		Contour: polyline(pt(0, 0), pt(40, 0), pt(40, 40), pt(0, 40)),
		Open:    true,
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Raster},
		Tile:    grid(25),
		Want:    Expect{Hatches: 0, Tiles: 4},
	},
	{
		// every vertical scan line crosses the zigzag exactly once
		Name:    "zigzag",
		Contour: polyline(pt(0, 0), pt(10, 30), pt(20, 0), pt(30, 30), pt(40, 0)),
		Open:    true,
		Hatch:   hatch.Settings{Pitch: 2, Angle: 90, Style: hatch.Raster},
		Tile:    grid(25),
		Want:    Expect{Hatches: 0, Tiles: 4},
	},
}
