package testcases

import "seehuhn.de/go/toolpath/hatch"

var basicCases = []TestCase{
	{
		// scan lines at y = 4i - 8.28..., ten of them cross the square
		Name:    "square",
		Contour: rectangle(0, 0, 40, 40),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Raster},
		Tile:    grid(25),
		Want:    Expect{Hatches: 10, Tiles: 4},
	},
	{
		// five of the ten scan lines pass through the hole
		Name:    "ring",
		Contour: join(rectangle(0, 0, 40, 40), rectangleCW(10, 10, 30, 30)),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Raster},
		Tile:    grid(25),
		Want:    Expect{Hatches: 15, Tiles: 4},
	},
	{
		// scan lines at y = 2, 6, ..., 26; the one at y = 30 only
		// touches the apex
		Name:    "triangle",
		Contour: polygon(pt(0, 0), pt(40, 0), pt(20, 30)),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Raster},
		Tile:    grid(25),
		Want:    Expect{Hatches: 7, Tiles: 4},
	},
	{
		Name:    "star",
		Contour: star(50, 50, 40, 16, 5),
		Hatch:   hatch.Settings{Pitch: 1.5, Angle: 15, Style: hatch.Raster},
		Tile:    grid(30),
		Want:    Expect{Hatches: -1, Tiles: 9},
	},
}
