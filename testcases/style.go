package testcases

import "seehuhn.de/go/toolpath/hatch"

var styleCases = []TestCase{
	{
		Name:    "serpentine",
		Contour: rectangle(0, 0, 40, 40),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Serpentine},
		Tile:    grid(25),
		Want:    Expect{Hatches: 10, Tiles: 4},
	},
	{
		Name:    "raster_grid",
		Contour: rectangle(0, 0, 40, 40),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.RasterGrid},
		Tile:    grid(25),
		Want:    Expect{Hatches: 20, Tiles: 4},
	},
	{
		Name:    "serpentine_grid",
		Contour: join(rectangle(0, 0, 40, 40), rectangleCW(10, 10, 30, 30)),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.SerpentineGrid},
		Tile:    grid(25),
		Want:    Expect{Hatches: 30, Tiles: 4},
	},
	{
		// a convex outline has nothing outside it to fill
		Name:    "inverted_square",
		Contour: rectangle(0, 0, 40, 40),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Raster, Invert: true},
		Tile:    grid(25),
		Want:    Expect{Hatches: 0, Tiles: 4},
	},
	{
		// only the hole gets filled
		Name:    "inverted_ring",
		Contour: join(rectangle(0, 0, 40, 40), rectangleCW(10, 10, 30, 30)),
		Hatch:   hatch.Settings{Pitch: 4, Style: hatch.Raster, Invert: true},
		Tile:    grid(25),
		Want:    Expect{Hatches: 5, Tiles: 4},
	},
	{
		Name:    "rotated",
		Contour: rectangle(0, 0, 40, 20),
		Hatch:   hatch.Settings{Pitch: 1, Angle: 30, Style: hatch.Serpentine},
		Tile:    grid(25),
		Want:    Expect{Hatches: -1, Tiles: 2},
	},
}
