// Command export writes the planned toolpaths of all test cases to JSON.
// Run from the module root directory.
package main

import (
	"log"
	"maps"
	"os"
	"slices"

	"github.com/segmentio/encoding/json"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/testcases"
)

const outFile = "testdata/toolpaths.json"

func main() {
	var out struct {
		Toolpaths []jsonToolpath `json:"toolpaths"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtp, err := toJSON(category, &tc)
			if err != nil {
				log.Fatalf("%s_%s: %v", category, tc.Name, err)
			}
			out.Toolpaths = append(out.Toolpaths, jtp)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		log.Fatal(err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatal(err)
	}
}

type jsonToolpath struct {
	Name         string        `json:"name"`
	Pitch        float64       `json:"pitch"`
	Angle        float64       `json:"angle"`
	Style        string        `json:"style"`
	Invert       bool          `json:"invert,omitempty"`
	Contour      []jsonSegment `json:"contour"`
	Hatches      []jsonSegment `json:"hatches"`
	MarkDistance float64       `json:"mark_distance"`
	JumpDistance float64       `json:"jump_distance"`
	Unpaired     int           `json:"unpaired,omitempty"`
	Tiles        []jsonTile    `json:"tiles"`
}

// jsonSegment holds the end points as [[x0, y0], [x1, y1]].
type jsonSegment [2][2]float64

type jsonTile struct {
	Index int        `json:"index"`
	Row   int        `json:"row"`
	Col   int        `json:"col"`
	Rect  [4]float64 `json:"rect"`
	Lines int        `json:"lines"`
}

func toJSON(category string, tc *testcases.TestCase) (jsonToolpath, error) {
	job := toolpath.DefaultJob()
	job.Hatch = tc.Hatch
	job.Tile = tc.Tile

	tp, err := toolpath.Plan(tc.Segments(), job)
	if err != nil {
		return jsonToolpath{}, err
	}

	jtp := jsonToolpath{
		Name:         category + "_" + tc.Name,
		Pitch:        tc.Hatch.Pitch,
		Angle:        tc.Hatch.Angle,
		Style:        tc.Hatch.Style.String(),
		Invert:       tc.Hatch.Invert,
		Contour:      segmentsToJSON(tp.Contour),
		Hatches:      segmentsToJSON(tp.Hatches),
		MarkDistance: tp.MarkDistance,
		JumpDistance: tp.JumpDistance,
		Unpaired:     tp.Unpaired,
	}

	lines := make(map[int]int)
	tp.EmitTiles(func(index int, _ rect.Rect, pattern []line.Segment) {
		lines[index] = len(pattern)
	})
	for _, t := range tp.Tiles {
		jtp.Tiles = append(jtp.Tiles, jsonTile{
			Index: t.Index,
			Row:   t.Row,
			Col:   t.Col,
			Rect:  [4]float64{t.Rect.LLx, t.Rect.LLy, t.Rect.URx, t.Rect.URy},
			Lines: lines[t.Index],
		})
	}
	return jtp, nil
}

func segmentsToJSON(segs []line.Segment) []jsonSegment {
	res := make([]jsonSegment, len(segs))
	for i, s := range segs {
		res[i] = jsonSegment{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}}
	}
	return res
}
