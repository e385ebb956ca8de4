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

// Command genpdf draws the planned toolpaths of all test cases as PDF files.
// If Ghostscript is installed, the PDFs are also rendered to PNG.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/toolpath"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/testcases"
)

const (
	outDir = "testdata/toolpaths"

	pageSize = 400.0 // size of the drawing area in PDF points
	margin   = 20.0
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}
	_, gsErr := exec.LookPath("gs")

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			pngPath := filepath.Join(outDir, name+".png")

			job := toolpath.DefaultJob()
			job.Hatch = tc.Hatch
			job.Tile = tc.Tile
			tp, err := toolpath.Plan(tc.Segments(), job)
			if err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := generatePDF(tp, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if gsErr == nil {
				if err := renderPNG(pdfPath, pngPath); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tp *toolpath.Toolpath, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: pageSize + 2*margin,
		URy: pageSize + 2*margin,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	drawSegments := func(segs []line.Segment) {
		if len(segs) == 0 {
			return
		}
		for _, s := range segs {
			page.MoveTo(s.A.X, s.A.Y)
			page.LineTo(s.B.X, s.B.Y)
		}
		page.Stroke()
	}

	// Map the tile grid into the drawing area, keeping the aspect ratio.
	if len(tp.Tiles) > 0 {
		first, last := tp.Tiles[0].Rect, tp.Tiles[len(tp.Tiles)-1].Rect
		w := last.URx - first.LLx
		h := last.URy - first.LLy
		scale := pageSize / max(w, h)
		page.Transform(matrix.Matrix{
			scale, 0,
			0, scale,
			margin - first.LLx*scale, margin - first.LLy*scale,
		})
		unit := 1 / scale

		// tile grid
		page.SetStrokeColor(color.DeviceGray(0.75))
		page.SetLineWidth(0.5 * unit)
		for _, t := range tp.Tiles {
			page.Rectangle(t.Rect.LLx, t.Rect.LLy, t.Rect.URx-t.Rect.LLx, t.Rect.URy-t.Rect.LLy)
		}
		page.Stroke()

		// hatches
		page.SetLineCap(graphics.LineCapButt)
		page.SetStrokeColor(color.DeviceGray(0.4))
		page.SetLineWidth(0.5 * unit)
		drawSegments(tp.Hatches)

		// contour
		page.SetLineCap(graphics.LineCapRound)
		page.SetStrokeColor(color.DeviceGray(0))
		page.SetLineWidth(1.5 * unit)
		drawSegments(tp.Contour)
	}

	return page.Close()
}

func renderPNG(pdfPath, pngPath string) error {
	// Render PDF to PNG using Ghostscript
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r144: 2 pixels per PDF point
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r144",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
