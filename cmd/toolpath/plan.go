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

package main

import (
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath"
	"seehuhn.de/go/toolpath/line"
)

type planOutput struct {
	Segments     int           `json:"segments"`
	Hatches      int           `json:"hatches"`
	ScanLines    int           `json:"scan_lines"`
	Unpaired     int           `json:"unpaired,omitempty"`
	MarkDistance float64       `json:"mark_distance"`
	JumpDistance float64       `json:"jump_distance"`
	Extents      [4]float64    `json:"extents"`
	Rows         int           `json:"rows"`
	Cols         int           `json:"cols"`
	Tiles        []tileOutput  `json:"tiles"`
	Hatch        []jsonSegment `json:"hatch,omitempty"`
}

type tileOutput struct {
	Index   int           `json:"index"`
	Rect    [4]float64    `json:"rect"`
	Lines   int           `json:"lines"`
	Pattern []jsonSegment `json:"pattern,omitempty"`
}

func newPlanCmd() *cobra.Command {
	var jobFile string
	var full bool

	cmd := &cobra.Command{
		Use:   "plan [flags] segments.json",
		Short: "Plan the toolpath for a contour and print it as JSON",
		Long: `Plan the toolpath for a contour and print it as JSON.

The output lists the hatch statistics and every non-empty tile.  With
--full, the hatch lines and the clipped pattern of every tile are included.
Use "-" to read the contour from standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := loadJob(jobFile)
			if err != nil {
				return err
			}
			segs, err := readSegments(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			tp, err := toolpath.PlanContext(cmd.Context(), segs, job)
			if err != nil {
				return err
			}

			out := planOutput{
				Segments:     len(tp.Contour),
				Hatches:      len(tp.Hatches),
				ScanLines:    tp.ScanLines,
				Unpaired:     tp.Unpaired,
				MarkDistance: tp.MarkDistance,
				JumpDistance: tp.JumpDistance,
				Rows:         tp.Rows,
				Cols:         tp.Cols,
				Tiles:        []tileOutput{},
			}
			if !tp.Extents.IsEmpty() {
				b := tp.Extents.Box
				out.Extents = [4]float64{b.LLx, b.LLy, b.URx, b.URy}
			}
			if full {
				out.Hatch = toJSONSegments(tp.Hatches)
			}
			tp.EmitTiles(func(index int, r rect.Rect, pattern []line.Segment) {
				t := tileOutput{
					Index: index,
					Rect:  [4]float64{r.LLx, r.LLy, r.URx, r.URy},
					Lines: len(pattern),
				}
				if full {
					t.Pattern = toJSONSegments(pattern)
				}
				out.Tiles = append(out.Tiles, t)
			})

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&jobFile, "job", "j", "", "TOML job file (default settings if omitted)")
	cmd.Flags().BoolVar(&full, "full", false, "include hatch lines and tile patterns")
	return cmd
}
