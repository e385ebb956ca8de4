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
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/preview"
	"seehuhn.de/go/toolpath/tile"
)

func newPreviewCmd() *cobra.Command {
	var jobFile, outDir string
	var resolution, lineWidth float64

	cmd := &cobra.Command{
		Use:   "preview [flags] segments.json",
		Short: "Write one PNG image per non-empty tile",
		Args:  cobra.ExactArgs(1),
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
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return errors.WithStack(err)
			}

			width := lineWidth
			if width <= 0 {
				width = job.Hatch.Pitch / 2
			}

			var firstErr error
			count := 0
			tp.EmitTiles(func(index int, r rect.Rect, pattern []line.Segment) {
				if firstErr != nil {
					return
				}
				name := filepath.Join(outDir, fmt.Sprintf("tile-%04d.png", index))
				firstErr = writeTile(name, tile.Tile{Index: index, Rect: r}, pattern, resolution, width)
				count++
			})
			if firstErr != nil {
				return firstErr
			}

			toolpath.Logger().Info("previews written", "dir", outDir, "tiles", count)
			return nil
		},
	}
	cmd.Flags().StringVarP(&jobFile, "job", "j", "", "TOML job file (default settings if omitted)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "preview", "output directory")
	cmd.Flags().Float64VarP(&resolution, "resolution", "r", 20, "pixels per unit")
	cmd.Flags().Float64Var(&lineWidth, "line-width", 0, "stroke width in units (default half the hatch pitch)")
	return cmd
}

func writeTile(name string, t tile.Tile, pattern []line.Segment, resolution, width float64) error {
	img, err := preview.Render(t, pattern, resolution, width)
	if err != nil {
		return errors.Wrapf(err, "tile %d", t.Index)
	}

	f, err := os.Create(name)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", name)
	}
	return errors.WithStack(f.Close())
}
