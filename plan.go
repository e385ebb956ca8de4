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

package toolpath

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath/contour"
	"seehuhn.de/go/toolpath/hatch"
	"seehuhn.de/go/toolpath/internal/logx"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/quadtree"
	"seehuhn.de/go/toolpath/tile"
)

// Toolpath is the planned toolpath for one layer.
type Toolpath struct {
	// Contour is the outline the toolpath was planned for.
	Contour []line.Segment

	// Hatches holds the fill lines in machine order.
	Hatches []line.Segment

	// MarkDistance is the total length of the hatch lines.
	MarkDistance float64

	// JumpDistance is the total travel between consecutive hatch lines.
	JumpDistance float64

	// ScanLines is the number of scan lines tested against the contour.
	ScanLines int

	// Unpaired counts scan lines with an odd number of contour crossings.
	Unpaired int

	// Extents is the bounding box of contour and hatches.
	Extents line.Extents

	// Tiles is the tile grid covering Extents, Rows by Cols tiles.
	Tiles      []tile.Tile
	Rows, Cols int
}

// Plan computes the toolpath for the contour segs.
func Plan(segs []line.Segment, job Job) (*Toolpath, error) {
	return PlanContext(context.Background(), segs, job)
}

// PlanContext is like Plan, but stops early if ctx is cancelled.
//
// On cancellation the context's error is returned together with a
// toolpath whose hatches cover a prefix of the scan lines.  Its tiles
// cover the contour and these hatches.
func PlanContext(ctx context.Context, segs []line.Segment, job Job) (*Toolpath, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	idx, err := quadtree.Build(segs, quadtree.WithLeafSize(job.LeafSize))
	if err != nil {
		return nil, errors.Wrap(err, "toolpath: indexing contour")
	}

	g := &hatch.Generator{Workers: job.Workers}
	hatchErr := g.GenerateContext(ctx, idx, line.ExtentsOf(segs), job.Hatch)
	if hatchErr != nil && ctx.Err() == nil {
		return nil, errors.Wrap(hatchErr, "toolpath: hatching")
	}

	tp := &Toolpath{
		Contour:      segs,
		Hatches:      g.Hatches,
		MarkDistance: g.MarkDistance,
		JumpDistance: g.JumpDistance,
		ScanLines:    g.ScanLineCount,
		Unpaired:     g.Unpaired,
		Extents:      line.ExtentsOf(segs, g.Hatches),
	}

	p := &tile.Partitioner{}
	tp.Tiles, err = p.GenerateTiles(tp.Extents, job.Tile)
	if err != nil {
		return nil, err
	}
	tp.Rows, tp.Cols = p.Rows(), p.Cols()

	if hatchErr != nil {
		logx.Logger().Debug("toolpath cancelled",
			"scanLines", tp.ScanLines,
			"hatches", len(tp.Hatches))
		return tp, errors.Wrap(hatchErr, "toolpath: hatching")
	}

	logx.Logger().Debug("toolpath planned",
		"segments", len(segs),
		"hatches", len(tp.Hatches),
		"tiles", len(tp.Tiles),
		"elapsed", time.Since(start))
	return tp, nil
}

// PlanPath flattens the outline p with the job's flatness and plans the
// toolpath for the result.
func PlanPath(ctx context.Context, p path.Path, job Job) (*Toolpath, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	f := &contour.Flattener{CTM: matrix.Identity, Flatness: job.Flatness}
	return PlanContext(ctx, f.Segments(p), job)
}

// Pattern returns the contour followed by the hatch lines.
func (tp *Toolpath) Pattern() []line.Segment {
	res := make([]line.Segment, 0, len(tp.Contour)+len(tp.Hatches))
	res = append(res, tp.Contour...)
	return append(res, tp.Hatches...)
}

// EmitTiles clips the pattern to every tile and calls emit for each tile
// with a non-empty result, in tile order.  The pattern slice is only valid
// during the call.
//
// EmitTiles may be called repeatedly; every call recomputes the clipping.
func (tp *Toolpath) EmitTiles(emit func(index int, r rect.Rect, pattern []line.Segment)) {
	p := &tile.Partitioner{}
	p.ClipAndEmit(tp.Tiles, tp.Pattern(), emit)
}
