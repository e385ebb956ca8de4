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

package hatch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/internal/logx"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/quadtree"
)

// Generator turns scan lines into hatch segments.
//
// The results of the most recent call to Generate are kept in the exported
// fields.  Each call allocates a new Hatches slice, so results of earlier
// calls stay valid.  A Generator is not safe for concurrent use.
type Generator struct {
	// Hatches holds the hatch segments in emission order.
	Hatches []line.Segment

	// MarkDistance is the total length of all hatch segments.
	MarkDistance float64

	// JumpDistance is the total travel distance from the end of each hatch
	// segment to the start of the next one.
	JumpDistance float64

	// ScanLineCount is the number of scan lines which were generated,
	// before intersection filtering.
	ScanLineCount int

	// Unpaired counts scan lines with an odd number of crossings.  Their
	// last crossing was dropped.  This normally indicates an open or
	// self-intersecting contour.
	//
	// With Invert set, pairing starts at the second crossing, so on lines
	// with an even number of crossings the last one is dropped as well.
	// Such lines are not counted here.
	Unpaired int

	// Workers sets how many scan lines are intersected concurrently.
	// Values below 2 select sequential processing.  The output does not
	// depend on this setting.
	Workers int

	scan     []line.Segment
	pts      []vec.Vec2
	prevEnd  vec.Vec2
	havePrev bool
}

// minHatchLength is the length below which a pair of crossings does not
// produce a hatch segment.  Such pairs come from scan lines which touch a
// contour vertex.
const minHatchLength = 1e-12

// Generate replaces the stored results by the hatching of the contour held
// in idx.  The extents determine the area covered by scan lines; normally
// they are the extents of the contour.  A nil idx is treated as an empty
// contour.
func (g *Generator) Generate(idx *quadtree.Index, ext line.Extents, s Settings) error {
	return g.GenerateContext(context.Background(), idx, ext, s)
}

// GenerateContext is like Generate, but checks ctx between scan lines.
// If ctx is cancelled, the context's error is returned and the results
// cover a prefix of the scan lines.
func (g *Generator) GenerateContext(ctx context.Context, idx *quadtree.Index, ext line.Extents, s Settings) error {
	g.reset()
	if err := s.Validate(); err != nil {
		return err
	}

	start := time.Now()
	g.scan = appendScanLines(g.scan[:0], ext, s)
	g.ScanLineCount = len(g.scan)

	var err error
	if g.Workers > 1 {
		err = g.generateParallel(ctx, idx, s.Invert)
	} else {
		for _, l := range g.scan {
			if err = ctx.Err(); err != nil {
				break
			}
			g.pts = idx.IntersectSorted(l, g.pts[:0])
			g.pair(g.pts, s.Invert)
		}
	}

	log := logx.Logger()
	if g.Unpaired > 0 {
		log.Warn("odd number of crossings on scan lines",
			"lines", g.Unpaired)
	}
	log.Debug("hatch generated",
		"style", s.Style,
		"scanLines", g.ScanLineCount,
		"hatches", len(g.Hatches),
		"mark", g.MarkDistance,
		"jump", g.JumpDistance,
		"elapsed", time.Since(start))
	return err
}

// generateParallel queries the index for all scan lines concurrently and
// then pairs the crossings in scan order.
func (g *Generator) generateParallel(ctx context.Context, idx *quadtree.Index, invert bool) error {
	results := make([][]vec.Vec2, len(g.scan))
	done := make([]bool, len(g.scan))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.Workers)
	for i, l := range g.scan {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = idx.IntersectSorted(l, nil)
			done[i] = true
			return nil
		})
	}
	err := eg.Wait()
	if err == nil {
		err = ctx.Err()
	}

	for i := range results {
		if !done[i] {
			break
		}
		g.pair(results[i], invert)
	}
	return err
}

// pair turns the sorted crossings of one scan line into hatch segments.
func (g *Generator) pair(pts []vec.Vec2, invert bool) {
	if len(pts) == 0 {
		return
	}

	i := 0
	if invert {
		i = 1
	}
	if len(pts)%2 == 1 {
		g.Unpaired++
	}
	for ; i+1 < len(pts); i += 2 {
		h := line.Segment{A: pts[i], B: pts[i+1]}
		length := h.Length()
		if length < minHatchLength {
			continue
		}
		g.MarkDistance += length
		if g.havePrev {
			g.JumpDistance += h.A.Sub(g.prevEnd).Length()
		}
		g.prevEnd = h.B
		g.havePrev = true
		g.Hatches = append(g.Hatches, h)
	}
}

func (g *Generator) reset() {
	g.Hatches = nil
	g.MarkDistance = 0
	g.JumpDistance = 0
	g.ScanLineCount = 0
	g.Unpaired = 0
	g.havePrev = false
	g.prevEnd = vec.Vec2{}
}
