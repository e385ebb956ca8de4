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

package tile

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath/internal/logx"
	"seehuhn.de/go/toolpath/line"
)

// Partitioner lays out tile grids and splits patterns into per-tile parts.
//
// The tiles of the most recent GenerateTiles call are kept in Tiles.
// A Partitioner is not safe for concurrent use.
type Partitioner struct {
	Tiles []Tile

	rows, cols int
	pattern    []line.Segment
	candidates []int
}

// Rows returns the number of grid rows of the most recent GenerateTiles call.
func (p *Partitioner) Rows() int { return p.rows }

// Cols returns the number of grid columns of the most recent GenerateTiles call.
func (p *Partitioner) Cols() int { return p.cols }

// GenerateTiles replaces p.Tiles by a grid covering ext.
//
// The grid has ceil((height+PaddingY)/Height) rows and
// ceil((width+PaddingX)/Width) columns, at least one of each, and is
// centred on the extents' centre shifted by the configured offset.  Tiles
// are ordered row by row, from the bottom row upwards, each row from left
// to right.  Empty extents give no tiles.
func (p *Partitioner) GenerateTiles(ext line.Extents, s Settings) ([]Tile, error) {
	p.Tiles = nil
	p.rows, p.cols = 0, 0
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if ext.IsEmpty() {
		return nil, nil
	}

	rows := max(1, int(math.Ceil((ext.Height()+s.PaddingY)/s.Height)))
	cols := max(1, int(math.Ceil((ext.Width()+s.PaddingX)/s.Width)))

	c := ext.Centre()
	x0 := c.X + s.OffsetX - float64(cols)*s.Width/2
	y0 := c.Y + s.OffsetY - float64(rows)*s.Height/2

	// Neighbouring tiles share their seam coordinates exactly.
	tiles := make([]Tile, 0, rows*cols)
	for row := range rows {
		for col := range cols {
			tiles = append(tiles, Tile{
				Index: row*cols + col,
				Row:   row,
				Col:   col,
				Rect: rect.Rect{
					LLx: x0 + float64(col)*s.Width,
					LLy: y0 + float64(row)*s.Height,
					URx: x0 + float64(col+1)*s.Width,
					URy: y0 + float64(row+1)*s.Height,
				},
			})
		}
	}
	p.Tiles = tiles
	p.rows, p.cols = rows, cols

	logx.Logger().Debug("tiles generated", "rows", rows, "cols", cols)
	return tiles, nil
}

// ClipAndEmit clips every line against every tile and calls emit for each
// tile with a non-empty result, in tile order.
//
// Within a tile, clipped lines keep the order of lines.  A piece lying on
// the seam between two tiles belongs to the tile below or to the left of
// the seam, so that every piece is emitted exactly once.  The pattern slice
// is reused between calls of emit and must not be retained.  Nothing is
// cached: every call recomputes the tile patterns from scratch.
func (p *Partitioner) ClipAndEmit(tiles []Tile, lines []line.Segment, emit func(index int, r rect.Rect, pattern []line.Segment)) {
	tree := newLineTree(lines)

	emitted := 0
	for _, t := range tiles {
		p.candidates = p.candidates[:0]
		for _, obj := range tree.SearchIntersect(paddedRect(t.Rect)) {
			p.candidates = append(p.candidates, obj.(*indexedLine).i)
		}
		slices.Sort(p.candidates)

		p.pattern = p.pattern[:0]
		for _, i := range p.candidates {
			clipped, ok := ClipSegment(lines[i], t.Rect)
			if !ok || onLowerSeam(clipped, t) {
				continue
			}
			p.pattern = append(p.pattern, clipped)
		}
		if len(p.pattern) == 0 {
			continue
		}
		emit(t.Index, t.Rect, p.pattern)
		emitted++
	}

	logx.Logger().Debug("tiles emitted",
		"tiles", len(tiles),
		"nonEmpty", emitted,
		"lines", len(lines))
}

// onLowerSeam reports whether s lies on the left or bottom edge of t
// where that edge is shared with a neighbouring tile.
func onLowerSeam(s line.Segment, t Tile) bool {
	r := t.Rect
	if t.Col > 0 && s.A.X == r.LLx && s.B.X == r.LLx {
		return true
	}
	return t.Row > 0 && s.A.Y == r.LLy && s.B.Y == r.LLy
}

// indexedLine stores the position of a line in the R-tree.
type indexedLine struct {
	i      int
	bounds rtreego.Rect
}

func (l *indexedLine) Bounds() rtreego.Rect {
	return l.bounds
}

func newLineTree(lines []line.Segment) *rtreego.Rtree {
	objs := make([]rtreego.Spatial, len(lines))
	for i, l := range lines {
		objs[i] = &indexedLine{i: i, bounds: paddedRect(l.Bounds())}
	}
	return rtreego.NewTree(2, 25, 50, objs...)
}

// paddedRect converts r to an R-tree rectangle, grown slightly so that
// horizontal and vertical lines get positive area and touching rectangles
// overlap.
func paddedRect(r rect.Rect) rtreego.Rect {
	pad := boundsPadding * max(1, math.Abs(r.LLx), math.Abs(r.LLy), math.Abs(r.URx), math.Abs(r.URy))
	res, err := rtreego.NewRectFromPoints(
		rtreego.Point{r.LLx - pad, r.LLy - pad},
		rtreego.Point{r.URx + pad, r.URy + pad},
	)
	if err != nil {
		// both points have two coordinates
		panic(err)
	}
	return res
}

const boundsPadding = 1e-9
