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

// Package quadtree implements a spatial index for line segments.
//
// The index answers one kind of query: given a probe segment, find all
// points where the probe crosses a stored segment, ordered by distance from
// the probe's start point.  Subtrees whose square the probe's infinite line
// does not cross are skipped.
package quadtree

import (
	"context"
	"log/slog"
	"math"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/internal/logx"
	"seehuhn.de/go/toolpath/line"
)

// DefaultLeafSize is the length at or below which segments are stored at the
// node they reach, instead of being pushed further down.
const DefaultLeafSize = 0.1

// rootMargin enlarges the root square relative to the extents diagonal, so
// that round-off in the centroid cannot push boundary points outside.
const rootMargin = 1e-9

// Index is a quadtree over line segments.
//
// An Index is built once by [Build] and is read-only afterwards.  Queries
// may run concurrently.  A nil *Index behaves like an empty index.
type Index struct {
	root     *node
	leafSize float64
	size     int
}

// node is a square cell of the tree.  kids is nil while the node is a leaf
// and holds all four quadrants (NW, NE, SW, SE) once the node has been split.
type node struct {
	centre vec.Vec2
	side   float64
	kids   *[4]node
	segs   []line.Segment
}

// Quadrant positions within node.kids.
const (
	nw = iota
	ne
	sw
	se
)

// Option configures [Build].
type Option func(*Index)

// WithLeafSize sets the leaf-size floor.  Non-positive values keep the
// default.
func WithLeafSize(size float64) Option {
	return func(idx *Index) {
		if size > 0 {
			idx.leafSize = size
		}
	}
}

// Build constructs an index over segs.
//
// The root square is centred on the centroid of the segments' extents, with
// the extents diagonal as its side.  Segments are inserted in order.  If a
// segment does not fit into the root, a *GeometryError is returned.
func Build(segs []line.Segment, opts ...Option) (*Index, error) {
	idx := &Index{leafSize: DefaultLeafSize}
	for _, opt := range opts {
		opt(idx)
	}

	ext := line.ExtentsOf(segs)
	if ext.IsEmpty() {
		return idx, nil
	}

	idx.root = &node{
		centre: ext.Centre(),
		side:   ext.Diagonal() * (1 + rootMargin),
	}
	for _, s := range segs {
		if !idx.root.contains(s.A) || !idx.root.contains(s.B) {
			return nil, errors.WithStack(&GeometryError{Segment: s, Root: idx.root.bounds()})
		}
		idx.root.insert(s, idx.leafSize)
		idx.size++
	}

	if log := logx.Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		st := idx.Stats()
		log.Debug("quadtree built",
			"segments", st.Segments,
			"nodes", st.Nodes,
			"leaves", st.Leaves,
			"depth", st.MaxDepth)
	}
	return idx, nil
}

// Len returns the number of segments in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return idx.size
}

// Bounds returns the root square.  The result is the zero rectangle for an
// empty index.
func (idx *Index) Bounds() rect.Rect {
	if idx == nil || idx.root == nil {
		return rect.Rect{}
	}
	return idx.root.bounds()
}

func (n *node) bounds() rect.Rect {
	h := n.side / 2
	return rect.Rect{
		LLx: n.centre.X - h,
		LLy: n.centre.Y - h,
		URx: n.centre.X + h,
		URy: n.centre.Y + h,
	}
}

// contains reports whether p lies in the closed square of n.
func (n *node) contains(p vec.Vec2) bool {
	h := n.side / 2
	return math.Abs(p.X-n.centre.X) <= h && math.Abs(p.Y-n.centre.Y) <= h
}

// split creates the four quadrants of n.
func (n *node) split() {
	half := n.side / 2
	q := n.side / 4
	cx, cy := n.centre.X, n.centre.Y
	n.kids = &[4]node{
		nw: {centre: vec.Vec2{X: cx - q, Y: cy + q}, side: half},
		ne: {centre: vec.Vec2{X: cx + q, Y: cy + q}, side: half},
		sw: {centre: vec.Vec2{X: cx - q, Y: cy - q}, side: half},
		se: {centre: vec.Vec2{X: cx + q, Y: cy - q}, side: half},
	}
}

// insert stores s in the deepest node which contains it.  The caller has
// checked that s lies inside n.
func (n *node) insert(s line.Segment, leafSize float64) {
	for {
		if n.kids == nil {
			n.split()
		}
		if s.Length() <= leafSize {
			break
		}
		var next *node
		for i := range n.kids {
			k := &n.kids[i]
			if k.contains(s.A) && k.contains(s.B) {
				next = k
				break
			}
		}
		if next == nil {
			break
		}
		n = next
	}
	n.segs = append(n.segs, s)
}

// Intersect returns all points where probe crosses a stored segment, as an
// ordered set rooted at probe.A.
//
// Results from the four quadrants are merged (in the order NW, NE, SW, SE)
// before the segments stored at the node itself are added.  The result is
// nil if the index is empty or the probe line misses the root square.
func (idx *Index) Intersect(probe line.Segment) *OrderedSet {
	if idx == nil || idx.root == nil {
		return nil
	}
	return idx.root.intersect(probe, line.NewProbe(probe))
}

func (n *node) intersect(s line.Segment, p line.Probe) *OrderedSet {
	if n.kids == nil && len(n.segs) == 0 {
		return nil
	}
	if !p.PassesThrough(n.bounds()) {
		return nil
	}

	set := NewOrderedSet(s.A)
	if n.kids != nil {
		for i := range n.kids {
			if res := n.kids[i].intersect(s, p); res.Len() > 0 {
				set.InsertRange(res)
			}
		}
	}
	for _, seg := range n.segs {
		if pt, ok := s.Intersect(seg); ok {
			set.Insert(pt)
		}
	}
	return set
}

// IntersectSorted appends to dst the points Intersect(probe).Sorted() would
// return, in the same order, and returns the extended slice.
//
// Instead of re-inserting points into binary trees, per-node results are
// combined with stable merges of sorted slices.
func (idx *Index) IntersectSorted(probe line.Segment, dst []vec.Vec2) []vec.Vec2 {
	if idx == nil || idx.root == nil {
		return dst
	}
	hits := idx.root.collect(probe, line.NewProbe(probe))
	for _, h := range hits {
		dst = append(dst, h.p)
	}
	return dst
}

func (n *node) collect(s line.Segment, p line.Probe) []hit {
	if n.kids == nil && len(n.segs) == 0 {
		return nil
	}
	if !p.PassesThrough(n.bounds()) {
		return nil
	}

	var res []hit
	if n.kids != nil {
		for i := range n.kids {
			res = mergeHits(res, n.kids[i].collect(s, p))
		}
	}
	var own []hit
	for _, seg := range n.segs {
		if pt, ok := s.Intersect(seg); ok {
			own = append(own, hit{p: pt, dist: pt.Sub(s.A).Length()})
		}
	}
	sortHits(own)
	return mergeHits(res, own)
}

// Walk visits the nodes of the tree in pre-order, calling fn with the node
// depth (0 for the root), its square and the segments stored at the node.
// The walk stops early if fn returns false.  The segs slice must not be
// modified.
func (idx *Index) Walk(fn func(depth int, square rect.Rect, segs []line.Segment) bool) {
	if idx == nil || idx.root == nil {
		return
	}
	idx.root.walk(0, fn)
}

func (n *node) walk(depth int, fn func(int, rect.Rect, []line.Segment) bool) bool {
	if !fn(depth, n.bounds(), n.segs) {
		return false
	}
	if n.kids != nil {
		for i := range n.kids {
			if !n.kids[i].walk(depth+1, fn) {
				return false
			}
		}
	}
	return true
}

// Stats summarises the shape of an index.
type Stats struct {
	Segments int // segments stored in all nodes
	Nodes    int // total number of nodes
	Leaves   int // nodes without children
	MaxDepth int // depth of the deepest node, 0 for a single root
}

// Stats walks the tree and returns its shape.
func (idx *Index) Stats() Stats {
	var st Stats
	if idx == nil || idx.root == nil {
		return st
	}
	idx.root.walkNodes(0, func(depth int, n *node) {
		st.Nodes++
		st.Segments += len(n.segs)
		if n.kids == nil {
			st.Leaves++
		}
		st.MaxDepth = max(st.MaxDepth, depth)
	})
	return st
}

func (n *node) walkNodes(depth int, visit func(int, *node)) {
	visit(depth, n)
	if n.kids != nil {
		for i := range n.kids {
			n.kids[i].walkNodes(depth+1, visit)
		}
	}
}
