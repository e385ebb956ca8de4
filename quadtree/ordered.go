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

package quadtree

import (
	"cmp"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// OrderedSet holds intersection points ordered by their distance from a
// fixed origin.
//
// The set is an unbalanced binary search tree.  Points at equal distance are
// kept in insertion order and exact duplicates are stored once per insertion.
// Inserting points which arrive already sorted degrades the tree into a
// chain, so [Index.IntersectSorted] should be preferred for bulk queries.
type OrderedSet struct {
	origin vec.Vec2
	root   *setNode
	n      int
}

type setNode struct {
	value       vec.Vec2
	dist        float64
	left, right *setNode
}

// NewOrderedSet returns an empty set ordered by distance from origin.
func NewOrderedSet(origin vec.Vec2) *OrderedSet {
	return &OrderedSet{origin: origin}
}

// Origin returns the reference point of the ordering.
func (s *OrderedSet) Origin() vec.Vec2 {
	return s.origin
}

// Len returns the number of points in the set.
func (s *OrderedSet) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Insert adds p to the set.
func (s *OrderedSet) Insert(p vec.Vec2) {
	nd := &setNode{value: p, dist: p.Sub(s.origin).Length()}
	s.n++

	link := &s.root
	for *link != nil {
		if nd.dist < (*link).dist {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	*link = nd
}

// InsertRange adds all points of other, in other's order.
// Distances are recomputed relative to the origin of s.
func (s *OrderedSet) InsertRange(other *OrderedSet) {
	if other == nil {
		return
	}
	other.walk(func(p vec.Vec2) {
		s.Insert(p)
	})
}

// InsertPoints adds the points of pts one by one.
func (s *OrderedSet) InsertPoints(pts []vec.Vec2) {
	for _, p := range pts {
		s.Insert(p)
	}
}

// Sorted returns the points in order of non-decreasing distance from the
// origin.
func (s *OrderedSet) Sorted() []vec.Vec2 {
	if s == nil {
		return nil
	}
	res := make([]vec.Vec2, 0, s.n)
	s.walk(func(p vec.Vec2) {
		res = append(res, p)
	})
	return res
}

// walk visits the points in order.  An explicit stack is used, since a
// degenerate tree can be as deep as it has points.
func (s *OrderedSet) walk(visit func(vec.Vec2)) {
	var stack []*setNode
	nd := s.root
	for nd != nil || len(stack) > 0 {
		for nd != nil {
			stack = append(stack, nd)
			nd = nd.left
		}
		nd = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(nd.value)
		nd = nd.right
	}
}

// hit is an intersection point together with its distance from the
// probe start.
type hit struct {
	p    vec.Vec2
	dist float64
}

// sortHits orders hits by distance, keeping equal distances in their
// original order.
func sortHits(hits []hit) {
	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Compare(a.dist, b.dist)
	})
}

// mergeHits merges two sorted hit lists.  On ties, elements of a come first,
// matching the order an OrderedSet produces when b is inserted after a.
func mergeHits(a, b []hit) []hit {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	res := make([]hit, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j].dist < a[i].dist {
			res = append(res, b[j])
			j++
		} else {
			res = append(res, a[i])
			i++
		}
	}
	res = append(res, a[i:]...)
	res = append(res, b[j:]...)
	return res
}
