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

// Package preview draws tile patterns into grey-scale images.
//
// Each line of a pattern is stroked as a filled outline with the chosen
// line cap.  Coverage is accumulated with the signed-area scanline method
// and combined with the nonzero winding rule, so that overlapping strokes
// do not darken each other.
package preview

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/toolpath/line"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer converts line segments to pixel coverage values, the fraction
// of each pixel's area covered by the stroked lines.  Create one instance
// and reuse it; internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from pattern coordinates to device space.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Width sets stroke thickness in pattern units.  Must be positive.
	Width float64

	// Cap sets the style for line ends (butt, round, or square).
	Cap graphics.LineCapStyle

	cover       []float32  // per pixel cover change; reused as output
	area        []float32  // per pixel area within the pixel
	edges       []edge     // edge list in device coordinates
	rowHasEdges []bool     // per scanline: true if any edge contributes
	outline     []vec.Vec2 // outline of the current segment

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle, the
// identity transformation, unit width and butt caps.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:   matrix.Identity,
		Clip:  clip,
		Width: 1,
		Cap:   graphics.LineCapButt,
	}
}

// Stroke draws all segments and calls emit once per non-empty pixel row.
// The coverage slice is valid only during the call.
func (r *Rasterizer) Stroke(segs []line.Segment, emit func(y, xMin int, coverage []float32)) {
	if !(r.Width > 0) {
		return
	}

	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	for _, s := range segs {
		r.addOutline(s)
	}

	xMin, xMax, yMin, yMax, ok := r.bbox()
	if !ok {
		return
	}
	r.fill(xMin, xMax, yMin, yMax, emit)
}

// addOutline adds the counter-clockwise outline of one stroked segment to
// the edge list.
func (r *Rasterizer) addOutline(s line.Segment) {
	d := r.Width / 2

	T := s.B.Sub(s.A)
	length := T.Length()
	if length < zeroLengthThreshold {
		if r.Cap == graphics.LineCapButt {
			return
		}
		T = vec.Vec2{X: 1}
	} else {
		T = T.Mul(1 / length)
	}
	N := vec.Vec2{X: -T.Y, Y: T.X}

	r.outline = r.outline[:0]
	r.outline = append(r.outline, s.A.Sub(N.Mul(d)), s.B.Sub(N.Mul(d)))
	r.addCap(s.B, T, N, d)
	r.outline = append(r.outline, s.B.Add(N.Mul(d)), s.A.Add(N.Mul(d)))
	r.addCap(s.A, T.Mul(-1), N.Mul(-1), d)

	n := len(r.outline)
	for i, p := range r.outline {
		r.addEdge(p, r.outline[(i+1)%n])
	}
}

// addCap adds the points of the line cap at P, between the offset points
// P - N*d and P + N*d.  T points away from the line.
func (r *Rasterizer) addCap(P, T, N vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.outline = append(r.outline, ext.Sub(N.Mul(d)), ext.Add(N.Mul(d)))

	case graphics.LineCapRound:
		n := r.arcSteps(d)
		start := N.Mul(-1)
		for i := 1; i < n; i++ {
			angle := math.Pi * float64(i) / float64(n)
			cos, sin := math.Cos(angle), math.Sin(angle)
			dir := vec.Vec2{
				X: start.X*cos - start.Y*sin,
				Y: start.X*sin + start.Y*cos,
			}
			r.outline = append(r.outline, P.Add(dir.Mul(d)))
		}
	}
}

// arcSteps returns the number of chords for a half circle of the given
// radius, so that the sagitta stays below arcFlatness device pixels.
func (r *Rasterizer) arcSteps(radius float64) int {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())
	if devRadius <= arcFlatness {
		return 2
	}
	step := 2 * math.Acos(1-arcFlatness/devRadius)
	if !(step > 0) {
		step = math.Pi / 4
	}
	return max(2, int(math.Ceil(math.Pi/step)))
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// addEdge adds an edge given in pattern coordinates.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	q0 := line.Apply(r.CTM, p0)
	q1 := line.Apply(r.CTM, p1)

	dy := q1.Y - q0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	r.edges = append(r.edges, edge{
		x0: q0.X, y0: q0.Y,
		x1: q1.X, y1: q1.Y,
		dxdy: (q1.X - q0.X) / dy,
	})

	if r.edgeBBoxFirst {
		r.edgeDevXMin = min(q0.X, q1.X)
		r.edgeDevXMax = max(q0.X, q1.X)
		r.edgeDevYMin = min(q0.Y, q1.Y)
		r.edgeDevYMax = max(q0.Y, q1.Y)
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, q0.X, q1.X)
		r.edgeDevXMax = max(r.edgeDevXMax, q0.X, q1.X)
		r.edgeDevYMin = min(r.edgeDevYMin, q0.Y, q1.Y)
		r.edgeDevYMax = max(r.edgeDevYMax, q0.Y, q1.Y)
	}
}

// bbox returns the pixel range touched by the edges, clamped to the clip
// rectangle.
func (r *Rasterizer) bbox() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage accumulation model:
//
// For each pixel we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  cover weighted by the distance of the crossing from the right
//          pixel edge
//
// Integrating a row from left to right gives the signed area of the
// outlines inside every pixel.  The nonzero rule clamps its absolute value
// to [0,1].

// fill accumulates all edges into 2D buffers and emits the integrated rows.
func (r *Rasterizer) fill(xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)

	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]

		edgeYMin := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		edgeYMax := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := edgeYMin; y < edgeYMax; y++ {
			row := y - yMin
			off := row * width
			accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateScanlineNonZero(coverage, r.area[off:off+width])
		if trimmed, offset := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+offset, trimmed)
		}
	}
}

// accumulateEdge adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x - bboxXMin.
func accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xLeft := e.x0 + e.dxdy*(yTop-e.y0)
	xRight := e.x0 + e.dxdy*(yBot-e.y0)
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}
	pixLeft := int(math.Floor(xLeft))
	pixRight := int(math.Floor(xRight))

	if pixRight < bboxXMin {
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	}
	if pixLeft >= bboxXMax {
		return
	}

	if pixLeft == pixRight {
		addSpan(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// the edge crosses several pixel columns within this scanline
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		y0 := e.y0 + dydx*(float64(pix)-e.x0)
		y1 := e.y0 + dydx*(float64(pix+1)-e.x0)
		segYMin := max(min(y0, y1), yTop)
		segYMax := min(max(y0, y1), yBot)
		if segYMax <= segYMin {
			continue
		}
		addSpan(e, segYMin, segYMax, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// addSpan adds the part of e between yTop and yBot, which lies inside pixel
// column pix.
func addSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)

	if pix < bboxXMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= bboxXMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	xFrac := xMid - float64(pix)

	idx := pix - bboxXMin
	cover[idx] += c
	area[idx] += c * float32(1-xFrac)
}

// integrateScanlineNonZero converts accumulated cover/area to final coverage
// values using the nonzero winding rule.  The cover slice is modified in
// place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		cov := raw
		if raw < 0 {
			cov = -raw
		}
		if cov > 1 {
			cov = 1
		}
		cover[i] = cov
	}
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// Numerical tolerances for the rasterizer.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a segment has no
	// direction.
	zeroLengthThreshold = 1e-10

	// arcFlatness is the tolerance for round caps, in device pixels.
	arcFlatness = 0.25
)
