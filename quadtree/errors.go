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
	"fmt"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath/line"
)

// GeometryError is returned by [Build] if a segment does not fit into the
// root square.  The root is sized from the same segments, so this indicates
// invalid coordinates (NaN or Inf) or a numerical problem upstream.
type GeometryError struct {
	Segment line.Segment
	Root    rect.Rect
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("quadtree: segment (%g,%g)-(%g,%g) outside root [%g,%g]x[%g,%g]",
		e.Segment.A.X, e.Segment.A.Y, e.Segment.B.X, e.Segment.B.Y,
		e.Root.LLx, e.Root.URx, e.Root.LLy, e.Root.URy)
}
