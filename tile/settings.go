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

// Package tile partitions a toolpath into fixed-size rectangular work cells.
//
// A uniform grid of tiles is laid over the extents of a pattern.  Every line
// of the pattern is then clipped against every tile, and the non-empty
// per-tile patterns are handed to a callback.
package tile

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/rect"
)

// Settings describes the tile grid.
type Settings struct {
	// Width and Height give the tile size.  Both must be positive.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// PaddingX and PaddingY are added to the pattern size before the number
	// of columns and rows is computed.  The padding is split equally between
	// both sides.
	PaddingX float64 `toml:"padding_x"`
	PaddingY float64 `toml:"padding_y"`

	// OffsetX and OffsetY shift the grid centre away from the pattern centre.
	OffsetX float64 `toml:"offset_x"`
	OffsetY float64 `toml:"offset_y"`
}

// DefaultSettings returns 10×10 tiles without padding or offset.
func DefaultSettings() Settings {
	return Settings{Width: 10, Height: 10}
}

// ErrInvalidSettings is returned (wrapped) for unusable tile settings.
var ErrInvalidSettings = errors.New("tile: invalid settings")

// Validate checks that s describes a usable grid.
func (s Settings) Validate() error {
	if !positive(s.Width) || !positive(s.Height) {
		return errors.Wrapf(ErrInvalidSettings, "tile size %gx%g must be positive", s.Width, s.Height)
	}
	if !finite(s.PaddingX) || !finite(s.PaddingY) || s.PaddingX < 0 || s.PaddingY < 0 {
		return errors.Wrapf(ErrInvalidSettings, "padding %g,%g", s.PaddingX, s.PaddingY)
	}
	if !finite(s.OffsetX) || !finite(s.OffsetY) {
		return errors.Wrapf(ErrInvalidSettings, "offset %g,%g", s.OffsetX, s.OffsetY)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return finite(x) && x > 0
}

// Tile is one cell of the grid.
type Tile struct {
	Index    int // Row*cols + Col
	Row, Col int // row 0 is at the bottom, column 0 on the left
	Rect     rect.Rect
}

func (t Tile) String() string {
	return fmt.Sprintf("tile %d (row %d, col %d) [%g,%g]x[%g,%g]",
		t.Index, t.Row, t.Col, t.Rect.LLx, t.Rect.URx, t.Rect.LLy, t.Rect.URy)
}
