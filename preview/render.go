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

package preview

import (
	"image"
	"math"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/tile"
)

// MaxPixels limits the size of images produced by Render.
const MaxPixels = 1 << 26

// ErrImageSize is returned by Render if the requested image would be empty
// or larger than MaxPixels.
var ErrImageSize = errors.New("preview: invalid image size")

// Render draws the pattern of tile t as dark lines on a white background.
//
// The image covers t.Rect at pixelsPerUnit pixels per pattern unit, with
// the top row of the image at the top of the tile.  Lines are stroked with
// the given width (in pattern units) and butt caps.
func Render(t tile.Tile, segs []line.Segment, pixelsPerUnit, lineWidth float64) (*image.Gray, error) {
	if !(pixelsPerUnit > 0) || math.IsInf(pixelsPerUnit, 0) {
		return nil, errors.Wrapf(ErrImageSize, "resolution %g", pixelsPerUnit)
	}
	if !(lineWidth > 0) || math.IsInf(lineWidth, 0) {
		return nil, errors.Errorf("preview: invalid line width %g", lineWidth)
	}

	w := math.Ceil((t.Rect.URx - t.Rect.LLx) * pixelsPerUnit)
	h := math.Ceil((t.Rect.URy - t.Rect.LLy) * pixelsPerUnit)
	if !(w >= 1 && h >= 1) || w*h > MaxPixels {
		return nil, errors.Wrapf(ErrImageSize, "%gx%g pixels", w, h)
	}
	width, height := int(w), int(h)

	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	r := NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	r.CTM = matrix.Matrix{
		pixelsPerUnit, 0,
		0, -pixelsPerUnit,
		-t.Rect.LLx * pixelsPerUnit, t.Rect.URy * pixelsPerUnit,
	}
	r.Width = lineWidth
	r.Stroke(segs, func(y, xMin int, coverage []float32) {
		row := img.Pix[y*img.Stride+xMin:]
		for i, c := range coverage {
			row[i] = uint8(math.Round(float64(1-c) * 255))
		}
	})
	return img, nil
}
