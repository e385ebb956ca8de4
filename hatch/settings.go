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

// Package hatch fills contours with parallel scan lines.
//
// Scan lines are swept across the extents of a contour, rotated by the
// hatch angle.  Each scan line is intersected with the contour through a
// [quadtree.Index], and consecutive pairs of crossings become hatch
// segments.
package hatch

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Style selects the scan line layout.
type Style int

// These are the supported hatch styles.  Serpentine styles reverse every
// other scan line.  Grid styles add a second set of scan lines, rotated by
// a further 90 degrees.
const (
	Raster Style = iota
	RasterGrid
	Serpentine
	SerpentineGrid
)

var styleNames = [...]string{
	Raster:         "raster",
	RasterGrid:     "raster-grid",
	Serpentine:     "serpentine",
	SerpentineGrid: "serpentine-grid",
}

func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// IsGrid reports whether s doubles the scan lines with a perpendicular set.
func (s Style) IsGrid() bool {
	return s == RasterGrid || s == SerpentineGrid
}

// IsSerpentine reports whether s alternates the scan line direction.
func (s Style) IsSerpentine() bool {
	return s == Serpentine || s == SerpentineGrid
}

func (s Style) valid() bool {
	return s >= Raster && s <= SerpentineGrid
}

// MarshalText implements [encoding.TextMarshaler].
func (s Style) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, errors.Wrapf(ErrInvalidSettings, "unknown style %d", int(s))
	}
	return []byte(styleNames[s]), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Style) UnmarshalText(text []byte) error {
	st, err := ParseStyle(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ParseStyle returns the style with the given name.
func ParseStyle(name string) (Style, error) {
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidSettings, "unknown style %q", name)
}

// Settings describes a hatch fill.
type Settings struct {
	// Pitch is the distance between neighbouring scan lines.
	// Must be positive.
	Pitch float64 `toml:"pitch"`

	// Angle rotates the scan lines counter-clockwise, in degrees.
	Angle float64 `toml:"angle"`

	Style Style `toml:"style"`

	// Invert skips the first crossing of every scan line, so that the
	// other set of alternating sub-segments is filled.
	Invert bool `toml:"invert"`
}

// DefaultSettings returns horizontal raster hatching with 0.1 pitch.
func DefaultSettings() Settings {
	return Settings{Pitch: 0.1, Style: Raster}
}

// MinPitch is the smallest pitch used for generation.  Smaller positive
// values are raised to this.
const MinPitch = 1e-3

// ErrInvalidSettings is returned (wrapped) for unusable hatch settings.
var ErrInvalidSettings = errors.New("hatch: invalid settings")

// Validate checks that s can be used for hatch generation.
func (s Settings) Validate() error {
	if math.IsNaN(s.Pitch) || math.IsInf(s.Pitch, 0) || s.Pitch <= 0 {
		return errors.Wrapf(ErrInvalidSettings, "pitch %g must be positive", s.Pitch)
	}
	if math.IsNaN(s.Angle) || math.IsInf(s.Angle, 0) {
		return errors.Wrapf(ErrInvalidSettings, "angle %g", s.Angle)
	}
	if !s.Style.valid() {
		return errors.Wrapf(ErrInvalidSettings, "unknown style %d", int(s.Style))
	}
	return nil
}
