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
	"log/slog"

	"seehuhn.de/go/toolpath/internal/logx"
)

// SetLogger sets the logger used by all toolpath packages.
// By default nothing is logged.  Passing nil restores the default.
//
// Planning stages log statistics at debug level.  Contours with an odd
// number of crossings on some scan line, which usually means the contour is
// not closed, are reported at warning level.
func SetLogger(l *slog.Logger) {
	logx.Set(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return logx.Logger()
}
