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

package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath"
	"seehuhn.de/go/toolpath/line"
)

// jsonSegment holds the end points of a segment as [[x0, y0], [x1, y1]].
type jsonSegment [2][2]float64

func toJSONSegments(segs []line.Segment) []jsonSegment {
	res := make([]jsonSegment, len(segs))
	for i, s := range segs {
		res[i] = jsonSegment{{s.A.X, s.A.Y}, {s.B.X, s.B.Y}}
	}
	return res
}

// openInput opens the named file, or standard input for "-".
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}

// readSegments reads a contour in JSON form.
func readSegments(name string, stdin io.Reader) ([]line.Segment, error) {
	r, err := openInput(name, stdin)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var raw []jsonSegment
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrapf(err, "reading segments from %s", name)
	}
	segs := make([]line.Segment, len(raw))
	for i, s := range raw {
		segs[i] = line.Segment{
			A: vec.Vec2{X: s[0][0], Y: s[0][1]},
			B: vec.Vec2{X: s[1][0], Y: s[1][1]},
		}
	}
	return segs, nil
}

// loadJob reads the job file, or returns the default job if name is empty.
func loadJob(name string) (toolpath.Job, error) {
	if name == "" {
		return toolpath.DefaultJob(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return toolpath.Job{}, errors.WithStack(err)
	}
	defer f.Close()

	job, err := toolpath.LoadJob(f)
	if err != nil {
		return toolpath.Job{}, errors.Wrapf(err, "job file %s", name)
	}
	return job, nil
}
