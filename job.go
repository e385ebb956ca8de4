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
	"fmt"
	"io"
	"math"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"seehuhn.de/go/toolpath/contour"
	"seehuhn.de/go/toolpath/hatch"
	"seehuhn.de/go/toolpath/quadtree"
	"seehuhn.de/go/toolpath/tile"
)

// Job collects the settings for planning one layer.
//
// A job file is TOML:
//
//	leaf_size = 0.1
//	workers = 4
//
//	[hatch]
//	pitch = 0.1
//	angle = 45
//	style = "serpentine"
//
//	[tile]
//	width = 10
//	height = 10
type Job struct {
	Hatch hatch.Settings `toml:"hatch"`
	Tile  tile.Settings  `toml:"tile"`

	// LeafSize is the quadtree leaf-size floor.
	LeafSize float64 `toml:"leaf_size"`

	// Workers is the number of concurrent scan line queries.
	// Values below 2 run sequentially.
	Workers int `toml:"workers"`

	// Flatness is the curve tolerance used by PlanPath.
	Flatness float64 `toml:"flatness"`
}

// DefaultJob returns the settings used for keys missing from a job file.
func DefaultJob() Job {
	return Job{
		Hatch:    hatch.DefaultSettings(),
		Tile:     tile.DefaultSettings(),
		LeafSize: quadtree.DefaultLeafSize,
		Workers:  1,
		Flatness: contour.DefaultFlatness,
	}
}

// ErrInvalidJob is returned (wrapped) for unusable jobs.
var ErrInvalidJob = errors.New("toolpath: invalid job")

// Validate checks all settings of the job.  The returned error matches
// ErrInvalidJob and, where applicable, the sentinel of the failing
// sub-package.
func (j Job) Validate() error {
	if err := j.Hatch.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if err := j.Tile.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if !(j.LeafSize > 0) || math.IsInf(j.LeafSize, 0) {
		return errors.Wrapf(ErrInvalidJob, "leaf size %g", j.LeafSize)
	}
	if j.Workers < 0 {
		return errors.Wrapf(ErrInvalidJob, "%d workers", j.Workers)
	}
	if !(j.Flatness > 0) || math.IsInf(j.Flatness, 0) {
		return errors.Wrapf(ErrInvalidJob, "flatness %g", j.Flatness)
	}
	return nil
}

// LoadJob reads a TOML job description from r.  Missing keys keep their
// default values; unknown keys are an error.
func LoadJob(r io.Reader) (Job, error) {
	job := DefaultJob()

	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&job); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Job{}, errors.Wrapf(ErrInvalidJob, "unknown keys\n%s", strict.String())
		}
		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			row, col := decErr.Position()
			return Job{}, errors.Wrapf(ErrInvalidJob, "line %d, column %d: %s", row, col, decErr.Error())
		}
		return Job{}, errors.Wrap(err, "toolpath: reading job")
	}

	if err := job.Validate(); err != nil {
		return Job{}, err
	}
	return job, nil
}

// WriteTOML writes the job as TOML to w.
func (j Job) WriteTOML(w io.Writer) error {
	return errors.WithStack(toml.NewEncoder(w).Encode(j))
}
