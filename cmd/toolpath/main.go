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

// Command toolpath plans hatch fill toolpaths from the command line.
//
// Contours are read as JSON arrays of segments, [[x0,y0],[x1,y1]].  Job
// settings are read from TOML files; "toolpath job" prints the defaults.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"seehuhn.de/go/toolpath"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "toolpath",
		Short:        "Plan hatch fill toolpaths for sliced contours",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
			toolpath.SetLogger(slog.New(h))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log statistics for every planning stage")

	root.AddCommand(newPlanCmd(), newPreviewCmd(), newJobCmd())
	return root
}

func newJobCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "job",
		Short: "Print the default job settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return toolpath.DefaultJob().WriteTOML(cmd.OutOrStdout())
		},
	}
}
