package toolpath

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/toolpath/hatch"
	"seehuhn.de/go/toolpath/tile"
)

func TestLoadJob(t *testing.T) {
	src := `
leaf_size = 0.5
workers = 4

[hatch]
pitch = 0.25
angle = 45
style = "serpentine-grid"
invert = true

[tile]
width = 20
height = 15
padding_x = 2
offset_y = -1
`
	job, err := LoadJob(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 0.5, job.LeafSize)
	assert.Equal(t, 4, job.Workers)
	assert.Equal(t, hatch.Settings{Pitch: 0.25, Angle: 45, Style: hatch.SerpentineGrid, Invert: true}, job.Hatch)
	assert.Equal(t, tile.Settings{Width: 20, Height: 15, PaddingX: 2, OffsetY: -1}, job.Tile)
	// not in the file
	assert.Equal(t, DefaultJob().Flatness, job.Flatness)
}

func TestLoadJobDefaults(t *testing.T) {
	job, err := LoadJob(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultJob(), job)
	assert.NoError(t, job.Validate())
}

func TestLoadJobErrors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		invalid bool // error matches ErrInvalidJob
	}{
		{"unknown key", "pitch = 1\n", true},
		{"unknown table key", "[hatch]\nspacing = 1\n", true},
		{"syntax", "[hatch\n", true},
		{"bad pitch", "[hatch]\npitch = -1\n", true},
		{"bad tile", "[tile]\nwidth = 0\n", true},
		{"bad workers", "workers = -2\n", true},
		{"bad style", "[hatch]\nstyle = \"zigzag\"\n", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := LoadJob(strings.NewReader(c.src))
			require.Error(t, err)
			if c.invalid {
				assert.True(t, errors.Is(err, ErrInvalidJob), "%v", err)
			}
		})
	}
}

func TestLoadJobSubErrors(t *testing.T) {
	_, err := LoadJob(strings.NewReader("[tile]\nheight = -3\n"))
	assert.True(t, errors.Is(err, tile.ErrInvalidSettings))

	_, err = LoadJob(strings.NewReader("[hatch]\nangle = nan\n"))
	assert.True(t, errors.Is(err, hatch.ErrInvalidSettings))
}

func TestWriteTOML(t *testing.T) {
	job := DefaultJob()
	job.Hatch.Style = hatch.Serpentine
	job.Hatch.Angle = 30
	job.Tile.PaddingX = 1.5
	job.Workers = 3

	buf := &bytes.Buffer{}
	require.NoError(t, job.WriteTOML(buf))

	back, err := LoadJob(buf)
	require.NoError(t, err)
	assert.Equal(t, job, back)
}
