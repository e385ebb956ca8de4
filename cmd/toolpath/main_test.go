package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/toolpath"
)

const squareJSON = `[
  [[0, 0], [40, 0]],
  [[40, 0], [40, 40]],
  [[40, 40], [0, 40]],
  [[0, 40], [0, 0]]
]`

const squareJob = `
[hatch]
pitch = 4

[tile]
width = 25
height = 25
`

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { toolpath.SetLogger(nil) })

	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	segs := writeFile(t, dir, "square.json", squareJSON)
	job := writeFile(t, dir, "job.toml", squareJob)

	out, err := run(t, "", "plan", "--job", job, segs)
	require.NoError(t, err)

	var res planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 4, res.Segments)
	assert.Equal(t, 10, res.Hatches)
	assert.InDelta(t, 400, res.MarkDistance, 1e-9)
	assert.Equal(t, 2, res.Rows)
	assert.Equal(t, 2, res.Cols)
	assert.Len(t, res.Tiles, 4)
	assert.Empty(t, res.Hatch)
}

func TestPlanStdinFull(t *testing.T) {
	out, err := run(t, squareJSON, "plan", "--full", "-")
	require.NoError(t, err)

	var res planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Hatch, res.Hatches)
	for _, tl := range res.Tiles {
		assert.Len(t, tl.Pattern, tl.Lines)
	}
}

func TestPlanErrors(t *testing.T) {
	dir := t.TempDir()
	segs := writeFile(t, dir, "square.json", squareJSON)
	bad := writeFile(t, dir, "bad.toml", "[hatch]\npitch = 0\n")

	_, err := run(t, "", "plan", "--job", bad, segs)
	assert.ErrorIs(t, err, toolpath.ErrInvalidJob)

	_, err = run(t, "not json", "plan", "-")
	assert.Error(t, err)

	_, err = run(t, "", "plan", filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = run(t, "", "plan")
	assert.Error(t, err)
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	segs := writeFile(t, dir, "square.json", squareJSON)
	job := writeFile(t, dir, "job.toml", squareJob)
	outDir := filepath.Join(dir, "png")

	_, err := run(t, "", "preview", "--job", job, "--out", outDir, "--resolution", "4", segs)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(outDir, "tile-*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 4)
}

func TestJob(t *testing.T) {
	out, err := run(t, "", "job")
	require.NoError(t, err)

	job, err := toolpath.LoadJob(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, toolpath.DefaultJob(), job)
}
