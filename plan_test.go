package toolpath

import (
	"context"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/toolpath/hatch"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/quadtree"
	"seehuhn.de/go/toolpath/testcases"
)

func jobFor(tc *testcases.TestCase) Job {
	job := DefaultJob()
	job.Hatch = tc.Hatch
	job.Tile = tc.Tile
	return job
}

// inside reports whether p lies inside the contour, using the even-odd rule.
func inside(contour []line.Segment, p vec.Vec2) bool {
	in := false
	for _, s := range contour {
		if (s.A.Y > p.Y) == (s.B.Y > p.Y) {
			continue
		}
		x := s.A.X + (p.Y-s.A.Y)*(s.B.X-s.A.X)/(s.B.Y-s.A.Y)
		if x > p.X {
			in = !in
		}
	}
	return in
}

func totalLength(segs []line.Segment) float64 {
	sum := 0.0
	for _, s := range segs {
		sum += s.Length()
	}
	return sum
}

func TestFixtures(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				segs := tc.Segments()
				tp, err := Plan(segs, jobFor(&tc))
				require.NoError(t, err)

				if tc.Want.Hatches >= 0 {
					assert.Len(t, tp.Hatches, tc.Want.Hatches)
				}
				if tc.Want.Tiles >= 0 {
					assert.Len(t, tp.Tiles, tc.Want.Tiles)
				}
				assert.Equal(t, tp.Rows*tp.Cols, len(tp.Tiles))
				assert.InDelta(t, totalLength(tp.Hatches), tp.MarkDistance, 1e-9*(1+tp.MarkDistance))

				if tc.Open {
					assert.Positive(t, tp.Unpaired)
				} else {
					assert.Zero(t, tp.Unpaired)
					for _, h := range tp.Hatches {
						mid := h.A.Add(h.B).Mul(0.5)
						assert.Equal(t, !tc.Hatch.Invert, inside(segs, mid), "hatch %v", h)
					}
				}

				// tiling neither loses nor duplicates any of the pattern
				emitted := 0.0
				last := -1
				tp.EmitTiles(func(index int, r rect.Rect, pattern []line.Segment) {
					assert.Greater(t, index, last)
					last = index
					assert.NotEmpty(t, pattern)
					assert.Equal(t, tp.Tiles[index].Rect, r)
					emitted += totalLength(pattern)
				})
				want := totalLength(tp.Pattern())
				assert.InDelta(t, want, emitted, 1e-9*(1+want))
			})
		}
	}
}

func TestPlanInvalidJob(t *testing.T) {
	segs := testcases.All["basic"][0].Segments()

	job := DefaultJob()
	job.Hatch.Pitch = 0
	_, err := Plan(segs, job)
	assert.True(t, errors.Is(err, ErrInvalidJob))
	assert.True(t, errors.Is(err, hatch.ErrInvalidSettings))

	job = DefaultJob()
	job.LeafSize = -1
	_, err = Plan(segs, job)
	assert.True(t, errors.Is(err, ErrInvalidJob))
}

func TestPlanInvalidGeometry(t *testing.T) {
	segs := []line.Segment{
		{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 1, Y: 0}},
		{A: vec.Vec2{X: math.NaN(), Y: 0}, B: vec.Vec2{X: 1, Y: 1}},
	}
	_, err := Plan(segs, DefaultJob())
	var geomErr *quadtree.GeometryError
	assert.True(t, errors.As(err, &geomErr))
}

func TestPlanEmpty(t *testing.T) {
	tp, err := Plan(nil, DefaultJob())
	require.NoError(t, err)
	assert.Empty(t, tp.Hatches)
	assert.Empty(t, tp.Tiles)
	assert.True(t, tp.Extents.IsEmpty())

	tp.EmitTiles(func(int, rect.Rect, []line.Segment) {
		t.Error("unexpected tile")
	})
}

func TestPlanWorkers(t *testing.T) {
	tc := testcases.All["curve"][1]
	segs := tc.Segments()

	job := jobFor(&tc)
	seq, err := Plan(segs, job)
	require.NoError(t, err)

	job.Workers = 4
	par, err := Plan(segs, job)
	require.NoError(t, err)

	assert.Equal(t, seq.Hatches, par.Hatches)
	assert.Equal(t, seq.JumpDistance, par.JumpDistance)
	assert.Equal(t, seq.Tiles, par.Tiles)
}

func TestPlanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	tp, err := PlanContext(ctx, testcases.All["basic"][0].Segments(), DefaultJob())
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, tp)
	assert.Empty(t, tp.Hatches)
	assert.NotEmpty(t, tp.Tiles)
}

// countdownContext reports cancellation once Err has been called n times.
type countdownContext struct {
	context.Context
	n int
}

func (c *countdownContext) Err() error {
	if c.n > 0 {
		c.n--
		return nil
	}
	return context.Canceled
}

func TestPlanCancelledPrefix(t *testing.T) {
	segs := []line.Segment{
		{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 40, Y: 0}},
		{A: vec.Vec2{X: 40, Y: 0}, B: vec.Vec2{X: 40, Y: 40}},
		{A: vec.Vec2{X: 40, Y: 40}, B: vec.Vec2{X: 0, Y: 40}},
		{A: vec.Vec2{X: 0, Y: 40}, B: vec.Vec2{X: 0, Y: 0}},
	}
	job := DefaultJob()
	job.Hatch.Pitch = 4
	job.Workers = 0

	full, err := Plan(segs, job)
	require.NoError(t, err)
	require.Len(t, full.Hatches, 10)

	// scan lines at y = 4i - 8.28..., the first five give two hatches
	ctx := &countdownContext{Context: context.Background(), n: 5}
	tp, err := PlanContext(ctx, segs, job)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, tp)
	require.Len(t, tp.Hatches, 2)
	assert.Equal(t, full.Hatches[:2], tp.Hatches)
	assert.InDelta(t, 80, tp.MarkDistance, 1e-9)
	assert.Equal(t, full.ScanLines, tp.ScanLines)
	assert.NotEmpty(t, tp.Tiles)
}

func TestPlanPath(t *testing.T) {
	square := func(yield func(path.Command, []vec.Vec2) bool) {
		pts := []vec.Vec2{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 40}, {X: 0, Y: 40}}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}

	job := DefaultJob()
	job.Hatch.Pitch = 4
	tp, err := PlanPath(context.Background(), square, job)
	require.NoError(t, err)
	assert.Len(t, tp.Contour, 4)
	assert.Len(t, tp.Hatches, 10)
	assert.InDelta(t, 400, tp.MarkDistance, 1e-9)
}

func TestEmitTilesRepeatable(t *testing.T) {
	tc := testcases.All["tile"][0]
	tp, err := Plan(tc.Segments(), jobFor(&tc))
	require.NoError(t, err)

	collect := func() map[int]int {
		res := map[int]int{}
		tp.EmitTiles(func(index int, _ rect.Rect, pattern []line.Segment) {
			res[index] = len(pattern)
		})
		return res
	}
	first := collect()
	assert.NotEmpty(t, first)
	assert.Equal(t, first, collect())
}

func BenchmarkPlan(b *testing.B) {
	tc := testcases.All["tile"][0]
	segs := tc.Segments()
	job := jobFor(&tc)
	job.Hatch.Pitch = 0.2
	for b.Loop() {
		if _, err := Plan(segs, job); err != nil {
			b.Fatal(err)
		}
	}
}
