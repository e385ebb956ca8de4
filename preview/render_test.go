package preview

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/toolpath/line"
	"seehuhn.de/go/toolpath/tile"
)

func TestRender(t *testing.T) {
	tl := tile.Tile{Rect: rect.Rect{LLx: 10, LLy: 20, URx: 20, URy: 30}}
	img, err := Render(tl, []line.Segment{seg(10, 25, 20, 25)}, 10, 0.2)
	require.NoError(t, err)

	require.Equal(t, 100, img.Bounds().Dx())
	require.Equal(t, 100, img.Bounds().Dy())

	// the line sits half way up the tile
	assert.Equal(t, uint8(0), img.GrayAt(50, 49).Y)
	assert.Equal(t, uint8(0), img.GrayAt(50, 50).Y)
	assert.Equal(t, uint8(255), img.GrayAt(50, 48).Y)
	assert.Equal(t, uint8(255), img.GrayAt(50, 51).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 0).Y)
}

func TestRenderOrientation(t *testing.T) {
	tl := tile.Tile{Rect: rect.Rect{URx: 10, URy: 10}}
	// a short vertical stroke near the top left corner
	img, err := Render(tl, []line.Segment{seg(1, 9, 1, 10)}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 9).Y)
}

func TestRenderErrors(t *testing.T) {
	tl := tile.Tile{Rect: rect.Rect{URx: 10, URy: 10}}

	_, err := Render(tl, nil, 0, 1)
	assert.True(t, errors.Is(err, ErrImageSize))

	_, err = Render(tl, nil, 1e6, 1)
	assert.True(t, errors.Is(err, ErrImageSize))

	_, err = Render(tile.Tile{}, nil, 1, 1)
	assert.True(t, errors.Is(err, ErrImageSize))

	_, err = Render(tl, nil, 1, -1)
	assert.Error(t, err)
}
