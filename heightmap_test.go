package img2se

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightMapThreshold(t *testing.T) {
	g := NewGrid2D(4, 1)
	g.Set(0, 0, Pixel{127, 127, 127, 255}) // 0.498
	g.Set(1, 0, Pixel{128, 128, 128, 255}) // 0.502
	g.Set(2, 0, Pixel{0, 0, 200, 255})
	g.Set(3, 0, Pixel{255, 255, 255, 0}) // transparent but bright

	m := heightMapFromGrid(g)
	assert.Equal(t, []uint8{0, 1, 1, 1}, m.Bits)
}

func TestResolveHeightMapResizes(t *testing.T) {
	mask := solidImage(8, 8, white)
	m, err := ResolveHeightMap(FromImages(mask), 3, 2, ResampleNearest)
	require.NoError(t, err)
	assert.Equal(t, 3, m.W)
	assert.Equal(t, 2, m.H)
	for _, b := range m.Bits {
		assert.Equal(t, uint8(1), b)
	}

	m, err = ResolveHeightMap(FromImages(solidImage(1, 1, color.NRGBA{10, 10, 10, 255})), 2, 2, ResampleNearest)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 0, 0, 0}, m.Bits)
}

func TestResolveHeightMapMissing(t *testing.T) {
	_, err := ResolveHeightMap(nil, 2, 2, "")
	assert.ErrorIs(t, err, ErrMissingInput)
}
