package img2se

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestQuantize(t *testing.T) {
	palette := []colorful.Color{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}, {R: 0, G: 1, B: 0}}
	pix := []Pixel{
		{20, 20, 20, 255},
		{230, 240, 235, 100},
		{30, 200, 40, 255},
		{30, 200, 40, 0},
	}
	Quantize(pix, palette)
	assert.Equal(t, []Pixel{
		{0, 0, 0, 255},
		{255, 255, 255, 100},
		{0, 255, 0, 255},
		{30, 200, 40, 0},
	}, pix)
}

func TestQuantizeEmptyPalette(t *testing.T) {
	pix := []Pixel{{1, 2, 3, 4}}
	Quantize(pix, nil)
	assert.Equal(t, Pixel{1, 2, 3, 4}, pix[0])
}
