package img2se

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHSVAchromatic(t *testing.T) {
	for _, v := range []uint8{0, 1, 64, 128, 200, 255} {
		c := Pixel{v, v, v, 255}.ToHSV()
		assert.Zero(t, c.Hue, "gray %d", v)
		assert.Zero(t, c.Saturation, "gray %d", v)
		assert.InDelta(t, float64(v)/255.0, c.Value, 1e-9)
	}
}

func TestToHSVPrimaries(t *testing.T) {
	red := Pixel{255, 0, 0, 255}.ToHSV()
	assert.InDelta(t, 0.0, red.Hue, 1e-9)
	assert.InDelta(t, 1.0, red.Saturation, 1e-9)
	assert.InDelta(t, 1.0, red.Value, 1e-9)

	assert.InDelta(t, 1.0/3.0, Pixel{0, 255, 0, 255}.ToHSV().Hue, 1e-9)
	assert.InDelta(t, 2.0/3.0, Pixel{0, 0, 255, 255}.ToHSV().Hue, 1e-9)
}

func TestToHSVNegativeRegionWraps(t *testing.T) {
	// Red is max and B > G, so the raw angle is negative.
	c := Pixel{255, 0, 128, 255}.ToHSV()
	assert.Greater(t, c.Hue, 0.8)
	assert.Less(t, c.Hue, 1.0)

	magenta := Pixel{255, 0, 255, 255}.ToHSV()
	assert.InDelta(t, 300.0/360.0, magenta.Hue, 1e-9)
	yellow := Pixel{255, 255, 0, 255}.ToHSV()
	assert.InDelta(t, 60.0/360.0, yellow.Hue, 1e-9)
}

func TestToHSVIgnoresAlpha(t *testing.T) {
	assert.Equal(t, Pixel{10, 20, 30, 255}.ToHSV(), Pixel{10, 20, 30, 0}.ToHSV())
}

func TestToHSVRanges(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := Pixel{uint8(r), uint8(g), uint8(b), 255}.ToHSV()
				assert.True(t, c.Hue >= 0 && c.Hue < 1, "hue %v for %d,%d,%d", c.Hue, r, g, b)
				assert.True(t, c.Saturation >= 0 && c.Saturation <= 1)
				assert.True(t, c.Value >= 0 && c.Value <= 1)
			}
		}
	}
}
