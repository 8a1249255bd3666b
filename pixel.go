package img2se

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel is a non-premultiplied 8-bit RGBA sample. A == 0 means no block.
type Pixel struct {
	R, G, B, A uint8
}

// Transparent reports whether the pixel produces no block.
func (p Pixel) Transparent() bool {
	return p.A == 0
}

// Color returns the RGB part of p as a colorful.Color in [0,1].
func (p Pixel) Color() colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
}

// HSV is a color with every channel normalized to [0,1].
type HSV struct {
	Hue        float64
	Saturation float64
	Value      float64
}

// ToHSV converts the RGB channels of p. Alpha is ignored.
//
// Achromatic pixels get Hue 0. Hue is the six-region angle divided by 360.
func (p Pixel) ToHSV() HSV {
	h, s, v := p.Color().Hsv()
	return HSV{Hue: h / 360.0, Saturation: s, Value: v}
}

func (c HSV) String() string {
	return fmt.Sprintf("HSV(%.2f, %.2f, %.2f)", c.Hue, c.Saturation, c.Value)
}
