package img2se

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Quantize replaces the RGB of every opaque pixel with the palette entry
// closest in CIE Lab. Alpha is kept. An empty palette leaves pixels as is.
func Quantize(pixels []Pixel, palette []colorful.Color) {
	if len(palette) == 0 {
		return
	}
	snapped := make([]Pixel, len(palette))
	for i, c := range palette {
		r, g, b := c.Clamped().RGB255()
		snapped[i] = Pixel{R: r, G: g, B: b}
	}
	cache := make(map[[3]uint8]int)
	for i, p := range pixels {
		if p.Transparent() {
			continue
		}
		key := [3]uint8{p.R, p.G, p.B}
		idx, ok := cache[key]
		if !ok {
			idx = nearest(p.Color(), palette)
			cache[key] = idx
		}
		q := snapped[idx]
		q.A = p.A
		pixels[i] = q
	}
}

func nearest(c colorful.Color, palette []colorful.Color) int {
	best, bestD := 0, math.MaxFloat64
	for i, pc := range palette {
		if d := c.DistanceLab(pc); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}
