package img2se

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/gift"
)

// Grid2D is a dense row-major pixel grid.
type Grid2D struct {
	W, H int
	Pix  []Pixel // len = W*H
}

// Grid3D stacks one Grid2D-shaped layer per source frame.
type Grid3D struct {
	W, H, D int
	Pix     []Pixel // len = W*H*D, layer-major
}

func NewGrid2D(w, h int) Grid2D {
	return Grid2D{W: w, H: h, Pix: make([]Pixel, w*h)}
}

func NewGrid3D(w, h, d int) Grid3D {
	return Grid3D{W: w, H: h, D: d, Pix: make([]Pixel, w*h*d)}
}

func (g Grid2D) At(x, y int) Pixel     { return g.Pix[y*g.W+x] }
func (g Grid2D) Set(x, y int, p Pixel) { g.Pix[y*g.W+x] = p }

func (g Grid3D) At(x, y, z int) Pixel     { return g.Pix[(z*g.H+y)*g.W+x] }
func (g Grid3D) Set(x, y, z int, p Pixel) { g.Pix[(z*g.H+y)*g.W+x] = p }

// Layer returns frame z as a Grid2D sharing storage with g.
func (g Grid3D) Layer(z int) Grid2D {
	n := g.W * g.H
	return Grid2D{W: g.W, H: g.H, Pix: g.Pix[z*n : (z+1)*n]}
}

// Image renders g as an NRGBA image.
func (g Grid2D) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	for y := range g.H {
		for x := range g.W {
			p := g.At(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}

// Resampling selects the filter used when a grid must be resized.
type Resampling string

const (
	ResampleNearest Resampling = "nearest"
	ResampleBox     Resampling = "box"
	ResampleLinear  Resampling = "linear"
	ResampleCubic   Resampling = "cubic"
	ResampleLanczos Resampling = "lanczos"
)

// Valid reports whether r names a known filter. The empty value is valid
// and means cubic.
func (r Resampling) Valid() bool {
	switch r {
	case "", ResampleNearest, ResampleBox, ResampleLinear, ResampleCubic, ResampleLanczos:
		return true
	}
	return false
}

func (r Resampling) filter() gift.Resampling {
	switch r {
	case ResampleNearest:
		return gift.NearestNeighborResampling
	case ResampleBox:
		return gift.BoxResampling
	case ResampleLinear:
		return gift.LinearResampling
	case ResampleLanczos:
		return gift.LanczosResampling
	default:
		return gift.CubicResampling
	}
}

func resize(img image.Image, w, h int, r Resampling) *image.NRGBA {
	g := gift.New(gift.Resize(w, h, r.filter()))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// Sample2D reads the first frame of src into a grid. A zero width or height
// keeps the native size on that axis; any other size that differs from the
// native one resizes the frame first.
func Sample2D(src Source, width, height int, r Resampling) (Grid2D, error) {
	if src == nil || src.FrameCount() < 1 {
		return Grid2D{}, ErrMissingInput
	}
	if width < 0 || height < 0 {
		return Grid2D{}, fmt.Errorf("%w: negative target size %dx%d", ErrDimensionMismatch, width, height)
	}
	if width == 0 {
		width = src.Width()
	}
	if height == 0 {
		height = src.Height()
	}

	if width == src.Width() && height == src.Height() {
		grid := NewGrid2D(width, height)
		for y := range height {
			for x := range width {
				grid.Set(x, y, src.At(0, x, y))
			}
		}
		return grid, nil
	}

	if src.Width() == 0 || src.Height() == 0 {
		return Grid2D{}, fmt.Errorf("%w: cannot resize empty %dx%d image to %dx%d",
			ErrDimensionMismatch, src.Width(), src.Height(), width, height)
	}
	resized := resize(frameImage(src, 0), width, height, r)
	b := resized.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return Grid2D{}, fmt.Errorf("%w: resized to %dx%d, want %dx%d",
			ErrDimensionMismatch, b.Dx(), b.Dy(), width, height)
	}
	grid := NewGrid2D(width, height)
	for y := range height {
		for x := range width {
			grid.Set(x, y, pixelOf(resized.NRGBAAt(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return grid, nil
}

// Sample3D reads every frame of src at native resolution, one layer per frame.
func Sample3D(src Source) (Grid3D, error) {
	if src == nil || src.FrameCount() < 1 {
		return Grid3D{}, ErrMissingInput
	}
	w, h, d := src.Width(), src.Height(), src.FrameCount()
	grid := NewGrid3D(w, h, d)
	for z := range d {
		for y := range h {
			for x := range w {
				grid.Set(x, y, z, src.At(z, x, y))
			}
		}
	}
	return grid, nil
}
