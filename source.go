package img2se

import (
	"image"
	"image/color"
)

// Source is a decoded raster with one or more equally sized frames.
type Source interface {
	Width() int
	Height() int
	FrameCount() int
	// At returns the pixel at (x, y) of the given frame, relative to the
	// top-left corner of the frame.
	At(frame, x, y int) Pixel
}

// ImageSource adapts decoded image.Image frames to Source. Every frame is
// read through the bounds of the first one.
type ImageSource struct {
	Frames []image.Image
}

// FromImages wraps frames as a Source.
func FromImages(frames ...image.Image) *ImageSource {
	return &ImageSource{Frames: frames}
}

func (s *ImageSource) bounds() image.Rectangle {
	if s == nil || len(s.Frames) == 0 {
		return image.Rectangle{}
	}
	return s.Frames[0].Bounds()
}

func (s *ImageSource) Width() int  { return s.bounds().Dx() }
func (s *ImageSource) Height() int { return s.bounds().Dy() }

func (s *ImageSource) FrameCount() int {
	if s == nil {
		return 0
	}
	return len(s.Frames)
}

func (s *ImageSource) At(frame, x, y int) Pixel {
	b := s.bounds()
	return pixelOf(s.Frames[frame].At(b.Min.X+x, b.Min.Y+y))
}

func pixelOf(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

// frameImage returns frame z of src as an image.Image.
func frameImage(src Source, z int) image.Image {
	if s, ok := src.(*ImageSource); ok {
		return s.Frames[z]
	}
	w, h := src.Width(), src.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			p := src.At(z, x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return img
}
