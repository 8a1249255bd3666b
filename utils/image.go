package utils

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/setanarut/img2se"
)

// DecodeFrames decodes every frame of an image stream. Animated GIFs yield
// one fully composited canvas per frame; other formats yield a single frame.
func DecodeFrames(r io.Reader) ([]image.Image, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", img2se.ErrDecode, err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", img2se.ErrDecode, err)
	}
	if format != "gif" {
		return []image.Image{img}, format, nil
	}
	anim, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, format, fmt.Errorf("%w: %w", img2se.ErrDecode, err)
	}
	return composeGIF(anim), format, nil
}

// ReadImage opens path and decodes all of its frames.
func ReadImage(path string) (*img2se.ImageSource, error) {
	if path == "" {
		return nil, img2se.ErrMissingInput
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", img2se.ErrMissingInput, err)
		}
		return nil, fmt.Errorf("%w: %w", img2se.ErrDecode, err)
	}
	defer file.Close()
	frames, _, err := DecodeFrames(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img2se.FromImages(frames...), nil
}

// composeGIF replays frame disposal so that every returned frame is the
// full canvas as it would be displayed.
func composeGIF(g *gif.GIF) []image.Image {
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() && len(g.Image) > 0 {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewNRGBA(bounds)
	frames := make([]image.Image, 0, len(g.Image))
	for i, frame := range g.Image {
		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var prev *image.NRGBA
		if disposal == gif.DisposalPrevious {
			prev = cloneNRGBA(canvas)
		}
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneNRGBA(canvas))
		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = prev
		}
	}
	return frames
}

func cloneNRGBA(src *image.NRGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// SaveImage writes img as PNG.
func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
