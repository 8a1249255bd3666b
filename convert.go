package img2se

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode is the conversion mode chosen for a source.
type Mode int

const (
	// Mode2D converts a single frame, optionally lifted by a height map.
	Mode2D Mode = iota
	// Mode3D maps every frame to a z layer.
	Mode3D
)

func (m Mode) String() string {
	if m == Mode3D {
		return "3d"
	}
	return "2d"
}

// Request describes one conversion run.
type Request struct {
	Source Source
	// Mask is an optional height map image, only valid for single-frame sources.
	Mask   Source
	Preset BlockSize
	// Resampling is used to fit Mask to the source size.
	Resampling Resampling
	// Workers bounds row parallelism. Zero uses GOMAXPROCS.
	Workers int
	// Palette, when non-empty, snaps every opaque pixel to its nearest entry.
	Palette []colorful.Color
	// PaletteColors extracts a palette of that many colors from all sampled
	// layers when Palette is empty. Zero disables quantization.
	PaletteColors int
	PaletteMethod PaletteMethod
}

// Result is the outcome of Convert.
type Result struct {
	Mode          Mode
	Width, Height int
	Layers        int
	Records       []BlockRecord
	Advice        Advice
	// Preview is the first sampled layer after quantization.
	Preview Grid2D
	// Palette is the palette pixels were snapped to, if any.
	Palette []colorful.Color
}

// Convert runs the whole pipeline for req. Sources with more than one frame
// are converted in 3D mode; all others in 2D mode. A zero Preset means
// Detailing.
func Convert(req Request) (Result, error) {
	if req.Source == nil || req.Source.FrameCount() < 1 {
		return Result{}, ErrMissingInput
	}
	preset := req.Preset
	if preset.Scale <= 0 {
		preset = Detailing
	}

	if req.Source.FrameCount() > 1 {
		if req.Mask != nil {
			return Result{}, ErrModeConflict
		}
		grid, err := Sample3D(req.Source)
		if err != nil {
			return Result{}, err
		}
		palette := quantize(req, grid.Pix)
		records := Serialize3D(grid, preset, req.Workers)
		return Result{
			Mode:    Mode3D,
			Width:   grid.W,
			Height:  grid.H,
			Layers:  grid.D,
			Records: records,
			Advice:  CheckCapacity(len(records)),
			Preview: grid.Layer(0),
			Palette: palette,
		}, nil
	}

	grid, err := Sample2D(req.Source, 0, 0, req.Resampling)
	if err != nil {
		return Result{}, err
	}
	palette := quantize(req, grid.Pix)

	// An empty grid emits nothing, so the mask is not consulted.
	var hm *HeightMap
	if req.Mask != nil && len(grid.Pix) > 0 {
		m, err := ResolveHeightMap(req.Mask, grid.W, grid.H, req.Resampling)
		if err != nil {
			return Result{}, fmt.Errorf("height map: %w", err)
		}
		hm = &m
	}
	records, err := Serialize2D(grid, preset, hm, req.Workers)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Mode:    Mode2D,
		Width:   grid.W,
		Height:  grid.H,
		Layers:  1,
		Records: records,
		Advice:  CheckCapacity(len(records)),
		Preview: grid,
		Palette: palette,
	}, nil
}

// quantize snaps pix to req.Palette, or to a palette extracted from pix.
func quantize(req Request, pix []Pixel) []colorful.Color {
	palette := req.Palette
	if len(palette) == 0 && req.PaletteColors > 0 {
		palette = ExtractPalette(pix, req.PaletteColors, req.PaletteMethod)
	}
	Quantize(pix, palette)
	return palette
}
