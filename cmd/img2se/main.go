package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/setanarut/img2se"
	"github.com/setanarut/img2se/config"
	"github.com/setanarut/img2se/utils"
)

func main() {
	var (
		imagePath   = flag.String("image", "", "source image (png, jpg, gif, bmp, tif, webp)")
		maskPath    = flag.String("mask", "", "height map image (optional, single-frame sources only)")
		configPath  = flag.String("config", "", "YAML config file (optional)")
		block       = flag.String("block", "", "block size: detailing, small, large, heavy-small, heavy-large")
		outPath     = flag.String("out", "", "output blueprint path (default: SE2 import directory)")
		previewPath = flag.String("preview", "", "write the sampled first layer as PNG (optional)")
		colors      = flag.Int("colors", -1, "quantize to N palette colors (0 disables)")
	)
	flag.Parse()
	log.SetFlags(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *block != "" {
		cfg.Block = *block
	}
	if *colors >= 0 {
		cfg.Palette.Colors = *colors
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(cfg, *imagePath, *maskPath, *outPath, *previewPath); err != nil {
		log.Println(err)
		if errors.Is(err, img2se.ErrMissingInput) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg config.Config, imagePath, maskPath, outPath, previewPath string) error {
	preset, err := cfg.BlockSize()
	if err != nil {
		return err
	}
	src, err := utils.ReadImage(imagePath)
	if err != nil {
		return err
	}

	req := img2se.Request{
		Source:     src,
		Preset:     preset,
		Resampling: img2se.Resampling(cfg.Resampling),
		Workers:    cfg.Workers,
	}
	if src.FrameCount() > 1 {
		log.Println("Multi-Frame Image detected, using 3D image converter")
		if maskPath != "" {
			log.Println("Height Map is not supported using this configuration, ignoring it")
			maskPath = ""
		}
	}
	if maskPath != "" {
		mask, err := utils.ReadImage(maskPath)
		if err != nil {
			return fmt.Errorf("height map: %w", err)
		}
		req.Mask = mask
		log.Println("Converting image with height map...")
	} else {
		log.Println("Converting image...")
	}

	if cfg.Palette.Colors > 0 {
		method, err := img2se.ParsePaletteMethod(cfg.Palette.Method)
		if err != nil {
			return err
		}
		req.PaletteColors = cfg.Palette.Colors
		req.PaletteMethod = method
	}

	res, err := img2se.Convert(req)
	if err != nil {
		return err
	}
	if len(res.Palette) > 0 {
		log.Printf("Palette: %d colors (%s)", len(res.Palette), req.PaletteMethod)
		for _, c := range res.Palette {
			log.Printf("  %s", hexOf(c))
		}
	}
	log.Printf("%d Blocks generated", len(res.Records))
	if res.Advice == img2se.AdviceWarning {
		capacityWarning()
	}

	if outPath == "" {
		outPath, err = defaultOutputPath(cfg.OutputDir, imagePath)
		if err != nil {
			return err
		}
	}
	if err := img2se.WriteFile(outPath, res.Records, cfg.Precision); err != nil {
		return err
	}

	if previewPath != "" {
		if err := utils.SaveImage(res.Preview.Image(), previewPath); err != nil {
			log.Printf("preview: %v", err)
		}
	}

	sum := img2se.Summarize(res.Records)
	log.Printf("Mode %s, %dx%d, %d layer(s), %d level(s), mean HSV(%.2f, %.2f, %.2f)",
		res.Mode, res.Width, res.Height, res.Layers, sum.Levels,
		sum.MeanHue, sum.MeanSaturation, sum.MeanValue)
	log.Println("Blueprint generated successfully")
	log.Printf("Path: %s", outPath)
	return nil
}

// defaultOutputPath places the blueprint in the SE2 grid import directory,
// named after the source image.
func defaultOutputPath(dir, imagePath string) (string, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("%w: %w", img2se.ErrIO, err)
		}
		dir = filepath.Join(base, "SpaceEngineers2", "AppData", "SE1GridsToImport")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", img2se.ErrIO, err)
	}
	name := strings.TrimSuffix(filepath.Base(imagePath), filepath.Ext(imagePath))
	if name == "" || name == "." {
		name = "image"
	}
	return filepath.Join(dir, name+".txt"), nil
}

func capacityWarning() {
	log.Println()
	log.Println("-=-=-=-=-=-=-=-=-=-=-=- WARNING -=-=-=-=-=-=-=-=-=-=-=-")
	log.Println("This blueprint is too big to be used in SE2 with default PCU limit!")
	log.Println("-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-=-")
	log.Println()
}

func hexOf(c colorful.Color) string {
	return c.Clamped().Hex()
}
