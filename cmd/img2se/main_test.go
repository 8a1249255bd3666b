package main

import (
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setanarut/img2se"
	"github.com/setanarut/img2se/config"
	"github.com/setanarut/img2se/utils"
)

func TestDefaultOutputPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "import")
	p, err := defaultOutputPath(dir, "/pics/ship.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ship.txt"), p)
	assert.DirExists(t, dir)
}

func TestRunWritesBlueprint(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	src := filepath.Join(dir, "src.png")
	require.NoError(t, utils.SaveImage(img, src))

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Block = "small"
	out := filepath.Join(dir, "out.txt")
	preview := filepath.Join(dir, "preview.png")
	require.NoError(t, run(cfg, src, "", out, preview))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, img2se.Small.TypeID.String()+"|0|0|0|0.00|0.00|1.00|0|4|1|", strings.TrimSpace(string(b)))
	assert.FileExists(t, preview)
}

func TestRunMissingImage(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	err = run(cfg, "", "", filepath.Join(t.TempDir(), "out.txt"), "")
	assert.ErrorIs(t, err, img2se.ErrMissingInput)
}

func writeTwoToneGIF(t *testing.T, path string) {
	t.Helper()
	pal := color.Palette{color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 0, 255, 255}}
	red := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	blue := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	for i := range blue.Pix {
		blue.Pix[i] = 1
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, gif.EncodeAll(f, &gif.GIF{Image: []*image.Paletted{red, blue}, Delay: []int{0, 0}}))
}

func TestRunMultiFramePalette(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "anim.gif")
	writeTwoToneGIF(t, src)

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Palette.Colors = 2
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, run(cfg, src, "", out, ""))

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	hues := map[string]int{}
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		f := strings.Split(line, "|")
		hues["z="+f[3]+" hue="+f[4]]++
	}
	assert.Equal(t, map[string]int{"z=0 hue=0.00": 16, "z=1 hue=0.67": 16}, hues)
}

func TestRunMultiFrameIgnoresMask(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "anim.gif")
	writeTwoToneGIF(t, src)

	cfg, err := config.Load("")
	require.NoError(t, err)
	out := filepath.Join(dir, "out.txt")
	// The mask path does not exist; it must not be opened.
	require.NoError(t, run(cfg, src, filepath.Join(dir, "missing-mask.png"), out, ""))
	assert.FileExists(t, out)
}
