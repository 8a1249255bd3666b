package img2se

import (
	"cmp"
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// PaletteMethod selects how palette candidates are found.
type PaletteMethod int

const (
	PaletteDominant PaletteMethod = iota
	PaletteKMeans
)

func (m PaletteMethod) String() string {
	if m == PaletteKMeans {
		return "kmeans"
	}
	return "dominantcolor"
}

// ParsePaletteMethod accepts the names produced by PaletteMethod.String.
func ParsePaletteMethod(s string) (PaletteMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dominantcolor", "dominant":
		return PaletteDominant, nil
	case "kmeans":
		return PaletteKMeans, nil
	}
	return 0, fmt.Errorf("unknown palette method %q", s)
}

const (
	// maxPaletteSamples bounds the pixels handed to either backend.
	maxPaletteSamples = 12000
	// paletteMergeDistance is the Lab distance below which two candidates
	// count as the same color.
	paletteMergeDistance = 0.08
)

type paletteCandidate struct {
	col    colorful.Color
	weight float64
}

// ExtractPalette returns up to k colors representing the opaque pixels.
// Pixels from every layer of a grid take part equally. When there are no
// more than k distinct opaque colors they are returned as is, most
// frequent first.
func ExtractPalette(pixels []Pixel, k int, method PaletteMethod) []colorful.Color {
	if k <= 0 {
		return nil
	}
	distinct := opaqueHistogram(pixels)
	if len(distinct) == 0 {
		return nil
	}
	if len(distinct) <= k {
		out := make([]colorful.Color, len(distinct))
		for i, c := range distinct {
			out[i] = c.col
		}
		return out
	}

	samples := opaqueSamples(pixels, maxPaletteSamples)
	var cands []paletteCandidate
	if method == PaletteKMeans {
		cands = kmeansCandidates(samples, k)
	}
	if len(cands) == 0 {
		cands = dominantCandidates(samples, k)
	}
	if len(cands) == 0 {
		cands = distinct
	}
	return mergeCandidates(cands, k)
}

// opaqueHistogram counts distinct opaque colors, heaviest first. Ties are
// broken by RGB so the order is stable.
func opaqueHistogram(pixels []Pixel) []paletteCandidate {
	counts := make(map[[3]uint8]int)
	for _, p := range pixels {
		if !p.Transparent() {
			counts[[3]uint8{p.R, p.G, p.B}]++
		}
	}
	keys := make([][3]uint8, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b [3]uint8) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return slices.Compare(a[:], b[:])
	})
	out := make([]paletteCandidate, len(keys))
	for i, key := range keys {
		p := Pixel{R: key[0], G: key[1], B: key[2], A: 255}
		out[i] = paletteCandidate{col: p.Color(), weight: float64(counts[key])}
	}
	return out
}

// opaqueSamples returns at most limit opaque pixels taken at a fixed stride.
func opaqueSamples(pixels []Pixel, limit int) []Pixel {
	n := 0
	for _, p := range pixels {
		if !p.Transparent() {
			n++
		}
	}
	step := max(1, (n+limit-1)/limit)
	out := make([]Pixel, 0, min(n, limit))
	i := 0
	for _, p := range pixels {
		if p.Transparent() {
			continue
		}
		if i%step == 0 {
			out = append(out, p)
		}
		i++
	}
	return out
}

// dominantCandidates packs samples into a square opaque image so that
// transparent cells never reach dominantcolor.
func dominantCandidates(samples []Pixel, k int) []paletteCandidate {
	n := len(samples)
	if n == 0 {
		return nil
	}
	w := int(math.Ceil(math.Sqrt(float64(n))))
	h := (n + w - 1) / w
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range w * h {
		p := samples[i%n]
		img.SetNRGBA(i%w, i/w, color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255})
	}
	found := dominantcolor.FindWeight(img, max(24, k*8))
	out := make([]paletteCandidate, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, paletteCandidate{col: col.Clamped(), weight: c.Weight})
	}
	return out
}

// kmeansCandidates clusters samples in RGB with a few more clusters than
// requested and weighs each center by its population.
func kmeansCandidates(samples []Pixel, k int) []paletteCandidate {
	obs := make(clusters.Observations, len(samples))
	for i, p := range samples {
		c := p.Color()
		obs[i] = clusters.Coordinates{c.R, c.G, c.B}
	}
	if len(obs) == 0 {
		return nil
	}
	cc, err := kmeans.New().Partition(obs, min(k*2, len(obs)))
	if err != nil {
		return nil
	}
	out := make([]paletteCandidate, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		out = append(out, paletteCandidate{col: col, weight: float64(len(c.Observations))})
	}
	return out
}

// mergeCandidates folds every candidate into the heaviest kept color within
// paletteMergeDistance and keeps the k heaviest results.
func mergeCandidates(cands []paletteCandidate, k int) []colorful.Color {
	sorted := slices.Clone(cands)
	slices.SortStableFunc(sorted, func(a, b paletteCandidate) int {
		return cmp.Compare(b.weight, a.weight)
	})
	var kept []paletteCandidate
	for _, c := range sorted {
		merged := false
		for i := range kept {
			if c.col.DistanceLab(kept[i].col) < paletteMergeDistance {
				kept[i].weight += c.weight
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, c)
		}
	}
	slices.SortStableFunc(kept, func(a, b paletteCandidate) int {
		return cmp.Compare(b.weight, a.weight)
	})
	out := make([]colorful.Color, 0, min(k, len(kept)))
	for _, c := range kept[:min(k, len(kept))] {
		out = append(out, c.col)
	}
	return out
}
