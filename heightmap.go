package img2se

// HeightThreshold is the Value above which a mask cell raises its block.
const HeightThreshold = 0.5

// HeightMap holds one elevation bit per cell of a 2D grid.
type HeightMap struct {
	W, H int
	Bits []uint8 // 0 or 1, row-major
}

// At returns the elevation bit at (x, y).
func (m HeightMap) At(x, y int) uint8 {
	return m.Bits[y*m.W+x]
}

// ResolveHeightMap resamples mask to width x height and marks every cell
// whose HSV Value is strictly above HeightThreshold.
func ResolveHeightMap(mask Source, width, height int, r Resampling) (HeightMap, error) {
	grid, err := Sample2D(mask, width, height, r)
	if err != nil {
		return HeightMap{}, err
	}
	return heightMapFromGrid(grid), nil
}

func heightMapFromGrid(grid Grid2D) HeightMap {
	m := HeightMap{W: grid.W, H: grid.H, Bits: make([]uint8, len(grid.Pix))}
	for i, p := range grid.Pix {
		if p.ToHSV().Value > HeightThreshold {
			m.Bits[i] = 1
		}
	}
	return m
}
