package img2se

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Serialize2D emits one record per opaque cell of grid, ordered by row then
// column. When hm is non-nil, cells whose bit is set are lifted by one
// block step on the z axis.
func Serialize2D(grid Grid2D, preset BlockSize, hm *HeightMap, workers int) ([]BlockRecord, error) {
	if hm != nil && (hm.W != grid.W || hm.H != grid.H) {
		return nil, fmt.Errorf("%w: height map %dx%d, image %dx%d",
			ErrDimensionMismatch, hm.W, hm.H, grid.W, grid.H)
	}
	s := preset.Scale
	rows := make([][]BlockRecord, grid.H)
	forEachRow(grid.H, workers, func(y int) {
		var out []BlockRecord
		for x := range grid.W {
			p := grid.At(x, y)
			if p.Transparent() {
				continue
			}
			z := 0
			if hm != nil && hm.At(x, y) == 1 {
				z = s
			}
			out = append(out, BlockRecord{TypeID: preset.TypeID, X: x * s, Y: y * s, Z: z, Color: p.ToHSV()})
		}
		rows[y] = out
	})
	return flatten(rows), nil
}

// Serialize3D emits one record per opaque voxel of grid, ordered by layer,
// then row, then column.
func Serialize3D(grid Grid3D, preset BlockSize, workers int) []BlockRecord {
	s := preset.Scale
	rows := make([][]BlockRecord, grid.D*grid.H)
	forEachRow(len(rows), workers, func(i int) {
		z, y := i/grid.H, i%grid.H
		var out []BlockRecord
		for x := range grid.W {
			p := grid.At(x, y, z)
			if p.Transparent() {
				continue
			}
			out = append(out, BlockRecord{TypeID: preset.TypeID, X: x * s, Y: y * s, Z: z * s, Color: p.ToHSV()})
		}
		rows[i] = out
	})
	return flatten(rows)
}

// forEachRow calls fn for every index in [0,n). Rows are independent, so
// they are spread over up to workers goroutines; workers <= 0 uses
// GOMAXPROCS.
func forEachRow(n, workers int, fn func(i int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || n < 2 {
		for i := range n {
			fn(i)
		}
		return
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

func flatten(rows [][]BlockRecord) []BlockRecord {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	out := make([]BlockRecord, 0, n)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
