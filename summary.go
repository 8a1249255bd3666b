package img2se

import (
	"gonum.org/v1/gonum/stat"
)

// Summary describes the records of a conversion run.
type Summary struct {
	Blocks int
	// Levels is the number of distinct z values.
	Levels int

	MeanHue, MeanSaturation, MeanValue float64
	StdValue                           float64
}

// Summarize computes block statistics for records.
func Summarize(records []BlockRecord) Summary {
	s := Summary{Blocks: len(records)}
	if len(records) == 0 {
		return s
	}
	hue := make([]float64, len(records))
	sat := make([]float64, len(records))
	val := make([]float64, len(records))
	levels := make(map[int]struct{})
	for i, r := range records {
		hue[i] = r.Color.Hue
		sat[i] = r.Color.Saturation
		val[i] = r.Color.Value
		levels[r.Z] = struct{}{}
	}
	s.Levels = len(levels)
	s.MeanHue = stat.Mean(hue, nil)
	s.MeanSaturation = stat.Mean(sat, nil)
	s.MeanValue, s.StdValue = stat.PopMeanStdDev(val, nil)
	return s
}
