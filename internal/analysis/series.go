package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// SeriesStats summarizes a scalar per-tick series.
type SeriesStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func Stats(values []float64) SeriesStats {
	if len(values) == 0 {
		return SeriesStats{}
	}
	s := SeriesStats{
		Mean: stat.Mean(values, nil),
		Min:  values[0],
		Max:  values[0],
	}
	if len(values) > 1 {
		s.StdDev = stat.StdDev(values, nil)
	}
	for _, v := range values {
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	return s
}

// RelativeDrift returns |last − first| / |first| for a series, the
// energy-conservation figure of merit. Zero for short series or a zero
// initial value.
func RelativeDrift(values []float64) float64 {
	if len(values) < 2 || values[0] == 0 {
		return 0
	}
	return math.Abs(values[len(values)-1]-values[0]) / math.Abs(values[0])
}
