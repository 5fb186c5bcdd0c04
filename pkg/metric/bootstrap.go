package metric

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Interval is a bootstrap confidence interval
type Interval struct {
	Lower  float64
	Upper  float64
	StdDev float64 // of the resampled measures
	Mean   float64 // of the resampled measures
}

// Mean is the arithmetic mean, usable as a bootstrap measure
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Bootstrap resamples values with replacement samples times, applies
// measure to each resample and returns the confidence interval of the
// measure. rnd makes runs reproducible.
func Bootstrap(values []float64, measure func([]float64) float64, samples int, confidence float64, rnd *rand.Rand) Interval {
	if len(values) == 0 || samples <= 0 {
		return Interval{}
	}

	data := make([]float64, samples)
	resample := make([]float64, len(values))
	for i := range data {
		for j := range resample {
			resample[j] = values[rnd.Intn(len(values))]
		}
		data[i] = measure(resample)
	}
	sort.Float64s(data)

	tail := 1 - confidence
	mean, stdDev := stat.MeanStdDev(data, nil)
	return Interval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, data, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, data, nil),
		StdDev: stdDev,
		Mean:   mean,
	}
}
