// Package metric summarizes indicator outputs
package metric

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/raykavin/tafx/pkg/core"
)

// ErrInvalidBins is returned by Histogram for a bucket count below one.
var ErrInvalidBins = errors.New("histogram needs at least one bucket")

// Quantiles reported by Describe
var Quantiles = []float64{0.05, 0.25, 0.5, 0.75, 0.95}

// Summary describes the defined values of a series
type Summary struct {
	Count     int
	NaN       int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
	Quantiles map[float64]float64
}

// Describe summarizes values. NaN values are counted and left out of
// every statistic.
func Describe(values []float64) Summary {
	defined := lo.Filter(values, func(v float64, _ int) bool { return !math.IsNaN(v) })
	s := Summary{
		Count:     len(defined),
		NaN:       core.CountNaN(values),
		Quantiles: make(map[float64]float64, len(Quantiles)),
	}
	if len(defined) == 0 {
		s.Mean, s.StdDev, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		for _, q := range Quantiles {
			s.Quantiles[q] = math.NaN()
		}
		return s
	}

	sorted := append([]float64(nil), defined...)
	sort.Float64s(sorted)

	s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		s.StdDev = 0
	}
	s.Min, s.Max = sorted[0], sorted[len(sorted)-1]
	for _, q := range Quantiles {
		s.Quantiles[q] = stat.Quantile(q, stat.Empirical, sorted, nil)
	}
	return s
}

// String formats the summary as a two column table
func (s Summary) String() string {
	out := &strings.Builder{}
	table := tablewriter.NewWriter(out)

	data := [][]string{
		{"Count", strconv.Itoa(s.Count)},
		{"NaN", strconv.Itoa(s.NaN)},
		{"Mean", fmt.Sprintf("%.4f", s.Mean)},
		{"StdDev", fmt.Sprintf("%.4f", s.StdDev)},
		{"Min", fmt.Sprintf("%.4f", s.Min)},
	}
	for _, q := range Quantiles {
		data = append(data, []string{fmt.Sprintf("P%d", int(math.Round(q*100))), fmt.Sprintf("%.4f", s.Quantiles[q])})
	}
	data = append(data, []string{"Max", fmt.Sprintf("%.4f", s.Max)})

	table.AppendBulk(data)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	table.Render()

	return out.String()
}

// Finite returns the values that are neither NaN nor infinite
func Finite(values []float64) []float64 {
	return lo.Filter(values, func(v float64, _ int) bool {
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	})
}

// Histogram draws the distribution of the finite values in bins buckets
func Histogram(w io.Writer, values []float64, bins int) error {
	if bins <= 0 {
		return fmt.Errorf("%d buckets: %w", bins, ErrInvalidBins)
	}
	defined := Finite(values)
	if len(defined) == 0 {
		_, err := fmt.Fprintln(w, "no values")
		return err
	}
	hist := histogram.Hist(bins, defined)
	return histogram.Fprint(w, hist, histogram.Linear(10))
}
