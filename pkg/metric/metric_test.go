package metric

import (
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	values := []float64{math.NaN(), math.NaN()}
	for i := 1; i <= 100; i++ {
		values = append(values, float64(i))
	}

	s := Describe(values)
	assert.Equal(t, 100, s.Count)
	assert.Equal(t, 2, s.NaN)
	assert.InDelta(t, 50.5, s.Mean, 1e-9)
	assert.InDelta(t, 29.0115, s.StdDev, 1e-4)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.Equal(t, 50.0, s.Quantiles[0.5])
	assert.Equal(t, 5.0, s.Quantiles[0.05])
	assert.Equal(t, 95.0, s.Quantiles[0.95])

	out := s.String()
	assert.Contains(t, out, "P50")
	assert.Contains(t, out, "50.5000")
}

func TestDescribe_Empty(t *testing.T) {
	s := Describe([]float64{math.NaN()})
	assert.Equal(t, 0, s.Count)
	assert.Equal(t, 1, s.NaN)
	assert.True(t, math.IsNaN(s.Mean))
	assert.True(t, math.IsNaN(s.Quantiles[0.25]))

	s = Describe([]float64{3})
	assert.Equal(t, 0.0, s.StdDev)
	assert.Equal(t, 3.0, s.Quantiles[0.95])
}

func TestHistogram(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Histogram(&buf, []float64{1, 2, 2, 3, 3, 3, math.NaN()}, 3))
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	require.NoError(t, Histogram(&buf, nil, 3))
	assert.Equal(t, "no values\n", buf.String())

	buf.Reset()
	require.NoError(t, Histogram(&buf, []float64{1, math.Inf(1), 2, math.Inf(-1), 3}, 2))
	assert.NotEmpty(t, buf.String())

	buf.Reset()
	require.NoError(t, Histogram(&buf, []float64{math.Inf(1), math.NaN()}, 2))
	assert.Equal(t, "no values\n", buf.String())

	assert.ErrorIs(t, Histogram(&buf, []float64{1, 2}, 0), ErrInvalidBins)
	assert.ErrorIs(t, Histogram(&buf, []float64{1, 2}, -1), ErrInvalidBins)
}

func TestFinite(t *testing.T) {
	got := Finite([]float64{1, math.NaN(), math.Inf(1), -2, math.Inf(-1)})
	assert.Equal(t, []float64{1, -2}, got)
}

func TestBootstrap(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	interval := Bootstrap(values, Mean, 2000, 0.95, rand.New(rand.NewSource(1)))

	assert.InDelta(t, 5.5, interval.Mean, 0.2)
	assert.Less(t, interval.Lower, 5.5)
	assert.Greater(t, interval.Upper, 5.5)
	assert.Greater(t, interval.StdDev, 0.0)

	assert.Equal(t, Interval{}, Bootstrap(nil, Mean, 10, 0.95, rand.New(rand.NewSource(1))))
}
