package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Series is an ordered column of values
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Clone returns a copy that does not share memory with s
func (s Series[T]) Clone() Series[T] {
	out := make(Series[T], len(s))
	copy(out, s)
	return out
}

// Filled returns a series of n copies of v
func Filled[T constraints.Ordered](n int, v T) Series[T] {
	out := make(Series[T], n)
	for i := range out {
		out[i] = v
	}
	return out
}

// NaNs returns a float series of n NaN values
func NaNs(n int) Series[float64] {
	return Filled(n, math.NaN())
}

// FirstValid returns the index of the first non-NaN value, or len(values)
// when every value is NaN.
func FirstValid(values []float64) int {
	for i, v := range values {
		if !math.IsNaN(v) {
			return i
		}
	}
	return len(values)
}

// CountNaN returns how many values are NaN
func CountNaN(values []float64) int {
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			n++
		}
	}
	return n
}
