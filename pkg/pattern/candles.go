package pattern

import "math"

// candles is the OHLC view shared by every recognizer
type candles struct {
	o, h, l, c []float64
	s          Settings
}

func (k *candles) realBody(i int) float64    { return math.Abs(k.c[i] - k.o[i]) }
func (k *candles) upperShadow(i int) float64 { return k.h[i] - k.bodyTop(i) }
func (k *candles) lowerShadow(i int) float64 { return k.bodyBottom(i) - k.l[i] }
func (k *candles) highLow(i int) float64     { return k.h[i] - k.l[i] }
func (k *candles) bodyTop(i int) float64     { return math.Max(k.o[i], k.c[i]) }
func (k *candles) bodyBottom(i int) float64  { return math.Min(k.o[i], k.c[i]) }

// color is 1 for white (close >= open) and -1 for black
func (k *candles) color(i int) int {
	if k.c[i] >= k.o[i] {
		return 1
	}
	return -1
}

func (k *candles) white(i int) bool { return k.color(i) == 1 }
func (k *candles) black(i int) bool { return k.color(i) == -1 }

// bodyGapUp reports whether the body of i is entirely above the body of j
func (k *candles) bodyGapUp(i, j int) bool { return k.bodyBottom(i) > k.bodyTop(j) }

// bodyGapDown reports whether the body of i is entirely below the body of j
func (k *candles) bodyGapDown(i, j int) bool { return k.bodyTop(i) < k.bodyBottom(j) }

// gapUp reports whether the low of i is above the high of j
func (k *candles) gapUp(i, j int) bool { return k.l[i] > k.h[j] }

// gapDown reports whether the high of i is below the low of j
func (k *candles) gapDown(i, j int) bool { return k.h[i] < k.l[j] }

func (k *candles) span(r RangeType, i int) float64 {
	switch r {
	case RealBody:
		return k.realBody(i)
	case HighLow:
		return k.highLow(i)
	default:
		return k.upperShadow(i) + k.lowerShadow(i)
	}
}

// avg is the threshold of kind for the candle at i
func (k *candles) avg(kind Kind, i int) float64 {
	st := k.s[kind]

	var v float64
	if st.AvgPeriod > 0 {
		for j := i - st.AvgPeriod; j < i; j++ {
			v += k.span(st.Range, j)
		}
		v /= float64(st.AvgPeriod)
	} else {
		v = k.span(st.Range, i)
	}

	if st.Range == Shadows {
		v /= 2
	}
	return st.Factor * v
}

// within reports whether v lies in [ref-tol, ref+tol]
func within(v, ref, tol float64) bool {
	return v >= ref-tol && v <= ref+tol
}
