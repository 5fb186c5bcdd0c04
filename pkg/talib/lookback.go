package talib

import gotalib "github.com/markcheno/go-talib"

// maLookback mirrors TA_MA_Lookback
func maLookback(period int, t gotalib.MaType) int {
	if period <= 1 {
		return 0
	}
	switch t {
	case gotalib.DEMA:
		return 2 * (period - 1)
	case gotalib.TEMA:
		return 3 * (period - 1)
	case gotalib.KAMA:
		return period
	case gotalib.MAMA:
		return 32
	case gotalib.T3MA:
		return 6 * (period - 1)
	default:
		return period - 1
	}
}

// constant returns a lookback that does not depend on parameters
func constant(n int) func(Args) int {
	return func(Args) int { return n }
}

// periodLess returns timeperiod minus offset
func periodLess(offset int) func(Args) int {
	return func(a Args) int { return a.Int("timeperiod") - offset }
}
