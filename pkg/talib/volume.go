package talib

import gotalib "github.com/markcheno/go-talib"

// Volume and volatility indicators
func init() {
	register(Symbol{
		Name:     "ad",
		Inputs:   4,
		Lookback: constant(0),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.Ad(in[0], in[1], in[2], in[3]))
		},
	})
	register(Symbol{
		Name:   "adosc",
		Inputs: 4,
		Lookback: func(a Args) int {
			return max(a.Int("fastperiod"), a.Int("slowperiod")) - 1
		},
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.AdOsc(in[0], in[1], in[2], in[3], a.Int("fastperiod"), a.Int("slowperiod")))
		},
	})
	register(Symbol{
		Name:     "obv",
		Inputs:   2,
		Lookback: constant(0),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.Obv(in[0], in[1]))
		},
	})

	hlcPeriod("atr", periodLess(0), gotalib.Atr)
	hlcPeriod("natr", periodLess(0), gotalib.Natr)
	register(Symbol{
		Name:     "trange",
		Inputs:   3,
		Lookback: constant(1),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.TRange(in[0], in[1], in[2]))
		},
	})
}
