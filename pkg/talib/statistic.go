package talib

import gotalib "github.com/markcheno/go-talib"

// Statistic functions
func init() {
	register(Symbol{
		Name:     "beta",
		Inputs:   2,
		Lookback: periodLess(0),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Beta(in[0], in[1], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "correl",
		Inputs:   2,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Correl(in[0], in[1], a.Int("timeperiod")))
		},
	})

	realPeriod("linearreg", periodLess(1), gotalib.LinearReg)
	realPeriod("linearreg_angle", periodLess(1), gotalib.LinearRegAngle)
	realPeriod("linearreg_intercept", periodLess(1), gotalib.LinearRegIntercept)
	realPeriod("linearreg_slope", periodLess(1), gotalib.LinearRegSlope)
	realPeriod("tsf", periodLess(1), gotalib.Tsf)

	register(Symbol{
		Name:     "stddev",
		Inputs:   1,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.StdDev(in[0], a.Int("timeperiod"), a.Float("nbdev")))
		},
	})

	// nbdev is accepted for compatibility; TA-Lib ignores it for VAR
	register(Symbol{
		Name:     "var",
		Inputs:   1,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Var(in[0], a.Int("timeperiod")))
		},
	})
}
