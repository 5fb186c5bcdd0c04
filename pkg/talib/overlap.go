package talib

import gotalib "github.com/markcheno/go-talib"

// Overlap studies
func init() {
	register(Symbol{
		Name:     "bbands",
		Inputs:   1,
		Outputs:  []Kind{Real, Real, Real},
		MATypes:  []string{"matype"},
		Lookback: func(a Args) int { return maLookback(a.Int("timeperiod"), a.MA("matype")) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			upper, middle, lower := gotalib.BBands(in[0], a.Int("timeperiod"), a.Float("nbdevup"), a.Float("nbdevdn"), a.MA("matype"))
			return [][]float64{upper, middle, lower}
		},
	})
	register(Symbol{
		Name:     "dema",
		Inputs:   1,
		Lookback: func(a Args) int { return maLookback(a.Int("timeperiod"), gotalib.DEMA) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Dema(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "ema",
		Inputs:   1,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Ema(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "ht_trendline",
		Inputs:   1,
		Lookback: constant(63),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.HtTrendline(in[0]))
		},
	})
	register(Symbol{
		Name:     "kama",
		Inputs:   1,
		Lookback: periodLess(0),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Kama(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "ma",
		Inputs:   1,
		MATypes:  []string{"matype"},
		Lookback: func(a Args) int { return maLookback(a.Int("timeperiod"), a.MA("matype")) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Ma(in[0], a.Int("timeperiod"), a.MA("matype")))
		},
	})
	register(Symbol{
		Name:     "mama",
		Inputs:   1,
		Outputs:  []Kind{Real, Real},
		Lookback: constant(32),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return two(gotalib.Mama(in[0], a.Float("fastlimit"), a.Float("slowlimit")))
		},
	})
	register(Symbol{
		Name:     "mavp",
		Inputs:   2,
		MATypes:  []string{"matype"},
		Lookback: func(a Args) int { return maLookback(a.Int("maxperiod"), a.MA("matype")) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.MaVp(in[0], in[1], a.Int("minperiod"), a.Int("maxperiod"), a.MA("matype")))
		},
	})
	register(Symbol{
		Name:     "midpoint",
		Inputs:   1,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.MidPoint(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "midprice",
		Inputs:   2,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.MidPrice(in[0], in[1], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "sar",
		Inputs:   2,
		Lookback: constant(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Sar(in[0], in[1], a.Float("acceleration"), a.Float("maximum")))
		},
	})
	register(Symbol{
		Name:     "sarext",
		Inputs:   2,
		Lookback: constant(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.SarExt(in[0], in[1],
				a.Float("startvalue"), a.Float("offsetonreverse"),
				a.Float("accelerationinitlong"), a.Float("accelerationlong"), a.Float("accelerationmaxlong"),
				a.Float("accelerationinitshort"), a.Float("accelerationshort"), a.Float("accelerationmaxshort")))
		},
	})
	register(Symbol{
		Name:     "sma",
		Inputs:   1,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Sma(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "t3",
		Inputs:   1,
		Lookback: func(a Args) int { return 6 * (a.Int("timeperiod") - 1) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.T3(in[0], a.Int("timeperiod"), a.Float("vfactor")))
		},
	})
	register(Symbol{
		Name:     "tema",
		Inputs:   1,
		Lookback: func(a Args) int { return 3 * (a.Int("timeperiod") - 1) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Tema(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "trima",
		Inputs:   1,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Trima(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "wma",
		Inputs:   1,
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Wma(in[0], a.Int("timeperiod")))
		},
	})
}
