package talib

import gotalib "github.com/markcheno/go-talib"

func macdLookback(slow, signal int) int {
	return (slow - 1) + (signal - 1)
}

func stochFLookback(a Args) int {
	return (a.Int("fastk_period") - 1) + maLookback(a.Int("fastd_period"), a.MA("fastd_matype"))
}

// hlcPeriod registers a high/low/close indicator driven by timeperiod
func hlcPeriod(name string, lookback func(Args) int, fn func(h, l, c []float64, p int) []float64) {
	register(Symbol{
		Name:     name,
		Inputs:   3,
		Lookback: lookback,
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(fn(in[0], in[1], in[2], a.Int("timeperiod")))
		},
	})
}

// realPeriod registers a single-input indicator driven by timeperiod
func realPeriod(name string, lookback func(Args) int, fn func(in []float64, p int) []float64) {
	register(Symbol{
		Name:     name,
		Inputs:   1,
		Lookback: lookback,
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(fn(in[0], a.Int("timeperiod")))
		},
	})
}

// Momentum indicators
func init() {
	hlcPeriod("adx", func(a Args) int { return 2*a.Int("timeperiod") - 1 }, gotalib.Adx)
	hlcPeriod("adxr", func(a Args) int { return 3*a.Int("timeperiod") - 2 }, gotalib.AdxR)
	hlcPeriod("cci", periodLess(1), gotalib.Cci)
	hlcPeriod("dx", periodLess(0), gotalib.Dx)
	hlcPeriod("minus_di", periodLess(0), gotalib.MinusDI)
	hlcPeriod("plus_di", periodLess(0), gotalib.PlusDI)
	hlcPeriod("willr", periodLess(1), gotalib.WillR)

	realPeriod("cmo", periodLess(0), gotalib.Cmo)
	realPeriod("mom", periodLess(0), gotalib.Mom)
	realPeriod("roc", periodLess(0), gotalib.Roc)
	realPeriod("rocp", periodLess(0), gotalib.Rocp)
	realPeriod("rocr", periodLess(0), gotalib.Rocr)
	realPeriod("rocr100", periodLess(0), gotalib.Rocr100)
	realPeriod("rsi", periodLess(0), gotalib.Rsi)
	realPeriod("trix", func(a Args) int { return 3*(a.Int("timeperiod")-1) + 1 }, gotalib.Trix)

	for name, fn := range map[string]func(h, l []float64, p int) []float64{
		"minus_dm": gotalib.MinusDM,
		"plus_dm":  gotalib.PlusDM,
	} {
		register(Symbol{
			Name:     name,
			Inputs:   2,
			Lookback: periodLess(1),
			Kernel: func(a Args, in [][]float64) [][]float64 {
				return one(fn(in[0], in[1], a.Int("timeperiod")))
			},
		})
	}

	register(Symbol{
		Name:     "aroon",
		Inputs:   2,
		Outputs:  []Kind{Real, Real},
		Lookback: periodLess(0),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return two(gotalib.Aroon(in[0], in[1], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "aroonosc",
		Inputs:   2,
		Lookback: periodLess(0),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.AroonOsc(in[0], in[1], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "bop",
		Inputs:   4,
		Lookback: constant(0),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.Bop(in[0], in[1], in[2], in[3]))
		},
	})
	register(Symbol{
		Name:     "mfi",
		Inputs:   4,
		Lookback: periodLess(0),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.Mfi(in[0], in[1], in[2], in[3], a.Int("timeperiod")))
		},
	})

	for name, fn := range map[string]func([]float64, int, int, gotalib.MaType) []float64{
		"apo": gotalib.Apo,
		"ppo": gotalib.Ppo,
	} {
		register(Symbol{
			Name:    name,
			Inputs:  1,
			MATypes: []string{"matype"},
			Lookback: func(a Args) int {
				return maLookback(max(a.Int("fastperiod"), a.Int("slowperiod")), a.MA("matype"))
			},
			Kernel: func(a Args, in [][]float64) [][]float64 {
				return one(fn(in[0], a.Int("fastperiod"), a.Int("slowperiod"), a.MA("matype")))
			},
		})
	}

	register(Symbol{
		Name:    "macd",
		Inputs:  1,
		Outputs: []Kind{Real, Real, Real},
		Lookback: func(a Args) int {
			return macdLookback(max(a.Int("fastperiod"), a.Int("slowperiod")), a.Int("signalperiod"))
		},
		Kernel: func(a Args, in [][]float64) [][]float64 {
			macd, signal, hist := gotalib.Macd(in[0], a.Int("fastperiod"), a.Int("slowperiod"), a.Int("signalperiod"))
			return [][]float64{macd, signal, hist}
		},
	})
	register(Symbol{
		Name:    "macdext",
		Inputs:  1,
		Outputs: []Kind{Real, Real, Real},
		MATypes: []string{"fastmatype", "slowmatype", "signalmatype"},
		Lookback: func(a Args) int {
			largest := max(
				maLookback(a.Int("fastperiod"), a.MA("fastmatype")),
				maLookback(a.Int("slowperiod"), a.MA("slowmatype")),
			)
			return largest + maLookback(a.Int("signalperiod"), a.MA("signalmatype"))
		},
		Kernel: func(a Args, in [][]float64) [][]float64 {
			macd, signal, hist := gotalib.MacdExt(in[0],
				a.Int("fastperiod"), a.MA("fastmatype"),
				a.Int("slowperiod"), a.MA("slowmatype"),
				a.Int("signalperiod"), a.MA("signalmatype"))
			return [][]float64{macd, signal, hist}
		},
	})
	register(Symbol{
		Name:     "macdfix",
		Inputs:   1,
		Outputs:  []Kind{Real, Real, Real},
		Lookback: func(a Args) int { return macdLookback(26, a.Int("signalperiod")) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			macd, signal, hist := gotalib.MacdFix(in[0], a.Int("signalperiod"))
			return [][]float64{macd, signal, hist}
		},
	})

	register(Symbol{
		Name:    "stoch",
		Inputs:  3,
		Outputs: []Kind{Real, Real},
		MATypes: []string{"slowk_matype", "slowd_matype"},
		Lookback: func(a Args) int {
			return (a.Int("fastk_period") - 1) +
				maLookback(a.Int("slowk_period"), a.MA("slowk_matype")) +
				maLookback(a.Int("slowd_period"), a.MA("slowd_matype"))
		},
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return two(gotalib.Stoch(in[0], in[1], in[2],
				a.Int("fastk_period"),
				a.Int("slowk_period"), a.MA("slowk_matype"),
				a.Int("slowd_period"), a.MA("slowd_matype")))
		},
	})
	register(Symbol{
		Name:     "stochf",
		Inputs:   3,
		Outputs:  []Kind{Real, Real},
		MATypes:  []string{"fastd_matype"},
		Lookback: stochFLookback,
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return two(gotalib.StochF(in[0], in[1], in[2],
				a.Int("fastk_period"), a.Int("fastd_period"), a.MA("fastd_matype")))
		},
	})
	register(Symbol{
		Name:     "stochrsi",
		Inputs:   1,
		Outputs:  []Kind{Real, Real},
		MATypes:  []string{"fastd_matype"},
		Lookback: func(a Args) int { return a.Int("timeperiod") + stochFLookback(a) },
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return two(gotalib.StochRsi(in[0], a.Int("timeperiod"),
				a.Int("fastk_period"), a.Int("fastd_period"), a.MA("fastd_matype")))
		},
	})

	register(Symbol{
		Name:   "ultosc",
		Inputs: 3,
		Lookback: func(a Args) int {
			return max(a.Int("timeperiod1"), a.Int("timeperiod2"), a.Int("timeperiod3"))
		},
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return one(gotalib.UltOsc(in[0], in[1], in[2],
				a.Int("timeperiod1"), a.Int("timeperiod2"), a.Int("timeperiod3")))
		},
	})
}
