package talib

import gotalib "github.com/markcheno/go-talib"

// Hilbert transform cycle indicators
func init() {
	register(Symbol{
		Name:     "ht_dcperiod",
		Inputs:   1,
		Lookback: constant(32),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.HtDcPeriod(in[0]))
		},
	})
	register(Symbol{
		Name:     "ht_dcphase",
		Inputs:   1,
		Lookback: constant(63),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.HtDcPhase(in[0]))
		},
	})
	register(Symbol{
		Name:     "ht_phasor",
		Inputs:   1,
		Outputs:  []Kind{Real, Real},
		Lookback: constant(32),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return two(gotalib.HtPhasor(in[0]))
		},
	})
	register(Symbol{
		Name:     "ht_sine",
		Inputs:   1,
		Outputs:  []Kind{Real, Real},
		Lookback: constant(63),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return two(gotalib.HtSine(in[0]))
		},
	})
	register(Symbol{
		Name:     "ht_trendmode",
		Inputs:   1,
		Outputs:  []Kind{Integer},
		Lookback: constant(63),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.HtTrendMode(in[0]))
		},
	})
}
