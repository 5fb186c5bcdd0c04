package talib

import gotalib "github.com/markcheno/go-talib"

// Math transforms and operators
func init() {
	for name, fn := range map[string]func([]float64) []float64{
		"acos":  gotalib.Acos,
		"asin":  gotalib.Asin,
		"atan":  gotalib.Atan,
		"ceil":  gotalib.Ceil,
		"cos":   gotalib.Cos,
		"cosh":  gotalib.Cosh,
		"exp":   gotalib.Exp,
		"floor": gotalib.Floor,
		"ln":    gotalib.Ln,
		"log10": gotalib.Log10,
		"sin":   gotalib.Sin,
		"sinh":  gotalib.Sinh,
		"sqrt":  gotalib.Sqrt,
		"tan":   gotalib.Tan,
		"tanh":  gotalib.Tanh,
	} {
		register(Symbol{
			Name:     name,
			Inputs:   1,
			Lookback: constant(0),
			Kernel: func(_ Args, in [][]float64) [][]float64 {
				return one(fn(in[0]))
			},
		})
	}

	for name, fn := range map[string]func(a, b []float64) []float64{
		"add":  gotalib.Add,
		"div":  gotalib.Div,
		"mult": gotalib.Mult,
		"sub":  gotalib.Sub,
	} {
		register(Symbol{
			Name:     name,
			Inputs:   2,
			Lookback: constant(0),
			Kernel: func(_ Args, in [][]float64) [][]float64 {
				return one(fn(in[0], in[1]))
			},
		})
	}

	realPeriod("max", periodLess(1), gotalib.Max)
	realPeriod("min", periodLess(1), gotalib.Min)
	realPeriod("sum", periodLess(1), gotalib.Sum)

	for name, fn := range map[string]func([]float64, int) []float64{
		"maxindex": gotalib.MaxIndex,
		"minindex": gotalib.MinIndex,
	} {
		register(Symbol{
			Name:     name,
			Inputs:   1,
			Outputs:  []Kind{Integer},
			Lookback: periodLess(1),
			Kernel: func(a Args, in [][]float64) [][]float64 {
				return one(fn(in[0], a.Int("timeperiod")))
			},
		})
	}

	register(Symbol{
		Name:     "minmax",
		Inputs:   1,
		Outputs:  []Kind{Real, Real},
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return two(gotalib.MinMax(in[0], a.Int("timeperiod")))
		},
	})
	register(Symbol{
		Name:     "minmaxindex",
		Inputs:   1,
		Outputs:  []Kind{Integer, Integer},
		Lookback: periodLess(1),
		Kernel: func(a Args, in [][]float64) [][]float64 {
			return two(gotalib.MinMaxIndex(in[0], a.Int("timeperiod")))
		},
	})
}
