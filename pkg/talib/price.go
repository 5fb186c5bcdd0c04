package talib

import gotalib "github.com/markcheno/go-talib"

// Price transforms
func init() {
	register(Symbol{
		Name:     "avgprice",
		Inputs:   4,
		Lookback: constant(0),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.AvgPrice(in[0], in[1], in[2], in[3]))
		},
	})
	register(Symbol{
		Name:     "medprice",
		Inputs:   2,
		Lookback: constant(0),
		Kernel: func(_ Args, in [][]float64) [][]float64 {
			return one(gotalib.MedPrice(in[0], in[1]))
		},
	})
	for name, fn := range map[string]func(h, l, c []float64) []float64{
		"typprice": gotalib.TypPrice,
		"wclprice": gotalib.WclPrice,
	} {
		register(Symbol{
			Name:     name,
			Inputs:   3,
			Lookback: constant(0),
			Kernel: func(_ Args, in [][]float64) [][]float64 {
				return one(fn(in[0], in[1], in[2]))
			},
		})
	}
}
