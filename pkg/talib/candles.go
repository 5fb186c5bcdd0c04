package talib

import "github.com/raykavin/tafx/pkg/pattern"

// Candlestick pattern recognition. Each recognizer takes open, high, low
// and close.
func init() {
	for _, name := range pattern.Names() {
		r, _ := pattern.Lookup(name)
		register(Symbol{
			Name:     name,
			Inputs:   4,
			Outputs:  []Kind{Integer},
			Lookback: func(a Args) int { return r.Lookback(a.Candles) },
			Kernel: func(a Args, in [][]float64) [][]float64 {
				pen := r.Penetration
				if v, ok := a.Params["penetration"]; ok {
					pen = v
				}
				return one(r.Run(a.Candles, in[0], in[1], in[2], in[3], pen))
			},
		})
	}
}
