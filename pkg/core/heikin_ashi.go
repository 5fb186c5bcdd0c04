package core

import "math"

// HeikinAshi keeps the previous smoothed candle needed to build the next one
type HeikinAshi struct {
	prev Candle
	seen bool
}

// NewHeikinAshi creates a new HeikinAshi calculator
func NewHeikinAshi() *HeikinAshi {
	return &HeikinAshi{}
}

// Next returns the Heikin-Ashi prices for c:
//   - close = (open + high + low + close) / 4
//   - open = (previous open + previous close) / 2
//   - high = max(high, open, close)
//   - low = min(low, open, close)
func (ha *HeikinAshi) Next(c Candle) Candle {
	var out Candle

	prevOpen, prevClose := ha.prev.Open, ha.prev.Close
	if !ha.seen {
		prevOpen, prevClose = c.Open, c.Close
	}

	out.Open = (prevOpen + prevClose) / 2
	out.Close = (c.Open + c.High + c.Low + c.Close) / 4
	out.High = math.Max(c.High, math.Max(out.Open, out.Close))
	out.Low = math.Min(c.Low, math.Min(out.Open, out.Close))

	ha.prev = out
	ha.seen = true

	return out
}
