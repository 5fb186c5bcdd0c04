package pattern

import (
	"sort"

	"github.com/samber/lo"
)

type detectFunc func(k *candles, i int, penetration float64) int

type scanFunc func(k *candles, start int, penetration float64, out []float64)

// Recognizer detects one candlestick pattern. Output values are -100
// (bearish), 0 or 100 (bullish); the hikkake family reports a confirmed
// pattern as ±200.
type Recognizer struct {
	Name string

	// Penetration is the default penetration, zero when the pattern takes none
	Penetration float64

	before int
	minAvg int
	kinds  []Kind
	detect detectFunc
	scan   scanFunc
}

// Lookback returns how many leading candles cannot carry a result
func (r Recognizer) Lookback(s Settings) int {
	n := r.minAvg
	for _, kind := range r.kinds {
		n = max(n, s[kind].AvgPeriod)
	}
	return n + r.before
}

// Run evaluates the recognizer on every candle past the lookback. The
// result has the input length; earlier positions are zero.
func (r Recognizer) Run(s Settings, open, high, low, close []float64, penetration float64) []float64 {
	out := make([]float64, len(close))
	start := r.Lookback(s)
	if start >= len(close) {
		return out
	}

	k := &candles{o: open, h: high, l: low, c: close, s: s}
	if r.scan != nil {
		r.scan(k, start, penetration, out)
		return out
	}
	for i := start; i < len(close); i++ {
		out[i] = float64(r.detect(k, i, penetration))
	}
	return out
}

var recognizers = map[string]Recognizer{}

func register(r Recognizer) {
	if _, dup := recognizers[r.Name]; dup {
		panic("pattern: duplicate recognizer " + r.Name)
	}
	recognizers[r.Name] = r
}

// Lookup returns the recognizer called name (e.g. "cdldoji")
func Lookup(name string) (Recognizer, bool) {
	r, ok := recognizers[name]
	return r, ok
}

// Names lists every recognizer in name order
func Names() []string {
	names := lo.Keys(recognizers)
	sort.Strings(names)
	return names
}

func boolSignal(ok bool, signal int) int {
	if ok {
		return signal
	}
	return 0
}
