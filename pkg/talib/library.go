// Package talib registers the TA-Lib function set on top of go-talib and
// the candlestick recognizers of package pattern. Calls go through a
// Library handle, which pads outputs to the input length and reports
// failures as RetCode values.
package talib

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/pattern"
)

const modulePath = "github.com/markcheno/go-talib"

// fallbackVersion is the TA-Lib C release go-talib ports
const fallbackVersion = "0.4.0"

// Library is a handle on the numerics library. Calls are refused until
// Initialize and after Shutdown.
type Library struct {
	mu          sync.RWMutex
	initialized bool
	candles     pattern.Settings
}

// New returns an uninitialized library handle
func New() *Library {
	return &Library{candles: pattern.DefaultSettings()}
}

var std = New()

// Default returns the process-wide library handle
func Default() *Library { return std }

// Initialize readies the library and restores the default candle settings.
// Calling it again is harmless.
func (l *Library) Initialize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.initialized = true
	l.candles = pattern.DefaultSettings()
	return nil
}

// Shutdown releases the library
func (l *Library) Shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.initialized {
		return LibNotInitialize
	}
	l.initialized = false
	return nil
}

// Initialized reports whether calls are currently accepted
func (l *Library) Initialized() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.initialized
}

// Version returns the version of the wrapped library
func (l *Library) Version() string {
	return version()
}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return fallbackVersion
	}
	for _, dep := range info.Deps {
		if dep.Path != modulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		if dep.Version != "" && dep.Version != "(devel)" {
			return dep.Version
		}
	}
	return fallbackVersion
}

// SetCandleSettings changes the threshold used by the pattern recognizers
func (l *Library) SetCandleSettings(kind pattern.Kind, r pattern.RangeType, avgPeriod int, factor float64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.candles.Set(kind, pattern.Setting{Range: r, AvgPeriod: avgPeriod, Factor: factor}); err != nil {
		return fmt.Errorf("%w: %w", BadParam, err)
	}
	return nil
}

// RestoreCandleDefaultSettings resets kind, or every kind with
// pattern.AllSettings
func (l *Library) RestoreCandleDefaultSettings(kind pattern.Kind) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.candles.Restore(kind); err != nil {
		return fmt.Errorf("%w: %w", BadParam, err)
	}
	return nil
}

// CandleSettings returns a snapshot of the active candle settings
func (l *Library) CandleSettings() pattern.Settings {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.candles
}

// Lookback returns the number of leading rows a call to name with params
// leaves without a value
func (l *Library) Lookback(name string, params Params) (int, error) {
	sym, err := Lookup(name)
	if err != nil {
		return 0, err
	}
	args := Args{Params: params, Candles: l.CandleSettings()}
	if err := sym.check(args); err != nil {
		return 0, err
	}
	return sym.Lookback(args), nil
}

// Call runs symbol name over inputs of equal length. Leading rows where
// any input is NaN are skipped, and every output row before the first
// computable one is padded: NaN for Real outputs, 0 for Integer ones.
func (l *Library) Call(name string, inputs [][]float64, params Params) (out [][]float64, err error) {
	l.mu.RLock()
	ready, candles := l.initialized, l.candles
	l.mu.RUnlock()

	if !ready {
		return nil, LibNotInitialize
	}

	sym, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if len(inputs) != sym.Inputs {
		return nil, fmt.Errorf("%s takes %d inputs, got %d: %w", name, sym.Inputs, len(inputs), BadParam)
	}

	n := 0
	if len(inputs) > 0 {
		n = len(inputs[0])
	}
	begin := 0
	for _, in := range inputs {
		if len(in) != n {
			return nil, fmt.Errorf("%s: inputs differ in length: %w", name, BadParam)
		}
		begin = max(begin, core.FirstValid(in))
	}

	args := Args{Params: params, Candles: candles}
	if err := sym.check(args); err != nil {
		return nil, err
	}
	lookback := sym.Lookback(args)

	out = make([][]float64, len(sym.Outputs))
	for k, kind := range sym.Outputs {
		out[k] = kind.pad(n)
	}
	if n-begin <= lookback {
		return out, nil
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%s: %v: %w", name, r, InternalError)
		}
	}()

	sliced := make([][]float64, len(inputs))
	for i, in := range inputs {
		sliced[i] = in[begin:]
	}
	res := sym.Kernel(args, sliced)
	if len(res) != len(out) {
		return nil, fmt.Errorf("%s: kernel returned %d outputs: %w", name, len(res), InternalError)
	}

	for k := range out {
		copy(out[k][begin+lookback:], res[k][lookback:])
	}
	return out, nil
}
