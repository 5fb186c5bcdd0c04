package plugin

import (
	"fmt"
	"math"
	"slices"

	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/talib"
)

// Group is a TA-Lib function group
type Group string

const (
	CycleIndicators      Group = "Cycle Indicators"
	MathOperators        Group = "Math Operators"
	MathTransform        Group = "Math Transform"
	MomentumIndicators   Group = "Momentum Indicators"
	OverlapStudies       Group = "Overlap Studies"
	PatternRecognition   Group = "Pattern Recognition"
	PriceTransform       Group = "Price Transform"
	StatisticFunctions   Group = "Statistic Functions"
	VolatilityIndicators Group = "Volatility Indicators"
	VolumeIndicators     Group = "Volume Indicators"
)

// Groups lists every group in listing order
var Groups = []Group{
	CycleIndicators,
	MathOperators,
	MathTransform,
	MomentumIndicators,
	OverlapStudies,
	PatternRecognition,
	PriceTransform,
	StatisticFunctions,
	VolatilityIndicators,
	VolumeIndicators,
}

func (g Group) order() int {
	if i := slices.Index(Groups, g); i >= 0 {
		return i
	}
	return len(Groups)
}

// ParamKind is the accepted value type of a parameter
type ParamKind int

const (
	Int    ParamKind = iota // whole numbers only
	Real                    // any float in range
	MAType                  // moving average code, 0..8
)

// String returns the name shown by `tafx info`.
func (k ParamKind) String() string {
	switch k {
	case Int:
		return "int"
	case MAType:
		return "matype"
	default:
		return "float"
	}
}

// Param is a keyword argument with its default and accepted range
type Param struct {
	Name    string
	Kind    ParamKind
	Default float64
	Min     float64
	Max     float64
}

func (p Param) check(v float64) error {
	if math.IsNaN(v) || v < p.Min || v > p.Max {
		return fmt.Errorf("%s=%v not in [%v, %v]: %w", p.Name, v, p.Min, p.Max, ErrParamOutOfRange)
	}
	if p.Kind != Real && v != math.Trunc(v) {
		return fmt.Errorf("%s=%v: %w", p.Name, v, ErrParamNotInteger)
	}
	return nil
}

func period(name string, def, lo float64) Param {
	return Param{Name: name, Kind: Int, Default: def, Min: lo, Max: 100000}
}

func realParam(name string, def, lo, hi float64) Param {
	return Param{Name: name, Kind: Real, Default: def, Min: lo, Max: hi}
}

func maType(name string) Param {
	return Param{Name: name, Kind: MAType, Min: 0, Max: 8}
}

func penetration(def float64) Param {
	return realParam("penetration", def, 0, 3e37)
}

var (
	closeOnly    = []string{"close"}
	closeVolume  = []string{"close", "volume"}
	closePeriods = []string{"close", "periods"}
	highLow      = []string{"high", "low"}
	hlc          = []string{"high", "low", "close"}
	hlcv         = []string{"high", "low", "close", "volume"}
	ohlc         = []string{"open", "high", "low", "close"}
)

// Function describes one indicator exposed as an expression.
//
// Inputs are the default column names in the order the kernel takes them.
// Outputs name the fields of the result; with a single output the result
// is a plain column.
type Function struct {
	Name        string
	Symbol      string // library symbol, defaults to Name
	Group       Group
	Description string
	Inputs      []string
	Params      []Param
	Outputs     []string
}

// IsStruct reports whether the function returns more than one series
func (f Function) IsStruct() bool { return len(f.Outputs) > 1 }

// Param returns the parameter called name
func (f Function) Param(name string) (Param, bool) {
	i := slices.IndexFunc(f.Params, func(p Param) bool { return p.Name == name })
	if i < 0 {
		return Param{}, false
	}
	return f.Params[i], true
}

// Defaults returns every parameter at its default value
func (f Function) Defaults() talib.Params {
	params := make(talib.Params, len(f.Params))
	for _, p := range f.Params {
		params[p.Name] = p.Default
	}
	return params
}

// Bind merges kwargs over the defaults. Unknown keys and values outside
// a parameter's range are rejected as TA_BAD_PARAM.
func (f Function) Bind(kwargs frame.Kwargs) (talib.Params, error) {
	params := f.Defaults()
	for key, v := range kwargs {
		if _, ok := params[key]; !ok {
			return nil, fmt.Errorf("%s: %q: %w: %w", f.Name, key, ErrUnknownParam, talib.BadParam)
		}
		params[key] = v
	}
	for _, p := range f.Params {
		if err := p.check(params[p.Name]); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", f.Name, err, talib.BadParam)
		}
	}
	return params, nil
}

func (f Function) clone() Function {
	f.Inputs = slices.Clone(f.Inputs)
	f.Params = slices.Clone(f.Params)
	f.Outputs = slices.Clone(f.Outputs)
	return f
}

// validate checks f against the library symbol it calls and fills the
// symbol name and single output name when they are left empty
func (f *Function) validate() error {
	if f.Name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidFunction)
	}
	if f.Symbol == "" {
		f.Symbol = f.Name
	}
	sym, err := talib.Lookup(f.Symbol)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", f.Name, ErrInvalidFunction, err)
	}
	if len(f.Inputs) != sym.Inputs {
		return fmt.Errorf("%s: %d inputs, symbol %s takes %d: %w", f.Name, len(f.Inputs), f.Symbol, sym.Inputs, ErrInvalidFunction)
	}
	if len(f.Outputs) == 0 && len(sym.Outputs) == 1 {
		f.Outputs = []string{"real"}
		if sym.Outputs[0] == talib.Integer {
			f.Outputs = []string{"integer"}
		}
	}
	if len(f.Outputs) != len(sym.Outputs) {
		return fmt.Errorf("%s: %d outputs, symbol %s returns %d: %w", f.Name, len(f.Outputs), f.Symbol, len(sym.Outputs), ErrInvalidFunction)
	}
	if len(slices.Compact(slices.Sorted(slices.Values(f.Outputs)))) != len(f.Outputs) {
		return fmt.Errorf("%s: duplicate output names: %w", f.Name, ErrInvalidFunction)
	}

	seen := make(map[string]bool, len(f.Params))
	for _, p := range f.Params {
		if seen[p.Name] {
			return fmt.Errorf("%s: duplicate parameter %s: %w", f.Name, p.Name, ErrInvalidFunction)
		}
		seen[p.Name] = true
		if err := p.check(p.Default); err != nil {
			return fmt.Errorf("%s: default: %w: %w", f.Name, err, ErrInvalidFunction)
		}
	}
	return nil
}
