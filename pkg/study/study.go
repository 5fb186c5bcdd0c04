// Package study reads HCL files that describe a set of indicators to
// compute over one candle source:
//
//	source "csv" {
//	  path      = "btc.csv"
//	  timeframe = "1h"
//	}
//
//	indicator "rsi_14" {
//	  function = "rsi"
//	  inputs   = ["close"]
//	  params   = { timeperiod = 14 }
//	}
//
//	indicator "trend" {
//	  function = "ma"
//	  params   = { timeperiod = 50, matype = ma.ema }
//	}
package study

import (
	"errors"
	"fmt"

	"github.com/StudioSol/set"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/raykavin/tafx/pkg/feed"
	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/plugin"
	"github.com/raykavin/tafx/pkg/ta"
)

var (
	ErrDuplicateIndicator = errors.New("duplicate indicator")
	ErrUnsupportedSource  = errors.New("unsupported source")
	ErrNoIndicators       = errors.New("study has no indicators")
)

// Study is the decoded content of a study file
type Study struct {
	Source     *Source     `hcl:"source,block"`
	Output     *Output     `hcl:"output,block"`
	Indicators []Indicator `hcl:"indicator,block"`
}

// Source describes where candles come from. Only "csv" is supported.
type Source struct {
	Kind       string `hcl:"kind,label"`
	Path       string `hcl:"path"`
	Pair       string `hcl:"pair,optional"`
	Timeframe  string `hcl:"timeframe,optional"`
	Resample   string `hcl:"resample,optional"`
	HeikinAshi bool   `hcl:"heikin_ashi,optional"`
}

// Output describes where results go
type Output struct {
	Path  string `hcl:"path,optional"`
	Store bool   `hcl:"store,optional"`
}

// Indicator is one aliased function call
type Indicator struct {
	Name     string    `hcl:"name,label"`
	Function string    `hcl:"function"`
	Inputs   []string  `hcl:"inputs,optional"`
	Params   cty.Value `hcl:"params,optional"`

	kwargs frame.Kwargs
}

// Kwargs returns the decoded params, or nil when none were given
func (i Indicator) Kwargs() frame.Kwargs { return i.kwargs }

// evalContext exposes the moving average codes as ma.sma, ma.ema, ...
func evalContext() *hcl.EvalContext {
	codes := map[string]cty.Value{}
	for i, name := range []string{"sma", "ema", "wma", "dema", "tema", "trima", "kama", "mama", "t3"} {
		codes[name] = cty.NumberIntVal(int64(i))
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"ma": cty.ObjectVal(codes)},
	}
}

// Load parses and decodes a study file
func Load(path string) (*Study, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse study file %s: %w", path, diags)
	}
	return decode(file, path)
}

// Parse decodes a study from memory. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Study, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse study file %s: %w", filename, diags)
	}
	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Study, error) {
	var s Study
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &s); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode study file %s: %w", filename, diags)
	}

	if len(s.Indicators) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoIndicators)
	}
	if s.Source != nil && s.Source.Kind != "csv" {
		return nil, fmt.Errorf("%s: %q: %w", filename, s.Source.Kind, ErrUnsupportedSource)
	}

	names := set.NewLinkedHashSetString()
	for i := range s.Indicators {
		ind := &s.Indicators[i]
		if names.InArray(ind.Name) {
			return nil, fmt.Errorf("%s: %q: %w", filename, ind.Name, ErrDuplicateIndicator)
		}
		names.Add(ind.Name)

		kwargs, err := toKwargs(ind.Params)
		if err != nil {
			return nil, fmt.Errorf("%s: indicator %q: %w", filename, ind.Name, err)
		}
		ind.kwargs = kwargs
	}

	return &s, nil
}

func toKwargs(params cty.Value) (frame.Kwargs, error) {
	if params.IsNull() {
		return nil, nil
	}
	if !params.IsWhollyKnown() {
		return nil, errors.New("params must be known values")
	}

	converted, err := convert.Convert(params, cty.Map(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("params must be a map of numbers: %w", err)
	}

	var out map[string]float64
	if err := gocty.FromCtyValue(converted, &out); err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return frame.Kwargs(out), nil
}

// Options turns the source block into feed options
func (s Study) Options() feed.Options {
	if s.Source == nil {
		return feed.Options{}
	}
	return feed.Options{
		Pair:       s.Source.Pair,
		Timeframe:  s.Source.Timeframe,
		Target:     s.Source.Resample,
		HeikinAshi: s.Source.HeikinAshi,
	}
}

// Exprs builds one expression per indicator, aliased to the indicator
// name. Function names, input counts and params are checked against r.
func (s Study) Exprs(r *plugin.Registry) ([]frame.Expr, error) {
	exprs := make([]frame.Expr, 0, len(s.Indicators))
	for _, ind := range s.Indicators {
		fn, err := r.Lookup(ind.Function)
		if err != nil {
			return nil, fmt.Errorf("indicator %q: %q: %w", ind.Name, ind.Function, err)
		}
		if len(ind.Inputs) > 0 && len(ind.Inputs) != len(fn.Inputs) {
			return nil, fmt.Errorf("indicator %q: %s expects %d inputs, got %d: %w",
				ind.Name, fn.Name, len(fn.Inputs), len(ind.Inputs), frame.ErrInvalidArguments)
		}
		if _, err := fn.Bind(ind.kwargs); err != nil {
			return nil, fmt.Errorf("indicator %q: %w", ind.Name, err)
		}

		opts := []ta.Option{ta.Using(r), ta.Params(ind.kwargs)}
		if len(ind.Inputs) > 0 {
			opts = append(opts, ta.On(ind.Inputs...))
		}
		exprs = append(exprs, frame.As(ta.Expr(fn.Name, opts...), ind.Name))
	}
	return exprs, nil
}

// Structs lists the indicator names whose function returns several fields
func (s Study) Structs(r *plugin.Registry) []string {
	var names []string
	for _, ind := range s.Indicators {
		if fn, err := r.Lookup(ind.Function); err == nil && fn.IsStruct() {
			names = append(names, ind.Name)
		}
	}
	return names
}
