// Package ta builds indicator expressions. Every builder takes its input
// columns and parameters from the registry unless overridden:
//
//	f.WithColumns(
//		ta.RSI(ta.With("timeperiod", 21)),
//		ta.BBands(ta.On("open")),
//		ta.Stoch(ta.With("slowk_matype", ta.TypeEMA)),
//	)
package ta

import (
	"github.com/samber/lo"

	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/plugin"
)

// Moving average type codes accepted by matype parameters
const (
	TypeSMA float64 = iota
	TypeEMA
	TypeWMA
	TypeDEMA
	TypeTEMA
	TypeTRIMA
	TypeKAMA
	TypeMAMA
	TypeT3MA
)

type config struct {
	registry *plugin.Registry
	inputs   []frame.Expr
	kwargs   frame.Kwargs
}

type Option func(*config)

// On replaces the default input columns by name
func On(columns ...string) Option {
	return func(c *config) {
		c.inputs = lo.Map(columns, func(name string, _ int) frame.Expr { return frame.Col(name) })
	}
}

// Inputs replaces the default input columns by arbitrary expressions
func Inputs(exprs ...frame.Expr) Option {
	return func(c *config) {
		c.inputs = exprs
	}
}

// With sets a keyword parameter. Parameters left unset take their default.
func With(key string, value float64) Option {
	return func(c *config) {
		c.kwargs[key] = value
	}
}

// Params sets several keyword parameters at once
func Params(kwargs map[string]float64) Option {
	return func(c *config) {
		for k, v := range kwargs {
			c.kwargs[k] = v
		}
	}
}

// Using dispatches through r instead of plugin.Default()
func Using(r *plugin.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// Expr builds a call to the registered function name. Unknown names and
// bad parameters surface when the expression is evaluated.
func Expr(name string, opts ...Option) frame.Expr {
	c := config{kwargs: frame.Kwargs{}}
	for _, opt := range opts {
		opt(&c)
	}
	if c.registry == nil {
		c.registry = plugin.Default()
	}
	if c.inputs == nil {
		if f, err := c.registry.Lookup(name); err == nil {
			c.inputs = lo.Map(f.Inputs, func(col string, _ int) frame.Expr { return frame.Col(col) })
		}
	}
	if len(c.kwargs) == 0 {
		c.kwargs = nil
	}

	return frame.Plugin{
		Dispatcher: c.registry,
		Symbol:     name,
		Args:       c.inputs,
		Kwargs:     c.kwargs,
	}
}
