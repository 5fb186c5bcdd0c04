package frame

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/raykavin/tafx/pkg/core"
)

// Expr is a lazily evaluated computation over a frame
type Expr interface {
	Eval(f *Frame) (Value, error)
	String() string
}

// Kwargs are the named scalar arguments of a plugin call
type Kwargs map[string]float64

func (k Kwargs) String() string {
	keys := lo.Keys(k)
	sort.Strings(keys)
	parts := lo.Map(keys, func(key string, _ int) string {
		return key + "=" + strconv.FormatFloat(k[key], 'g', -1, 64)
	})
	return strings.Join(parts, ", ")
}

// Dispatcher invokes a compiled symbol by name over evaluated columns
type Dispatcher interface {
	Dispatch(symbol string, inputs []*Column, kwargs Kwargs) (Value, error)
}

type colExpr struct {
	name string
}

// Col references an existing value by name
func Col(name string) Expr {
	return colExpr{name: name}
}

func (e colExpr) Eval(f *Frame) (Value, error) {
	return f.Get(e.name)
}

func (e colExpr) String() string {
	return "col(" + strconv.Quote(e.name) + ")"
}

type litExpr struct {
	value float64
}

// Lit broadcasts a constant to the height of the frame
func Lit(v float64) Expr {
	return litExpr{value: v}
}

func (e litExpr) Eval(f *Frame) (Value, error) {
	return NewFloat64("literal", core.Filled(f.Height(), e.value)), nil
}

func (e litExpr) String() string {
	return "lit(" + strconv.FormatFloat(e.value, 'g', -1, 64) + ")"
}

type aliasExpr struct {
	expr Expr
	name string
}

// As renames the result of e
func As(e Expr, name string) Expr {
	return aliasExpr{expr: e, name: name}
}

func (e aliasExpr) Eval(f *Frame) (Value, error) {
	v, err := e.expr.Eval(f)
	if err != nil {
		return nil, err
	}
	return v.Rename(e.name), nil
}

func (e aliasExpr) String() string {
	return fmt.Sprintf("%s.alias(%q)", e.expr, e.name)
}

type fieldExpr struct {
	expr  Expr
	field string
}

// Field extracts one field of a struct-valued expression
func Field(e Expr, name string) Expr {
	return fieldExpr{expr: e, field: name}
}

func (e fieldExpr) Eval(f *Frame) (Value, error) {
	v, err := e.expr.Eval(f)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*Struct)
	if !ok {
		return nil, fmt.Errorf("%q: %w", v.Name(), ErrNotStruct)
	}
	return s.Field(e.field)
}

func (e fieldExpr) String() string {
	return fmt.Sprintf("%s.field(%q)", e.expr, e.field)
}

// Plugin calls a compiled symbol through a Dispatcher. Every argument must
// evaluate to a column. The result takes the name of the first argument.
type Plugin struct {
	Dispatcher Dispatcher
	Symbol     string
	Args       []Expr
	Kwargs     Kwargs
}

// Eval evaluates the arguments against f and dispatches the call.
func (p Plugin) Eval(f *Frame) (Value, error) {
	if p.Dispatcher == nil {
		return nil, fmt.Errorf("%s: no dispatcher: %w", p.Symbol, ErrInvalidArguments)
	}

	inputs := make([]*Column, len(p.Args))
	for i, arg := range p.Args {
		v, err := arg.Eval(f)
		if err != nil {
			return nil, err
		}
		c, ok := v.(*Column)
		if !ok {
			return nil, fmt.Errorf("%s argument %d (%s): %w", p.Symbol, i, arg, ErrNotColumn)
		}
		inputs[i] = c
	}

	out, err := p.Dispatcher.Dispatch(p.Symbol, inputs, p.Kwargs)
	if err != nil {
		return nil, err
	}

	name := p.Symbol
	if len(inputs) > 0 {
		name = inputs[0].Name()
	}
	return out.Rename(name), nil
}

func (p Plugin) String() string {
	args := lo.Map(p.Args, func(e Expr, _ int) string { return e.String() })
	s := p.Symbol + "(" + strings.Join(args, ", ")
	if len(p.Kwargs) > 0 {
		s += "; " + p.Kwargs.String()
	}
	return s + ")"
}
