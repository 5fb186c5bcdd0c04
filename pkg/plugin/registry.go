// Package plugin exposes the library symbols as expression functions with
// named, range-checked parameters.
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/zhangyunhao116/skipmap"

	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/logger"
	"github.com/raykavin/tafx/pkg/talib"
)

// ComputeError is returned when the library refuses a call. Its message
// carries the library return code only.
type ComputeError struct {
	Function string
	Err      error
}

// Error names the library return code, e.g. TA_BAD_PARAM.
func (e *ComputeError) Error() string {
	var code talib.RetCode
	if errors.As(e.Err, &code) {
		return "could not compute indicator, err: " + code.Error()
	}
	return "could not compute indicator, err: " + e.Err.Error()
}

// Unwrap exposes both the return code and ErrComputation.
func (e *ComputeError) Unwrap() []error {
	return []error{frame.ErrComputation, e.Err}
}

// Registry maps function names to their definitions and dispatches
// expression calls to a library handle
type Registry struct {
	lib *talib.Library
	fns *skipmap.StringMap[Function]

	mu  sync.RWMutex
	log logger.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger that receives refused calls at debug level.
func WithLogger(log logger.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// NewRegistry returns an empty registry calling lib
func NewRegistry(lib *talib.Library, options ...Option) *Registry {
	r := &Registry{
		lib: lib,
		fns: skipmap.NewString[Function](),
		log: logger.Nop(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Builtins returns the definitions of every TA-Lib function
func Builtins() []Function {
	all := [][]Function{
		cycleFunctions,
		mathOperatorsFunctions,
		mathTransformFunctions,
		momentumFunctions,
		overlapFunctions,
		patternFunctions,
		priceFunctions,
		statisticFunctions,
		volatilityFunctions,
		volumeFunctions,
	}
	return lo.Map(lo.Flatten(all), func(f Function, _ int) Function { return f.clone() })
}

// Default returns the process-wide registry holding Builtins. The first
// call initializes talib.Default().
func Default() *Registry {
	defaultOnce.Do(func() {
		lib := talib.Default()
		if err := lib.Initialize(); err != nil {
			panic(err)
		}
		defaultRegistry = NewRegistry(lib)
		defaultRegistry.MustRegister(Builtins()...)
	})
	return defaultRegistry
}

// Library returns the handle the registry dispatches to.
func (r *Registry) Library() *talib.Library { return r.lib }

// SetLogger replaces the logger. It is safe to call while expressions
// are being evaluated.
func (r *Registry) SetLogger(log logger.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = log
}

func (r *Registry) logger() logger.Logger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.log
}

// Register adds f. Names are unique.
func (r *Registry) Register(f Function) error {
	f = f.clone()
	if err := f.validate(); err != nil {
		return err
	}
	if _, loaded := r.fns.LoadOrStore(f.Name, f); loaded {
		return fmt.Errorf("%s: %w", f.Name, ErrDuplicateFunction)
	}
	return nil
}

// MustRegister is like Register but panics on error
func (r *Registry) MustRegister(fns ...Function) {
	for _, f := range fns {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
}

// Lookup returns a copy of the function called name.
func (r *Registry) Lookup(name string) (Function, error) {
	f, ok := r.fns.Load(name)
	if !ok {
		return Function{}, fmt.Errorf("%q: %w", name, ErrFunctionNotFound)
	}
	return f.clone(), nil
}

// Len returns the number of registered functions.
func (r *Registry) Len() int { return r.fns.Len() }

func (r *Registry) all() []Function {
	fns := make([]Function, 0, r.fns.Len())
	r.fns.Range(func(_ string, f Function) bool {
		fns = append(fns, f)
		return true
	})
	sort.SliceStable(fns, func(i, j int) bool {
		return fns[i].Group.order() < fns[j].Group.order()
	})
	return fns
}

// Functions lists every function name, grouped and in name order
// within a group
func (r *Registry) Functions() []string {
	return lo.Map(r.all(), func(f Function, _ int) string { return f.Name })
}

// FunctionGroups maps each group to the names of its functions
func (r *Registry) FunctionGroups() map[string][]string {
	groups := make(map[string][]string)
	for _, f := range r.all() {
		groups[string(f.Group)] = append(groups[string(f.Group)], f.Name)
	}
	return groups
}

// OutputStructs maps every multi-output function to its field names
func (r *Registry) OutputStructs() map[string][]string {
	structs := make(map[string][]string)
	for _, f := range r.all() {
		if f.IsStruct() {
			structs[f.Name] = f.clone().Outputs
		}
	}
	return structs
}

// Lookback returns how many leading rows name leaves empty with kwargs
func (r *Registry) Lookback(name string, kwargs frame.Kwargs) (int, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return 0, err
	}
	params, err := f.Bind(kwargs)
	if err != nil {
		return 0, err
	}
	return r.lib.Lookback(f.Symbol, params)
}

// Dispatch runs function name over inputs. Null input rows are treated as
// NaN. A single output becomes a column, several become a struct named
// after the function.
func (r *Registry) Dispatch(name string, inputs []*frame.Column, kwargs frame.Kwargs) (frame.Value, error) {
	f, err := r.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", frame.ErrInvalidArguments, err)
	}
	if len(inputs) != len(f.Inputs) {
		return nil, fmt.Errorf("%s takes %d inputs %v, got %d: %w",
			f.Name, len(f.Inputs), f.Inputs, len(inputs), frame.ErrInvalidArguments)
	}

	data := make([][]float64, len(inputs))
	for i, c := range inputs {
		if i > 0 && c.Len() != inputs[0].Len() {
			return nil, fmt.Errorf("%s: input %s has %d rows, want %d: %w",
				f.Name, c.Name(), c.Len(), inputs[0].Len(), frame.ErrShapeMismatch)
		}
		data[i] = c.Float64()
	}

	log := r.logger().WithFields(map[string]any{
		"function": f.Name,
		"symbol":   f.Symbol,
	})

	params, err := f.Bind(kwargs)
	if err != nil {
		log.WithError(err).Debug("invalid parameters")
		return nil, &ComputeError{Function: f.Name, Err: err}
	}

	out, err := r.lib.Call(f.Symbol, data, params)
	if err != nil {
		log.WithError(err).Debug("library call failed")
		return nil, &ComputeError{Function: f.Name, Err: err}
	}

	sym, err := talib.Lookup(f.Symbol)
	if err != nil {
		return nil, err
	}
	cols := make([]*frame.Column, len(out))
	for k, values := range out {
		cols[k] = column(f.Outputs[k], sym.Outputs[k], values)
	}

	if !f.IsStruct() {
		return cols[0], nil
	}
	return frame.NewStruct(f.Name, cols...)
}

func column(name string, kind talib.Kind, values []float64) *frame.Column {
	if kind != talib.Integer {
		return frame.NewFloat64(name, values)
	}
	return frame.NewInt32(name, lo.Map(values, func(v float64, _ int) int32 { return int32(v) }))
}
