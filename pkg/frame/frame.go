// Package frame is a small columnar table with lazy expressions. Columns
// hold float64 or int32 values with an optional validity mask, and plugin
// expressions call out to a Dispatcher.
package frame

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/raykavin/tafx/pkg/core"
)

// Frame is an ordered set of named values of equal height, optionally
// indexed by time
type Frame struct {
	time   []time.Time
	names  []string
	values map[string]Value
	height int
}

// New builds a frame from values. Names must be unique and heights equal.
func New(values ...Value) (*Frame, error) {
	f := &Frame{values: make(map[string]Value, len(values))}
	for i, v := range values {
		if i == 0 {
			f.height = v.Len()
		}
		if err := f.put(v); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// FromDataframe exposes the OHLCV columns of df, followed by its extra
// columns in name order, and keeps its time index. Every series must have
// one value per timestamp.
func FromDataframe(df core.Dataframe) (*Frame, error) {
	f := &Frame{
		time:   df.Time,
		values: make(map[string]Value),
		height: df.Len(),
	}

	cols := []*Column{
		NewFloat64("open", df.Open.Values()),
		NewFloat64("high", df.High.Values()),
		NewFloat64("low", df.Low.Values()),
		NewFloat64("close", df.Close.Values()),
		NewFloat64("volume", df.Volume.Values()),
	}
	for _, key := range df.MetadataKeys() {
		if slices.Contains([]string{"open", "high", "low", "close", "volume"}, key) {
			continue
		}
		cols = append(cols, NewFloat64(key, df.Metadata[key].Values()))
	}

	for _, c := range cols {
		if err := f.put(c); err != nil {
			return nil, fmt.Errorf("dataframe %s: %w", df.Pair, err)
		}
	}
	return f, nil
}

func (f *Frame) put(v Value) error {
	if v.Len() != f.height {
		return fmt.Errorf("%q has height %d, frame has %d: %w", v.Name(), v.Len(), f.height, ErrShapeMismatch)
	}
	if _, ok := f.values[v.Name()]; ok {
		return fmt.Errorf("%q: %w", v.Name(), ErrDuplicateColumn)
	}
	f.names = append(f.names, v.Name())
	f.values[v.Name()] = v
	return nil
}

// WithTime attaches a time index to a copy of the frame
func (f *Frame) WithTime(t []time.Time) (*Frame, error) {
	if len(t) != f.height {
		return nil, fmt.Errorf("time index has %d rows, frame has %d: %w", len(t), f.height, ErrShapeMismatch)
	}
	out := f.clone()
	out.time = t
	return out, nil
}

func (f *Frame) clone() *Frame {
	out := &Frame{
		time:   f.time,
		names:  slices.Clone(f.names),
		values: make(map[string]Value, len(f.values)),
		height: f.height,
	}
	for k, v := range f.values {
		out.values[k] = v
	}
	return out
}

// Time returns the time index, nil when the frame has none
func (f *Frame) Time() []time.Time { return f.time }

// Height returns the number of rows
func (f *Frame) Height() int { return f.height }

// Width returns the number of values
func (f *Frame) Width() int { return len(f.names) }

// Names returns value names in order
func (f *Frame) Names() []string { return slices.Clone(f.names) }

// Get returns the value called name
func (f *Frame) Get(name string) (Value, error) {
	v, ok := f.values[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
	}
	return v, nil
}

// Column returns the column called name
func (f *Frame) Column(name string) (*Column, error) {
	v, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	c, ok := v.(*Column)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotColumn)
	}
	return c, nil
}

// Struct returns the struct called name
func (f *Frame) Struct(name string) (*Struct, error) {
	v, err := f.Get(name)
	if err != nil {
		return nil, err
	}
	s, ok := v.(*Struct)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotStruct)
	}
	return s, nil
}

// eval runs every expression against f concurrently. f is not mutated
// while the expressions run.
func (f *Frame) eval(exprs []Expr) ([]Value, error) {
	out := make([]Value, len(exprs))

	var g errgroup.Group
	for i, e := range exprs {
		g.Go(func() error {
			v, err := e.Eval(f)
			if err != nil {
				return fmt.Errorf("%s: %w", e, err)
			}
			if v.Len() != f.height {
				return fmt.Errorf("%s: height %d, frame has %d: %w", e, v.Len(), f.height, ErrShapeMismatch)
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(out))
	for _, v := range out {
		if _, ok := seen[v.Name()]; ok {
			return nil, fmt.Errorf("%q produced twice: %w", v.Name(), ErrDuplicateColumn)
		}
		seen[v.Name()] = struct{}{}
	}

	return out, nil
}

// WithColumns returns a new frame with the results of exprs added. A result
// whose name already exists replaces that value in place.
func (f *Frame) WithColumns(exprs ...Expr) (*Frame, error) {
	values, err := f.eval(exprs)
	if err != nil {
		return nil, err
	}

	out := f.clone()
	for _, v := range values {
		if _, exists := out.values[v.Name()]; !exists {
			out.names = append(out.names, v.Name())
		}
		out.values[v.Name()] = v
	}
	return out, nil
}

// Select returns a new frame holding only the results of exprs
func (f *Frame) Select(exprs ...Expr) (*Frame, error) {
	values, err := f.eval(exprs)
	if err != nil {
		return nil, err
	}

	out := &Frame{time: f.time, values: make(map[string]Value, len(values)), height: f.height}
	for _, v := range values {
		if err := out.put(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Unnest replaces each named struct by its fields, in place. Field names
// must not collide with existing values.
func (f *Frame) Unnest(names ...string) (*Frame, error) {
	out := &Frame{time: f.time, values: make(map[string]Value, len(f.values)), height: f.height}
	for _, name := range f.names {
		v := f.values[name]
		if !slices.Contains(names, name) {
			if err := out.put(v); err != nil {
				return nil, err
			}
			continue
		}

		s, ok := v.(*Struct)
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrNotStruct)
		}
		for _, field := range s.Fields() {
			if err := out.put(field); err != nil {
				return nil, err
			}
		}
	}

	for _, name := range names {
		if _, ok := f.values[name]; !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrColumnNotFound)
		}
	}

	return out, nil
}
