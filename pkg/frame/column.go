package frame

import (
	"fmt"
	"math"

	"github.com/raykavin/tafx/pkg/core"
)

// DType is the element type of a column
type DType int

// Supported column types.
const (
	Float64 DType = iota
	Int32
)

// String returns the short type name, e.g. "f64".
func (d DType) String() string {
	switch d {
	case Float64:
		return "f64"
	case Int32:
		return "i32"
	}
	return fmt.Sprintf("dtype(%d)", int(d))
}

// Value is anything an expression can evaluate to: a Column or a Struct
type Value interface {
	Name() string
	Len() int
	Rename(name string) Value
}

// Column is a named, typed and nullable series
type Column struct {
	name   string
	dtype  DType
	floats core.Series[float64]
	ints   core.Series[int32]
	valid  []bool // nil when the column has no nulls
}

// NewFloat64 creates a float column without nulls
func NewFloat64(name string, values []float64) *Column {
	return &Column{name: name, dtype: Float64, floats: values}
}

// NewInt32 creates an integer column without nulls
func NewInt32(name string, values []int32) *Column {
	return &Column{name: name, dtype: Int32, ints: values}
}

// NewNullable creates a float column where valid[i] == false marks a null
func NewNullable(name string, values []float64, valid []bool) (*Column, error) {
	if len(values) != len(valid) {
		return nil, fmt.Errorf("column %q: %d values, %d validity flags: %w",
			name, len(values), len(valid), ErrShapeMismatch)
	}
	return &Column{name: name, dtype: Float64, floats: values, valid: valid}, nil
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// DType returns the element type.
func (c *Column) DType() DType { return c.dtype }

// Len returns the number of rows, missing ones included.
func (c *Column) Len() int {
	if c.dtype == Int32 {
		return len(c.ints)
	}
	return len(c.floats)
}

// Rename returns a column with the same data under a new name
func (c *Column) Rename(name string) Value {
	out := *c
	out.name = name
	return &out
}

// IsNull reports whether row i is null
func (c *Column) IsNull(i int) bool {
	return c.valid != nil && !c.valid[i]
}

// NullCount returns the number of null rows
func (c *Column) NullCount() int {
	n := 0
	for i := range c.valid {
		if !c.valid[i] {
			n++
		}
	}
	return n
}

// At returns row i as a float and whether it is non-null
func (c *Column) At(i int) (float64, bool) {
	if c.IsNull(i) {
		return math.NaN(), false
	}
	if c.dtype == Int32 {
		return float64(c.ints[i]), true
	}
	return c.floats[i], true
}

// Float64 returns a fresh float slice of the column, nulls read as NaN
func (c *Column) Float64() []float64 {
	out := make([]float64, c.Len())
	for i := range out {
		out[i], _ = c.At(i)
	}
	return out
}

// Int32 returns the integer values of an Int32 column
func (c *Column) Int32() ([]int32, error) {
	if c.dtype != Int32 {
		return nil, fmt.Errorf("column %q is %s: %w", c.name, c.dtype, ErrDType)
	}
	return c.ints, nil
}

// String describes the column as name[dtype; len].
func (c *Column) String() string {
	return fmt.Sprintf("%s[%s; %d]", c.name, c.dtype, c.Len())
}
