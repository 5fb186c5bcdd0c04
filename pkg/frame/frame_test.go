package frame

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/tafx/pkg/core"
)

// sumDispatcher adds its inputs row by row and scales by kwargs["k"]
type sumDispatcher struct{}

func (sumDispatcher) Dispatch(symbol string, inputs []*Column, kwargs Kwargs) (Value, error) {
	if symbol == "fail" {
		return nil, ErrComputation
	}
	k, ok := kwargs["k"]
	if !ok {
		k = 1
	}
	out := make([]float64, inputs[0].Len())
	for _, in := range inputs {
		for i, v := range in.Float64() {
			out[i] += v * k
		}
	}
	if symbol == "split" {
		half := make([]float64, len(out))
		for i := range out {
			half[i] = out[i] / 2
		}
		return NewStruct("", NewFloat64("full", out), NewFloat64("half", half))
	}
	return NewFloat64("", out), nil
}

func testFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := New(
		NewFloat64("a", []float64{1, 2, 3}),
		NewFloat64("b", []float64{10, 20, 30}),
	)
	require.NoError(t, err)
	return f
}

func TestNew(t *testing.T) {
	f := testFrame(t)
	assert.Equal(t, 3, f.Height())
	assert.Equal(t, 2, f.Width())
	assert.Equal(t, []string{"a", "b"}, f.Names())

	_, err := New(NewFloat64("a", []float64{1}), NewFloat64("b", []float64{1, 2}))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = New(NewFloat64("a", []float64{1}), NewFloat64("a", []float64{2}))
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = f.Column("missing")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestFromDataframe(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	df := core.NewDataframe("BTCUSDT", []core.Candle{
		{Time: base, Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 100, Metadata: map[string]float64{"oi": 7}},
		{Time: base.Add(time.Minute), Open: 1.5, High: 2.5, Low: 1, Close: 2, Volume: 200, Metadata: map[string]float64{"oi": 8}},
	})

	f, err := FromDataframe(df)
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "high", "low", "close", "volume", "oi"}, f.Names())
	assert.Equal(t, df.Time, f.Time())

	c, err := f.Column("close")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2}, c.Float64())

	df.Metadata["oi"] = core.Series[float64]{7}
	_, err = FromDataframe(df)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorContains(t, err, `"oi"`)

	df = core.NewDataframe("BTCUSDT", nil)
	df.Time = []time.Time{base}
	_, err = FromDataframe(df)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestColumnNulls(t *testing.T) {
	c, err := NewNullable("x", []float64{1, 2, 3}, []bool{true, false, true})
	require.NoError(t, err)
	assert.Equal(t, 1, c.NullCount())
	assert.True(t, c.IsNull(1))

	values := c.Float64()
	assert.Equal(t, 1.0, values[0])
	assert.True(t, math.IsNaN(values[1]))

	_, err = NewNullable("x", []float64{1}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = c.Int32()
	assert.ErrorIs(t, err, ErrDType)

	ints := NewInt32("i", []int32{0, 100})
	assert.Equal(t, Int32, ints.DType())
	assert.Equal(t, []float64{0, 100}, ints.Float64())
}

func TestWithColumns(t *testing.T) {
	f := testFrame(t)

	out, err := f.WithColumns(
		Plugin{Dispatcher: sumDispatcher{}, Symbol: "sum", Args: []Expr{Col("a"), Col("b")}, Kwargs: Kwargs{"k": 2}},
		As(Lit(5), "five"),
	)
	require.NoError(t, err)

	// plugin output replaces the first argument
	assert.Equal(t, []string{"a", "b", "five"}, out.Names())
	a, err := out.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{22, 44, 66}, a.Float64())

	five, err := out.Column("five")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5, 5}, five.Float64())

	// input frame untouched
	orig, err := f.Column("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, orig.Float64())
}

func TestWithColumns_Errors(t *testing.T) {
	f := testFrame(t)

	_, err := f.WithColumns(Plugin{Dispatcher: sumDispatcher{}, Symbol: "fail", Args: []Expr{Col("a")}})
	assert.ErrorIs(t, err, ErrComputation)

	_, err = f.WithColumns(Plugin{Dispatcher: sumDispatcher{}, Symbol: "sum", Args: []Expr{Col("zzz")}})
	assert.ErrorIs(t, err, ErrColumnNotFound)

	_, err = f.WithColumns(As(Col("a"), "x"), As(Col("b"), "x"))
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	_, err = f.WithColumns(Plugin{Symbol: "sum", Args: []Expr{Col("a")}})
	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestStructAndUnnest(t *testing.T) {
	f := testFrame(t)
	split := Plugin{Dispatcher: sumDispatcher{}, Symbol: "split", Args: []Expr{Col("a"), Col("b")}}

	out, err := f.Select(As(split, "s"), As(Field(split, "half"), "h"))
	require.NoError(t, err)

	s, err := out.Struct("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"full", "half"}, s.FieldNames())

	h, err := out.Column("h")
	require.NoError(t, err)
	assert.Equal(t, []float64{5.5, 11, 16.5}, h.Float64())

	flat, err := out.Unnest("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"full", "half", "h"}, flat.Names())

	_, err = out.Unnest("h")
	assert.True(t, errors.Is(err, ErrNotStruct))

	_, err = f.Select(Field(Col("a"), "x"))
	assert.ErrorIs(t, err, ErrNotStruct)

	_, err = s.Field("nope")
	assert.ErrorIs(t, err, ErrFieldNotFound)
}

func TestPluginString(t *testing.T) {
	p := Plugin{Symbol: "rsi", Args: []Expr{Col("close")}, Kwargs: Kwargs{"timeperiod": 14}}
	assert.Equal(t, `rsi(col("close"); timeperiod=14)`, p.String())
	assert.Equal(t, `rsi(col("close"); timeperiod=14).alias("r")`, As(p, "r").String())
}
