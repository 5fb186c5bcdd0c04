package ta

import (
	"math"
	"testing"

	gotalib "github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/tafx/pkg/frame"
	"github.com/raykavin/tafx/pkg/plugin"
	"github.com/raykavin/tafx/pkg/talib"
)

func testFrame(t *testing.T, n int) *frame.Frame {
	t.Helper()
	open, high, low, close, volume := make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n), make([]float64, n)
	for i := range n {
		x := float64(i)
		close[i] = 100 + 10*math.Sin(x/5) + x/10
		open[i] = close[i] - math.Cos(x/3)
		high[i] = math.Max(open[i], close[i]) + 0.5
		low[i] = math.Min(open[i], close[i]) - 0.5
		volume[i] = 1000 + 100*math.Cos(x/7)
	}
	f, err := frame.New(
		frame.NewFloat64("open", open),
		frame.NewFloat64("high", high),
		frame.NewFloat64("low", low),
		frame.NewFloat64("close", close),
		frame.NewFloat64("volume", volume),
	)
	require.NoError(t, err)
	return f
}

func testRegistry(t *testing.T) *plugin.Registry {
	t.Helper()
	lib := talib.New()
	require.NoError(t, lib.Initialize())
	r := plugin.NewRegistry(lib)
	r.MustRegister(plugin.Builtins()...)
	return r
}

func TestExpr_Defaults(t *testing.T) {
	r := testRegistry(t)

	assert.Equal(t, `adx(col("high"), col("low"), col("close"))`, ADX(Using(r)).String())
	assert.Equal(t, `rsi(col("open"); timeperiod=21)`, RSI(Using(r), On("open"), With("timeperiod", 21)).String())
	assert.Equal(t, `bbands(col("close"); matype=1, timeperiod=10)`,
		BBands(Using(r), Params(map[string]float64{"timeperiod": 10, "matype": TypeEMA})).String())
	assert.Equal(t, `cdldoji(col("open"), col("high"), col("low"), col("close"))`, CDLDoji(Using(r)).String())
}

func TestExpr_Evaluate(t *testing.T) {
	r := testRegistry(t)
	f := testFrame(t, 100)

	out, err := f.WithColumns(
		frame.As(RSI(Using(r)), "rsi"),
		frame.As(SMA(Using(r), With("timeperiod", 10)), "sma_10"),
		MACD(Using(r)),
		frame.As(Add(Using(r)), "hl"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"open", "high", "low", "close", "volume", "rsi", "sma_10", "hl"}, out.Names())

	closes, err := f.Column("close")
	require.NoError(t, err)

	rsi, err := out.Column("rsi")
	require.NoError(t, err)
	assert.Equal(t, gotalib.Rsi(closes.Float64(), 14)[14:], rsi.Float64()[14:])

	sma, err := out.Column("sma_10")
	require.NoError(t, err)
	assert.Equal(t, gotalib.Sma(closes.Float64(), 10)[9:], sma.Float64()[9:])

	macd, err := out.Struct("close")
	require.NoError(t, err)
	assert.Equal(t, []string{"macd", "macdsignal", "macdhist"}, macd.FieldNames())

	hl, err := out.Column("hl")
	require.NoError(t, err)
	high, _ := f.Column("high")
	low, _ := f.Column("low")
	assert.InDelta(t, high.Float64()[3]+low.Float64()[3], hl.Float64()[3], 1e-9)
}

func TestExpr_Inputs(t *testing.T) {
	r := testRegistry(t)
	f := testFrame(t, 50)

	expr := frame.As(EMA(Using(r), Inputs(SMA(Using(r), With("timeperiod", 3))), With("timeperiod", 5)), "ema_of_sma")
	out, err := f.Select(expr)
	require.NoError(t, err)

	c, err := out.Column("ema_of_sma")
	require.NoError(t, err)
	values := c.Float64()
	for i := 0; i < 6; i++ {
		assert.True(t, math.IsNaN(values[i]), "row %d", i)
	}
	assert.False(t, math.IsNaN(values[6]))
}

func TestExpr_Errors(t *testing.T) {
	r := testRegistry(t)
	f := testFrame(t, 20)

	_, err := f.WithColumns(Expr("nope", Using(r)))
	assert.ErrorIs(t, err, plugin.ErrFunctionNotFound)

	_, err = f.WithColumns(RSI(Using(r), With("timeperiod", 0)))
	assert.ErrorContains(t, err, "could not compute indicator, err: TA_BAD_PARAM")
	assert.ErrorIs(t, err, frame.ErrComputation)

	_, err = f.WithColumns(MAVP(Using(r)))
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)
}

func TestExpr_DefaultRegistry(t *testing.T) {
	f := testFrame(t, 40)

	out, err := f.Select(frame.As(TRange(), "tr"))
	require.NoError(t, err)
	tr, err := out.Column("tr")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tr.Float64()[0]))
	assert.False(t, math.IsNaN(tr.Float64()[1]))
}
