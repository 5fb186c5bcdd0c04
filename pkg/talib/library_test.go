package talib

import (
	"math"
	"math/rand"
	"testing"

	gotalib "github.com/markcheno/go-talib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/tafx/pkg/pattern"
)

type ohlcv struct {
	open, high, low, close, volume []float64
}

func randomWalk(n int, seed int64) ohlcv {
	rnd := rand.New(rand.NewSource(seed))
	d := ohlcv{
		open:   make([]float64, n),
		high:   make([]float64, n),
		low:    make([]float64, n),
		close:  make([]float64, n),
		volume: make([]float64, n),
	}
	price := 100.0
	for i := 0; i < n; i++ {
		d.open[i] = price
		price += rnd.NormFloat64()
		d.close[i] = price
		d.high[i] = math.Max(d.open[i], d.close[i]) + rnd.Float64()
		d.low[i] = math.Min(d.open[i], d.close[i]) - rnd.Float64()
		d.volume[i] = 1000 + rnd.Float64()*500
	}
	return d
}

func ready(t *testing.T) *Library {
	t.Helper()
	lib := New()
	require.NoError(t, lib.Initialize())
	return lib
}

func TestLifecycle(t *testing.T) {
	lib := New()
	assert.False(t, lib.Initialized())

	_, err := lib.Call("sma", [][]float64{{1, 2, 3}}, Params{"timeperiod": 2})
	assert.ErrorIs(t, err, LibNotInitialize)
	assert.ErrorIs(t, lib.Shutdown(), LibNotInitialize)

	require.NoError(t, lib.Initialize())
	require.NoError(t, lib.Initialize())
	assert.True(t, lib.Initialized())

	require.NoError(t, lib.Shutdown())
	assert.ErrorIs(t, lib.Shutdown(), LibNotInitialize)

	assert.NotEmpty(t, lib.Version())
	assert.Equal(t, "TA_BAD_PARAM", BadParam.Error())
	assert.Equal(t, "TA_INTERNAL_ERROR", InternalError.Error())
}

// past the lookback every output must equal the direct go-talib call
func TestCall_MatchesGoTalib(t *testing.T) {
	lib := ready(t)
	d := randomWalk(300, 7)

	cases := []struct {
		name   string
		inputs [][]float64
		params Params
		want   [][]float64
	}{
		{"sma", [][]float64{d.close}, Params{"timeperiod": 30}, one(gotalib.Sma(d.close, 30))},
		{"ema", [][]float64{d.close}, Params{"timeperiod": 30}, one(gotalib.Ema(d.close, 30))},
		{"rsi", [][]float64{d.close}, Params{"timeperiod": 14}, one(gotalib.Rsi(d.close, 14))},
		{"kama", [][]float64{d.close}, Params{"timeperiod": 30}, one(gotalib.Kama(d.close, 30))},
		{"adx", [][]float64{d.high, d.low, d.close}, Params{"timeperiod": 14}, one(gotalib.Adx(d.high, d.low, d.close, 14))},
		{"atr", [][]float64{d.high, d.low, d.close}, Params{"timeperiod": 14}, one(gotalib.Atr(d.high, d.low, d.close, 14))},
		{"obv", [][]float64{d.close, d.volume}, Params{}, one(gotalib.Obv(d.close, d.volume))},
		{"correl", [][]float64{d.high, d.low}, Params{"timeperiod": 30}, one(gotalib.Correl(d.high, d.low, 30))},
		{"maxindex", [][]float64{d.close}, Params{"timeperiod": 30}, one(gotalib.MaxIndex(d.close, 30))},
		{"willr", [][]float64{d.high, d.low, d.close}, Params{"timeperiod": 14}, one(gotalib.WillR(d.high, d.low, d.close, 14))},
		{"bbands", [][]float64{d.close}, Params{"timeperiod": 5, "nbdevup": 2, "nbdevdn": 2, "matype": 0}, func() [][]float64 {
			u, m, l := gotalib.BBands(d.close, 5, 2, 2, gotalib.SMA)
			return [][]float64{u, m, l}
		}()},
		{"macd", [][]float64{d.close}, Params{"fastperiod": 12, "slowperiod": 26, "signalperiod": 9}, func() [][]float64 {
			m, s, h := gotalib.Macd(d.close, 12, 26, 9)
			return [][]float64{m, s, h}
		}()},
		{"stoch", [][]float64{d.high, d.low, d.close}, Params{
			"fastk_period": 5, "slowk_period": 3, "slowk_matype": 0, "slowd_period": 3, "slowd_matype": 0,
		}, two(gotalib.Stoch(d.high, d.low, d.close, 5, 3, gotalib.SMA, 3, gotalib.SMA))},
		{"ht_trendmode", [][]float64{d.close}, Params{}, one(gotalib.HtTrendMode(d.close))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lookback, err := lib.Lookback(tc.name, tc.params)
			require.NoError(t, err)

			got, err := lib.Call(tc.name, tc.inputs, tc.params)
			require.NoError(t, err)
			require.Len(t, got, len(tc.want))

			sym, _ := Lookup(tc.name)
			for k := range got {
				require.Len(t, got[k], 300)
				for i := 0; i < lookback; i++ {
					if sym.Outputs[k] == Integer {
						assert.Equal(t, 0.0, got[k][i])
					} else {
						assert.True(t, math.IsNaN(got[k][i]), "%s[%d][%d] = %v", tc.name, k, i, got[k][i])
					}
				}
				assert.Equal(t, tc.want[k][lookback:], got[k][lookback:])
			}
		})
	}
}

func TestCall_Lookbacks(t *testing.T) {
	lib := ready(t)
	for name, tc := range map[string]struct {
		params Params
		want   int
	}{
		"sma":      {Params{"timeperiod": 30}, 29},
		"dema":     {Params{"timeperiod": 30}, 58},
		"tema":     {Params{"timeperiod": 30}, 87},
		"t3":       {Params{"timeperiod": 5, "vfactor": 0.7}, 24},
		"adx":      {Params{"timeperiod": 14}, 27},
		"adxr":     {Params{"timeperiod": 14}, 40},
		"macd":     {Params{"fastperiod": 12, "slowperiod": 26, "signalperiod": 9}, 33},
		"macdfix":  {Params{"signalperiod": 9}, 33},
		"trix":     {Params{"timeperiod": 30}, 88},
		"stochrsi": {Params{"timeperiod": 14, "fastk_period": 5, "fastd_period": 3, "fastd_matype": 0}, 20},
		"ma":       {Params{"timeperiod": 1, "matype": 1}, 0},
		"mama":     {Params{"fastlimit": 0.5, "slowlimit": 0.05}, 32},
		"cdldoji":  {Params{}, 10},
		"ultosc":   {Params{"timeperiod1": 7, "timeperiod2": 14, "timeperiod3": 28}, 28},
	} {
		got, err := lib.Lookback(name, tc.params)
		require.NoError(t, err, name)
		assert.Equal(t, tc.want, got, name)
	}
}

func TestCall_SkipsLeadingNaN(t *testing.T) {
	lib := ready(t)
	d := randomWalk(50, 1)

	in := append([]float64{}, d.close...)
	in[0], in[1], in[2] = math.NaN(), math.NaN(), math.NaN()

	got, err := lib.Call("sma", [][]float64{in}, Params{"timeperiod": 5})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		assert.True(t, math.IsNaN(got[0][i]), "row %d", i)
	}
	want := gotalib.Sma(in[3:], 5)
	assert.Equal(t, want[4:], got[0][7:])
}

func TestCall_BeginIndexIsTheLatestInput(t *testing.T) {
	lib := ready(t)
	d := randomWalk(40, 2)

	high := append([]float64{}, d.high...)
	low := append([]float64{}, d.low...)
	high[0] = math.NaN()
	low[0], low[1], low[2], low[3] = math.NaN(), math.NaN(), math.NaN(), math.NaN()

	got, err := lib.Call("medprice", [][]float64{high, low}, Params{})
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.True(t, math.IsNaN(got[0][i]))
	}
	assert.Equal(t, (d.high[4]+d.low[4])/2, got[0][4])
}

func TestCall_ShortInput(t *testing.T) {
	lib := ready(t)

	got, err := lib.Call("rsi", [][]float64{{1, 2, 3, 4}}, Params{"timeperiod": 14})
	require.NoError(t, err)
	require.Len(t, got[0], 4)
	for _, v := range got[0] {
		assert.True(t, math.IsNaN(v))
	}

	got, err = lib.Call("minindex", [][]float64{{1, 2}}, Params{"timeperiod": 30})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, got[0])

	got, err = lib.Call("sma", [][]float64{{}}, Params{"timeperiod": 3})
	require.NoError(t, err)
	assert.Empty(t, got[0])
}

func TestCall_Errors(t *testing.T) {
	lib := ready(t)

	_, err := lib.Call("nope", [][]float64{{1}}, Params{})
	assert.ErrorIs(t, err, FuncNotFound)

	_, err = lib.Call("sma", [][]float64{{1}, {2}}, Params{"timeperiod": 2})
	assert.ErrorIs(t, err, BadParam)

	_, err = lib.Call("add", [][]float64{{1, 2}, {2}}, Params{})
	assert.ErrorIs(t, err, BadParam)

	_, err = lib.Call("ma", [][]float64{{1, 2, 3}}, Params{"timeperiod": 2, "matype": 9})
	assert.ErrorIs(t, err, BadParam)

	_, err = lib.Call("ma", [][]float64{{1, 2, 3}}, Params{"timeperiod": 2, "matype": 1.5})
	assert.ErrorIs(t, err, BadParam)

	_, err = lib.Call("sma", [][]float64{{1, 2, 3}}, Params{"timeperiod": -4})
	assert.ErrorIs(t, err, BadParam)
}

func TestCall_RecoversKernelPanic(t *testing.T) {
	register(Symbol{
		Name:     "test_panic",
		Inputs:   1,
		Lookback: constant(0),
		Kernel: func(Args, [][]float64) [][]float64 {
			panic("index out of range")
		},
	})
	defer delete(symbols, "test_panic")

	lib := ready(t)
	_, err := lib.Call("test_panic", [][]float64{{1, 2, 3}}, Params{})
	assert.ErrorIs(t, err, InternalError)
}

func TestCandleSettings(t *testing.T) {
	lib := ready(t)

	require.NoError(t, lib.SetCandleSettings(pattern.BodyDoji, pattern.HighLow, 3, 0.2))
	lookback, err := lib.Lookback("cdldoji", Params{})
	require.NoError(t, err)
	assert.Equal(t, 3, lookback)

	assert.ErrorIs(t, lib.SetCandleSettings(pattern.Kind(99), pattern.HighLow, 3, 0.2), BadParam)

	require.NoError(t, lib.RestoreCandleDefaultSettings(pattern.BodyDoji))
	assert.Equal(t, pattern.DefaultSettings(), lib.CandleSettings())

	require.NoError(t, lib.SetCandleSettings(pattern.Near, pattern.HighLow, 1, 1))
	require.NoError(t, lib.Initialize())
	assert.Equal(t, pattern.DefaultSettings(), lib.CandleSettings())
}

func TestPatternCall(t *testing.T) {
	lib := ready(t)
	d := randomWalk(200, 3)

	got, err := lib.Call("cdlengulfing", [][]float64{d.open, d.high, d.low, d.close}, Params{})
	require.NoError(t, err)
	for _, v := range got[0] {
		assert.Contains(t, []float64{-100, 0, 100}, v)
	}

	r, _ := pattern.Lookup("cdlmorningstar")
	want := r.Run(pattern.DefaultSettings(), d.open, d.high, d.low, d.close, 0.6)
	got, err = lib.Call("cdlmorningstar", [][]float64{d.open, d.high, d.low, d.close}, Params{"penetration": 0.6})
	require.NoError(t, err)
	assert.Equal(t, want, got[0])
}

func TestSymbols(t *testing.T) {
	names := Symbols()
	assert.Len(t, names, 158)
	assert.Contains(t, names, "cdl2crows")
	assert.Contains(t, names, "wma")

	mt, err := MaTypeOf(8)
	require.NoError(t, err)
	assert.Equal(t, gotalib.T3MA, mt)
	assert.Equal(t, "EMA", MaTypeName(1))
	assert.Equal(t, "MA(12)", MaTypeName(12))
}
