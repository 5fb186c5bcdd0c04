package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bars struct {
	open, high, low, close []float64
}

func (b *bars) add(o, h, l, c float64) {
	b.open = append(b.open, o)
	b.high = append(b.high, h)
	b.low = append(b.low, l)
	b.close = append(b.close, c)
}

// flat appends n white candles with a body of 1 and a range of 1.4
func (b *bars) flat(n int) {
	for i := 0; i < n; i++ {
		b.add(10, 11.2, 9.8, 11)
	}
}

func run(t *testing.T, name string, b bars, pen float64) []float64 {
	t.Helper()
	r, ok := Lookup(name)
	require.True(t, ok, name)
	return r.Run(DefaultSettings(), b.open, b.high, b.low, b.close, pen)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 61)
	assert.Equal(t, "cdl2crows", names[0])
	assert.Contains(t, names, "cdlxsidegap3methods")
}

func TestLookback(t *testing.T) {
	s := DefaultSettings()
	for name, want := range map[string]int{
		"cdldoji":             10,
		"cdlengulfing":        2,
		"cdlhammer":           11,
		"cdl3blackcrows":      13,
		"cdlmorningstar":      12,
		"cdlhikkake":          5,
		"cdlhikkakemod":       10,
		"cdlbreakaway":        14,
		"cdlxsidegap3methods": 2,
	} {
		r, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, r.Lookback(s), name)
	}

	s[Near].AvgPeriod = 0
	r, _ := Lookup("cdlhikkakemod")
	assert.Equal(t, 6, r.Lookback(s))
}

func TestDoji(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(10, 11, 9, 10.1)
	b.add(10, 11, 9, 11)

	out := run(t, "cdldoji", b, 0)
	require.Len(t, out, 12)
	assert.Equal(t, make([]float64, 10), out[:10])
	assert.Equal(t, 100.0, out[10])
	assert.Equal(t, 0.0, out[11])
}

func TestEngulfing(t *testing.T) {
	var b bars
	b.add(10, 11, 9, 10.5)
	b.add(11, 11.2, 9.8, 10)
	b.add(9.5, 11.8, 9.4, 11.5)
	b.add(11.5, 11.6, 11, 11.2)

	out := run(t, "cdlengulfing", b, 0)
	assert.Equal(t, []float64{0, 0, 100, 0}, out)
}

func TestMorningStar(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(12, 12.1, 7.9, 8)
	b.add(7.5, 7.6, 7.3, 7.4)
	b.add(7.6, 11.1, 7.5, 11)

	out := run(t, "cdlmorningstar", b, 0.3)
	assert.Equal(t, 100.0, out[12])

	out = run(t, "cdlmorningstar", b, 1.0)
	assert.Equal(t, 0.0, out[12])
}

func TestHikkake(t *testing.T) {
	var b bars
	b.add(7, 10, 5, 7)
	b.add(7, 9, 6, 7)
	b.add(6, 8, 5.5, 6)
	b.add(7, 8.5, 6, 7)
	b.add(7.5, 8.6, 6.5, 7.5)
	b.add(9.5, 10, 7, 9.5)

	out := run(t, "cdlhikkake", b, 0)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 200}, out)
}

func TestShortInput(t *testing.T) {
	var b bars
	b.flat(3)
	out := run(t, "cdldoji", b, 0)
	assert.Equal(t, []float64{0, 0, 0}, out)
}

func TestSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, Setting{Range: HighLow, AvgPeriod: 10, Factor: 0.1}, s[BodyDoji])

	require.NoError(t, s.Set(BodyDoji, Setting{Range: HighLow, AvgPeriod: 0, Factor: 0.25}))
	r, _ := Lookup("cdldoji")
	assert.Equal(t, 0, r.Lookback(s))

	// threshold is a quarter of the range of 2
	out := r.Run(s, []float64{10}, []float64{11}, []float64{9}, []float64{10.6}, 0)
	assert.Equal(t, []float64{0}, out)
	out = r.Run(s, []float64{10}, []float64{11}, []float64{9}, []float64{10.4}, 0)
	assert.Equal(t, []float64{100}, out)

	assert.ErrorIs(t, s.Set(Kind(42), Setting{}), ErrUnknownSetting)
	assert.ErrorIs(t, s.Set(Near, Setting{AvgPeriod: -1}), ErrUnknownSetting)

	require.NoError(t, s.Restore(BodyDoji))
	assert.Equal(t, DefaultSettings(), s)

	s[Far].Factor = 9
	require.NoError(t, s.Restore(AllSettings))
	assert.Equal(t, DefaultSettings(), s)

	kind, err := ParseKind("ShadowVeryShort")
	require.NoError(t, err)
	assert.Equal(t, ShadowVeryShort, kind)
	_, err = ParseKind("Tiny")
	assert.ErrorIs(t, err, ErrUnknownSetting)
}

func TestDarkCloudCover_Penetration(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(10, 14.2, 9.9, 14)
	b.add(14.5, 14.6, 11.4, 11.5)

	r, _ := Lookup("cdldarkcloudcover")
	assert.Equal(t, 0.5, r.Penetration)

	// the close must fall below 14 - 4*penetration
	assert.Equal(t, -100.0, run(t, "cdldarkcloudcover", b, 0.5)[11])
	assert.Equal(t, -100.0, run(t, "cdldarkcloudcover", b, 0.3)[11])
	assert.Equal(t, 0.0, run(t, "cdldarkcloudcover", b, 0.7)[11])
}

func TestMatHold_Penetration(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(10, 15.1, 9.9, 15)
	b.add(16, 16.1, 15.4, 15.5)
	b.add(14.8, 14.9, 14.3, 14.4)
	b.add(14.5, 14.6, 14, 14.1)
	b.add(14.2, 16.6, 14.1, 16.5)

	r, _ := Lookup("cdlmathold")
	assert.Equal(t, 0.5, r.Penetration)

	out := run(t, "cdlmathold", b, 0.5)
	require.Len(t, out, 15)
	assert.Equal(t, 100.0, out[14])

	// reaction bodies must stay above 15 - 5*penetration
	assert.Equal(t, 0.0, run(t, "cdlmathold", b, 0.1)[14])
}

func TestAbandonedBaby_Penetration(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(10, 14.1, 9.9, 14)
	b.add(15, 15.3, 14.8, 15.05)
	b.add(13.5, 13.6, 11.4, 11.5)

	r, _ := Lookup("cdlabandonedbaby")
	assert.Equal(t, 0.3, r.Penetration)

	assert.Equal(t, -100.0, run(t, "cdlabandonedbaby", b, 0.3)[12])
	assert.Equal(t, 0.0, run(t, "cdlabandonedbaby", b, 0.7)[12])
}

func TestHikkakeMod(t *testing.T) {
	t.Run("bullish", func(t *testing.T) {
		var b bars
		b.flat(10)
		b.add(10, 12, 8, 10)
		b.add(9, 11.5, 8.5, 8.6)
		b.add(10, 11, 9, 10)
		b.add(10, 10.5, 8.8, 9)
		b.add(10, 11.6, 9.9, 11.5)

		out := run(t, "cdlhikkakemod", b, 0)
		assert.Equal(t, make([]float64, 13), out[:13])
		assert.Equal(t, 100.0, out[13])
		assert.Equal(t, 200.0, out[14])
	})

	t.Run("bearish", func(t *testing.T) {
		var b bars
		b.flat(10)
		b.add(10, 12, 8, 10)
		b.add(11, 11.5, 8.5, 11.4)
		b.add(10, 11, 9, 10)
		b.add(10, 11.2, 9.2, 11)
		b.add(10, 10.1, 8.4, 8.5)

		out := run(t, "cdlhikkakemod", b, 0)
		assert.Equal(t, -100.0, out[13])
		assert.Equal(t, -200.0, out[14])
	})
}

func TestThreeLineStrike(t *testing.T) {
	var up bars
	up.flat(10)
	up.add(10, 11.1, 9.9, 11)
	up.add(10.5, 12.1, 10.4, 12)
	up.add(11.5, 13.1, 11.4, 13)
	up.add(13.5, 13.6, 9.4, 9.5)
	assert.Equal(t, 100.0, run(t, "cdl3linestrike", up, 0)[13])

	var down bars
	down.flat(10)
	down.add(13, 13.1, 11.9, 12)
	down.add(12.5, 12.6, 10.9, 11)
	down.add(11.5, 11.6, 9.9, 10)
	down.add(9.5, 13.6, 9.4, 13.5)
	assert.Equal(t, -100.0, run(t, "cdl3linestrike", down, 0)[13])
}

func TestAdvanceBlock(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(10, 13.05, 9.9, 13)
	b.add(11, 14.05, 10.9, 14)
	b.add(13, 14.4, 12.9, 14.3)

	out := run(t, "cdladvanceblock", b, 0)
	assert.Equal(t, -100.0, out[12])

	// a third body as large as the second is not weakening
	b.close[12] = 16
	b.high[12] = 16.05
	assert.Equal(t, 0.0, run(t, "cdladvanceblock", b, 0)[12])
}

func TestCounterattack(t *testing.T) {
	var bull bars
	bull.flat(10)
	bull.add(14, 14.1, 10.9, 11)
	bull.add(8, 11.1, 7.9, 11.02)
	assert.Equal(t, 100.0, run(t, "cdlcounterattack", bull, 0)[11])

	var bear bars
	bear.flat(10)
	bear.add(10, 13.1, 9.9, 13)
	bear.add(16, 16.1, 12.9, 12.98)
	assert.Equal(t, -100.0, run(t, "cdlcounterattack", bear, 0)[11])

	// closes too far apart
	bear.close[11] = 12.5
	assert.Equal(t, 0.0, run(t, "cdlcounterattack", bear, 0)[11])
}

func TestSideGapThreeMethods(t *testing.T) {
	var up bars
	up.add(10, 12.1, 9.9, 12)
	up.add(12.5, 14.1, 12.4, 14)
	up.add(13, 13.1, 10.9, 11)
	assert.Equal(t, []float64{0, 0, 100}, run(t, "cdlxsidegap3methods", up, 0))

	var down bars
	down.add(14, 14.1, 11.9, 12)
	down.add(11.5, 11.6, 9.9, 10)
	down.add(11, 13.1, 10.9, 13)
	assert.Equal(t, []float64{0, 0, -100}, run(t, "cdlxsidegap3methods", down, 0))
}

func TestStalledPattern(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(10, 12.1, 9.9, 12)
	b.add(11.5, 13.55, 11.4, 13.5)
	b.add(13.5, 13.8, 13.4, 13.7)

	out := run(t, "cdlstalledpattern", b, 0)
	require.Len(t, out, 13)
	assert.Equal(t, -100.0, out[12])

	// a long third body is no stall
	b.close[12] = 15.5
	b.high[12] = 15.6
	assert.Equal(t, 0.0, run(t, "cdlstalledpattern", b, 0)[12])
}

func TestRickshawMan(t *testing.T) {
	var b bars
	b.flat(10)
	b.add(10.5, 11.5, 9.5, 10.52)
	assert.Equal(t, 100.0, run(t, "cdlrickshawman", b, 0)[10])

	// body near the high, away from the midpoint
	b.open[10], b.close[10] = 11.3, 11.32
	assert.Equal(t, 0.0, run(t, "cdlrickshawman", b, 0)[10])
}
