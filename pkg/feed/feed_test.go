package feed

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/frame"
)

var base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func minuteCSV(n int, header string) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(header + "\n")
	}
	for i := range n {
		ts := base.Add(time.Duration(i) * time.Minute).Unix()
		fmt.Fprintf(&b, "%d,%d,%d,%d,%d,10\n", ts, 100+i, 101+i, 99+i, 102+i)
	}
	return b.String()
}

func TestReadCSV_NoHeader(t *testing.T) {
	candles, err := ReadCSV(strings.NewReader(minuteCSV(3, "")), Options{Pair: "BTCUSDT"})
	require.NoError(t, err)
	require.Len(t, candles, 3)

	c := candles[1]
	assert.Equal(t, "BTCUSDT", c.Pair)
	assert.Equal(t, base.Add(time.Minute), c.Time)
	assert.Equal(t, 101.0, c.Open)
	assert.Equal(t, 102.0, c.Close)
	assert.Equal(t, 100.0, c.Low)
	assert.Equal(t, 103.0, c.High)
	assert.Equal(t, 10.0, c.Volume)
	assert.Nil(t, c.Metadata)
}

func TestReadCSV_Header(t *testing.T) {
	data := "Time,High,Low,Open,Close,Volume,periods\n" +
		"2024-01-01T00:00:00Z,11,9,10,10.5,100,5\n" +
		"2024-01-01T01:00:00Z,12,10,10.5,11.5,120,6\n"

	candles, err := ReadCSV(strings.NewReader(data), Options{})
	require.NoError(t, err)
	require.Len(t, candles, 2)
	assert.Equal(t, base.Add(time.Hour), candles[1].Time)
	assert.Equal(t, 12.0, candles[1].High)
	assert.Equal(t, map[string]float64{"periods": 6}, candles[1].Metadata)

	_, err = ReadCSV(strings.NewReader("time,open,close\n1,2,3\n"), Options{})
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadCSV(strings.NewReader(""), Options{})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = ReadCSV(strings.NewReader("1,a,2,3,4,5\n"), Options{})
	assert.Error(t, err)
}

func TestReadCSV_HeikinAshi(t *testing.T) {
	candles, err := ReadCSV(strings.NewReader(minuteCSV(2, "")), Options{HeikinAshi: true})
	require.NoError(t, err)

	// first bar: close is the ohlc mean, open the mean of open and close
	assert.Equal(t, (100.0+101+99+102)/4, candles[0].Close)
	assert.Equal(t, (100.0+101)/2, candles[0].Open)
}

func TestResample(t *testing.T) {
	// starts one minute after the hour boundary, so the first four rows are dropped
	candles, err := ReadCSV(strings.NewReader(minuteCSV(16, "")), Options{})
	require.NoError(t, err)
	candles = candles[1:]

	out, err := Resample(candles, "1m", "5m")
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, base.Add(5*time.Minute), out[0].Time)
	assert.Equal(t, 105.0, out[0].Open)
	assert.Equal(t, 110.0, out[0].Close)
	assert.Equal(t, 104.0, out[0].Low)
	assert.Equal(t, 111.0, out[0].High)
	assert.Equal(t, 50.0, out[0].Volume)
	assert.True(t, out[0].Complete)

	same, err := Resample(candles, "1m", "1m")
	require.NoError(t, err)
	assert.Len(t, same, len(candles))

	_, err = Resample(candles, "5m", "1m")
	assert.ErrorIs(t, err, ErrInvalidTimeframe)
	_, err = Resample(candles, "1m", "7m")
	assert.ErrorIs(t, err, ErrInvalidTimeframe)
	_, err = Resample(candles, "1m", "soon")
	assert.ErrorIs(t, err, ErrInvalidTimeframe)
}

func TestReadCSV_Target(t *testing.T) {
	candles, err := ReadCSV(strings.NewReader(minuteCSV(10, "")), Options{Timeframe: "1m", Target: "5m"})
	require.NoError(t, err)
	assert.Len(t, candles, 2)
}

func TestLimitAndTail(t *testing.T) {
	candles, err := ReadCSV(strings.NewReader(minuteCSV(10, "")), Options{})
	require.NoError(t, err)

	assert.Len(t, Limit(candles, 3*time.Minute), 3)
	assert.Empty(t, Limit(nil, time.Minute))

	tail, err := Tail(candles, 4)
	require.NoError(t, err)
	assert.Equal(t, candles[6:], tail)

	_, err = Tail(candles, 11)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candles.csv")
	candles := []core.Candle{
		{Time: base, Open: 1, Close: 2, Low: 0.5, High: 2.5, Volume: 10, Metadata: map[string]float64{"b": 2, "a": 1}},
		{Time: base.Add(time.Hour), Open: 2, Close: 3, Low: 1.5, High: 3.5, Volume: 11, Metadata: map[string]float64{"b": 4, "a": 3}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, candles, 2))
	assert.True(t, strings.HasPrefix(buf.String(), "time,open,close,low,high,volume,a,b\n"))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := LoadCSV(path, Options{})
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, candles[1].Metadata, loaded[1].Metadata)
	assert.Equal(t, candles[1].High, loaded[1].High)
	assert.Equal(t, candles[1].Time, loaded[1].Time)

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"), Options{})
	assert.Error(t, err)
}

func TestWriteFrame(t *testing.T) {
	candles, err := ReadCSV(strings.NewReader(minuteCSV(2, "")), Options{})
	require.NoError(t, err)

	f, err := Frame("X", candles)
	require.NoError(t, err)
	f, err = f.WithColumns(frame.As(frame.Lit(math.NaN()), "empty"))
	require.NoError(t, err)
	flags, err := frame.New(frame.NewInt32("flag", []int32{0, 100}))
	require.NoError(t, err)
	flag, err := flags.Column("flag")
	require.NoError(t, err)
	f, err = f.WithColumns(frame.As(literalColumn{flag}, "flag"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, f))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "time,open,high,low,close,volume,empty,flag", lines[0])
	assert.Equal(t, fmt.Sprintf("%d,101,103,100,102,10,,100", base.Add(time.Minute).Unix()), lines[2])
}

type literalColumn struct{ c *frame.Column }

func (l literalColumn) Eval(*frame.Frame) (frame.Value, error) { return l.c, nil }
func (l literalColumn) String() string                         { return "literal" }
