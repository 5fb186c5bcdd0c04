package binance

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/jpillora/backoff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raykavin/tafx/pkg/feed"
)

type fakeSource struct {
	interval time.Duration
	failures int
	calls    int
}

func (f *fakeSource) Klines(_ context.Context, _, _ string, start, end time.Time, limit int) ([]*binance.Kline, error) {
	f.calls++
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("rate limited")
	}

	var klines []*binance.Kline
	for t := start; !t.After(end) && len(klines) < limit; t = t.Add(f.interval) {
		price := strconv.FormatInt(t.Unix()%1000, 10)
		klines = append(klines, &binance.Kline{
			OpenTime: t.UnixMilli(),
			Open:     price,
			High:     price,
			Low:      price,
			Close:    price,
			Volume:   "1.5",
		})
	}
	return klines, nil
}

func newTestDownloader(source KlineSource) *Downloader {
	d := NewDownloader(WithSource(source))
	d.backoff = &backoff.Backoff{Min: time.Millisecond, Max: 2 * time.Millisecond}
	return d
}

func TestDownload(t *testing.T) {
	source := &fakeSource{interval: time.Minute}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(2500 * time.Minute)

	var buf bytes.Buffer
	n, err := newTestDownloader(source).Download(context.Background(), "BTCUSDT", "1m", start, end, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2500, n)
	assert.Equal(t, 3, source.calls)

	candles, err := feed.ReadCSV(strings.NewReader(buf.String()), feed.Options{Pair: "BTCUSDT"})
	require.NoError(t, err)
	require.Len(t, candles, 2500)
	assert.Equal(t, start, candles[0].Time)
	assert.Equal(t, end.Add(-time.Minute), candles[2499].Time)
	assert.Equal(t, 1.5, candles[10].Volume)
}

func TestDownload_Retry(t *testing.T) {
	source := &fakeSource{interval: time.Hour, failures: 2}
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	n, err := newTestDownloader(source).Download(context.Background(), "ETHUSDT", "1h", start, start.Add(24*time.Hour), &buf)
	require.NoError(t, err)
	assert.Equal(t, 24, n)
	assert.Equal(t, 3, source.calls)

	source = &fakeSource{interval: time.Hour, failures: maxAttempts}
	_, err = newTestDownloader(source).Download(context.Background(), "ETHUSDT", "1h", start, start.Add(time.Hour), &buf)
	assert.ErrorContains(t, err, "rate limited")
}

func TestDownload_Invalid(t *testing.T) {
	d := newTestDownloader(&fakeSource{interval: time.Minute})
	start := time.Now()

	_, err := d.Download(context.Background(), "X", "soon", start, start.Add(time.Hour), &bytes.Buffer{})
	assert.Error(t, err)

	_, err = d.Download(context.Background(), "X", "1m", start, start, &bytes.Buffer{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d = newTestDownloader(&fakeSource{interval: time.Minute, failures: 1})
	_, err = d.Download(ctx, "X", "1m", start, start.Add(time.Hour), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

type malformedSource struct {
	fakeSource
	field string
}

func (m *malformedSource) Klines(ctx context.Context, pair, interval string, start, end time.Time, limit int) ([]*binance.Kline, error) {
	klines, err := m.fakeSource.Klines(ctx, pair, interval, start, end, limit)
	if err != nil || len(klines) < 3 {
		return klines, err
	}
	switch m.field {
	case "open":
		klines[2].Open = "abc"
	case "volume":
		klines[2].Volume = ""
	}
	return klines, nil
}

func TestDownload_MalformedKline(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for _, field := range []string{"open", "volume"} {
		t.Run(field, func(t *testing.T) {
			source := &malformedSource{fakeSource: fakeSource{interval: time.Minute}, field: field}

			var buf bytes.Buffer
			n, err := newTestDownloader(source).Download(context.Background(), "BTCUSDT", "1m", start, start.Add(10*time.Minute), &buf)
			require.Error(t, err)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
			assert.ErrorContains(t, err, field)
			assert.ErrorContains(t, err, "2024-03-01T00:02:00Z")
			assert.Equal(t, 2, n)
		})
	}
}

func TestToCandle(t *testing.T) {
	k := &binance.Kline{
		OpenTime: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli(),
		Open:     "10.5",
		High:     "12",
		Low:      "9.25",
		Close:    "11",
		Volume:   "300",
	}
	candle, err := toCandle("BTCUSDT", k)
	require.NoError(t, err)
	assert.Equal(t, 10.5, candle.Open)
	assert.Equal(t, 12.0, candle.High)
	assert.Equal(t, 9.25, candle.Low)
	assert.Equal(t, 11.0, candle.Close)
	assert.Equal(t, 300.0, candle.Volume)
	assert.True(t, candle.Complete)

	k.High = "1e400"
	_, err = toCandle("BTCUSDT", k)
	assert.ErrorIs(t, err, strconv.ErrRange)
	assert.ErrorContains(t, err, "high")
}
