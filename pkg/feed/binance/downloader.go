// Package binance downloads historical spot candles into CSV files that
// feed.LoadCSV reads back
package binance

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/jpillora/backoff"
	"github.com/schollz/progressbar/v3"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/logger"
)

const (
	batchSize   = 1000
	maxAttempts = 5
	precision   = 8
)

var csvHeader = []string{"time", "open", "close", "low", "high", "volume"}

// KlineSource returns at most limit klines opened between start and end
type KlineSource interface {
	Klines(ctx context.Context, pair, interval string, start, end time.Time, limit int) ([]*binance.Kline, error)
}

// client adapts the Binance REST client to KlineSource
type client struct {
	*binance.Client
}

func (c client) Klines(ctx context.Context, pair, interval string, start, end time.Time, limit int) ([]*binance.Kline, error) {
	return c.NewKlinesService().
		Symbol(pair).
		Interval(interval).
		StartTime(start.UnixMilli()).
		EndTime(end.UnixMilli()).
		Limit(limit).
		Do(ctx)
}

// Downloader pages through the kline history of a pair
type Downloader struct {
	source   KlineSource
	log      logger.Logger
	progress io.Writer
	backoff  *backoff.Backoff
}

// Option configures a Downloader.
type Option func(*Downloader)

// WithCredentials signs requests with an API key pair
func WithCredentials(key, secret string) Option {
	return func(d *Downloader) {
		d.source = client{binance.NewClient(key, secret)}
	}
}

// WithSource replaces the Binance client
func WithSource(source KlineSource) Option {
	return func(d *Downloader) {
		d.source = source
	}
}

// WithLogger sets the logger that reports progress and retries.
func WithLogger(log logger.Logger) Option {
	return func(d *Downloader) {
		d.log = log
	}
}

// WithProgress draws a progress bar on w
func WithProgress(w io.Writer) Option {
	return func(d *Downloader) {
		d.progress = w
	}
}

// NewDownloader returns a downloader using an anonymous Binance client
// unless an option replaces it. Failed requests are retried with backoff.
func NewDownloader(options ...Option) *Downloader {
	d := &Downloader{
		source:   client{binance.NewClient("", "")},
		log:      logger.Nop(),
		progress: io.Discard,
		backoff: &backoff.Backoff{
			Min: 100 * time.Millisecond,
			Max: 1 * time.Second,
		},
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Download writes the candles of pair opened in [start, end) to out as CSV
// and returns how many were written
func (d *Downloader) Download(ctx context.Context, pair, timeframe string, start, end time.Time, out io.Writer) (int, error) {
	interval, err := str2duration.ParseDuration(timeframe)
	if err != nil {
		return 0, fmt.Errorf("timeframe %q: %w", timeframe, err)
	}
	if !start.Before(end) {
		return 0, fmt.Errorf("empty range %s - %s", start, end)
	}

	expected := int64(end.Sub(start) / interval)
	d.log.WithFields(map[string]any{
		"pair":      pair,
		"timeframe": timeframe,
	}).Infof("downloading %d candles", expected)

	bar := progressbar.NewOptions64(expected,
		progressbar.OptionSetWriter(d.progress),
		progressbar.OptionSetDescription(pair),
		progressbar.OptionShowCount(),
	)
	defer bar.Close()

	writer := csv.NewWriter(out)
	if err := writer.Write(csvHeader); err != nil {
		return 0, err
	}

	written := 0
	for batchStart := start; batchStart.Before(end); {
		batchEnd := batchStart.Add(interval * batchSize)
		if batchEnd.After(end) {
			batchEnd = end
		}

		klines, err := d.fetch(ctx, pair, timeframe, batchStart, batchEnd.Add(-time.Millisecond))
		if err != nil {
			return written, err
		}

		for _, k := range klines {
			candle, err := toCandle(pair, k)
			if err != nil {
				return written, err
			}
			if err := writer.Write(candle.ToSlice(precision)); err != nil {
				return written, err
			}
			written++
		}
		_ = bar.Add(len(klines))

		batchStart = batchEnd
	}

	if missing := int(expected) - written; missing > 0 {
		d.log.Warnf("%d missing candles", missing)
	}

	writer.Flush()
	return written, writer.Error()
}

func (d *Downloader) fetch(ctx context.Context, pair, timeframe string, start, end time.Time) ([]*binance.Kline, error) {
	d.backoff.Reset()
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		klines, err := d.source.Klines(ctx, pair, timeframe, start, end, batchSize)
		if err == nil {
			return klines, nil
		}
		if attempt == maxAttempts {
			return nil, fmt.Errorf("klines %s %s after %d attempts: %w", pair, start.Format(time.RFC3339), attempt, err)
		}

		wait := d.backoff.Duration()
		d.log.WithError(err).Warnf("retrying in %s", wait)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

// toCandle parses the decimal strings of a kline
func toCandle(pair string, k *binance.Kline) (core.Candle, error) {
	candle := core.Candle{
		Pair:     pair,
		Time:     time.UnixMilli(k.OpenTime).UTC(),
		Complete: true,
	}

	fields := []struct {
		name  string
		value string
		dst   *float64
	}{
		{"open", k.Open, &candle.Open},
		{"close", k.Close, &candle.Close},
		{"high", k.High, &candle.High},
		{"low", k.Low, &candle.Low},
		{"volume", k.Volume, &candle.Volume},
	}
	for _, f := range fields {
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			return core.Candle{}, fmt.Errorf("kline %s %s: %s: %w", pair, candle.Time.Format(time.RFC3339), f.name, err)
		}
		*f.dst = v
	}
	return candle, nil
}
