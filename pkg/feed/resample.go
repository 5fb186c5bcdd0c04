package feed

import (
	"fmt"
	"math"
	"time"

	"github.com/samber/lo"
	"github.com/xhit/go-str2duration/v2"

	"github.com/raykavin/tafx/pkg/core"
)

// Resample merges candles of timeframe from into candles of timeframe to.
// Rows before the first period boundary and a trailing partial period are
// dropped.
func Resample(candles []core.Candle, from, to string) ([]core.Candle, error) {
	fromDuration, err := parseTimeframe(from)
	if err != nil {
		return nil, err
	}
	toDuration, err := parseTimeframe(to)
	if err != nil {
		return nil, err
	}
	if toDuration < fromDuration {
		return nil, fmt.Errorf("cannot resample %s to %s: %w", from, to, ErrInvalidTimeframe)
	}
	if from == to || len(candles) == 0 {
		return append([]core.Candle(nil), candles...), nil
	}

	start := 0
	for ; start < len(candles); start++ {
		first, err := onBoundary(candles[start].Time, to)
		if err != nil {
			return nil, err
		}
		if first {
			break
		}
	}

	var (
		out  []core.Candle
		cur  core.Candle
		open bool
	)
	for _, c := range candles[start:] {
		if !open {
			cur, open = c, true
		} else {
			cur.High = math.Max(cur.High, c.High)
			cur.Low = math.Min(cur.Low, c.Low)
			cur.Close = c.Close
			cur.Volume += c.Volume
			cur.Metadata = c.Metadata
		}

		last, err := onBoundary(c.Time.Add(fromDuration), to)
		if err != nil {
			return nil, err
		}
		if last {
			cur.Complete = true
			out = append(out, cur)
			open = false
		}
	}

	return out, nil
}

// Limit keeps the candles newer than d before the last one
func Limit(candles []core.Candle, d time.Duration) []core.Candle {
	if len(candles) == 0 {
		return candles
	}
	start := candles[len(candles)-1].Time.Add(-d)
	return lo.Filter(candles, func(c core.Candle, _ int) bool {
		return c.Time.After(start)
	})
}

// Tail returns the last n candles
func Tail(candles []core.Candle, n int) ([]core.Candle, error) {
	if len(candles) < n {
		return nil, fmt.Errorf("want %d candles, have %d: %w", n, len(candles), ErrInsufficientData)
	}
	return candles[len(candles)-n:], nil
}

func parseTimeframe(timeframe string) (time.Duration, error) {
	d, err := str2duration.ParseDuration(timeframe)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%q: %w", timeframe, ErrInvalidTimeframe)
	}
	return d, nil
}

// onBoundary reports whether t opens a period of timeframe. Weeks start
// on Sunday, shorter periods are aligned on UTC midnight.
func onBoundary(t time.Time, timeframe string) (bool, error) {
	t = t.UTC()
	if timeframe == "1w" {
		return t.Weekday() == time.Sunday && t.Equal(t.Truncate(24*time.Hour)), nil
	}

	d, err := parseTimeframe(timeframe)
	if err != nil {
		return false, err
	}
	if d > 24*time.Hour || (24*time.Hour)%d != 0 {
		return false, fmt.Errorf("%q does not divide a day: %w", timeframe, ErrInvalidTimeframe)
	}
	return t.Equal(t.Truncate(d)), nil
}
