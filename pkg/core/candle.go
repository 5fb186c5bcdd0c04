package core

import (
	"strconv"
	"time"
)

// Candle represents a bar of OHLCV data
type Candle struct {
	Pair     string
	Time     time.Time
	Open     float64
	Close    float64
	Low      float64
	High     float64
	Volume   float64
	Complete bool

	// Additional columns from CSV inputs
	Metadata map[string]float64
}

// ToSlice converts a candle to a string slice in the default CSV column
// order (time, open, close, low, high, volume)
func (c Candle) ToSlice(precision int) []string {
	return []string{
		strconv.FormatInt(c.Time.Unix(), 10),
		strconv.FormatFloat(c.Open, 'f', precision, 64),
		strconv.FormatFloat(c.Close, 'f', precision, 64),
		strconv.FormatFloat(c.Low, 'f', precision, 64),
		strconv.FormatFloat(c.High, 'f', precision, 64),
		strconv.FormatFloat(c.Volume, 'f', precision, 64),
	}
}

// ToHeikinAshi transforms a regular candle into a Heikin-Ashi candle
func (c Candle) ToHeikinAshi(ha *HeikinAshi) Candle {
	haCandle := ha.Next(c)

	return Candle{
		Pair:     c.Pair,
		Open:     haCandle.Open,
		High:     haCandle.High,
		Low:      haCandle.Low,
		Close:    haCandle.Close,
		Volume:   c.Volume,
		Complete: c.Complete,
		Time:     c.Time,
		Metadata: c.Metadata,
	}
}
