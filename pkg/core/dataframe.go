package core

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// Dataframe is a time series container for OHLCV data plus any extra
// numeric columns carried by the source
type Dataframe struct {
	Pair string

	Close  Series[float64]
	Open   Series[float64]
	High   Series[float64]
	Low    Series[float64]
	Volume Series[float64]

	Time       []time.Time
	LastUpdate time.Time

	// Extra columns keyed by name
	Metadata map[string]Series[float64]
}

// NewDataframe lays out candles column by column. Metadata keys missing
// from a candle are stored as zero.
func NewDataframe(pair string, candles []Candle) Dataframe {
	n := len(candles)
	df := Dataframe{
		Pair:     pair,
		Close:    make(Series[float64], n),
		Open:     make(Series[float64], n),
		High:     make(Series[float64], n),
		Low:      make(Series[float64], n),
		Volume:   make(Series[float64], n),
		Time:     make([]time.Time, n),
		Metadata: make(map[string]Series[float64]),
	}

	keys := lo.Uniq(lo.FlatMap(candles, func(c Candle, _ int) []string {
		return lo.Keys(c.Metadata)
	}))
	for _, key := range keys {
		df.Metadata[key] = make(Series[float64], n)
	}

	for i, c := range candles {
		df.Close[i] = c.Close
		df.Open[i] = c.Open
		df.High[i] = c.High
		df.Low[i] = c.Low
		df.Volume[i] = c.Volume
		df.Time[i] = c.Time
		for key, value := range c.Metadata {
			df.Metadata[key][i] = value
		}
	}

	if n > 0 {
		df.LastUpdate = candles[n-1].Time
	}

	return df
}

// Len returns the number of rows
func (df Dataframe) Len() int {
	return len(df.Time)
}

// MetadataKeys returns the extra column names in sorted order
func (df Dataframe) MetadataKeys() []string {
	keys := lo.Keys(df.Metadata)
	sort.Strings(keys)
	return keys
}
