package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataframe(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	candles := []Candle{
		{Time: base, Open: 1, High: 3, Low: 0.5, Close: 2, Volume: 10, Metadata: map[string]float64{"lsr": 1.1}},
		{Time: base.Add(time.Hour), Open: 2, High: 4, Low: 1.5, Close: 3, Volume: 20},
		{Time: base.Add(2 * time.Hour), Open: 3, High: 5, Low: 2.5, Close: 4, Volume: 30, Metadata: map[string]float64{"lsr": 1.3}},
	}

	df := NewDataframe("BTCUSDT", candles)
	require.Equal(t, 3, df.Len())
	assert.Equal(t, "BTCUSDT", df.Pair)
	assert.Equal(t, Series[float64]{2, 3, 4}, df.Close)
	assert.Equal(t, Series[float64]{10, 20, 30}, df.Volume)
	assert.Equal(t, Series[float64]{1.1, 0, 1.3}, df.Metadata["lsr"])
	assert.Equal(t, []string{"lsr"}, df.MetadataKeys())
	assert.Equal(t, base.Add(2*time.Hour), df.LastUpdate)
}

func TestNewDataframe_Empty(t *testing.T) {
	df := NewDataframe("ETHUSDT", nil)
	assert.Equal(t, 0, df.Len())
	assert.True(t, df.LastUpdate.IsZero())
}
