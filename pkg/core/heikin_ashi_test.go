package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeikinAshi(t *testing.T) {
	ha := NewHeikinAshi()

	first := Candle{Pair: "BTCUSDT", Open: 10, High: 14, Low: 8, Close: 12, Volume: 5}
	got := first.ToHeikinAshi(ha)
	assert.Equal(t, 11.0, got.Open)
	assert.Equal(t, 11.0, got.Close)
	assert.Equal(t, 14.0, got.High)
	assert.Equal(t, 8.0, got.Low)
	assert.Equal(t, 5.0, got.Volume)

	second := Candle{Pair: "BTCUSDT", Open: 12, High: 16, Low: 12, Close: 16}
	got = second.ToHeikinAshi(ha)
	assert.Equal(t, 11.0, got.Open)
	assert.Equal(t, 14.0, got.Close)
	assert.Equal(t, 16.0, got.High)
	assert.Equal(t, 11.0, got.Low)
}
