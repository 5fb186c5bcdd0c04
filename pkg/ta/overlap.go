package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Overlap Studies
// ------------------------------------------

// BBands calculates Bollinger Bands
// Fields: upperband, middleband, lowerband
func BBands(opts ...Option) frame.Expr { return Expr("bbands", opts...) }

// DEMA calculates Double Exponential Moving Average
func DEMA(opts ...Option) frame.Expr { return Expr("dema", opts...) }

// EMA calculates Exponential Moving Average
func EMA(opts ...Option) frame.Expr { return Expr("ema", opts...) }

// HTTrendline calculates Hilbert Transform - Instantaneous Trendline
func HTTrendline(opts ...Option) frame.Expr { return Expr("ht_trendline", opts...) }

// KAMA calculates Kaufman Adaptive Moving Average
func KAMA(opts ...Option) frame.Expr { return Expr("kama", opts...) }

// MA calculates Moving average
func MA(opts ...Option) frame.Expr { return Expr("ma", opts...) }

// MAMA calculates MESA Adaptive Moving Average
// Fields: mama, fama
func MAMA(opts ...Option) frame.Expr { return Expr("mama", opts...) }

// MAVP calculates Moving average with variable period
func MAVP(opts ...Option) frame.Expr { return Expr("mavp", opts...) }

// MidPoint calculates MidPoint over period
func MidPoint(opts ...Option) frame.Expr { return Expr("midpoint", opts...) }

// MidPrice calculates Midpoint Price over period
func MidPrice(opts ...Option) frame.Expr { return Expr("midprice", opts...) }

// SAR calculates Parabolic SAR
func SAR(opts ...Option) frame.Expr { return Expr("sar", opts...) }

// SARExt calculates Parabolic SAR - Extended
func SARExt(opts ...Option) frame.Expr { return Expr("sarext", opts...) }

// SMA calculates Simple Moving Average
func SMA(opts ...Option) frame.Expr { return Expr("sma", opts...) }

// T3 calculates Triple Exponential Moving Average
func T3(opts ...Option) frame.Expr { return Expr("t3", opts...) }

// TEMA calculates Triple Exponential Moving Average
func TEMA(opts ...Option) frame.Expr { return Expr("tema", opts...) }

// TRIMA calculates Triangular Moving Average
func TRIMA(opts ...Option) frame.Expr { return Expr("trima", opts...) }

// WMA calculates Weighted Moving Average
func WMA(opts ...Option) frame.Expr { return Expr("wma", opts...) }
