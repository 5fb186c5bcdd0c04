package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Volatility Indicators
// ------------------------------------------

// ATR calculates Average True Range
func ATR(opts ...Option) frame.Expr { return Expr("atr", opts...) }

// NATR calculates Normalized Average True Range
func NATR(opts ...Option) frame.Expr { return Expr("natr", opts...) }

// TRange calculates True Range
func TRange(opts ...Option) frame.Expr { return Expr("trange", opts...) }
