package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Volume Indicators
// ------------------------------------------

// AD calculates Chaikin A/D Line
func AD(opts ...Option) frame.Expr { return Expr("ad", opts...) }

// ADOSC calculates Chaikin A/D Oscillator
func ADOSC(opts ...Option) frame.Expr { return Expr("adosc", opts...) }

// OBV calculates On Balance Volume
func OBV(opts ...Option) frame.Expr { return Expr("obv", opts...) }
