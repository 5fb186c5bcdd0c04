package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Statistic Functions
// ------------------------------------------

// Beta calculates Beta
func Beta(opts ...Option) frame.Expr { return Expr("beta", opts...) }

// Correl calculates Pearson's Correlation Coefficient (r)
func Correl(opts ...Option) frame.Expr { return Expr("correl", opts...) }

// LinearReg calculates Linear Regression
func LinearReg(opts ...Option) frame.Expr { return Expr("linearreg", opts...) }

// LinearRegAngle calculates Linear Regression Angle
func LinearRegAngle(opts ...Option) frame.Expr { return Expr("linearreg_angle", opts...) }

// LinearRegIntercept calculates Linear Regression Intercept
func LinearRegIntercept(opts ...Option) frame.Expr { return Expr("linearreg_intercept", opts...) }

// LinearRegSlope calculates Linear Regression Slope
func LinearRegSlope(opts ...Option) frame.Expr { return Expr("linearreg_slope", opts...) }

// StdDev calculates Standard Deviation
func StdDev(opts ...Option) frame.Expr { return Expr("stddev", opts...) }

// TSF calculates Time Series Forecast
func TSF(opts ...Option) frame.Expr { return Expr("tsf", opts...) }

// Var calculates Variance
func Var(opts ...Option) frame.Expr { return Expr("var", opts...) }
