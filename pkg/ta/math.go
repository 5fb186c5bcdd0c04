package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Math Operators and Transforms
// ------------------------------------------

// Add calculates Vector Arithmetic Add
func Add(opts ...Option) frame.Expr { return Expr("add", opts...) }

// Div calculates Vector Arithmetic Div
func Div(opts ...Option) frame.Expr { return Expr("div", opts...) }

// Max calculates Highest value over a specified period
func Max(opts ...Option) frame.Expr { return Expr("max", opts...) }

// MaxIndex calculates Index of highest value over a specified period
func MaxIndex(opts ...Option) frame.Expr { return Expr("maxindex", opts...) }

// Min calculates Lowest value over a specified period
func Min(opts ...Option) frame.Expr { return Expr("min", opts...) }

// MinIndex calculates Index of lowest value over a specified period
func MinIndex(opts ...Option) frame.Expr { return Expr("minindex", opts...) }

// MinMax calculates Lowest and highest values over a specified period
// Fields: min, max
func MinMax(opts ...Option) frame.Expr { return Expr("minmax", opts...) }

// MinMaxIndex calculates Indexes of lowest and highest values over a specified period
// Fields: minidx, maxidx
func MinMaxIndex(opts ...Option) frame.Expr { return Expr("minmaxindex", opts...) }

// Mult calculates Vector Arithmetic Mult
func Mult(opts ...Option) frame.Expr { return Expr("mult", opts...) }

// Sub calculates Vector Arithmetic Substraction
func Sub(opts ...Option) frame.Expr { return Expr("sub", opts...) }

// Sum calculates Summation
func Sum(opts ...Option) frame.Expr { return Expr("sum", opts...) }

// Acos calculates Vector Trigonometric ACos
func Acos(opts ...Option) frame.Expr { return Expr("acos", opts...) }

// Asin calculates Vector Trigonometric ASin
func Asin(opts ...Option) frame.Expr { return Expr("asin", opts...) }

// Atan calculates Vector Trigonometric ATan
func Atan(opts ...Option) frame.Expr { return Expr("atan", opts...) }

// Ceil calculates Vector Ceil
func Ceil(opts ...Option) frame.Expr { return Expr("ceil", opts...) }

// Cos calculates Vector Trigonometric Cos
func Cos(opts ...Option) frame.Expr { return Expr("cos", opts...) }

// Cosh calculates Vector Trigonometric Cosh
func Cosh(opts ...Option) frame.Expr { return Expr("cosh", opts...) }

// Exp calculates Vector Arithmetic Exp
func Exp(opts ...Option) frame.Expr { return Expr("exp", opts...) }

// Floor calculates Vector Floor
func Floor(opts ...Option) frame.Expr { return Expr("floor", opts...) }

// Ln calculates Vector Log Natural
func Ln(opts ...Option) frame.Expr { return Expr("ln", opts...) }

// Log10 calculates Vector Log10
func Log10(opts ...Option) frame.Expr { return Expr("log10", opts...) }

// Sin calculates Vector Trigonometric Sin
func Sin(opts ...Option) frame.Expr { return Expr("sin", opts...) }

// Sinh calculates Vector Trigonometric Sinh
func Sinh(opts ...Option) frame.Expr { return Expr("sinh", opts...) }

// Sqrt calculates Vector Square Root
func Sqrt(opts ...Option) frame.Expr { return Expr("sqrt", opts...) }

// Tan calculates Vector Trigonometric Tan
func Tan(opts ...Option) frame.Expr { return Expr("tan", opts...) }

// Tanh calculates Vector Trigonometric Tanh
func Tanh(opts ...Option) frame.Expr { return Expr("tanh", opts...) }
