package ta

import "github.com/raykavin/tafx/pkg/frame"

// ------------------------------------------
// Price Transform
// ------------------------------------------

// AvgPrice calculates Average Price
func AvgPrice(opts ...Option) frame.Expr { return Expr("avgprice", opts...) }

// MedPrice calculates Median Price
func MedPrice(opts ...Option) frame.Expr { return Expr("medprice", opts...) }

// TypPrice calculates Typical Price
func TypPrice(opts ...Option) frame.Expr { return Expr("typprice", opts...) }

// WCLPrice calculates Weighted Close Price
func WCLPrice(opts ...Option) frame.Expr { return Expr("wclprice", opts...) }
