package talib

import (
	"fmt"
	"math"

	gotalib "github.com/markcheno/go-talib"

	"github.com/raykavin/tafx/pkg/pattern"
)

// Params are the named scalar arguments of a call. Integer parameters are
// carried as whole floats.
type Params map[string]float64

// Args is what a symbol sees besides its inputs
type Args struct {
	Params  Params
	Candles pattern.Settings
}

// Int returns the parameter under name truncated to an int. Missing
// parameters read as 0.
func (a Args) Int(name string) int { return int(a.Params[name]) }

// Float returns the parameter under name, or 0 when missing.
func (a Args) Float(name string) float64 { return a.Params[name] }

// MA returns the moving average type stored under name
func (a Args) MA(name string) gotalib.MaType {
	t, _ := MaTypeOf(a.Params[name])
	return t
}

var maTypes = [...]gotalib.MaType{
	gotalib.SMA,
	gotalib.EMA,
	gotalib.WMA,
	gotalib.DEMA,
	gotalib.TEMA,
	gotalib.TRIMA,
	gotalib.KAMA,
	gotalib.MAMA,
	gotalib.T3MA,
}

var maTypeNames = [...]string{"SMA", "EMA", "WMA", "DEMA", "TEMA", "TRIMA", "KAMA", "MAMA", "T3"}

// MaTypeOf maps the TA-Lib MA type code (0..8) to go-talib's MaType
func MaTypeOf(code float64) (gotalib.MaType, error) {
	if code != math.Trunc(code) || code < 0 || int(code) >= len(maTypes) {
		return 0, fmt.Errorf("ma type %v: %w", code, BadParam)
	}
	return maTypes[int(code)], nil
}

// MaTypeName returns the short name of an MA type code, e.g. "EMA" for 1
func MaTypeName(code int) string {
	if code < 0 || code >= len(maTypeNames) {
		return fmt.Sprintf("MA(%d)", code)
	}
	return maTypeNames[code]
}
