package talib

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/raykavin/tafx/pkg/core"
)

// Kind is the element type of a symbol output
type Kind int

const (
	Real    Kind = iota // padded with NaN
	Integer             // padded with 0
)

func (k Kind) pad(n int) []float64 {
	if k == Integer {
		return make([]float64, n)
	}
	return core.NaNs(n)
}

// Kernel computes every output of a symbol over inputs with no leading
// missing values. Each output has the length of the inputs.
type Kernel func(a Args, in [][]float64) [][]float64

// Symbol is one callable entry of the library
type Symbol struct {
	Name     string
	Inputs   int
	Outputs  []Kind
	Lookback func(a Args) int
	Kernel   Kernel

	// MATypes lists the parameters holding a moving average type
	MATypes []string
}

func (s Symbol) check(a Args) error {
	for _, name := range s.MATypes {
		if _, err := MaTypeOf(a.Params[name]); err != nil {
			return fmt.Errorf("%s %s: %w", s.Name, name, err)
		}
	}
	if s.Lookback(a) < 0 {
		return fmt.Errorf("%s: negative lookback: %w", s.Name, BadParam)
	}
	return nil
}

var symbols = map[string]Symbol{}

func register(s Symbol) {
	if _, dup := symbols[s.Name]; dup {
		panic("talib: duplicate symbol " + s.Name)
	}
	if s.Outputs == nil {
		s.Outputs = []Kind{Real}
	}
	symbols[s.Name] = s
}

// Lookup returns the symbol called name
func Lookup(name string) (Symbol, error) {
	s, ok := symbols[name]
	if !ok {
		return Symbol{}, fmt.Errorf("%q: %w", name, FuncNotFound)
	}
	return s, nil
}

// Symbols lists every symbol in name order
func Symbols() []string {
	names := lo.Keys(symbols)
	sort.Strings(names)
	return names
}

func one(out []float64) [][]float64 { return [][]float64{out} }

func two(a, b []float64) [][]float64 { return [][]float64{a, b} }
