package storage

import (
	"fmt"
	"time"

	"github.com/raykavin/tafx/pkg/core"
	"github.com/raykavin/tafx/pkg/frame"
)

// Storage is a result store that holds resources
type Storage interface {
	core.ResultStorage
	Close() error
}

// Open returns the storage named by driver: "buntdb" or "sqlite" at path,
// or "memory".
func Open(driver, path string) (Storage, error) {
	switch driver {
	case "memory", "":
		return FromMemory()
	case "buntdb":
		return FromFile(path)
	case "sqlite":
		return FromSQLite(path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// NewResult captures the output of one indicator call. A struct output
// keeps one series per field.
func NewResult(pair, function string, params map[string]float64, times []time.Time, v frame.Value) *core.Result {
	result := &core.Result{
		Pair:     pair,
		Function: function,
		Params:   params,
		Time:     times,
		Values:   make(map[string]core.Floats),
	}

	var cols []*frame.Column
	switch v := v.(type) {
	case *frame.Column:
		cols = []*frame.Column{v}
	case *frame.Struct:
		cols = v.Fields()
	}
	for _, c := range cols {
		result.Fields = append(result.Fields, c.Name())
		result.Values[c.Name()] = c.Float64()
	}
	return result
}
