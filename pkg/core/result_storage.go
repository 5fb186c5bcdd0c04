package core

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"time"
)

// Result is a computed indicator persisted for later inspection
type Result struct {
	ID        int64              `json:"id" gorm:"primaryKey"`
	Pair      string             `json:"pair" gorm:"index"`
	Function  string             `json:"function" gorm:"index"`
	Params    map[string]float64 `json:"params" gorm:"serializer:json"`
	Fields    []string           `json:"fields" gorm:"serializer:json"`
	Time      []time.Time        `json:"time" gorm:"serializer:json"`
	Values    map[string]Floats  `json:"values" gorm:"serializer:json"`
	CreatedAt time.Time          `json:"created_at"`
}

// Floats is a float series whose NaN values travel as JSON null
type Floats []float64

func (f Floats) MarshalJSON() ([]byte, error) {
	if f == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(f)*8)
	buf = append(buf, '[')
	for i, v := range f {
		if i > 0 {
			buf = append(buf, ',')
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf = append(buf, "null"...)
			continue
		}
		buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
	}
	return append(buf, ']'), nil
}

func (f *Floats) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*f = nil
		return nil
	}
	out := make(Floats, len(raw))
	for i, v := range raw {
		out[i] = math.NaN()
		if v != nil {
			out[i] = *v
		}
	}
	*f = out
	return nil
}

// ResultFilter selects results returned by ResultStorage.Results
type ResultFilter func(Result) bool

// ResultStorage defines the interface for indicator result storage
type ResultStorage interface {
	// Save stores a result and assigns its ID
	Save(result *Result) error

	// Get retrieves a result by ID
	Get(id int64) (*Result, error)

	// Results retrieves results matching every filter
	Results(filters ...ResultFilter) ([]*Result, error)
}

func WithPair(pair string) ResultFilter {
	return func(r Result) bool {
		return r.Pair == pair
	}
}

func WithFunction(names ...string) ResultFilter {
	return func(r Result) bool {
		return slices.Contains(names, r.Function)
	}
}

func WithCreatedAfter(t time.Time) ResultFilter {
	return func(r Result) bool {
		return r.CreatedAt.After(t)
	}
}
