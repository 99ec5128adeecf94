package stats

import (
	"encoding/json"
	"math"
)

// Record is a sparse stat line keyed by category code. A missing key means
// the value is unknown, which is not the same thing as zero; callers must
// go through Get so the distinction survives.
type Record struct {
	Name     string
	Position string
	values   map[string]float64
}

func New(name, position string) Record {
	return Record{Name: name, Position: position, values: make(map[string]float64)}
}

func (r Record) Get(category string) (float64, bool) {
	v, ok := r.values[category]
	return v, ok
}

func (r Record) Has(category string) bool {
	_, ok := r.values[category]
	return ok
}

func (r Record) Set(category string, value float64) {
	r.values[category] = value
}

func (r Record) Len() int {
	return len(r.values)
}

// FromRaw builds a Record from a parsed JSON row. Non-numeric values are
// treated as absent, as are NaN and infinities.
func FromRaw(name, position string, raw map[string]any) Record {
	rec := New(name, position)
	for k, v := range raw {
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		rec.values[k] = f
	}
	return rec
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
