package domain

import "math"

// Optional is a numeric input that may be absent (an empty form field).
type Optional struct {
	Value   float64
	Present bool
}

// Absent is the zero Optional.
var Absent = Optional{}

// Present wraps a value that was supplied.
func Present(v float64) Optional {
	return Optional{Value: v, Present: true}
}

// Finite reports whether the value is present and neither NaN nor ±Inf.
func (o Optional) Finite() bool {
	return o.Present && !math.IsNaN(o.Value) && !math.IsInf(o.Value, 0)
}

// Quantity is one named numeric output of a calculation.
type Quantity struct {
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Value    float64 `json:"value"`
	Decimals int     `json:"decimals"`
}

// Report is the result of a successful evaluation.
type Report struct {
	Tab         TabID      `json:"tab"`
	Calculation string     `json:"calculation"`
	Values      []Quantity `json:"values"`
	Text        string     `json:"text"`

	// Fill holds formatted values the shell writes back into fields, keyed by field key.
	Fill map[string]string `json:"-"`
}

// Value returns the quantity with the given name.
func (r Report) Value(name string) (Quantity, bool) {
	for _, q := range r.Values {
		if q.Name == name {
			return q, true
		}
	}
	return Quantity{}, false
}
