package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tazomatalax/lab-calculator/internal/domain"
)

const opParse = "usecase.parse"

// inputs are parsed field values keyed by field key.
type inputs map[string]domain.Optional

func (in inputs) f(key string) float64 {
	return in[key].Value
}

// ParseField turns the text of one form field into a value.
// Empty text is absent for optional fields and a ParseError otherwise.
func ParseField(field domain.Field, text string) (domain.Optional, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		if field.Optional {
			return domain.Absent, nil
		}
		return domain.Absent, domain.ParseError(opParse, field.Key, field.Label+" is required", nil)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return domain.Absent, domain.ParseError(opParse, field.Key,
			fmt.Sprintf("%s must be a number, got %q", field.Label, s), err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.Absent, domain.ParseError(opParse, field.Key,
			fmt.Sprintf("%s must be a finite number, got %q", field.Label, s), nil)
	}

	if field.Bounded() && (v < field.Min || v > field.Max) {
		return domain.Absent, domain.InvalidInput(opParse, field.Key,
			fmt.Sprintf("%s must be between %s and %s", field.Label, trimFloat(field.Min), trimFloat(field.Max)))
	}

	return domain.Present(v), nil
}

func parseInputs(tab domain.Tab, calc domain.Calculation, raw map[string]string) (inputs, error) {
	in := make(inputs, len(calc.Inputs))
	for _, key := range calc.Inputs {
		field, ok := tab.Field(key)
		if !ok {
			return nil, &domain.OpError{
				Op:    opParse,
				Kind:  domain.KindNotFound,
				Field: key,
				Err:   domain.ErrNotFound,
			}
		}
		v, err := ParseField(field, raw[key])
		if err != nil {
			return nil, err
		}
		in[key] = v
	}
	return in, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
