// Package concentration solves the stock dilution relation C1·V1 = C2·V2.
package concentration

import (
	"github.com/tazomatalax/lab-calculator/internal/domain"
)

// Variable names one of the four terms of C1·V1 = C2·V2.
type Variable string

const (
	C1 Variable = "c1"
	V1 Variable = "v1"
	C2 Variable = "c2"
	V2 Variable = "v2"
)

// Values holds the four terms; exactly one must be absent.
type Values struct {
	C1, V1, C2, V2 domain.Optional
}

// Solution holds all four terms after solving.
type Solution struct {
	C1, V1, C2, V2 float64
	Solved         Variable
}

// Value returns the solved term.
func (s Solution) Value() float64 {
	switch s.Solved {
	case C1:
		return s.C1
	case V1:
		return s.V1
	case C2:
		return s.C2
	default:
		return s.V2
	}
}

const opSolve = "concentration.solve_missing"

// SolveMissing computes the one absent term from the other three.
func SolveMissing(in Values) (Solution, error) {
	terms := []struct {
		v   Variable
		opt domain.Optional
	}{
		{C1, in.C1}, {V1, in.V1}, {C2, in.C2}, {V2, in.V2},
	}

	var missing Variable
	absent := 0
	for _, t := range terms {
		if !t.opt.Present {
			absent++
			missing = t.v
			continue
		}
		if !t.opt.Finite() {
			return Solution{}, domain.InvalidInput(opSolve, string(t.v), "Values must be numeric.")
		}
		if t.opt.Value == 0 {
			return Solution{}, domain.InvalidInput(opSolve, string(t.v), "Values must be nonzero.")
		}
	}
	if absent != 1 {
		return Solution{}, domain.InvalidInput(opSolve, "", "Please provide exactly three values.")
	}

	s := Solution{
		C1:     in.C1.Value,
		V1:     in.V1.Value,
		C2:     in.C2.Value,
		V2:     in.V2.Value,
		Solved: missing,
	}
	switch missing {
	case C1:
		s.C1 = (s.C2 * s.V2) / s.V1
	case V1:
		s.V1 = (s.C2 * s.V2) / s.C1
	case C2:
		s.C2 = (s.C1 * s.V1) / s.V2
	case V2:
		s.V2 = (s.C1 * s.V1) / s.C2
	}
	return s, nil
}
