package solver

import "math"

// Options configures a single Solve call.
//
// NodeBudget – caps the number of States ever pushed onto the open set;
//
//	Solve returns ErrBudgetExceeded once the cap is reached. Must be
//	positive. Default is math.MaxInt (no cap).
//
// Weight – multiplies h in f = g + Weight*h. Weight == 1 is plain A* and
//
//	is the default; Weight > 1 trades optimality for speed (weighted A*).
//	Must be positive.
type Options struct {
	NodeBudget int
	Weight     float64
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns the Options used when Solve is called with no
// overrides: an unbounded node budget and plain (unweighted) A*.
func DefaultOptions() Options {
	return Options{
		NodeBudget: math.MaxInt,
		Weight:     1.0,
	}
}

// WithNodeBudget caps the number of States Solve may push onto the open
// set before giving up with ErrBudgetExceeded. Panics if budget <= 0.
func WithNodeBudget(budget int) Option {
	return func(o *Options) {
		if budget <= 0 {
			panic(ErrBadNodeBudget.Error())
		}
		o.NodeBudget = budget
	}
}

// WithWeight scales the heuristic term of f = g + weight*h, trading
// solution optimality for search speed when weight > 1. This is an
// explicit opt-in knob; the zero value of Options always resolves to the
// unweighted default via DefaultOptions. Panics if weight <= 0.
func WithWeight(weight float64) Option {
	return func(o *Options) {
		if weight <= 0 {
			panic(ErrBadWeight.Error())
		}
		o.Weight = weight
	}
}
