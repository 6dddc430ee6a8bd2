package solver

import "errors"

// Sentinel errors returned by the solver package.
var (
	// ErrUnmatchingSizes indicates that start and target boards do not share
	// the same line size.
	ErrUnmatchingSizes = errors.New("solver: start and target board sizes do not match")

	// ErrUnsolvable indicates that the inversion-parity oracle rejected the
	// (start, target) pair before any search began.
	ErrUnsolvable = errors.New("solver: no move sequence can reach target from start")

	// ErrSearchExhausted indicates the open set emptied before the goal was
	// reached. Since New already validated solvability, this can only be
	// reached by an implementation bug and is reported distinctly so it is
	// never confused with ErrUnsolvable.
	ErrSearchExhausted = errors.New("solver: frontier exhausted before goal was found")

	// ErrBudgetExceeded indicates the configured node budget was reached
	// before the goal was found. The counters accumulated so far are still
	// meaningful; the caller may retry with a larger budget.
	ErrBudgetExceeded = errors.New("solver: node budget exceeded before goal was found")

	// ErrBadNodeBudget indicates a non-positive budget was supplied to
	// WithNodeBudget.
	ErrBadNodeBudget = errors.New("solver: node budget must be positive")

	// ErrBadWeight indicates a non-positive weight was supplied to
	// WithWeight.
	ErrBadWeight = errors.New("solver: heuristic weight must be positive")
)
