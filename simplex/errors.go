// Package simplex drives the two-phase revised primal simplex method over
// a model.Problem, using sparse for the constraint matrix, basis for the
// PFI basis state and FTRAN/BTRAN kernels, and pricing for entering-variable
// selection. Context holds everything owned by one solve: working bound
// copies (perturbable independently of the read-only model), the primal/
// dual/reduced-cost vectors, the basis and pricing state, counters, and a
// zerolog.Logger for low-overhead diagnostic tracing. Solve walks
// INIT -> CRASH -> [PERTURB] -> PHASE_I -> PHASE_II -> OPTIMAL ->
// [UNPERTURB -> REFINE] -> DONE, returning a Result; the bracketed steps
// run only with perturbation on.
package simplex

import "errors"

// Sentinel errors for context construction and the solve loop's internal
// recovery paths.
var (
	// ErrBadConfig indicates an invalid Config value (non-positive
	// tolerance, negative limit).
	ErrBadConfig = errors.New("simplex: invalid configuration")

	// ErrEmptyProblem indicates a nil *model.Problem was passed to
	// NewContext.
	ErrEmptyProblem = errors.New("simplex: nil problem")

	// ErrRecoveryExhausted indicates refactor/artificial-swap recovery
	// failed twice in a row after a singular basis.
	ErrRecoveryExhausted = errors.New("simplex: numeric recovery exhausted")
)
