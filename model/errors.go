// Package model defines the immutable Problem value the solver core
// consumes: variable and constraint counts, objective, bounds, the
// right-hand side, constraint senses, and the constraint matrix in
// compressed-sparse-column form.
//
// A Problem is constructed once by the caller (the model-construction API
// proper — adding variables, naming them, attribute queries — is an
// external collaborator and out of scope here) and is read-only for the
// entire lifetime of a solve.
package model

import "errors"

// Sentinel errors for Problem construction and validation.
var (
	// ErrDimensionMismatch indicates a slice argument's length disagrees
	// with the declared variable or constraint count.
	ErrDimensionMismatch = errors.New("model: dimension mismatch")

	// ErrBadBounds indicates l[j] > u[j] for some variable j.
	ErrBadBounds = errors.New("model: lower bound exceeds upper bound")

	// ErrBadCSC indicates the CSC arrays violate the expected format:
	// col_ptr monotone, col_ptr[0]=0, col_ptr[n]=nnz, all row indices in
	// range.
	ErrBadCSC = errors.New("model: malformed CSC arrays")

	// ErrBadSense indicates a constraint sense outside {LE, EQ, GE}.
	ErrBadSense = errors.New("model: unknown constraint sense")

	// ErrNonFinite indicates a NaN or infinite value reached the model
	// through a channel other than the Infinity sentinel.
	ErrNonFinite = errors.New("model: non-finite value outside the infinity sentinel")
)
