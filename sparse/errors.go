// Package sparse implements the constraint matrix storage used by the
// simplex core: a column-compressed (CSC) representation that is
// authoritative, plus a row-compressed (CSR) view that BuildRowView builds
// on request and any mutation invalidates. Row queries do not build the
// view themselves; without it they return ErrNoRowView.
//
// CSC invariants: col_ptr[0]=0, col_ptr monotone non-decreasing,
// col_ptr[n]=nnz, all row indices in [0,m). Row indices within a column
// need not be sorted. The CSR view, once built, transposes CSC exactly and
// keeps column indices ascending within each row.
package sparse

import "errors"

// Sentinel errors for sparse matrix construction and access.
var (
	// ErrBadShape indicates a non-positive row or column count.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a column or row index outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrMalformedCSC indicates a violation of the CSC format invariants.
	ErrMalformedCSC = errors.New("sparse: malformed CSC arrays")

	// ErrDimensionMismatch indicates a vector argument's length disagrees
	// with the matrix's row or column count.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNoRowView indicates a row-oriented query was made before
	// BuildRowView succeeded (or after it failed).
	ErrNoRowView = errors.New("sparse: row view not built")
)
