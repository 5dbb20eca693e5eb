// Package basis maintains the current simplex basis matrix B in Product
// Form of Inverse representation: a periodically refactored LU
// decomposition of the working basis (row-permuted for pivoting
// stability, columns fixed in basis_header order) plus an append-only
// chain of eta updates recording every pivot since the last refactor.
//
// FTRAN (solve B x = a) applies the LU factors first and then the eta
// chain oldest-to-newest; BTRAN (solve B^T y = c) applies the eta chain
// newest-to-oldest first and then the transposed LU factors, per the
// standard PFI identity B^-1 = E_k...E_1 U^-1 L^-1.
package basis

import "errors"

// Sentinel errors for basis construction, refactorization, and the
// eta-chain solves.
var (
	// ErrSingular indicates the gathered basis columns are numerically
	// singular: no acceptable pivot remained for some elimination step.
	ErrSingular = errors.New("basis: singular basis matrix")

	// ErrDimensionMismatch indicates a vector argument's length disagrees
	// with the basis size m.
	ErrDimensionMismatch = errors.New("basis: dimension mismatch")

	// ErrNotFactored indicates an FTRAN/BTRAN solve was requested before
	// any successful Refactor.
	ErrNotFactored = errors.New("basis: no LU factorization present")

	// ErrBadShape indicates a non-positive basis size.
	ErrBadShape = errors.New("basis: invalid size")

	// ErrEtaOverflow indicates the eta chain has grown past its
	// configured maximum length without a refactor; callers should
	// refactor and retry.
	ErrEtaOverflow = errors.New("basis: eta chain exceeds maximum length")
)
