package basis

import (
	"fmt"
	"math"
)

// DefaultStabilityFactor bounds how far a pivot's magnitude may fall below
// the largest candidate in its column before it is rejected on numerical
// grounds (threshold-pivoting tolerance).
const DefaultStabilityFactor = 0.1

// DefaultPivotTol is the absolute floor below which a candidate pivot is
// treated as structurally zero.
const DefaultPivotTol = 1e-10

// ColumnFunc gathers the sparse column of the working basis matrix at
// basis position pos (i.e. the column of A, or a unit slack column,
// currently occupying basis_header[pos]). Returned slices are read-only to
// the caller.
type ColumnFunc func(pos int) (rows []int, values []float64)

// Basis holds the LU factorization of a refactored basis matrix plus the
// eta chain of pivots applied since that refactor.
type Basis struct {
	m int

	// l and u are dense m x m arrays in pivot-order indexing: l is unit
	// lower triangular (diagonal implicit, not stored), u is upper
	// triangular. rowOrder[i] is the original row used as the i-th pivot
	// equation, so (l*u)[i][j] == (working matrix)[rowOrder[i]][j].
	l, u     []float64
	rowOrder []int

	etaHead, etaTail *Eta
	etaCount         int
	arena            *etaArena

	stabilityFactor float64
	pivotTol        float64
	maxEtas         int
}

// New allocates a Basis for a working matrix of size m x m. maxEtas bounds
// the eta chain length before ErrEtaOverflow is returned by AppendEta; a
// non-positive value disables the bound.
func New(m int, maxEtas int) (*Basis, error) {
	if m <= 0 {
		return nil, fmt.Errorf("basis.New(%d): %w", m, ErrBadShape)
	}
	return &Basis{
		m:               m,
		arena:           newEtaArena(),
		stabilityFactor: DefaultStabilityFactor,
		pivotTol:        DefaultPivotTol,
		maxEtas:         maxEtas,
	}, nil
}

// Size returns m.
func (b *Basis) Size() int { return b.m }

// EtaCount returns the number of pivots recorded since the last Refactor.
func (b *Basis) EtaCount() int { return b.etaCount }

// IsFactored reports whether a successful Refactor has populated L and U.
func (b *Basis) IsFactored() bool { return b.u != nil }

// Refactor rebuilds the dense L/U factorization from scratch by gathering
// every basis column via col, discards the eta chain, and resets the arena.
// Pivoting is threshold-based Markowitz: among rows whose candidate pivot
// magnitude is within stabilityFactor of the column's largest remaining
// entry, the one with the smallest (remaining row nnz) * (remaining column
// nnz) product is chosen, breaking ties toward the lowest row index.
func (b *Basis) Refactor(col ColumnFunc) error {
	m := b.m
	a := make([]float64, m*m)
	for j := 0; j < m; j++ {
		rows, vals := col(j)
		for k, r := range rows {
			a[r*m+j] = vals[k]
		}
	}

	rowUsed := make([]bool, m)
	rowOrder := make([]int, m)
	l := make([]float64, m*m)
	u := make([]float64, m*m)

	for step := 0; step < m; step++ {
		pivotRow, err := selectPivotRow(a, m, step, rowUsed, b.stabilityFactor, b.pivotTol)
		if err != nil {
			return err
		}
		rowOrder[step] = pivotRow
		rowUsed[pivotRow] = true

		pivotVal := a[pivotRow*m+step]
		for j := step; j < m; j++ {
			u[step*m+j] = a[pivotRow*m+j]
		}

		// Eliminate this column from every not-yet-used row.
		for r := 0; r < m; r++ {
			if rowUsed[r] {
				continue
			}
			factor := a[r*m+step] / pivotVal
			if factor == 0 {
				continue
			}
			l[r*m+step] = factor
			for j := step; j < m; j++ {
				a[r*m+j] -= factor * a[pivotRow*m+j]
			}
		}
	}

	// l is stored in pivot-order row indexing: l[i][k] for k<i is the
	// multiplier used when eliminating pivotRow(i) against pivot step k.
	// The scatter above indexed by original row r; remap now that the full
	// pivot order is known.
	rowPos := make([]int, m)
	for i, r := range rowOrder {
		rowPos[r] = i
	}
	lReordered := make([]float64, m*m)
	for r := 0; r < m; r++ {
		i := rowPos[r]
		for k := 0; k < i; k++ {
			lReordered[i*m+k] = l[r*m+k]
		}
	}

	b.l, b.u, b.rowOrder = lReordered, u, rowOrder
	b.etaHead, b.etaTail, b.etaCount = nil, nil, 0
	b.arena.reset()
	return nil
}

// selectPivotRow scans rows not yet used as pivots for column `step`,
// applying threshold pivoting with a Markowitz-count tiebreak.
func selectPivotRow(a []float64, m, step int, rowUsed []bool, stability, tol float64) (int, error) {
	maxAbs := 0.0
	for r := 0; r < m; r++ {
		if rowUsed[r] {
			continue
		}
		if v := math.Abs(a[r*m+step]); v > maxAbs {
			maxAbs = v
		}
	}
	if maxAbs < tol {
		return 0, fmt.Errorf("basis: column %d has no pivot above tolerance: %w", step, ErrSingular)
	}

	best, bestScore := -1, math.MaxInt64
	for r := 0; r < m; r++ {
		if rowUsed[r] {
			continue
		}
		v := math.Abs(a[r*m+step])
		if v < stability*maxAbs || v < tol {
			continue
		}
		score := markowitzCount(a, m, r, step, rowUsed)
		if score < bestScore {
			best, bestScore = r, score
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("basis: column %d has no stable pivot: %w", step, ErrSingular)
	}
	return best, nil
}

// markowitzCount approximates the classical Markowitz merit (remaining row
// nonzeros - 1) * (remaining column nonzeros - 1) for candidate pivot
// (row, col) over the still-unfactored submatrix.
func markowitzCount(a []float64, m, row, col int, rowUsed []bool) int {
	rowNNZ, colNNZ := 0, 0
	for j := col; j < m; j++ {
		if a[row*m+j] != 0 {
			rowNNZ++
		}
	}
	for r := 0; r < m; r++ {
		if rowUsed[r] {
			continue
		}
		if a[r*m+col] != 0 {
			colNNZ++
		}
	}
	return rowNNZ * colNNZ
}
