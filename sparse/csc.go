package sparse

import "fmt"

// CSC is a column-compressed sparse matrix. It is the authoritative
// representation of the LP's constraint matrix A; CSR is a derived,
// lazily built view (see csr.go).
type CSC struct {
	rows, cols int
	colPtr     []int     // length cols+1
	rowIdx     []int     // length nnz
	values     []float64 // length nnz

	csr *csr // lazily built row view; nil until BuildRowView succeeds
}

// NewCSC constructs a CSC matrix from caller-owned arrays, validating the
// format invariants below. The arrays are not copied; the caller must not
// mutate them afterward except through the CSC's own methods.
func NewCSC(rows, cols int, colPtr, rowIdx []int, values []float64) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCSC(%d,%d): %w", rows, cols, ErrBadShape)
	}
	m := &CSC{rows: rows, cols: cols, colPtr: colPtr, rowIdx: rowIdx, values: values}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Rows returns the row count m.
func (m *CSC) Rows() int { return m.rows }

// Cols returns the column count n.
func (m *CSC) Cols() int { return m.cols }

// NNZ returns the declared nonzero count.
func (m *CSC) NNZ() int {
	if len(m.colPtr) == 0 {
		return 0
	}
	return m.colPtr[len(m.colPtr)-1]
}

// Validate checks the CSC invariants: col_ptr[0]=0, col_ptr monotone
// non-decreasing, col_ptr[n]=nnz, and all row indices in [0,rows).
func (m *CSC) Validate() error {
	if len(m.colPtr) != m.cols+1 {
		return fmt.Errorf("sparse: len(colPtr)=%d, want %d: %w", len(m.colPtr), m.cols+1, ErrMalformedCSC)
	}
	if m.colPtr[0] != 0 {
		return fmt.Errorf("sparse: colPtr[0]=%d, want 0: %w", m.colPtr[0], ErrMalformedCSC)
	}
	for j := 0; j < m.cols; j++ {
		if m.colPtr[j] > m.colPtr[j+1] {
			return fmt.Errorf("sparse: colPtr not monotone at %d: %w", j, ErrMalformedCSC)
		}
	}
	nnz := m.colPtr[m.cols]
	if nnz != len(m.rowIdx) || nnz != len(m.values) {
		return fmt.Errorf("sparse: colPtr[n]=%d, len(rowIdx)=%d, len(values)=%d: %w", nnz, len(m.rowIdx), len(m.values), ErrMalformedCSC)
	}
	for k, r := range m.rowIdx {
		if r < 0 || r >= m.rows {
			return fmt.Errorf("sparse: rowIdx[%d]=%d out of range [0,%d): %w", k, r, m.rows, ErrMalformedCSC)
		}
	}
	return nil
}

// Col borrows the (rowIdx, values) slices for column j. The returned
// slices alias the matrix's backing storage and must not be mutated.
func (m *CSC) Col(j int) (rows []int, values []float64, err error) {
	if j < 0 || j >= m.cols {
		return nil, nil, fmt.Errorf("sparse: Col(%d): %w", j, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	return m.rowIdx[lo:hi], m.values[lo:hi], nil
}

// SetValue overwrites the value at the k-th stored entry of column j's
// compressed slice (not an arbitrary (row,col) setter — the sparsity
// pattern is fixed after construction). It exists for in-place coefficient
// perturbation and always invalidates any cached row view.
func (m *CSC) SetValue(j, k int, v float64) error {
	if j < 0 || j >= m.cols {
		return fmt.Errorf("sparse: SetValue col %d: %w", j, ErrOutOfRange)
	}
	lo, hi := m.colPtr[j], m.colPtr[j+1]
	if k < 0 || lo+k >= hi {
		return fmt.Errorf("sparse: SetValue(%d,%d): %w", j, k, ErrOutOfRange)
	}
	m.values[lo+k] = v
	m.invalidateRowView()
	return nil
}

// Mul computes y <- A*x (accumulate=false) or y <- y + A*x
// (accumulate=true). Only columns with x[j]!=0 are touched, so cost is
// O(nnz_touched).
func (m *CSC) Mul(x, y []float64, accumulate bool) error {
	if len(x) != m.cols {
		return fmt.Errorf("sparse: Mul x has len %d, want %d: %w", len(x), m.cols, ErrDimensionMismatch)
	}
	if len(y) != m.rows {
		return fmt.Errorf("sparse: Mul y has len %d, want %d: %w", len(y), m.rows, ErrDimensionMismatch)
	}
	if !accumulate {
		for i := range y {
			y[i] = 0
		}
	}
	for j := 0; j < m.cols; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		lo, hi := m.colPtr[j], m.colPtr[j+1]
		for k := lo; k < hi; k++ {
			y[m.rowIdx[k]] += m.values[k] * xj
		}
	}
	return nil
}

// TMul computes y <- A^T*x (accumulate=false) or y <- y + A^T*x
// (accumulate=true).
func (m *CSC) TMul(x, y []float64, accumulate bool) error {
	if len(x) != m.rows {
		return fmt.Errorf("sparse: TMul x has len %d, want %d: %w", len(x), m.rows, ErrDimensionMismatch)
	}
	if len(y) != m.cols {
		return fmt.Errorf("sparse: TMul y has len %d, want %d: %w", len(y), m.cols, ErrDimensionMismatch)
	}
	if !accumulate {
		for j := range y {
			y[j] = 0
		}
	}
	for j := 0; j < m.cols; j++ {
		lo, hi := m.colPtr[j], m.colPtr[j+1]
		var sum float64
		for k := lo; k < hi; k++ {
			sum += m.values[k] * x[m.rowIdx[k]]
		}
		y[j] += sum
	}
	return nil
}
