package sparse

import "sort"

// csr is the row-compressed view of a CSC matrix, built on demand.
type csr struct {
	rowPtr []int     // length rows+1
	colIdx []int     // length nnz, ascending within each row
	values []float64 // length nnz, aligned with colIdx
}

// invalidateRowView drops any cached CSR view. Called by any mutating
// operation on the CSC arrays: the row and column views must never both be
// mutable at once.
func (m *CSC) invalidateRowView() {
	m.csr = nil
}

// HasRowView reports whether a CSR view is currently cached.
func (m *CSC) HasRowView() bool {
	return m.csr != nil
}

// BuildRowView constructs the CSR view via a two-pass transpose:
//
//	pass 1 counts entries per row into rowPtr, then prefix-sums it;
//	pass 2 fills colIdx/values using a working copy of rowPtr as a cursor.
//
// After both passes, column indices within each row are sorted ascending,
// enabling binary search (see HasColumnInRow). Complexity: O(nnz + rows).
//
// BuildRowView never modifies the CSC arrays, and it allocates and fills
// every CSR array before assigning m.csr, so a partially built view is
// never installed.
func (m *CSC) BuildRowView() error {
	nnz := m.NNZ()

	// Pass 1: count entries per row.
	counts := make([]int, m.rows+1)
	for _, r := range m.rowIdx {
		counts[r+1]++
	}
	for i := 0; i < m.rows; i++ {
		counts[i+1] += counts[i]
	}
	rowPtr := counts // now a prefix sum: rowPtr[i] is the start offset of row i

	// Pass 2: scatter into colIdx/values using a cursor copy of rowPtr.
	cursor := make([]int, m.rows)
	copy(cursor, rowPtr[:m.rows])
	colIdx := make([]int, nnz)
	values := make([]float64, nnz)
	for j := 0; j < m.cols; j++ {
		lo, hi := m.colPtr[j], m.colPtr[j+1]
		for k := lo; k < hi; k++ {
			r := m.rowIdx[k]
			dst := cursor[r]
			colIdx[dst] = j
			values[dst] = m.values[k]
			cursor[r]++
		}
	}

	// The scatter above visits columns in ascending order, so each row's
	// column indices already come out ascending; sorting each row's slice
	// keeps that guarantee independent of the scatter order.
	for i := 0; i < m.rows; i++ {
		lo, hi := rowPtr[i], rowPtr[i+1]
		row := rowSlice{cols: colIdx[lo:hi], vals: values[lo:hi]}
		sort.Sort(row)
	}

	m.csr = &csr{rowPtr: rowPtr, colIdx: colIdx, values: values}
	return nil
}

// rowSlice sorts a single CSR row's (colIdx, values) pair in lockstep by
// column index.
type rowSlice struct {
	cols []int
	vals []float64
}

func (r rowSlice) Len() int      { return len(r.cols) }
func (r rowSlice) Swap(i, j int) { r.cols[i], r.cols[j] = r.cols[j], r.cols[i]; r.vals[i], r.vals[j] = r.vals[j], r.vals[i] }
func (r rowSlice) Less(i, j int) bool { return r.cols[i] < r.cols[j] }

// RowEntries borrows the (colIdx, values) slice for row i from the cached
// CSR view. Returns ErrNoRowView if BuildRowView has not yet succeeded (or
// the view was invalidated by a mutation since).
func (m *CSC) RowEntries(i int) (cols []int, values []float64, err error) {
	if m.csr == nil {
		return nil, nil, ErrNoRowView
	}
	if i < 0 || i >= m.rows {
		return nil, nil, ErrOutOfRange
	}
	lo, hi := m.csr.rowPtr[i], m.csr.rowPtr[i+1]
	return m.csr.colIdx[lo:hi], m.csr.values[lo:hi], nil
}

// HasColumnInRow reports whether row i has a nonzero in column j, using
// binary search over the CSR view's ascending column indices.
// Complexity: O(log deg(i)).
func (m *CSC) HasColumnInRow(i, j int) (bool, error) {
	cols, _, err := m.RowEntries(i)
	if err != nil {
		return false, err
	}
	lo, hi := 0, len(cols)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case cols[mid] == j:
			return true, nil
		case cols[mid] < j:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return false, nil
}
