package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plexus/sparse"
)

// CSCSuite exercises CSC construction, Mul/TMul, and the lazy CSR view.
type CSCSuite struct {
	suite.Suite
}

func TestCSCSuite(t *testing.T) {
	suite.Run(t, new(CSCSuite))
}

// sample builds:
//
//	A = [ 1  0  2 ]
//	    [ 0  3  4 ]
//
// 2 rows, 3 cols, nnz=4.
func sample() *sparse.CSC {
	colPtr := []int{0, 1, 2, 4}
	rowIdx := []int{0, 1, 0, 1}
	values := []float64{1, 3, 2, 4}
	m, err := sparse.NewCSC(2, 3, colPtr, rowIdx, values)
	if err != nil {
		panic(err)
	}
	return m
}

func (s *CSCSuite) TestShape() {
	m := sample()
	require.Equal(s.T(), 2, m.Rows())
	require.Equal(s.T(), 3, m.Cols())
	require.Equal(s.T(), 4, m.NNZ())
}

func (s *CSCSuite) TestMul() {
	m := sample()
	x := []float64{1, 1, 1}
	y := make([]float64, 2)
	require.NoError(s.T(), m.Mul(x, y, false))
	require.Equal(s.T(), []float64{3, 7}, y) // row0: 1+2=3; row1: 3+4=7
}

func (s *CSCSuite) TestMulAccumulate() {
	m := sample()
	x := []float64{1, 0, 0}
	y := []float64{10, 10}
	require.NoError(s.T(), m.Mul(x, y, true))
	require.Equal(s.T(), []float64{11, 10}, y)
}

func (s *CSCSuite) TestTMul() {
	m := sample()
	x := []float64{1, 1}
	y := make([]float64, 3)
	require.NoError(s.T(), m.TMul(x, y, false))
	require.Equal(s.T(), []float64{1, 3, 6}, y)
}

func (s *CSCSuite) TestMulDimensionMismatch() {
	m := sample()
	err := m.Mul([]float64{1, 2}, make([]float64, 2), false)
	require.ErrorIs(s.T(), err, sparse.ErrDimensionMismatch)
}

func (s *CSCSuite) TestValidateRejectsBadColPtr() {
	_, err := sparse.NewCSC(2, 3, []int{1, 1, 2, 4}, []int{0, 1, 0, 1}, []float64{1, 3, 2, 4})
	require.ErrorIs(s.T(), err, sparse.ErrMalformedCSC)
}

func (s *CSCSuite) TestValidateRejectsRowOutOfRange() {
	_, err := sparse.NewCSC(2, 3, []int{0, 1, 2, 4}, []int{0, 5, 0, 1}, []float64{1, 3, 2, 4})
	require.ErrorIs(s.T(), err, sparse.ErrMalformedCSC)
}

func (s *CSCSuite) TestColBorrow() {
	m := sample()
	rows, vals, err := m.Col(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1}, rows)
	require.Equal(s.T(), []float64{2, 4}, vals)
}

// TestRowViewRoundTrip checks the build-CSR-then-transpose-back round trip
// yields a CSC equal to the original (multisets of column entries match).
func (s *CSCSuite) TestRowViewRoundTrip() {
	m := sample()
	require.NoError(s.T(), m.BuildRowView())
	require.True(s.T(), m.HasRowView())

	for j := 0; j < m.Cols(); j++ {
		wantRows, wantVals, _ := m.Col(j)
		wantSum := map[int]float64{}
		for k, r := range wantRows {
			wantSum[r] += wantVals[k]
		}
		// Reconstruct column j from the row view.
		gotSum := map[int]float64{}
		for i := 0; i < m.Rows(); i++ {
			cols, vals, err := m.RowEntries(i)
			require.NoError(s.T(), err)
			for k, c := range cols {
				if c == j {
					gotSum[i] += vals[k]
				}
			}
		}
		require.Equal(s.T(), wantSum, gotSum)
	}
}

func (s *CSCSuite) TestRowViewColumnsSortedAscending() {
	m := sample()
	require.NoError(s.T(), m.BuildRowView())
	for i := 0; i < m.Rows(); i++ {
		cols, _, err := m.RowEntries(i)
		require.NoError(s.T(), err)
		for k := 1; k < len(cols); k++ {
			require.Less(s.T(), cols[k-1], cols[k])
		}
	}
}

func (s *CSCSuite) TestRowViewInvalidatedOnMutation() {
	m := sample()
	require.NoError(s.T(), m.BuildRowView())
	require.NoError(s.T(), m.SetValue(0, 0, 99))
	require.False(s.T(), m.HasRowView())
	_, _, err := m.RowEntries(0)
	require.ErrorIs(s.T(), err, sparse.ErrNoRowView)
}

func (s *CSCSuite) TestHasColumnInRow() {
	m := sample()
	require.NoError(s.T(), m.BuildRowView())
	ok, err := m.HasColumnInRow(0, 2)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
	ok, err = m.HasColumnInRow(0, 1)
	require.NoError(s.T(), err)
	require.False(s.T(), ok)
}
