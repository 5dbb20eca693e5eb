package basis_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plexus/basis"
)

// BasisSuite exercises Refactor, FTRAN, BTRAN and the eta chain's PFI
// update, using a fixed 3x3 basis matrix:
//
//	B = [ 2 0 1 ]
//	    [ 1 3 0 ]
//	    [ 0 0 1 ]
type BasisSuite struct {
	suite.Suite
}

func TestBasisSuite(t *testing.T) {
	suite.Run(t, new(BasisSuite))
}

func (s *BasisSuite) asymmetricColumns() basis.ColumnFunc {
	return func(pos int) ([]int, []float64) {
		switch pos {
		case 0:
			return []int{0, 1}, []float64{2, 1}
		case 1:
			return []int{1}, []float64{3}
		case 2:
			return []int{0, 2}, []float64{1, 1}
		}
		return nil, nil
	}
}

func (s *BasisSuite) TestFTRANBTRANRoundTrip() {
	b, err := basis.New(3, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.Refactor(s.asymmetricColumns()))
	require.True(s.T(), b.IsFactored())

	// B*(1,2,3) = (5,7,3).
	x, err := b.FTRAN([]float64{5, 7, 3})
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{1, 2, 3}, x, 1e-9)

	// B^T*(1,2,3) = (4,6,4).
	y, err := b.BTRAN([]float64{4, 6, 4})
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{1, 2, 3}, y, 1e-9)
}

func (s *BasisSuite) TestFTRANAfterPivot() {
	b, err := basis.New(3, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.Refactor(s.asymmetricColumns()))

	// Entering column (1,1,2); w = B^-1 * entering should be (-0.5,0.5,2).
	w, err := b.FTRAN([]float64{1, 1, 2})
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{-0.5, 0.5, 2}, w, 1e-9)

	require.NoError(s.T(), b.AppendEta(1, w))
	require.Equal(s.T(), 1, b.EtaCount())

	// New basis B' replaces column 1 with (1,1,2):
	//   B' = [2 1 1; 1 1 0; 0 2 1]
	// B'*(1,1,1) = (4,2,3); B'^T*(1,1,1) = (3,4,2).
	x, err := b.FTRAN([]float64{4, 2, 3})
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{1, 1, 1}, x, 1e-9)

	y, err := b.BTRAN([]float64{3, 4, 2})
	require.NoError(s.T(), err)
	require.InDeltaSlice(s.T(), []float64{1, 1, 1}, y, 1e-9)
}

func (s *BasisSuite) TestFTRANBeforeRefactor() {
	b, err := basis.New(3, 0)
	require.NoError(s.T(), err)
	_, err = b.FTRAN([]float64{1, 2, 3})
	require.ErrorIs(s.T(), err, basis.ErrNotFactored)
}

func (s *BasisSuite) TestRefactorSingular() {
	b, err := basis.New(2, 0)
	require.NoError(s.T(), err)
	singular := func(pos int) ([]int, []float64) {
		// Both columns identical: (1,1) -- rank-deficient.
		return []int{0, 1}, []float64{1, 1}
	}
	err = b.Refactor(singular)
	require.ErrorIs(s.T(), err, basis.ErrSingular)
}

func (s *BasisSuite) TestAppendEtaRespectsMaxEtas() {
	b, err := basis.New(3, 1)
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.Refactor(s.asymmetricColumns()))
	require.NoError(s.T(), b.AppendEta(0, []float64{1, 0, 0}))
	err = b.AppendEta(1, []float64{0, 1, 0})
	require.ErrorIs(s.T(), err, basis.ErrEtaOverflow)
}

func (s *BasisSuite) TestFTRANDimensionMismatch() {
	b, err := basis.New(3, 0)
	require.NoError(s.T(), err)
	require.NoError(s.T(), b.Refactor(s.asymmetricColumns()))
	_, err = b.FTRAN([]float64{1, 2})
	require.ErrorIs(s.T(), err, basis.ErrDimensionMismatch)
}
