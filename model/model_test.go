package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plexus/model"
)

// ProblemSuite exercises Problem construction and validation.
type ProblemSuite struct {
	suite.Suite
}

func TestProblemSuite(t *testing.T) {
	suite.Run(t, new(ProblemSuite))
}

// simpleTwoVar builds a small two-variable LP: min -x-y s.t. x+y<=1.
func simpleTwoVar() (n, m int, obj, lower, upper, rhs []float64, senses []model.Sense, colPtr, rowIdx []int, values []float64) {
	n, m = 2, 1
	obj = []float64{-1, -1}
	lower = []float64{0, 0}
	upper = []float64{model.DefaultInfinity, model.DefaultInfinity}
	rhs = []float64{1}
	senses = []model.Sense{model.LE}
	// A = [1 1], one row, each column has a single entry in row 0.
	colPtr = []int{0, 1, 2}
	rowIdx = []int{0, 0}
	values = []float64{1, 1}
	return
}

func (s *ProblemSuite) TestValidProblem() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	p, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, p.NNZ())
	require.True(s.T(), p.IsUnbounded(p.Upper[0]))
	require.False(s.T(), p.IsUnbounded(p.Lower[0]))
}

func (s *ProblemSuite) TestBadBounds() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	upper[0] = -5 // now lower[0]=0 > upper[0]=-5
	_, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values)
	require.ErrorIs(s.T(), err, model.ErrBadBounds)
}

func (s *ProblemSuite) TestDimensionMismatch() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	obj = obj[:1]
	_, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values)
	require.ErrorIs(s.T(), err, model.ErrDimensionMismatch)
}

func (s *ProblemSuite) TestBadCSCColPtrStart() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	colPtr[0] = 1
	_, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values)
	require.ErrorIs(s.T(), err, model.ErrBadCSC)
}

func (s *ProblemSuite) TestBadCSCRowOutOfRange() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	rowIdx[0] = 7 // only row 0 exists (m=1)
	_, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values)
	require.ErrorIs(s.T(), err, model.ErrBadCSC)
}

func (s *ProblemSuite) TestBadSense() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	senses[0] = model.Sense(9)
	_, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values)
	require.ErrorIs(s.T(), err, model.ErrBadSense)
}

func (s *ProblemSuite) TestNonFiniteRejected() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	nan := 0.0
	nan = nan / nan
	obj[0] = nan
	_, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values)
	require.ErrorIs(s.T(), err, model.ErrNonFinite)
}

func (s *ProblemSuite) TestWithInfinity() {
	n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values := simpleTwoVar()
	upper[0] = 1e30
	p, err := model.NewProblem(n, m, obj, lower, upper, rhs, senses, colPtr, rowIdx, values, model.WithInfinity(1e30))
	require.NoError(s.T(), err)
	require.True(s.T(), p.IsUnbounded(upper[0]))
}
