package simplex_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/plexus/model"
	"github.com/katalvlaran/plexus/simplex"
)

// DriverSuite exercises Solve end to end against small, hand-solved LPs
// covering each terminal Status.
type DriverSuite struct {
	suite.Suite
}

func TestDriverSuite(t *testing.T) {
	suite.Run(t, new(DriverSuite))
}

// TestTrivialEmptyProblem covers the n=0 (no structural variables) and
// m=0 (no constraints) boundary cases, both immediately OPTIMAL.
func (s *DriverSuite) TestTrivialEmptyProblem() {
	p, err := model.NewProblem(0, 0, nil, nil, nil, nil, nil, []int{0}, nil, nil)
	s.Require().NoError(err)

	res, err := simplex.Solve(p, simplex.DefaultConfig(), zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusOptimal, res.Status)
	s.Equal(0.0, res.Objective)
}

// TestTwoVariableLP solves:
//
//	minimize  -3x - 5y
//	s.t.      x          <= 4
//	               2y     <= 12
//	          3x + 2y     <= 18
//	          x, y >= 0
//
// whose optimum is x=2, y=6, objective -36.
func (s *DriverSuite) TestTwoVariableLP() {
	p, err := model.NewProblem(
		2, 3,
		[]float64{-3, -5},
		[]float64{0, 0},
		[]float64{model.DefaultInfinity, model.DefaultInfinity},
		[]float64{4, 12, 18},
		[]model.Sense{model.LE, model.LE, model.LE},
		[]int{0, 2, 4},
		[]int{0, 2, 1, 2},
		[]float64{1, 3, 2, 2},
	)
	s.Require().NoError(err)

	res, err := simplex.Solve(p, simplex.DefaultConfig(), zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusOptimal, res.Status)
	s.InDelta(-36, res.Objective, 1e-6)
	s.InDelta(2, res.X[0], 1e-6)
	s.InDelta(6, res.X[1], 1e-6)
}

// TestInfeasible covers x+y = 10 with x,y both capped at 2, an
// unsatisfiable row.
func (s *DriverSuite) TestInfeasible() {
	p, err := model.NewProblem(
		2, 1,
		[]float64{1, 1},
		[]float64{0, 0},
		[]float64{2, 2},
		[]float64{10},
		[]model.Sense{model.EQ},
		[]int{0, 1, 2},
		[]int{0, 0},
		[]float64{1, 1},
	)
	s.Require().NoError(err)

	res, err := simplex.Solve(p, simplex.DefaultConfig(), zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusInfeasible, res.Status)
}

// TestUnbounded covers minimize -x s.t. x <= y, x,y >= 0: y can track x
// upward without limit, so the objective is unbounded below.
func (s *DriverSuite) TestUnbounded() {
	p, err := model.NewProblem(
		2, 1,
		[]float64{-1, 0},
		[]float64{0, 0},
		[]float64{model.DefaultInfinity, model.DefaultInfinity},
		[]float64{0},
		[]model.Sense{model.LE},
		[]int{0, 1, 2},
		[]int{0, 0},
		[]float64{1, -1},
	)
	s.Require().NoError(err)

	res, err := simplex.Solve(p, simplex.DefaultConfig(), zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusUnbounded, res.Status)
}

// TestBoundFlipNotUnbounded covers minimize -x s.t. 0 <= x <= 1, with a
// constraint row x does not even appear in (an empty column), so the
// ratio test's pivot column is entirely zero and finds no limiting basic
// row (theta*=+inf). Per spec §4.4 the entering variable still competes
// with its own finite bound distance: x must flip from its lower bound
// straight to its upper bound (x=1) rather than the driver reporting
// UNBOUNDED just because no basic row blocked it.
func (s *DriverSuite) TestBoundFlipNotUnbounded() {
	p, err := model.NewProblem(
		1, 1,
		[]float64{-1},
		[]float64{0},
		[]float64{1},
		[]float64{0},
		[]model.Sense{model.EQ},
		[]int{0, 0},
		nil,
		nil,
	)
	s.Require().NoError(err)

	res, err := simplex.Solve(p, simplex.DefaultConfig(), zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusOptimal, res.Status)
	s.InDelta(1, res.X[0], 1e-9)
	s.InDelta(-1, res.Objective, 1e-9)
}

// TestAllFixedFeasible covers the boundary case where every structural
// variable is fixed (l==u) and the resulting system happens to satisfy
// every row exactly.
func (s *DriverSuite) TestAllFixedFeasible() {
	p, err := model.NewProblem(
		1, 1,
		[]float64{1},
		[]float64{5},
		[]float64{5},
		[]float64{5},
		[]model.Sense{model.EQ},
		[]int{0, 1},
		[]int{0},
		[]float64{1},
	)
	s.Require().NoError(err)

	res, err := simplex.Solve(p, simplex.DefaultConfig(), zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusOptimal, res.Status)
	s.InDelta(5, res.X[0], 1e-9)
}

// TestIterationLimitStopsEarly confirms a one-iteration cap surfaces
// ITERATION_LIMIT rather than running to completion.
func (s *DriverSuite) TestIterationLimitStopsEarly() {
	p, err := model.NewProblem(
		2, 3,
		[]float64{-3, -5},
		[]float64{0, 0},
		[]float64{model.DefaultInfinity, model.DefaultInfinity},
		[]float64{4, 12, 18},
		[]model.Sense{model.LE, model.LE, model.LE},
		[]int{0, 2, 4},
		[]int{0, 2, 1, 2},
		[]float64{1, 3, 2, 2},
	)
	s.Require().NoError(err)

	cfg := simplex.DefaultConfig()
	cfg.Perturb = false
	cfg.IterLimit = 1
	res, err := simplex.Solve(p, cfg, zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusIterationLimit, res.Status)
}

// TestDegenerateCyclingResolvedByPerturbation runs Beale's classic
// degenerate LP (textbook example of a problem that cycles forever under
// a naive most-negative-reduced-cost rule with no anti-cycling device):
//
//	minimize  -0.75x1 + 150x2 - 0.02x3 + 6x4
//	s.t.      0.25x1 - 60x2 - 0.04x3 + 9x4 <= 0
//	          0.5x1  - 90x2 - 0.02x3 + 3x4 <= 0
//	                          x3           <= 1
//	          x1,x2,x3,x4 >= 0
//
// With perturbation and steepest-edge pricing on, the driver must reach
// OPTIMAL in a small, bounded number of iterations rather than looping
// forever.
func (s *DriverSuite) TestDegenerateCyclingResolvedByPerturbation() {
	p, err := model.NewProblem(
		4, 3,
		[]float64{-0.75, 150, -0.02, 6},
		[]float64{0, 0, 0, 0},
		[]float64{model.DefaultInfinity, model.DefaultInfinity, model.DefaultInfinity, model.DefaultInfinity},
		[]float64{0, 0, 1},
		[]model.Sense{model.LE, model.LE, model.LE},
		[]int{0, 2, 4, 7, 9},
		[]int{0, 1, 0, 1, 0, 1, 2, 0, 1},
		[]float64{0.25, 0.5, -60, -90, -0.04, -0.02, 1, 9, 3},
	)
	s.Require().NoError(err)

	cfg := simplex.DefaultConfig()
	cfg.IterLimit = 1000
	res, err := simplex.Solve(p, cfg, zerolog.Nop(), nil)
	s.Require().NoError(err)
	s.Equal(simplex.StatusOptimal, res.Status)
	s.Less(res.Iterations, 1000)
}

// TestCallbackCanStop confirms a callback requesting RequestStop surfaces
// INTERRUPTED.
func (s *DriverSuite) TestCallbackCanStop() {
	p, err := model.NewProblem(
		2, 3,
		[]float64{-3, -5},
		[]float64{0, 0},
		[]float64{model.DefaultInfinity, model.DefaultInfinity},
		[]float64{4, 12, 18},
		[]model.Sense{model.LE, model.LE, model.LE},
		[]int{0, 2, 4},
		[]int{0, 2, 1, 2},
		[]float64{1, 3, 2, 2},
	)
	s.Require().NoError(err)

	cb := func(simplex.CallbackInfo) simplex.RequestCode { return simplex.RequestStop }
	res, err := simplex.Solve(p, simplex.DefaultConfig(), zerolog.Nop(), cb)
	s.Require().NoError(err)
	s.Equal(simplex.StatusInterrupted, res.Status)
}
