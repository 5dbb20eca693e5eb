package simplex

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/model"
	"github.com/katalvlaran/plexus/pricing"
)

// Solve runs the revised primal simplex method (Phase I composite
// infeasibility minimization, then Phase II) against problem and returns
// the terminal Result. logger receives structured progress events; cb, if
// non-nil, is invoked once per iteration and may request early stop.
func Solve(problem *model.Problem, cfg Config, logger zerolog.Logger, cb CallbackFunc, opts ...pricing.Option) (*Result, error) {
	if problem == nil {
		return nil, ErrEmptyProblem
	}
	if problem.NVars == 0 || problem.NCons == 0 {
		return &Result{
			Status:         StatusOptimal,
			X:              make([]float64, problem.NVars),
			ReducedCosts:   make([]float64, problem.NVars),
			Duals:          make([]float64, problem.NCons),
			Slacks:         make([]float64, problem.NCons),
			BasisHeader:    []int{},
			VariableStatus: []int{},
		}, nil
	}

	ctx, err := NewContext(problem, cfg, logger, cb, opts...)
	if err != nil {
		return nil, err
	}
	ctx.start = time.Now()
	ctx.logger.Debug().Int("n", ctx.n).Int("m", ctx.m).Msg("simplex: context ready")

	if err := ctx.buildRowVars(); err != nil {
		return nil, err
	}
	if err := ctx.crash(); err != nil {
		return nil, err
	}
	if err := ctx.refactor(); err != nil {
		if !errors.Is(err, basis.ErrSingular) {
			return nil, err
		}
		ctx.logger.Warn().Msg("simplex: crash basis singular, falling back to all-slack basis")
		ctx.allSlackBasis()
		if err := ctx.refactor(); err != nil {
			return &Result{Status: StatusNumeric}, nil
		}
	}
	if err := ctx.computePrimal(); err != nil {
		return nil, err
	}

	if ctx.cfg.Perturb {
		ctx.perturb()
	}

	allFixed := true
	for j := 0; j < ctx.n; j++ {
		if ctx.variableStatus[j] != statusFixed {
			allFixed = false
			break
		}
	}
	if allFixed {
		if ctx.phase1Objective() > ctx.cfg.FeasibilityTol*10 {
			return ctx.buildResult(StatusInfeasible), nil
		}
		return ctx.buildResult(StatusOptimal), nil
	}

	feasible, status, err := ctx.runPhaseOne()
	if err != nil {
		return nil, err
	}
	if !feasible {
		if ctx.cfg.Perturb {
			ctx.unperturb()
		}
		return ctx.buildResult(status), nil
	}

	if err := ctx.refactor(); err != nil {
		return nil, err
	}
	if err := ctx.computePrimal(); err != nil {
		return nil, err
	}
	if err := ctx.computeDuals(); err != nil {
		return nil, err
	}
	ctx.recomputeReducedCosts()

	status, err = ctx.runPhaseTwo()
	if err != nil {
		return nil, err
	}

	if status == StatusOptimal {
		if ctx.cfg.Perturb {
			ctx.unperturb()
			if err := ctx.refine(); err != nil {
				ctx.logger.Warn().Err(err).Msg("simplex: post-perturbation refinement failed")
				status = StatusNumeric
			}
		}
	} else if ctx.cfg.Perturb {
		ctx.unperturb()
	}

	return ctx.buildResult(status), nil
}

// allSlackBasis discards the crash result and seats every logical slack as
// basic, the always-nonsingular fallback basis.
func (ctx *Context) allSlackBasis() {
	for j := 0; j < ctx.total; j++ {
		if j >= ctx.n {
			continue
		}
		ctx.setNonbasicAtDefault(j)
	}
	for r := 0; r < ctx.m; r++ {
		slack := ctx.n + r
		ctx.basisHeader[r] = slack
		ctx.variableStatus[slack] = r
	}
}

// buildResult assembles the public Result from the context's final state:
// structural values, per-row slack values and duals, plus the objective and
// reduced costs when status is StatusOptimal.
func (ctx *Context) buildResult(status Status) *Result {
	res := &Result{
		Status:         status,
		X:              append([]float64(nil), ctx.x[:ctx.n]...),
		ReducedCosts:   make([]float64, ctx.n),
		Duals:          append([]float64(nil), ctx.y...),
		Slacks:         append([]float64(nil), ctx.x[ctx.n:ctx.total]...),
		BasisHeader:    append([]int(nil), ctx.basisHeader...),
		VariableStatus: append([]int(nil), ctx.variableStatus...),
		Iterations:     ctx.iterations,
		Refactors:      ctx.refactors,
	}
	if status == StatusOptimal {
		res.Objective = 0
		for j := 0; j < ctx.n; j++ {
			res.Objective += ctx.problem.Obj[j] * ctx.x[j]
			res.ReducedCosts[j] = ctx.reducedCost(j, ctx.y, ctx.problem.Obj[j])
		}
	}
	return res
}
