package simplex

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/model"
	"github.com/katalvlaran/plexus/pricing"
	"github.com/katalvlaran/plexus/sparse"
)

// Nonbasic status codes: a nonnegative value is the basic row; these four
// cover every nonbasic case.
const (
	statusAtLower    = -1
	statusAtUpper    = -2
	statusSuperbasic = -3
	statusFixed      = -4
)

// Context holds every array and handle owned by one solve: working bound
// copies (perturbable independently of the read-only model), the primal/
// dual/reduced-cost vectors, basis_header/variable_status, the basis and
// pricing state, counters, and a logger. Variables 0..n-1 are the model's
// structural variables; n..n+m-1 are logical slacks, one per row, with
// bounds set from that row's sense (<= : [0,+inf), >= : (-inf,0], = : [0,0]).
type Context struct {
	problem *model.Problem
	cfg     Config
	logger  zerolog.Logger
	cb      CallbackFunc

	n, m, total int

	c, l, u        []float64 // working (perturbable) cost/bounds, length total
	origL, origU   []float64 // unperturbed copies, restored before reporting
	x              []float64 // length total
	y              []float64 // length m, duals
	d              []float64 // length total, reduced costs (phase 2)
	basisHeader    []int     // length m
	variableStatus []int     // length total

	bas     *basis.Basis
	weights *pricing.Weights
	pricer  *pricing.PartialPricer

	matrix  *sparse.CSC
	rowVars [][]int // rowVars[r] = variable indices touching row r, built once

	iterations   int
	refactors    int
	start        time.Time
	cancelled    bool
	lastEntering int  // -1 until the first pivot/flip; seeds the pricing neighborhood bias
	driftFlagged bool // set by checkDrift; consumed and cleared by maybeRefactor
}

// checkDrift verifies that FTRAN's result alpha actually solves B*alpha =
// rhs against the basis as gathered from basisHeader/columnOf (§4.2's
// "‖B·x_computed − a_entering‖∞ ≤ drift_tol"). A violation sets
// driftFlagged, which forces maybeRefactor to refactor immediately rather
// than waiting for the eta-count threshold.
func (ctx *Context) checkDrift(rhs, alpha []float64) {
	reconstructed := make([]float64, ctx.m)
	for i, v := range ctx.basisHeader {
		if alpha[i] == 0 {
			continue
		}
		rows, vals := ctx.columnOf(v)
		for k, r := range rows {
			reconstructed[r] += vals[k] * alpha[i]
		}
	}
	var norm float64
	for i := range reconstructed {
		if d := reconstructed[i] - rhs[i]; d > norm {
			norm = d
		} else if -d > norm {
			norm = -d
		}
	}
	if norm > ctx.cfg.DriftTol {
		ctx.driftFlagged = true
	}
}

// NewContext validates cfg, copies the model's bounds/objective into
// working arrays, appends one slack per row, and prepares (but does not
// run) the crash/refactor/phase machinery.
func NewContext(problem *model.Problem, cfg Config, logger zerolog.Logger, cb CallbackFunc, opts ...pricing.Option) (*Context, error) {
	if problem == nil {
		return nil, ErrEmptyProblem
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	n, m := problem.NVars, problem.NCons
	total := n + m

	matrix, err := sparse.NewCSC(m, n, problem.ColPtr, problem.RowIdx, problem.Values)
	if err != nil {
		return nil, fmt.Errorf("simplex: building constraint matrix: %w", err)
	}

	c := make([]float64, total)
	l := make([]float64, total)
	u := make([]float64, total)
	copy(c[:n], problem.Obj)
	copy(l[:n], problem.Lower)
	copy(u[:n], problem.Upper)
	for r := 0; r < m; r++ {
		switch problem.Senses[r] {
		case model.LE:
			l[n+r], u[n+r] = 0, cfg.Infinity
		case model.GE:
			l[n+r], u[n+r] = -cfg.Infinity, 0
		case model.EQ:
			l[n+r], u[n+r] = 0, 0
		}
	}
	origL := append([]float64(nil), l...)
	origU := append([]float64(nil), u...)

	w, err := pricing.NewWeights(total)
	if err != nil {
		return nil, fmt.Errorf("simplex: allocating pricing weights: %w", err)
	}
	pricer, err := pricing.NewPartialPricer(opts...)
	if err != nil {
		return nil, fmt.Errorf("simplex: configuring pricer: %w", err)
	}
	bas, err := basis.New(m, cfg.RefactorFreq)
	if err != nil {
		return nil, fmt.Errorf("simplex: allocating basis: %w", err)
	}

	ctx := &Context{
		problem:        problem,
		cfg:            cfg,
		logger:         logger,
		cb:             cb,
		n:              n,
		m:              m,
		total:          total,
		c:              c,
		l:              l,
		u:              u,
		origL:          origL,
		origU:          origU,
		x:              make([]float64, total),
		y:              make([]float64, m),
		d:              make([]float64, total),
		basisHeader:    make([]int, m),
		variableStatus: make([]int, total),
		bas:            bas,
		weights:        w,
		pricer:         pricer,
		matrix:         matrix,
		lastEntering:   -1,
	}
	return ctx, nil
}
