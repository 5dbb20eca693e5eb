package simplex

import (
	"time"

	"github.com/katalvlaran/plexus/pricing"
)

// attractive reports whether nonbasic variable j (holding reduced cost d)
// is a valid entering candidate given its current bound, and if so, which
// direction it would move.
func (ctx *Context) attractive(j int, d, tauO float64) (bool, float64) {
	switch ctx.variableStatus[j] {
	case statusAtLower:
		if d < -tauO {
			return true, 1
		}
	case statusAtUpper:
		if d > tauO {
			return true, -1
		}
	case statusSuperbasic:
		if d < -tauO {
			return true, 1
		}
		if d > tauO {
			return true, -1
		}
	}
	return false, 0
}

// nonbasicIndices lists every variable eligible to enter the basis: not
// currently basic, and not fixed (l==u admits no direction to move in).
// Variables in the bounded neighborhood of the last pivot's entering
// column are listed first, biasing the pricer's block scan toward columns
// likely to still be attractive after a localized basis change.
func (ctx *Context) nonbasicIndices() []int {
	var near map[int]bool
	if ctx.lastEntering >= 0 {
		nbrs := pricing.Neighborhood(ctx.lastEntering, ctx.adjacency, pricing.DefaultNeighborOptions())
		near = make(map[int]bool, len(nbrs))
		for _, v := range nbrs {
			near[v] = true
		}
	}

	eligible := func(j int) bool {
		return ctx.variableStatus[j] < 0 && ctx.variableStatus[j] != statusFixed
	}

	out := make([]int, 0, ctx.total-ctx.m)
	for j := 0; j < ctx.total; j++ {
		if eligible(j) && near[j] {
			out = append(out, j)
		}
	}
	for j := 0; j < ctx.total; j++ {
		if eligible(j) && !near[j] {
			out = append(out, j)
		}
	}
	return out
}

// phase1Duals computes y1 = B^-T c1_B, where c1_B[i] is -1 if the basic
// variable at row i is below its lower bound, +1 if above its upper bound,
// 0 if feasible — the composite Phase I objective's gradient.
func (ctx *Context) phase1Duals() ([]float64, error) {
	c1B := make([]float64, ctx.m)
	for i, v := range ctx.basisHeader {
		switch {
		case ctx.x[v] < ctx.l[v]-ctx.cfg.FeasibilityTol:
			c1B[i] = -1
		case ctx.x[v] > ctx.u[v]+ctx.cfg.FeasibilityTol:
			c1B[i] = 1
		}
	}
	return ctx.bas.BTRAN(c1B)
}

// phase1Objective is the total bound violation across basic variables.
func (ctx *Context) phase1Objective() float64 {
	total := 0.0
	for _, v := range ctx.basisHeader {
		if ctx.x[v] < ctx.l[v] {
			total += ctx.l[v] - ctx.x[v]
		} else if ctx.x[v] > ctx.u[v] {
			total += ctx.x[v] - ctx.u[v]
		}
	}
	return total
}

// effectiveBounds returns the (possibly Phase-I-relaxed) bounds of the
// basic variables for the ratio test: a basic variable currently violating
// its lower bound has that bound relaxed to -infinity (it is already past
// it, so the ratio test must not treat that side as limiting); symmetrically
// for an upper-bound violation. Phase II always uses the true bounds.
func (ctx *Context) effectiveBounds(phase1 bool) (lowB, upB []float64) {
	lowB = make([]float64, ctx.m)
	upB = make([]float64, ctx.m)
	for i, v := range ctx.basisHeader {
		lb, ub := ctx.l[v], ctx.u[v]
		if phase1 {
			if ctx.x[v] < lb-ctx.cfg.FeasibilityTol {
				lb = -ctx.cfg.Infinity
			} else if ctx.x[v] > ub+ctx.cfg.FeasibilityTol {
				ub = ctx.cfg.Infinity
			}
		}
		lowB[i], upB[i] = lb, ub
	}
	return lowB, upB
}

// runIteration performs one pricing/ratio-test/pivot step shared by both
// phases. y and costOf supply the phase-appropriate duals and nonbasic
// cost; phase1 selects the relaxed-bound ratio test. Returns found=false
// when pricing has nothing attractive (phase terminal) and unbounded=true
// only when, in Phase II, the ratio test found no limiting row AND the
// entering variable's own bound distance is infinite too — a finite bound
// distance with no limiting row is a bound flip, not unboundedness.
func (ctx *Context) runIteration(phase Phase, y []float64, costOf func(int) float64) (found, unbounded bool, err error) {
	candidates := ctx.nonbasicIndices()
	scoreFn := func(j int) float64 {
		d := ctx.reducedCost(j, y, costOf(j))
		if ctx.variableStatus[j] == statusAtUpper {
			return -d // normalize to the pricer's "improving iff < -tol" convention
		}
		return d
	}
	j, _, ok, selErr := ctx.pricer.Select(candidates, scoreFn, ctx.weights, ctx.cfg.OptimalityTol)
	if selErr != nil || !ok {
		return false, false, nil
	}

	d := ctx.reducedCost(j, y, costOf(j))
	attractiveOK, s := ctx.attractive(j, d, ctx.cfg.OptimalityTol)
	if !attractiveOK {
		return false, false, nil
	}

	rows, vals := ctx.columnOf(j)
	rhs := make([]float64, ctx.m)
	for k, r := range rows {
		rhs[r] = vals[k]
	}
	alpha, ftranErr := ctx.bas.FTRAN(rhs)
	if ftranErr != nil {
		return false, false, ftranErr
	}
	ctx.checkDrift(rhs, alpha)

	xB := make([]float64, ctx.m)
	for i, v := range ctx.basisHeader {
		xB[i] = ctx.x[v]
	}
	lowB, upB := ctx.effectiveBounds(phase == PhaseOne)

	row, _, theta, unb := ratioTest(alpha, s, xB, lowB, upB, ctx.basisHeader, ctx.cfg.FeasibilityTol, ctx.cfg.PivotTol, ctx.cfg.Infinity)

	ctx.lastEntering = j

	// The entering variable always competes with theta*, flip included: a
	// ratio test with no limiting basic row (theta*=+inf) only means
	// UNBOUNDED if the entering variable's own bound distance is also
	// infinite. A finite-width entering variable flips to its far bound
	// instead of halting the solve (spec §4.4).
	dist := ctx.u[j] - ctx.l[j]
	if !ctx.isUnbounded(dist) && (unb || dist <= theta) {
		ctx.applyBoundFlip(j, alpha, s)
		return true, false, nil
	}
	if unb {
		return true, true, nil
	}
	if err := ctx.applyPivot(j, row, alpha, theta, s, d); err != nil {
		return false, false, err
	}
	return true, false, nil
}

// checkTermination evaluates the shared iteration-boundary checks: limits,
// cancellation, and the user callback.
func (ctx *Context) checkTermination(phase Phase) (Status, bool) {
	if ctx.cancelled {
		return StatusInterrupted, true
	}
	if ctx.cfg.IterLimit > 0 && ctx.iterations >= ctx.cfg.IterLimit {
		return StatusIterationLimit, true
	}
	elapsed := time.Since(ctx.start)
	if ctx.cfg.TimeLimit > 0 && elapsed >= ctx.cfg.TimeLimit {
		return StatusTimeLimit, true
	}
	if ctx.cb != nil {
		obj := ctx.phase1Objective()
		if phase == PhaseTwo {
			obj = ctx.objective()
		}
		if ctx.cb(CallbackInfo{Phase: phase, Iteration: ctx.iterations, Objective: obj, Elapsed: elapsed}) == RequestStop {
			ctx.cancelled = true
			return StatusInterrupted, true
		}
	}
	return 0, false
}

// objective returns c . x over structural and slack variables using the
// working (possibly perturbed) cost vector.
func (ctx *Context) objective() float64 {
	var sum float64
	for j := 0; j < ctx.total; j++ {
		sum += ctx.c[j] * ctx.x[j]
	}
	return sum
}

// runPhaseOne iterates until the composite infeasibility objective reaches
// zero (feasible=true, proceed to Phase II) or no attractive variable
// remains while infeasibility persists (INFEASIBLE).
func (ctx *Context) runPhaseOne() (feasible bool, status Status, err error) {
	for {
		if ctx.phase1Objective() <= ctx.cfg.FeasibilityTol {
			return true, 0, nil
		}
		ctx.iterations++
		if st, stop := ctx.checkTermination(PhaseOne); stop {
			return false, st, nil
		}

		y, derr := ctx.phase1Duals()
		if derr != nil {
			return false, StatusNumeric, nil
		}
		found, _, iterErr := ctx.runIteration(PhaseOne, y, func(int) float64 { return 0 })
		if iterErr != nil {
			return false, StatusNumeric, nil
		}
		if !found {
			if ctx.phase1Objective() <= ctx.cfg.FeasibilityTol {
				return true, 0, nil
			}
			return false, StatusInfeasible, nil
		}
		if err := ctx.maybeRefactor(PhaseOne); err != nil {
			return false, StatusNumeric, nil
		}
	}
}

// runPhaseTwo iterates the original objective until optimal or unbounded.
func (ctx *Context) runPhaseTwo() (Status, error) {
	for {
		ctx.iterations++
		if st, stop := ctx.checkTermination(PhaseTwo); stop {
			return st, nil
		}
		if err := ctx.computeDuals(); err != nil {
			return StatusNumeric, nil
		}
		found, unbounded, iterErr := ctx.runIteration(PhaseTwo, ctx.y, func(j int) float64 { return ctx.c[j] })
		if iterErr != nil {
			return StatusNumeric, nil
		}
		if unbounded {
			return StatusUnbounded, nil
		}
		if !found {
			return StatusOptimal, nil
		}
		if err := ctx.maybeRefactor(PhaseTwo); err != nil {
			return StatusNumeric, nil
		}
	}
}

// maybeRefactor refactors (and, in Phase II, recomputes duals/reduced
// costs) once the eta chain reaches the configured threshold.
func (ctx *Context) maybeRefactor(phase Phase) error {
	if ctx.bas.EtaCount() < ctx.cfg.RefactorFreq && !ctx.driftFlagged {
		return nil
	}
	if ctx.driftFlagged {
		ctx.logger.Warn().Msg("simplex: FTRAN drift exceeded tolerance, forcing refactor")
		ctx.driftFlagged = false
	}
	if err := ctx.refactor(); err != nil {
		return err
	}
	if phase == PhaseTwo {
		if err := ctx.computeDuals(); err != nil {
			return err
		}
		ctx.recomputeReducedCosts()
	}
	return nil
}
