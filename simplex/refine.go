package simplex

import "fmt"

// refine re-synchronizes the solution against the true (unperturbed)
// bounds: refactor to flush accumulated eta round-off, recompute the
// primal, and verify feasibility. A residual violation past ten times the
// feasibility tolerance is reported as an error so the driver can surface
// NUMERIC instead of a falsely-OPTIMAL result.
func (ctx *Context) refine() error {
	if err := ctx.refactor(); err != nil {
		return fmt.Errorf("simplex: refine refactor: %w", err)
	}
	if err := ctx.computePrimal(); err != nil {
		return fmt.Errorf("simplex: refine primal: %w", err)
	}
	if err := ctx.computeDuals(); err != nil {
		return fmt.Errorf("simplex: refine duals: %w", err)
	}
	ctx.recomputeReducedCosts()

	if viol := ctx.phase1Objective(); viol > ctx.cfg.FeasibilityTol*10 {
		return fmt.Errorf("simplex: residual infeasibility %.3g after unperturbing", viol)
	}
	return nil
}
