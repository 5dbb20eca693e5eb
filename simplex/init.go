package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/plexus/basis"
)

// columnOf returns the sparse column of variable j: borrowed from the
// constraint matrix for a structural variable, or a unit column at its own
// row for a slack.
func (ctx *Context) columnOf(j int) (rows []int, vals []float64) {
	if j < ctx.n {
		rows, vals, _ = ctx.matrix.Col(j)
		return rows, vals
	}
	return []int{j - ctx.n}, []float64{1}
}

// isUnbounded reports whether v is at or past the infinity sentinel.
func (ctx *Context) isUnbounded(v float64) bool {
	return math.Abs(v) >= 0.5*ctx.cfg.Infinity
}

// buildRowVars indexes, once per solve, which variables (structural or
// slack) touch each constraint row, used by the pricing neighborhood walk.
func (ctx *Context) buildRowVars() error {
	if err := ctx.matrix.BuildRowView(); err != nil {
		return fmt.Errorf("simplex: building row view: %w", err)
	}
	ctx.rowVars = make([][]int, ctx.m)
	for r := 0; r < ctx.m; r++ {
		cols, _, err := ctx.matrix.RowEntries(r)
		if err != nil {
			return fmt.Errorf("simplex: reading row %d: %w", r, err)
		}
		vars := make([]int, 0, len(cols)+1)
		vars = append(vars, cols...)
		vars = append(vars, ctx.n+r)
		ctx.rowVars[r] = vars
	}
	return nil
}

// adjacency returns the variables sharing at least one row with j,
// excluding j itself, for pricing's bounded neighborhood walk.
func (ctx *Context) adjacency(j int) []int {
	rows, _ := ctx.columnOf(j)
	seen := map[int]bool{j: true}
	var out []int
	for _, r := range rows {
		for _, v := range ctx.rowVars[r] {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// crash builds the starting basis_header via basis.Crash: starting from
// the all-slack basis, a structural column replaces a row's slack whenever
// it extends the row-adjacency forest without closing a cycle (candidates
// with 3+ distinct rows are left to Phase I), so slacks stay basic only in
// rows that no accepted column covers. Fixed-bound (l==u) structural variables are excluded
// as candidates since they cannot usefully anchor a basic row.
func (ctx *Context) crash() error {
	candidates := make([]basis.Candidate, 0, ctx.n)
	for j := 0; j < ctx.n; j++ {
		if ctx.l[j] == ctx.u[j] {
			continue
		}
		rows, vals := ctx.columnOf(j)
		candidates = append(candidates, basis.Candidate{VarIndex: j, Rows: rows, Values: vals})
	}
	ctx.basisHeader = basis.Crash(ctx.m, candidates, func(r int) int { return ctx.n + r })

	occupied := make([]bool, ctx.total)
	for r, v := range ctx.basisHeader {
		ctx.variableStatus[v] = r
		occupied[v] = true
	}
	for j := 0; j < ctx.total; j++ {
		if occupied[j] {
			continue
		}
		ctx.setNonbasicAtDefault(j)
	}
	return nil
}

// setNonbasicAtDefault assigns j its status and value when it is not in
// the basis: at its lower bound if finite, else at its upper bound if
// finite, else superbasic at 0. Fixed variables (l==u) always report
// statusFixed.
func (ctx *Context) setNonbasicAtDefault(j int) {
	switch {
	case ctx.l[j] == ctx.u[j]:
		ctx.variableStatus[j] = statusFixed
		ctx.x[j] = ctx.l[j]
	case !ctx.isUnbounded(ctx.l[j]):
		ctx.variableStatus[j] = statusAtLower
		ctx.x[j] = ctx.l[j]
	case !ctx.isUnbounded(ctx.u[j]):
		ctx.variableStatus[j] = statusAtUpper
		ctx.x[j] = ctx.u[j]
	default:
		ctx.variableStatus[j] = statusSuperbasic
		ctx.x[j] = 0
	}
}

// refactor rebuilds the LU of the current basis_header and bumps the
// refactor counter.
func (ctx *Context) refactor() error {
	err := ctx.bas.Refactor(ctx.columnOf2)
	if err != nil {
		return err
	}
	ctx.refactors++
	return nil
}

// columnOf2 adapts columnOf to basis.ColumnFunc's (pos int) signature by
// resolving the variable currently occupying that basis position.
func (ctx *Context) columnOf2(pos int) ([]int, []float64) {
	return ctx.columnOf(ctx.basisHeader[pos])
}

// computePrimal solves for x_B given the current nonbasic values:
// B x_B = b - sum_{nonbasic j, x_j != 0} x_j * A_j.
func (ctx *Context) computePrimal() error {
	rhs := make([]float64, ctx.m)
	copy(rhs, ctx.problem.RHS)
	for j := 0; j < ctx.total; j++ {
		if ctx.variableStatus[j] >= 0 || ctx.x[j] == 0 {
			continue
		}
		rows, vals := ctx.columnOf(j)
		for k, r := range rows {
			rhs[r] -= vals[k] * ctx.x[j]
		}
	}
	xB, err := ctx.bas.FTRAN(rhs)
	if err != nil {
		return fmt.Errorf("simplex: computing initial primal: %w", err)
	}
	for i, v := range ctx.basisHeader {
		ctx.x[v] = xB[i]
	}
	return nil
}

// computeDuals runs BTRAN(c_B) into ctx.y using the phase-2 cost vector.
func (ctx *Context) computeDuals() error {
	cB := make([]float64, ctx.m)
	for i, v := range ctx.basisHeader {
		cB[i] = ctx.c[v]
	}
	y, err := ctx.bas.BTRAN(cB)
	if err != nil {
		return fmt.Errorf("simplex: computing duals: %w", err)
	}
	ctx.y = y
	return nil
}

// reducedCost computes d_j = c_j - y.A_j for a nonbasic variable j using
// the supplied dual vector (so phase 1's infeasibility-based duals can
// reuse this without touching ctx.y).
func (ctx *Context) reducedCost(j int, y []float64, cost float64) float64 {
	rows, vals := ctx.columnOf(j)
	d := cost
	for k, r := range rows {
		d -= vals[k] * y[r]
	}
	return d
}

// recomputeReducedCosts fills ctx.d for every nonbasic variable using
// ctx.y (phase 2 duals).
func (ctx *Context) recomputeReducedCosts() {
	for j := 0; j < ctx.total; j++ {
		if ctx.variableStatus[j] >= 0 {
			ctx.d[j] = 0
			continue
		}
		ctx.d[j] = ctx.reducedCost(j, ctx.y, ctx.c[j])
	}
}
