package simplex

import (
	"fmt"

	"github.com/katalvlaran/plexus/pricing"
)

// unit returns the m-length unit vector e_r.
func unit(m, r int) []float64 {
	v := make([]float64, m)
	v[r] = 1
	return v
}

// applyPivot performs the value updates, eta append, status update, and
// pricing weight update for one pivot: entering variable j moves by theta
// in direction s, displacing the variable at basis position row.
func (ctx *Context) applyPivot(j, row int, alpha []float64, theta, s, reducedCostJ float64) error {
	leaving := ctx.basisHeader[row]

	// Pricing row vector uses the pre-pivot basis, so compute it before
	// AppendEta mutates the eta chain.
	rowVec, err := ctx.bas.BTRAN(unit(ctx.m, row))
	if err != nil {
		return fmt.Errorf("simplex: pricing row BTRAN: %w", err)
	}
	nonbasicIdx := make([]int, 0, ctx.total)
	pivotRow := make([]float64, 0, ctx.total)
	for k := 0; k < ctx.total; k++ {
		if ctx.variableStatus[k] >= 0 || k == j {
			continue
		}
		rows, vals := ctx.columnOf(k)
		var dot float64
		for idx, r := range rows {
			dot += vals[idx] * rowVec[r]
		}
		if dot != 0 {
			nonbasicIdx = append(nonbasicIdx, k)
			pivotRow = append(pivotRow, dot)
		}
	}

	// 1. Value updates: x_B -= theta*s*alpha keeps A x = b as x_j moves by
	// theta*s (delta_B = -alpha * delta_j, delta_j = theta*s).
	for i, v := range ctx.basisHeader {
		ctx.x[v] -= theta * s * alpha[i]
	}
	ctx.x[j] += theta * s

	// Leaving variable settles exactly on whichever bound the ratio test
	// determined it hit, avoiding drift from the subtraction above.
	ai := s * alpha[row]
	if ai > 0 {
		ctx.variableStatus[leaving] = statusAtLower
		ctx.x[leaving] = ctx.l[leaving]
	} else {
		ctx.variableStatus[leaving] = statusAtUpper
		ctx.x[leaving] = ctx.u[leaving]
	}

	// 2. Eta construction (raw alpha; see basis.AppendEta).
	if err := ctx.bas.AppendEta(row, alpha); err != nil {
		return fmt.Errorf("simplex: appending eta: %w", err)
	}

	// 3. Status update.
	ctx.basisHeader[row] = j
	ctx.variableStatus[j] = row

	// 4. Pricing weight update.
	info := pricing.PivotInfo{
		EnteringIdx: j,
		LeavingIdx:  leaving,
		PivotPos:    row,
		PivotElem:   alpha[row],
		NonbasicIdx: nonbasicIdx,
		PivotRow:    pivotRow,
	}
	ctx.pricer.Strategy().Update(ctx.weights, info)

	return nil
}

// applyBoundFlip moves the entering variable the full distance between its
// bounds without touching the basis: every basic variable still shifts by
// dist*s*alpha to keep A x = b, since the entering variable's value moved
// even though it never entered the basis.
func (ctx *Context) applyBoundFlip(j int, alpha []float64, s float64) {
	dist := ctx.u[j] - ctx.l[j]
	for i, v := range ctx.basisHeader {
		ctx.x[v] -= dist * s * alpha[i]
	}
	ctx.x[j] += s * dist
	if s > 0 {
		ctx.variableStatus[j] = statusAtUpper
	} else {
		ctx.variableStatus[j] = statusAtLower
	}
}
