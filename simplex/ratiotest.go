package simplex

import "math"

// ratioTest implements the Harris two-pass leaving-variable rule.
//
// alpha is B^-1 A_j (FTRAN of the entering column, basis-position
// indexed); s is the entering variable's step direction (+1 if it is
// rising from its lower bound, -1 if falling from its upper bound); xB,
// lowB, upB are the current values and (possibly phase-relaxed) bounds of
// the basic variables, also basis-position indexed; rowVar maps basis
// position to variable index, used only to break pass-2 ties
// deterministically.
//
// Returns row = -1 with unbounded = true if no basic row limits the step.
// Otherwise row is the leaving basis position, pivotElem = alpha[row], and
// theta is the step length (clamped to 0 if the relaxed minimum went
// slightly negative from tolerance noise).
func ratioTest(alpha []float64, s float64, xB, lowB, upB []float64, rowVar []int, tauF, tauPivot, infinity float64) (row int, pivotElem, theta float64, unbounded bool) {
	type qualifier struct {
		i      int
		bound  float64
		ai     float64 // s * alpha[i]
		clean  float64 // ratio without the bound-expansion term
	}
	var quals []qualifier
	thetaStar := math.Inf(1)

	for i, a := range alpha {
		ai := s * a
		if math.Abs(ai) <= tauPivot {
			continue
		}
		var bound, slack float64
		if ai > 0 {
			bound, slack = lowB[i], 10*tauF
		} else {
			bound, slack = upB[i], -10*tauF
		}
		if math.Abs(bound) >= 0.5*infinity {
			continue
		}
		relaxed := (xB[i] - bound + slack) / ai
		clean := (xB[i] - bound) / ai
		quals = append(quals, qualifier{i: i, bound: bound, ai: ai, clean: clean})
		if relaxed < thetaStar {
			thetaStar = relaxed
		}
	}
	if len(quals) == 0 {
		return -1, 0, 0, true
	}
	if thetaStar < 0 {
		thetaStar = 0
	}

	best, bestAbs := -1, -1.0
	for _, q := range quals {
		if q.clean > thetaStar {
			continue
		}
		absA := math.Abs(alpha[q.i])
		if absA > bestAbs || (absA == bestAbs && (best == -1 || rowVar[q.i] < rowVar[best])) {
			best, bestAbs = q.i, absA
		}
	}
	if best == -1 {
		// Not reached with finite inputs: the pass-1 minimizer's clean
		// ratio never exceeds thetaStar. As a guard, fall back to the
		// qualifying row with the largest |alpha|.
		for _, q := range quals {
			absA := math.Abs(alpha[q.i])
			if absA > bestAbs {
				best, bestAbs = q.i, absA
			}
		}
	}
	return best, alpha[best], thetaStar, false
}
