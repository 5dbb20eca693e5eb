package pricing

import "math"

// Dantzig is the classical most-negative-reduced-cost rule: it ignores
// weights entirely and scores purely on |reducedCost|.
type Dantzig struct{}

// Score implements Strategy.
func (Dantzig) Score(_ int, reducedCost float64, _ *Weights) float64 {
	return math.Abs(reducedCost)
}

// Update implements Strategy; Dantzig carries no per-variable state.
func (Dantzig) Update(_ *Weights, _ PivotInfo) {}

// Name implements Strategy.
func (Dantzig) Name() string { return "dantzig" }
