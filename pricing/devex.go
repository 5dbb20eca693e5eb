package pricing

// Devex approximates SteepestEdge's d_j^2/gamma_j scoring with a cheaper
// reference-framework weight that resets to 1 once it grows past
// ResetThreshold, avoiding the unbounded weight growth that can otherwise
// accumulate over many pivots without a full recomputation.
type Devex struct {
	ResetThreshold float64
}

// NewDevex returns a Devex strategy with the common reset threshold of
// 1e4.
func NewDevex() *Devex {
	return &Devex{ResetThreshold: 1e4}
}

// Score implements Strategy; identical form to SteepestEdge, but over the
// approximate weights this type maintains.
func (d *Devex) Score(j int, reducedCost float64, w *Weights) float64 {
	g := w.gamma[j]
	if g <= 0 {
		g = 1
	}
	return (reducedCost * reducedCost) / g
}

// Update implements Strategy: the same approximate recurrence as
// SteepestEdge, followed by a reset of the whole reference framework if any
// weight now exceeds ResetThreshold.
func (d *Devex) Update(w *Weights, info PivotInfo) {
	gammaQ := w.gamma[info.EnteringIdx]
	pe2 := info.PivotElem * info.PivotElem
	maxWeight := 0.0
	for k, j := range info.NonbasicIdx {
		a := info.PivotRow[k]
		if a != 0 {
			cand := (a * a / pe2) * gammaQ
			if cand > w.gamma[j] {
				w.gamma[j] = cand
			}
		}
		if w.gamma[j] > maxWeight {
			maxWeight = w.gamma[j]
		}
	}
	leaving := gammaQ / pe2
	if leaving < 1 {
		leaving = 1
	}
	w.gamma[info.LeavingIdx] = leaving

	threshold := d.ResetThreshold
	if threshold <= 0 {
		threshold = 1e4
	}
	if maxWeight > threshold || leaving > threshold {
		w.ResetAll(info.NonbasicIdx)
		w.gamma[info.LeavingIdx] = 1
	}
}

// Name implements Strategy.
func (d *Devex) Name() string { return "devex" }
