package basis

// Eta is a single elementary transformation matrix E = I + (w - e_r) e_r^T,
// recording one pivot: column r of the basis inverse changed from e_r to
// the pivot column w (w[r] is the pivot element, the rest the eliminated
// multipliers). Etas are chained in pivot order via a forward link only;
// FTRAN walks the chain oldest-to-newest as it's built. BTRAN needs the
// reverse order, so it collects pointers into a local slice first (see
// BTRAN in btran.go) rather than the chain carrying a back-reference.
type Eta struct {
	pivotRow  int       // basis position r where the pivot occurred
	pivotElem float64   // w[r], nonzero by construction
	idx       []int     // off-diagonal rows i != r with w[i] != 0
	val       []float64 // w[i] for each entry in idx
	next      *Eta
}

// applyForward applies this eta's inverse to v in place, as the FTRAN
// recurrence: v[r] <- v[r]/p; v[i] -= w[i]*v[r] for every stored i.
func (e *Eta) applyForward(v []float64) {
	r := e.pivotRow
	v[r] /= e.pivotElem
	vr := v[r]
	for k, i := range e.idx {
		v[i] -= e.val[k] * vr
	}
}

// applyBackward applies this eta's inverse transpose to v in place, as the
// BTRAN recurrence: v[r] <- (v[r] - sum_i w[i]*v[i]) / p.
func (e *Eta) applyBackward(v []float64) {
	r := e.pivotRow
	sum := v[r]
	for k, i := range e.idx {
		sum -= e.val[k] * v[i]
	}
	v[r] = sum / e.pivotElem
}
