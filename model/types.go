package model

// Sense is the relational operator of a single constraint row.
type Sense int8

const (
	// LE is a <= constraint: row·x <= b.
	LE Sense = iota
	// EQ is an = constraint: row·x = b.
	EQ
	// GE is a >= constraint: row·x >= b.
	GE
)

// String renders a Sense for diagnostics.
func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case EQ:
		return "="
	case GE:
		return ">="
	default:
		return "?"
	}
}

// DefaultInfinity is the large finite sentinel used in place of true IEEE
// infinity, so arithmetic stays uniform across the core.
const DefaultInfinity = 1e100

// infinityThreshold is the magnitude above which a bound is treated as
// unbounded (half the sentinel).
const infinityThreshold = DefaultInfinity * 0.5

// Problem is the read-only standard-form LP the core solves:
//
//	minimize    c^T x
//	subject to  A x {senses} b,  l <= x <= u
//
// All slices are owned by the Problem after NewProblem validates them; the
// caller must not mutate them afterward.
type Problem struct {
	// NVars is the number of structural variables, n.
	NVars int
	// NCons is the number of constraint rows, m.
	NCons int

	// Obj holds objective coefficients c, length NVars.
	Obj []float64
	// Lower holds per-variable lower bounds l, length NVars.
	Lower []float64
	// Upper holds per-variable upper bounds u, length NVars.
	Upper []float64

	// RHS holds the right-hand side b, length NCons.
	RHS []float64
	// Senses holds the relational operator per row, length NCons.
	Senses []Sense

	// ColPtr, RowIdx, Values are the CSC arrays of A.
	// ColPtr has length NVars+1; RowIdx and Values have length ColPtr[NVars].
	ColPtr []int
	RowIdx []int
	Values []float64

	// Infinity is the sentinel used for unbounded entries in Lower/Upper.
	Infinity float64
}

// IsUnbounded reports whether v represents an unbounded bound under the
// Problem's infinity sentinel: values of magnitude >= 0.5*sentinel are
// treated as unbounded.
func (p *Problem) IsUnbounded(v float64) bool {
	threshold := p.Infinity * 0.5
	if threshold <= 0 {
		threshold = infinityThreshold
	}
	return v >= threshold || v <= -threshold
}

// NNZ returns the declared nonzero count of the constraint matrix.
func (p *Problem) NNZ() int {
	if len(p.ColPtr) == 0 {
		return 0
	}
	return p.ColPtr[len(p.ColPtr)-1]
}
