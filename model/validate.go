package model

import (
	"fmt"
	"math"
)

// Option configures a Problem at construction time.
type Option func(*Problem)

// WithInfinity overrides the default unbounded sentinel (default 1e100).
// Values of magnitude >= 0.5*inf are subsequently treated as unbounded by
// IsUnbounded.
func WithInfinity(inf float64) Option {
	return func(p *Problem) {
		if inf > 0 {
			p.Infinity = inf
		}
	}
}

// NewProblem validates and constructs a Problem from the raw arrays a
// caller assembled. It enforces the invariants a well-formed input must
// satisfy before the core is allowed to consume it:
//
//  1. every slice has the length its dimension implies;
//  2. l[j] <= u[j] for all j;
//  3. CSC format is well-formed (col_ptr monotone, col_ptr[0]=0,
//     col_ptr[n]=nnz, all row indices in [0,m));
//  4. every sense is one of LE, EQ, GE;
//  5. no NaN/Inf leaks in through c, l, u, b, or A's values — callers
//     signal "unbounded" via the Infinity sentinel, never via IEEE Inf.
//
// The returned Problem owns its slices; NewProblem does not copy them, so
// callers must not mutate the arguments afterward.
func NewProblem(
	n, m int,
	obj, lower, upper []float64,
	rhs []float64,
	senses []Sense,
	colPtr, rowIdx []int,
	values []float64,
	opts ...Option,
) (*Problem, error) {
	p := &Problem{
		NVars:    n,
		NCons:    m,
		Obj:      obj,
		Lower:    lower,
		Upper:    upper,
		RHS:      rhs,
		Senses:   senses,
		ColPtr:   colPtr,
		RowIdx:   rowIdx,
		Values:   values,
		Infinity: DefaultInfinity,
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.validateShapes(); err != nil {
		return nil, err
	}
	if err := p.validateBounds(); err != nil {
		return nil, err
	}
	if err := p.validateCSC(); err != nil {
		return nil, err
	}
	if err := p.validateSenses(); err != nil {
		return nil, err
	}
	if err := p.validateFinite(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Problem) validateShapes() error {
	switch {
	case len(p.Obj) != p.NVars:
		return fmt.Errorf("model: len(Obj)=%d, want %d: %w", len(p.Obj), p.NVars, ErrDimensionMismatch)
	case len(p.Lower) != p.NVars:
		return fmt.Errorf("model: len(Lower)=%d, want %d: %w", len(p.Lower), p.NVars, ErrDimensionMismatch)
	case len(p.Upper) != p.NVars:
		return fmt.Errorf("model: len(Upper)=%d, want %d: %w", len(p.Upper), p.NVars, ErrDimensionMismatch)
	case len(p.RHS) != p.NCons:
		return fmt.Errorf("model: len(RHS)=%d, want %d: %w", len(p.RHS), p.NCons, ErrDimensionMismatch)
	case len(p.Senses) != p.NCons:
		return fmt.Errorf("model: len(Senses)=%d, want %d: %w", len(p.Senses), p.NCons, ErrDimensionMismatch)
	case len(p.ColPtr) != p.NVars+1:
		return fmt.Errorf("model: len(ColPtr)=%d, want %d: %w", len(p.ColPtr), p.NVars+1, ErrDimensionMismatch)
	case len(p.RowIdx) != len(p.Values):
		return fmt.Errorf("model: len(RowIdx)=%d != len(Values)=%d: %w", len(p.RowIdx), len(p.Values), ErrDimensionMismatch)
	}
	return nil
}

func (p *Problem) validateBounds() error {
	for j := 0; j < p.NVars; j++ {
		if p.Lower[j] > p.Upper[j] {
			return fmt.Errorf("model: variable %d: lower %g > upper %g: %w", j, p.Lower[j], p.Upper[j], ErrBadBounds)
		}
	}
	return nil
}

func (p *Problem) validateCSC() error {
	if p.NVars == 0 {
		return nil
	}
	if p.ColPtr[0] != 0 {
		return fmt.Errorf("model: ColPtr[0]=%d, want 0: %w", p.ColPtr[0], ErrBadCSC)
	}
	if p.ColPtr[p.NVars] != len(p.Values) {
		return fmt.Errorf("model: ColPtr[n]=%d, want nnz=%d: %w", p.ColPtr[p.NVars], len(p.Values), ErrBadCSC)
	}
	for j := 0; j < p.NVars; j++ {
		if p.ColPtr[j] > p.ColPtr[j+1] {
			return fmt.Errorf("model: ColPtr not monotone at %d: %w", j, ErrBadCSC)
		}
	}
	for k, r := range p.RowIdx {
		if r < 0 || r >= p.NCons {
			return fmt.Errorf("model: RowIdx[%d]=%d out of range [0,%d): %w", k, r, p.NCons, ErrBadCSC)
		}
	}
	return nil
}

func (p *Problem) validateSenses() error {
	for i, s := range p.Senses {
		if s != LE && s != EQ && s != GE {
			return fmt.Errorf("model: row %d: sense %d: %w", i, s, ErrBadSense)
		}
	}
	return nil
}

func (p *Problem) validateFinite() error {
	check := func(name string, v float64, idx int) error {
		if v != v { // NaN
			return fmt.Errorf("model: %s[%d] is NaN: %w", name, idx, ErrNonFinite)
		}
		if math.IsInf(v, 0) {
			return fmt.Errorf("model: %s[%d] is Inf (use the Infinity sentinel instead): %w", name, idx, ErrNonFinite)
		}
		return nil
	}
	for j, v := range p.Obj {
		if err := check("Obj", v, j); err != nil {
			return err
		}
	}
	for j, v := range p.Lower {
		if err := check("Lower", v, j); err != nil {
			return err
		}
	}
	for j, v := range p.Upper {
		if err := check("Upper", v, j); err != nil {
			return err
		}
	}
	for i, v := range p.RHS {
		if err := check("RHS", v, i); err != nil {
			return err
		}
	}
	for k, v := range p.Values {
		if err := check("Values", v, k); err != nil {
			return err
		}
	}
	return nil
}
