package pricing

import "fmt"

// Weights holds the per-variable reference weights (gamma_j) used by the
// steepest-edge and Devex strategies. Dantzig ignores it entirely, but
// carries one anyway so all three strategies share a single call shape.
type Weights struct {
	gamma []float64
}

// NewWeights allocates a Weights vector of size n with every entry
// initialized to 1, the standard Devex/steepest-edge starting reference.
func NewWeights(n int) (*Weights, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pricing.NewWeights(%d): %w", n, ErrBadOptions)
	}
	g := make([]float64, n)
	for i := range g {
		g[i] = 1
	}
	return &Weights{gamma: g}, nil
}

// Gamma returns the current weight of variable j.
func (w *Weights) Gamma(j int) float64 { return w.gamma[j] }

// ResetAll sets every listed index's weight back to 1 (a Devex reference
// framework reset).
func (w *Weights) ResetAll(idx []int) {
	for _, j := range idx {
		w.gamma[j] = 1
	}
}

// PivotInfo describes the pivot just applied, in the terms a pricing
// strategy needs to update its weights: the entering/leaving variable
// indices, the basis position where the pivot landed, the pivot element,
// and the pivoted tableau row restricted to the remaining nonbasic columns
// (PivotRow[k] corresponds to NonbasicIdx[k]).
type PivotInfo struct {
	EnteringIdx int
	LeavingIdx  int
	PivotPos    int
	PivotElem   float64
	NonbasicIdx []int
	PivotRow    []float64
}

// Strategy scores nonbasic candidates for entry and updates its weights
// after a pivot. Implementations: Dantzig, Devex, SteepestEdge.
type Strategy interface {
	// Score rates candidate j given its reduced cost; higher is more
	// attractive. Callers only score candidates already known to be
	// improving (reduced cost on the wrong side of zero for the
	// optimization sense).
	Score(j int, reducedCost float64, w *Weights) float64

	// Update adjusts w to reflect the pivot described by info.
	Update(w *Weights, info PivotInfo)

	// Name identifies the strategy for logging.
	Name() string
}

// Options configures a PartialPricer. The zero value is invalid; use
// DefaultOptions and the With* functions.
type Options struct {
	Strategy      Strategy
	Levels        int
	BlockSize     int
	NeighborDepth int
}

// Option configures an Options value.
type Option func(*Options)

// DefaultOptions returns steepest-edge pricing, 4 escalation levels, a
// 64-column base block, and a neighborhood depth of 2.
func DefaultOptions() *Options {
	return &Options{
		Strategy:      SteepestEdge{},
		Levels:        4,
		BlockSize:     64,
		NeighborDepth: 2,
	}
}

// WithStrategy overrides the pricing strategy.
func WithStrategy(s Strategy) Option { return func(o *Options) { o.Strategy = s } }

// WithLevels overrides the number of escalation levels.
func WithLevels(n int) Option { return func(o *Options) { o.Levels = n } }

// WithBlockSize overrides the base scan block size.
func WithBlockSize(n int) Option { return func(o *Options) { o.BlockSize = n } }

// WithNeighborDepth sets Options.NeighborDepth. The simplex driver's
// post-pivot neighborhood walk does not read this field; it always uses
// DefaultNeighborOptions (depth 2).
func WithNeighborDepth(d int) Option { return func(o *Options) { o.NeighborDepth = d } }

// normalize validates and returns o (or DefaultOptions with opts applied).
func normalize(opts ...Option) (*Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.Strategy == nil {
		return nil, fmt.Errorf("pricing: Strategy unset: %w", ErrBadOptions)
	}
	if o.Levels <= 0 || o.BlockSize <= 0 {
		return nil, fmt.Errorf("pricing: Levels=%d BlockSize=%d: %w", o.Levels, o.BlockSize, ErrBadOptions)
	}
	if o.NeighborDepth < 0 {
		return nil, fmt.Errorf("pricing: NeighborDepth=%d: %w", o.NeighborDepth, ErrBadOptions)
	}
	return o, nil
}
