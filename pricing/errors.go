// Package pricing selects the entering variable for a simplex iteration.
// Strategy is a small interface with three interchangeable implementations
// (Dantzig, Devex, SteepestEdge) sharing one Weights/Options pair, so a
// caller swaps pricing rules without touching the driver. PartialPricer
// layers multi-level partial scanning on top of any Strategy: instead of
// pricing every nonbasic column every iteration, it scans a growing chunk
// of the candidate list, escalating levels only when the current chunk has
// no improving candidate, and remembers where it left off so the next
// iteration's scan starts fresh ground.
package pricing

import "errors"

// Sentinel errors for pricing configuration.
var (
	// ErrNoCandidates indicates Select was called with an empty candidate
	// list.
	ErrNoCandidates = errors.New("pricing: no candidates")

	// ErrBadOptions indicates a non-positive Levels or BlockSize.
	ErrBadOptions = errors.New("pricing: invalid options")

	// ErrDimensionMismatch indicates a Weights vector sized for a
	// different problem than the one being priced.
	ErrDimensionMismatch = errors.New("pricing: dimension mismatch")
)
