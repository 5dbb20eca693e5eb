package pricing

import "fmt"

// ReducedCostFunc returns the current reduced cost of candidate j.
type ReducedCostFunc func(j int) float64

// PartialPricer scans a growing chunk of the candidate list each call
// instead of pricing every column: level 0 is a BlockSize-wide window
// starting where the previous call left off; if nothing improving turns up
// there, the window doubles (level 1, 2, ...) up to the full candidate
// list, mirroring a level-building search that only widens once the
// current level is exhausted.
type PartialPricer struct {
	opts   *Options
	cursor int
}

// NewPartialPricer validates opts and returns a PartialPricer.
func NewPartialPricer(opts ...Option) (*PartialPricer, error) {
	o, err := normalize(opts...)
	if err != nil {
		return nil, err
	}
	return &PartialPricer{opts: o}, nil
}

// Select scans candidates (a set of nonbasic variable indices) for the
// best improving entry per p's strategy, where "improving" means
// reducedCost(j) < -tol. It returns found=false if no candidate in the
// full scan improves. The internal cursor advances by however many
// candidates were scanned, so the next call starts past them.
func (p *PartialPricer) Select(candidates []int, reducedCost ReducedCostFunc, w *Weights, tol float64) (best int, bestScore float64, found bool, err error) {
	n := len(candidates)
	if n == 0 {
		return 0, 0, false, fmt.Errorf("pricing: Select: %w", ErrNoCandidates)
	}

	block := p.opts.BlockSize
	if block > n {
		block = n
	}
	scanned := 0
	for level := 0; level < p.opts.Levels && scanned < n; level++ {
		limit := block << uint(level)
		if limit > n || level == p.opts.Levels-1 {
			limit = n
		}
		for scanned < limit {
			j := candidates[(p.cursor+scanned)%n]
			scanned++
			rc := reducedCost(j)
			if rc >= -tol {
				continue
			}
			sc := p.opts.Strategy.Score(j, rc, w)
			if !found || sc > bestScore {
				best, bestScore, found = j, sc, true
			}
		}
		if found {
			break
		}
	}
	p.cursor = (p.cursor + scanned) % n
	return best, bestScore, found, nil
}

// Strategy returns the configured pricing strategy, for callers that need
// to call Update directly after a pivot.
func (p *PartialPricer) Strategy() Strategy { return p.opts.Strategy }
