package simplex

import (
	"math/rand"
	"os"
	"time"
)

// rngFromSeed returns a deterministic *rand.Rand. seed==0 mixes the wall
// clock and process id into a fresh seed (non-reproducible by default,
// matching the ambient stream); any other value is used verbatim, so a
// caller who wants a reproducible perturbation fixes Config.Seed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = deriveSeed(int64(time.Now().UnixNano()), uint64(os.Getpid()))
	}
	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes two 64-bit values with a SplitMix64-style finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// perturb nudges every finite bound by a small random offset in
// [0, tauF*1e-6) to break ties along degenerate edges, recording the
// offsets so unperturb can restore exact bounds afterward. Bounds already
// equal (fixed variables) are left untouched to preserve fixing.
func (ctx *Context) perturb() {
	rng := rngFromSeed(ctx.cfg.Seed)
	span := ctx.cfg.FeasibilityTol * 1e-6
	for j := 0; j < ctx.total; j++ {
		if ctx.l[j] == ctx.u[j] {
			continue
		}
		if !ctx.isUnbounded(ctx.l[j]) {
			ctx.l[j] -= rng.Float64() * span
		}
		if !ctx.isUnbounded(ctx.u[j]) {
			ctx.u[j] += rng.Float64() * span
		}
	}
}

// unperturb restores the exact bounds captured before perturb ran. Values
// already sitting at a perturbed bound are snapped to the restored one so
// the reported solution never shows an off-by-epsilon bound violation.
func (ctx *Context) unperturb() {
	for j := 0; j < ctx.total; j++ {
		atLower := ctx.variableStatus[j] == statusAtLower && ctx.x[j] == ctx.l[j]
		atUpper := ctx.variableStatus[j] == statusAtUpper && ctx.x[j] == ctx.u[j]
		ctx.l[j], ctx.u[j] = ctx.origL[j], ctx.origU[j]
		if atLower {
			ctx.x[j] = ctx.l[j]
		}
		if atUpper {
			ctx.x[j] = ctx.u[j]
		}
	}
}
