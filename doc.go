// Package plexus is a revised-simplex linear-programming core built around
// a Product Form of Inverse (PFI) basis representation.
//
// plexus accepts a standard-form LP
//
//	minimize    c^T x
//	subject to  A x {<=, =, >=} b,   l <= x <= u
//
// and returns an optimal basic feasible vertex, a proof of infeasibility, a
// proof of unboundedness, or a resource-limit report.
//
// Under the hood, the solver is organized into five packages:
//
//	model/   — the immutable Problem value the core consumes
//	sparse/  — column-compressed constraint matrix with a lazy row view
//	basis/   — LU + eta-chain basis representation, FTRAN/BTRAN, crash
//	pricing/ — multi-level partial pricing (steepest edge, Devex, Dantzig)
//	simplex/ — ratio test, pivot executor, and the two-phase driver
//
// A solve is single-threaded and cooperative: the driver yields to a
// caller-supplied callback at iteration boundaries, where cancellation or a
// time limit may be observed. Multiple independent solves may run
// concurrently, each owning disjoint state over a shared, read-only model.
//
//	go get github.com/katalvlaran/plexus
package plexus
