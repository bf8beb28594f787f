// SPDX-License-Identifier: MIT

// Package linreg: functional configuration for the batched estimator.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: results are identical for every tile size and
//     worker count — tiling is a resource knob, never a semantic one.
//   - No dead switches: each knob impacts execution and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package linreg

import "runtime"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultLoopTile is the number of loop-covariate columns handed to one
	// worker at a time. The residual pass is O(M·tile·O) per unit of work;
	// the default keeps units coarse enough to amortize scheduling.
	DefaultLoopTile = 256

	// DefaultOutcomeTile bounds the outcome-axis block of the residual
	// accumulation so the per-tile working set (a beta block plus one RSS
	// row) stays cache-resident even for very wide outcome matrices.
	DefaultOutcomeTile = 128
)

// Option mutates estimator options. Public APIs consume ...Option.
type Option func(*options)

// options carries the gathered estimator configuration.
// Fields are unexported; construct via gatherOptions.
type options struct {
	loopTile    int // columns of XLP per unit of work
	outcomeTile int // columns of YP per residual block
	workers     int // max concurrent tile workers
}

// WithTileSize overrides the loop-covariate and outcome tile extents.
// Both must be positive; the estimator clamps them to the actual axis
// lengths. Panics on non-positive values (programmer error, not data).
func WithTileSize(loop, outcome int) Option {
	if loop <= 0 || outcome <= 0 {
		panic("linreg: WithTileSize requires positive tile extents")
	}

	return func(o *options) {
		o.loopTile = loop
		o.outcomeTile = outcome
	}
}

// WithWorkers caps the number of concurrent tile workers.
// n must be positive. The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n <= 0 {
		panic("linreg: WithWorkers requires a positive worker count")
	}

	return func(o *options) { o.workers = n }
}

// gatherOptions folds opts over the documented defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		loopTile:    DefaultLoopTile,
		outcomeTile: DefaultOutcomeTile,
		workers:     runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
