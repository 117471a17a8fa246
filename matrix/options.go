// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for sparse construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective policy.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the magnitude at or below which a summed entry is
	// treated as a structural zero and dropped from storage.
	DefaultEpsilon = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
	DefaultValidateNaNInf = true

	// DefaultStrictBlocks rejects non-zeros outside the declared diagonal
	// blocks when a BlockDiag is assembled.
	DefaultStrictBlocks = true
)

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	strictBlocks   bool    // DefaultStrictBlocks
}

// WithEpsilon sets the drop tolerance: summed entries with |v| <= eps are not stored.
// Panics when eps is negative or non-finite.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables rejection of NaN/±Inf entries (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value check; non-finite entries are
// stored verbatim and propagate through every product.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithStrictBlocks toggles the off-block non-zero check in NewBlockDiag.
// When disabled, entries outside the declared blocks are ignored by the
// per-block kernels.
func WithStrictBlocks(strict bool) Option {
	return func(o *Options) { o.strictBlocks = strict }
}

// gatherOptions applies user setters on top of the documented defaults
// (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		strictBlocks:   DefaultStrictBlocks,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
