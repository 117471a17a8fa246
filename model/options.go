// SPDX-License-Identifier: MIT

// Package model - functional options.
//
// Options are resolved once in New. Option constructors panic on programmer
// errors (invalid enum values, non-positive prior scales); they never fail
// at evaluation time.
package model

import "math"

// SimulationPolicy selects the family used by the simulation branch.
type SimulationPolicy int

const (
	// SimulateMatchFamily draws from the selected likelihood family.
	SimulateMatchFamily SimulationPolicy = iota
	// SimulateGammaLegacy always draws Gamma(shape 1/σ², scale mu·σ²) on the
	// linear predictor, whatever the family. Draws with mu·σ² <= 0 are NaN.
	SimulateGammaLegacy
)

// String implements fmt.Stringer.
func (p SimulationPolicy) String() string {
	switch p {
	case SimulateMatchFamily:
		return "match-family"
	case SimulateGammaLegacy:
		return "gamma-legacy"
	default:
		return "unknown"
	}
}

const (
	// DefaultSimulationPolicy keeps simulation consistent with the likelihood.
	DefaultSimulationPolicy = SimulateMatchFamily
	// DefaultStrictBlocks rejects penalty entries outside the declared blocks.
	DefaultStrictBlocks = true
)

// Option configures a Model.
type Option func(*Options)

// Options holds resolved configuration; only New reads it.
type Options struct {
	simulation   SimulationPolicy
	priors       PriorScales
	strictBlocks bool
}

// WithSimulationPolicy selects the simulation family policy.
// Panics on an unknown policy value.
func WithSimulationPolicy(p SimulationPolicy) Option {
	if p != SimulateMatchFamily && p != SimulateGammaLegacy {
		panic("model: WithSimulationPolicy: unknown policy")
	}

	return func(o *Options) { o.simulation = p }
}

// WithPriorScales overrides the prior scales. Panics unless every scale is
// finite and strictly positive.
func WithPriorScales(s PriorScales) Option {
	for _, v := range s.values() {
		if !(v > 0) || math.IsInf(v, 0) {
			panic("model: WithPriorScales: scales must be finite and > 0")
		}
	}

	return func(o *Options) { o.priors = s }
}

// WithStrictBlocks toggles the structural block-diagonal check on the penalty.
func WithStrictBlocks(strict bool) Option {
	return func(o *Options) { o.strictBlocks = strict }
}

// gatherOptions applies opts over the defaults; last writer wins.
func gatherOptions(opts ...Option) Options {
	o := Options{
		simulation:   DefaultSimulationPolicy,
		priors:       DefaultPriorScales(),
		strictBlocks: DefaultStrictBlocks,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
