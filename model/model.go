// SPDX-License-Identifier: MIT

// Package model - the evaluator.
//
// A Model binds validated Data and resolved Options. Its methods are pure
// functions of the parameter vector: no state is retained between calls, so
// one Model may be evaluated concurrently from several goroutines.
package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tpsgam/matrix"
	"golang.org/x/exp/rand"
)

// Model is an immutable, re-entrant evaluator of the penalized joint NLL.
type Model struct {
	data    Data
	penalty *matrix.BlockDiag
	layout  Layout
	opts    Options
}

// New validates d and returns a Model.
//
// Errors: ErrUnknownFamily, ErrEmptyData, ErrLengthMismatch, ErrNilDesign,
// ErrNilPenalty, ErrBlockDimsMismatch, ErrFactorLevel (all wrapped with "New").
func New(d Data, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)
	c := d.clone()
	bd, p, err := validateData(&c, o)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return &Model{
		data:    c,
		penalty: bd,
		layout: Layout{
			Period:      c.Levels.Period,
			Subperiod:   c.Levels.Subperiod,
			Destination: c.Levels.Destination,
			Smooth:      p,
		},
		opts: o,
	}, nil
}

// Layout returns the flat parameter layout.
func (m *Model) Layout() Layout { return m.layout }

// Family returns the bound likelihood family.
func (m *Model) Family() Family { return m.data.Family }

// N returns the number of observations.
func (m *Model) N() int { return m.data.N() }

// Evaluate computes the joint objective and the report at p.
//
// Errors: ErrParamLength only; data were validated by New. Numerical problems
// show up as a non-finite JNLL.
func (m *Model) Evaluate(p Params) (Result, error) {
	if err := m.layout.Check(p); err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	t := Transform(p)

	pen, err := PenaltyNLL(m.penalty, p.SmoothCoefs, p.LogLambda)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	mu, err := LinearPredictor(&m.data, p)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	ll, err := LogLikelihood(m.data.Family, m.data.Response, mu, t)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: %w", err)
	}
	surface, err := mulDesign(m.data.ReportDesign, p.SmoothCoefs)
	if err != nil {
		return Result{}, fmt.Errorf("Evaluate: report design: %w", err)
	}

	r := Report{
		NLL:             NegLogLikelihood(ll),
		Penalty:         pen.Total(),
		Prior:           PriorNLL(p, t, m.opts.priors),
		Jacobian:        JacobianCorrection(p),
		Beta0:           p.Beta0,
		BetaPeriod:      append([]float64(nil), p.BetaPeriod...),
		BetaSubperiod:   append([]float64(nil), p.BetaSubperiod...),
		BetaDestination: append([]float64(nil), p.BetaDestination...),
		BetaDepth:       p.BetaDepth,
		LogLambda:       p.LogLambda,
		LogSigma:        p.LogSigma,
		LogOmega:        p.LogOmega,
		SmoothCoefs:     append([]float64(nil), p.SmoothCoefs...),
		BlockQ:          pen.Q,
		Preds:           mu,
		LogLik:          ll,
		Splines2D:       surface,
	}
	r.JNLL = r.NLL + r.Penalty + r.Prior + r.Jacobian

	return Result{JNLL: r.JNLL, Report: r}, nil
}

// EvaluateAndSimulate is Evaluate plus one simulated response vector drawn
// from src. The objective is identical to Evaluate's. src == nil uses
// NewSource(0).
func (m *Model) EvaluateAndSimulate(p Params, src rand.Source) (Result, error) {
	res, err := m.Evaluate(p)
	if err != nil {
		return Result{}, fmt.Errorf("EvaluateAndSimulate: %w", err)
	}
	if src == nil {
		src = NewSource(0)
	}
	sim, err := simulate(m.data.Family, m.opts.simulation, res.Report.Preds, Transform(p), src)
	if err != nil {
		return Result{}, fmt.Errorf("EvaluateAndSimulate: %w", err)
	}
	res.Report.Simulated = sim

	return res, nil
}

// SimulateReplicates draws k simulated response vectors at p. Replicate i
// uses DeriveSource(NewSource(seed), i), so results are reproducible for a
// given seed and independent across replicates.
func (m *Model) SimulateReplicates(p Params, seed uint64, k int) ([][]float64, error) {
	if k < 0 {
		return nil, fmt.Errorf("SimulateReplicates: k=%d: %w", k, ErrParamLength)
	}
	if err := m.layout.Check(p); err != nil {
		return nil, fmt.Errorf("SimulateReplicates: %w", err)
	}
	mu, err := LinearPredictor(&m.data, p)
	if err != nil {
		return nil, fmt.Errorf("SimulateReplicates: %w", err)
	}
	t := Transform(p)
	base := NewSource(seed)
	out := make([][]float64, k)

	var i int
	for i = 0; i < k; i++ {
		if out[i], err = simulate(m.data.Family, m.opts.simulation, mu, t, DeriveSource(base, uint64(i))); err != nil {
			return nil, fmt.Errorf("SimulateReplicates: %w", err)
		}
	}

	return out, nil
}

// Objective returns f(x) = JNLL(Unflatten(x)) for optimizers and
// differentiators. A malformed x yields NaN.
func (m *Model) Objective() func(x []float64) float64 {
	return func(x []float64) float64 {
		p, err := m.layout.Unflatten(x)
		if err != nil {
			return math.NaN()
		}
		res, err := m.Evaluate(p)
		if err != nil {
			return math.NaN()
		}

		return res.JNLL
	}
}

// NumDerived returns the length of the derived vector.
func (m *Model) NumDerived() int {
	return derivedFixed + m.layout.Smooth + m.reportRows()
}

func (m *Model) reportRows() int {
	r, _ := m.data.ReportDesign.Dims()

	return r
}

// DerivedNames labels the derived vector: beta0, log_sigma, log_lambda,
// log_omega, smooth_coefs[k], splines2d[r]. The set is fixed.
func (m *Model) DerivedNames() []string {
	names := make([]string, 0, m.NumDerived())
	names = append(names, "beta0", "log_sigma", "log_lambda", "log_omega")
	var i int
	for i = 0; i < m.layout.Smooth; i++ {
		names = append(names, fmt.Sprintf("smooth_coefs[%d]", i))
	}
	for i = 0; i < m.reportRows(); i++ {
		names = append(names, fmt.Sprintf("splines2d[%d]", i))
	}

	return names
}

// Derived evaluates the uncertainty-tracked quantities at p.
func (m *Model) Derived(p Params) ([]float64, error) {
	res, err := m.Evaluate(p)
	if err != nil {
		return nil, fmt.Errorf("Derived: %w", err)
	}

	return res.Report.derived(), nil
}

// DerivedFunc adapts Derived to the vector-valued f(y, x) shape used for
// Jacobians. len(y) must be NumDerived(); a malformed x fills y with NaN.
func (m *Model) DerivedFunc() func(y, x []float64) {
	return func(y, x []float64) {
		p, err := m.layout.Unflatten(x)
		var v []float64
		if err == nil {
			v, err = m.Derived(p)
		}
		if err != nil || len(v) != len(y) {
			for i := range y {
				y[i] = math.NaN()
			}
			return
		}
		copy(y, v)
	}
}
