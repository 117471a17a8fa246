// SPDX-License-Identifier: MIT

// Package model - objective terms.
//
// Each term is a pure function of (data, params). The joint objective is
//
//	jnll = nll + penalty + prior + jacobian
//
// where nll = -Σ log f(y_i | mu_i), penalty is the block-wise smoothness
// term, prior is the negative log-prior and jacobian = -(logσ + logλ + logω).
//
// Complexity quicksheet:
//   - Transform, JacobianCorrection: O(1).
//   - PriorNLL: O(len(params)).
//   - PenaltyNLL: O(nnz(S)).
//   - LinearPredictor: O(n·p) dense design, O(nnz) CSR design.
//   - LogLikelihood: O(n).
package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tpsgam/density"
	"github.com/katalvlaran/tpsgam/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ---------- parameter transform ----------

// Transformed holds the positive hyperparameters. They must never be used
// where the log-scale values are expected, and vice versa.
type Transformed struct {
	Sigma  float64 // residual scale, exp(log_sigma)
	Lambda float64 // penalty strength, exp(log_lambda)
	Omega  float64 // skew/shape, exp(log_omega)
}

// Transform exponentiates the three log-scale hyperparameters.
func Transform(p Params) Transformed {
	return Transformed{
		Sigma:  math.Exp(p.LogSigma),
		Lambda: math.Exp(p.LogLambda),
		Omega:  math.Exp(p.LogOmega),
	}
}

// JacobianCorrection returns -(logσ + logλ + logω).
func JacobianCorrection(p Params) float64 {
	return -(p.LogSigma + p.LogLambda + p.LogOmega)
}

// ---------- prior ----------

// PriorScales are the prior scales. Every prior is centred at zero.
type PriorScales struct {
	Intercept   float64 `yaml:"intercept"`   // normal, beta0
	Period      float64 `yaml:"period"`      // normal, beta_period
	Subperiod   float64 `yaml:"subperiod"`   // normal, beta_subperiod
	Destination float64 `yaml:"destination"` // normal, beta_destination
	Depth       float64 `yaml:"depth"`       // normal, beta_depth
	Smooth      float64 `yaml:"smooth"`      // normal, smooth_coefs
	Lambda      float64 `yaml:"lambda"`      // normal, on λ (original scale)
	Omega       float64 `yaml:"omega"`       // normal, on ω (original scale)
	Sigma       float64 `yaml:"sigma"`       // Cauchy, on σ (original scale)
}

// DefaultPriorScales returns the standard prior configuration.
func DefaultPriorScales() PriorScales {
	return PriorScales{
		Intercept:   5,
		Period:      1,
		Subperiod:   1,
		Destination: 5,
		Depth:       2,
		Smooth:      1,
		Lambda:      1,
		Omega:       1,
		Sigma:       2,
	}
}

func (s PriorScales) values() []float64 {
	return []float64{s.Intercept, s.Period, s.Subperiod, s.Destination, s.Depth, s.Smooth, s.Lambda, s.Omega, s.Sigma}
}

// PriorNLL returns the negative log-prior of p. The penalty strength, shape
// and scale priors are evaluated on the transformed values t.
func PriorNLL(p Params, t Transformed, s PriorScales) float64 {
	var lp float64
	lp += density.NormalLog(p.Beta0, 0, s.Intercept)
	lp += density.NormalLogSum(p.BetaPeriod, 0, s.Period)
	lp += density.NormalLogSum(p.BetaSubperiod, 0, s.Subperiod)
	lp += density.NormalLogSum(p.BetaDestination, 0, s.Destination)
	lp += density.NormalLog(p.BetaDepth, 0, s.Depth)
	lp += density.NormalLog(t.Lambda, 0, s.Lambda)
	lp += density.CauchyLog(t.Sigma, 0, s.Sigma)
	lp += density.NormalLog(t.Omega, 0, s.Omega)
	lp += density.NormalLogSum(p.SmoothCoefs, 0, s.Smooth)

	return -lp
}

// ---------- smoothness penalty ----------

// Penalty is the decomposed smoothness term.
type Penalty struct {
	Q    []float64 // per-block quadratic forms, coefficient order
	Log  float64   // -½·Σm_i·log λ
	Quad float64   // ½·λ·ΣQ_i
}

// Total returns Log + Quad.
func (p Penalty) Total() float64 { return p.Log + p.Quad }

// PenaltyNLL folds the blocks of s in declaration order:
//
//	Σ_i -(½·m_i·log λ - ½·λ·Q_i),  Q_i = coef_iᵀ·S_i·coef_i.
//
// The quadratic component is written as λ·Q so that λ = 0 removes it even
// when the log component diverges.
func PenaltyNLL(s *matrix.BlockDiag, coefs []float64, logLambda float64) (Penalty, error) {
	q, err := s.QuadForms(coefs)
	if err != nil {
		return Penalty{}, fmt.Errorf("PenaltyNLL: %w", err)
	}
	lambda := math.Exp(logLambda)

	var (
		pen Penalty
		m   int
		k   int
	)
	pen.Q = q
	for k, m = range s.Dims() {
		pen.Log -= 0.5 * float64(m) * logLambda
		if lambda != 0 {
			pen.Quad += 0.5 * lambda * q[k]
		}
	}

	return pen, nil
}

// ---------- linear predictor ----------

// LinearPredictor returns, per observation,
//
//	mu = beta0 + period[i] + subperiod[i] + destination[i] + depth_coef·depth + design_row·coefs.
//
// Errors: ErrFactorLevel, ErrLengthMismatch.
func LinearPredictor(d *Data, p Params) ([]float64, error) {
	spline, err := mulDesign(d.Design, p.SmoothCoefs)
	if err != nil {
		return nil, fmt.Errorf("LinearPredictor: design: %w", err)
	}
	n := d.N()
	if len(spline) != n || len(d.Period) != n || len(d.Subperiod) != n ||
		len(d.Destination) != n || len(d.Depth) != n {
		return nil, fmt.Errorf("LinearPredictor: %w", ErrLengthMismatch)
	}

	mu := make([]float64, n)
	var (
		i          int
		a, b, c    int
		nP, nS, nD = len(p.BetaPeriod), len(p.BetaSubperiod), len(p.BetaDestination)
	)
	for i = 0; i < n; i++ {
		a, b, c = d.Period[i], d.Subperiod[i], d.Destination[i]
		if a < 0 || a >= nP || b < 0 || b >= nS || c < 0 || c >= nD {
			return nil, fmt.Errorf("LinearPredictor: observation %d: %w", i, ErrFactorLevel)
		}
		mu[i] = p.Beta0 + p.BetaPeriod[a] + p.BetaSubperiod[b] + p.BetaDepth*d.Depth[i] +
			spline[i] + p.BetaDestination[c]
	}

	return mu, nil
}

// mulDesign computes a·x, keeping CSR designs sparse.
func mulDesign(a mat.Matrix, x []float64) ([]float64, error) {
	if a == nil {
		return nil, ErrNilDesign
	}
	if s, ok := a.(*matrix.CSR); ok {
		return s.MulVec(x)
	}
	if _, c := a.Dims(); c != len(x) || c == 0 {
		return nil, ErrLengthMismatch
	}
	var y mat.VecDense
	y.MulVec(a, mat.NewVecDense(len(x), x))

	return y.RawVector().Data, nil
}

// ---------- likelihood ----------

// LogLikelihood returns the per-observation log-densities of y given mu under
// family f. Non-positive responses yield -Inf or NaN, never an error.
//
// Errors: ErrUnknownFamily, ErrLengthMismatch.
func LogLikelihood(f Family, y, mu []float64, t Transformed) ([]float64, error) {
	if len(y) != len(mu) {
		return nil, fmt.Errorf("LogLikelihood: %w", ErrLengthMismatch)
	}
	ll := make([]float64, len(y))

	var i int
	switch f {
	case Lognormal:
		for i = range y {
			ll[i] = density.LognormalLog(y[i], mu[i], t.Sigma)
		}
	case Gamma:
		for i = range y {
			ll[i] = density.GammaMeanLog(y[i], mu[i], t.Sigma)
		}
	case SkewNormal:
		logSigma := math.Log(t.Sigma)
		for i = range y {
			ll[i] = density.SkewNormalLog((y[i]-mu[i])/t.Sigma, t.Omega) - logSigma
		}
	default:
		return nil, fmt.Errorf("LogLikelihood: %v: %w", f, ErrUnknownFamily)
	}

	return ll, nil
}

// NegLogLikelihood returns -Σ ll.
func NegLogLikelihood(ll []float64) float64 { return -floats.Sum(ll) }
