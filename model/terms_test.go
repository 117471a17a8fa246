// SPDX-License-Identifier: MIT
package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tpsgam/density"
	"github.com/katalvlaran/tpsgam/matrix"
	"github.com/katalvlaran/tpsgam/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPriorNLL_AtZero checks the prior against hand-evaluated densities.
func TestPriorNLL_AtZero(t *testing.T) {
	p := model.Params{
		BetaPeriod:      []float64{0, 0},
		BetaSubperiod:   []float64{0},
		BetaDestination: []float64{0, 0, 0},
		SmoothCoefs:     []float64{0, 0, 0, 0},
	}
	tr := model.Transform(p) // σ = λ = ω = 1

	logPhi0 := -0.5 * math.Log(2*math.Pi)
	want := 0.0
	want -= logPhi0 - math.Log(5)       // beta0
	want -= 2 * logPhi0                 // period, scale 1
	want -= logPhi0                     // subperiod
	want -= 3 * (logPhi0 - math.Log(5)) // destination
	want -= logPhi0 - math.Log(2)       // depth
	want -= logPhi0 - 0.5               // λ = 1 under N(0,1)
	want -= density.CauchyLog(1, 0, 2)  // σ = 1
	want -= logPhi0 - 0.5               // ω = 1
	want -= 4 * logPhi0                 // smooth coefs

	assert.InDelta(t, want, model.PriorNLL(p, tr, model.DefaultPriorScales()), 1e-12)
}

// TestPriorNLL_UsesTransformedScale: the λ prior is on exp(log λ).
func TestPriorNLL_UsesTransformedScale(t *testing.T) {
	s := model.DefaultPriorScales()
	a := model.Params{LogLambda: 0}
	b := model.Params{LogLambda: math.Log(3)}
	diff := model.PriorNLL(b, model.Transform(b), s) - model.PriorNLL(a, model.Transform(a), s)
	assert.InDelta(t, (9.0-1.0)/2, diff, 1e-12)
}

// TestPriorNLL_CustomScales is wired through WithPriorScales.
func TestPriorNLL_CustomScales(t *testing.T) {
	d := richData(t, model.Lognormal)
	p := richParams()
	wide := model.DefaultPriorScales()
	wide.Depth = 100

	a, err := mustModel(t, d).Evaluate(p)
	require.NoError(t, err)
	b, err := mustModel(t, d, model.WithPriorScales(wide)).Evaluate(p)
	require.NoError(t, err)

	want := -density.NormalLog(p.BetaDepth, 0, 100) + density.NormalLog(p.BetaDepth, 0, 2)
	assert.InDelta(t, want, b.Report.Prior-a.Report.Prior, 1e-12)
	assert.Equal(t, a.Report.NLL, b.Report.NLL)
}

// TestLinearPredictor_SparseDesignMatchesDense uses the CSR fast path.
func TestLinearPredictor_SparseDesignMatchesDense(t *testing.T) {
	d := richData(t, model.Gamma)
	p := richParams()
	dense, err := model.LinearPredictor(&d, p)
	require.NoError(t, err)

	sp, err := matrix.CSRFromDense(d.Design)
	require.NoError(t, err)
	d.Design = sp
	sparse, err := model.LinearPredictor(&d, p)
	require.NoError(t, err)

	assert.InDeltaSlice(t, dense, sparse, 1e-14)

	// Observation 1: beta0 + period[1] + sub[0] + dest[1] + depth·25 + row·coefs.
	row := []float64{0.0, 0.5, 0.1, 0.0, 0.2}
	var s float64
	for k, v := range row {
		s += v * p.SmoothCoefs[k]
	}
	want := p.Beta0 + p.BetaPeriod[1] + p.BetaSubperiod[0] + p.BetaDestination[1] + p.BetaDepth*25 + s
	assert.InDelta(t, want, dense[1], 1e-14)
}

// TestLinearPredictor_FactorLevel rejects out-of-range levels when called
// directly with short coefficient vectors.
func TestLinearPredictor_FactorLevel(t *testing.T) {
	d := richData(t, model.Gamma)
	p := richParams()
	p.BetaDestination = p.BetaDestination[:2]
	_, err := model.LinearPredictor(&d, p)
	assert.ErrorIs(t, err, model.ErrFactorLevel)
}

// TestLogLikelihood_Dispatch compares each family with its density.
func TestLogLikelihood_Dispatch(t *testing.T) {
	y := []float64{0.7, 2.2}
	mu := []float64{0.1, 0.4}
	tr := model.Transformed{Sigma: 0.8, Lambda: 1, Omega: 1.5}

	ll, err := model.LogLikelihood(model.Lognormal, y, mu, tr)
	require.NoError(t, err)
	assert.InDelta(t, density.NormalLog(math.Log(0.7), 0.1, 0.8)-math.Log(0.7), ll[0], 1e-14)

	ll, err = model.LogLikelihood(model.Gamma, y, mu, tr)
	require.NoError(t, err)
	assert.InDelta(t, density.GammaMeanLog(2.2, 0.4, 0.8), ll[1], 1e-14)

	ll, err = model.LogLikelihood(model.SkewNormal, y, mu, tr)
	require.NoError(t, err)
	assert.InDelta(t, density.SkewNormalLog((2.2-0.4)/0.8, 1.5)-math.Log(0.8), ll[1], 1e-14)

	_, err = model.LogLikelihood(model.Family(7), y, mu, tr)
	assert.ErrorIs(t, err, model.ErrUnknownFamily, "no silent zero contribution")

	_, err = model.LogLikelihood(model.Gamma, y, mu[:1], tr)
	assert.ErrorIs(t, err, model.ErrLengthMismatch)
}

// TestJacobianCorrection is the negated sum of the log hyperparameters.
func TestJacobianCorrection(t *testing.T) {
	assert.Equal(t, -1.5, model.JacobianCorrection(model.Params{LogSigma: 1, LogLambda: 2, LogOmega: -1.5}))
}
