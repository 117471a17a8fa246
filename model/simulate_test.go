// SPDX-License-Identifier: MIT
package model_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tpsgam/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TestEvaluateAndSimulate_ObjectiveUnchanged: simulation never alters the
// scalar, and a fixed seed reproduces the draws.
func TestEvaluateAndSimulate_ObjectiveUnchanged(t *testing.T) {
	for _, f := range []model.Family{model.Lognormal, model.Gamma, model.SkewNormal} {
		m := mustModel(t, richData(t, f))
		p := richParams()

		plain, err := m.Evaluate(p)
		require.NoError(t, err)
		a, err := m.EvaluateAndSimulate(p, model.NewSource(7))
		require.NoError(t, err)
		b, err := m.EvaluateAndSimulate(p, model.NewSource(7))
		require.NoError(t, err)

		assert.Equal(t, plain.JNLL, a.JNLL, "family %v", f)
		assert.Nil(t, plain.Report.Simulated)
		require.Len(t, a.Report.Simulated, m.N())
		assert.Equal(t, a.Report.Simulated, b.Report.Simulated, "same seed, same draws")
	}
}

// TestSimulate_PositiveFamilies draws positive responses for the positive
// families under the default policy.
func TestSimulate_PositiveFamilies(t *testing.T) {
	for _, f := range []model.Family{model.Lognormal, model.Gamma} {
		m := mustModel(t, richData(t, f))
		reps, err := m.SimulateReplicates(richParams(), 3, 20)
		require.NoError(t, err)
		for _, r := range reps {
			for _, v := range r {
				assert.Greater(t, v, 0.0, "family %v", f)
			}
		}
	}
}

// TestSimulate_GammaMeanMatchesLink: mode-consistent gamma draws have mean
// exp(mu).
func TestSimulate_GammaMeanMatchesLink(t *testing.T) {
	d := scenarioData(t)
	d.Family = model.Gamma
	m := mustModel(t, d)
	p := m.Layout().Zero()
	p.Beta0 = 0.5
	p.LogSigma = math.Log(0.4)

	reps, err := m.SimulateReplicates(p, 11, 4000)
	require.NoError(t, err)
	draws := make([]float64, 0, len(reps))
	for _, r := range reps {
		draws = append(draws, r[0])
	}
	// sd of the mean ≈ 0.4·e^0.5/√4000 ≈ 0.0104
	assert.InDelta(t, math.Exp(0.5), stat.Mean(draws, nil), 0.05)
}

// TestSimulate_LegacyGamma reproduces the gamma-on-linear-predictor draw:
// mean mu, NaN when mu <= 0.
func TestSimulate_LegacyGamma(t *testing.T) {
	d := scenarioData(t)
	d.Family = model.SkewNormal
	m := mustModel(t, d, model.WithSimulationPolicy(model.SimulateGammaLegacy))
	p := m.Layout().Zero()

	res, err := m.EvaluateAndSimulate(p, model.NewSource(1))
	require.NoError(t, err)
	for _, v := range res.Report.Simulated {
		assert.True(t, math.IsNaN(v), "mu = 0 has no gamma distribution")
	}

	p.Beta0 = 2
	p.LogSigma = math.Log(0.3)
	reps, err := m.SimulateReplicates(p, 5, 3000)
	require.NoError(t, err)
	sums := make([]float64, 0, len(reps))
	for _, r := range reps {
		sums = append(sums, floats.Sum(r)/float64(len(r)))
	}
	assert.InDelta(t, 2.0, stat.Mean(sums, nil), 0.05)
}

// TestSimulateReplicates_Streams: replicates are reproducible per seed and
// differ across replicate indices and seeds.
func TestSimulateReplicates_Streams(t *testing.T) {
	m := mustModel(t, richData(t, model.SkewNormal))
	p := richParams()

	a, err := m.SimulateReplicates(p, 42, 3)
	require.NoError(t, err)
	b, err := m.SimulateReplicates(p, 42, 3)
	require.NoError(t, err)
	c, err := m.SimulateReplicates(p, 43, 3)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a[0], a[1])
	assert.NotEqual(t, a[0], c[0])

	none, err := m.SimulateReplicates(p, 42, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = m.SimulateReplicates(p, 42, -1)
	assert.Error(t, err)
}

// TestNewSource_ZeroSeed maps seed 0 to the fixed default.
func TestNewSource_ZeroSeed(t *testing.T) {
	assert.Equal(t, model.NewSource(1).Uint64(), model.NewSource(0).Uint64())
	assert.NotEqual(t, model.NewSource(1).Uint64(), model.NewSource(2).Uint64())

	parent := model.NewSource(9)
	d1 := model.DeriveSource(parent, 0).Uint64()
	d2 := model.DeriveSource(parent, 0).Uint64()
	assert.NotEqual(t, d1, d2, "parent advances between derivations")
	assert.Equal(t, model.DeriveSource(nil, 4).Uint64(), model.DeriveSource(nil, 4).Uint64())
}
