// SPDX-License-Identifier: MIT
package deriv_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tpsgam/deriv"
	"github.com/katalvlaran/tpsgam/matrix"
	"github.com/katalvlaran/tpsgam/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGradient_JacobianTerm: the objective's derivative w.r.t. each log
// hyperparameter contains the -1 Jacobian contribution. With a lognormal
// model the log ω only enters through its prior and the correction, so
// ∂jnll/∂log ω = ω·ω - 1 (from the N(0,1) prior on ω = exp(log ω)).
func TestGradient_JacobianTerm(t *testing.T) {
	pen, err := matrix.NewCSR(2, 2, []matrix.Triplet{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}})
	require.NoError(t, err)
	m, err := model.New(model.Data{
		Family:       model.Lognormal,
		Response:     []float64{1.5, 0.7, 2.1},
		Period:       []int{0, 0, 0},
		Subperiod:    []int{0, 0, 0},
		Destination:  []int{0, 0, 0},
		Depth:        []float64{0, 1, 2},
		Design:       mat.NewDense(3, 2, []float64{1, 0, 0, 1, 0.5, 0.5}),
		Penalty:      pen,
		BlockDims:    []int{1, 1},
		ReportDesign: mat.NewDense(1, 2, []float64{1, 1}),
	})
	require.NoError(t, err)

	p := m.Layout().Zero()
	p.LogOmega = 0.3
	x, err := m.Layout().Flatten(p)
	require.NoError(t, err)

	g, err := deriv.FiniteDifference{}.Gradient(m.Objective(), x)
	require.NoError(t, err)
	omega := math.Exp(0.3)
	assert.InDelta(t, omega*omega-1, g[len(g)-1], 1e-6)

	// Derived quantities: beta0 and the log hyperparameters are coordinates,
	// so their Jacobian rows are unit vectors.
	j, err := deriv.FiniteDifference{}.Jacobian(m.DerivedFunc(), m.NumDerived(), x)
	require.NoError(t, err)
	assert.InDelta(t, 1, j.At(0, 0), 1e-8)
	assert.InDelta(t, 1, j.At(1, len(x)-2), 1e-8) // log_sigma
	assert.InDelta(t, 1, j.At(2, len(x)-3), 1e-8) // log_lambda
	assert.InDelta(t, 1, j.At(3, len(x)-1), 1e-8) // log_omega
}
