// SPDX-License-Identifier: MIT
package model_test

import (
	"testing"

	"github.com/katalvlaran/tpsgam/matrix"
	"github.com/katalvlaran/tpsgam/model"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// identity returns the n×n identity as CSR.
func identity(t testing.TB, n int) *matrix.CSR {
	t.Helper()
	ts := make([]matrix.Triplet, n)
	for i := range ts {
		ts[i] = matrix.Triplet{Row: i, Col: i, Value: 1}
	}
	s, err := matrix.NewCSR(n, n, ts)
	require.NoError(t, err)

	return s
}

// scenarioData is the three-observation lognormal scenario: response 1,2,3,
// all levels 0, depth 0, one 2×2 identity penalty block, zero design.
func scenarioData(t testing.TB) model.Data {
	t.Helper()

	return model.Data{
		Family:       model.Lognormal,
		Response:     []float64{1, 2, 3},
		Period:       []int{0, 0, 0},
		Subperiod:    []int{0, 0, 0},
		Destination:  []int{0, 0, 0},
		Depth:        []float64{0, 0, 0},
		Design:       mat.NewDense(3, 2, nil),
		Penalty:      identity(t, 2),
		BlockDims:    []int{2},
		ReportDesign: mat.NewDense(1, 2, nil),
	}
}

// richData is a small but non-degenerate problem: 6 observations, two period
// levels, three destinations, a 5-column design with blocks {3, 2}.
func richData(t testing.TB, f model.Family) model.Data {
	t.Helper()
	ts := []matrix.Triplet{
		{Row: 0, Col: 0, Value: 2}, {Row: 0, Col: 1, Value: -1},
		{Row: 1, Col: 0, Value: -1}, {Row: 1, Col: 1, Value: 2}, {Row: 1, Col: 2, Value: -1},
		{Row: 2, Col: 1, Value: -1}, {Row: 2, Col: 2, Value: 2},
		{Row: 3, Col: 3, Value: 1}, {Row: 3, Col: 4, Value: 0.5},
		{Row: 4, Col: 3, Value: 0.5}, {Row: 4, Col: 4, Value: 1},
	}
	pen, err := matrix.NewCSR(5, 5, ts)
	require.NoError(t, err)

	return model.Data{
		Family:      f,
		Response:    []float64{1.2, 0.8, 2.5, 1.9, 0.4, 3.1},
		Period:      []int{0, 1, 0, 1, 0, 1},
		Subperiod:   []int{0, 0, 0, 0, 0, 0},
		Destination: []int{0, 1, 2, 2, 1, 0},
		Depth:       []float64{10, 25, 40, 12, 33, 50},
		Design: mat.NewDense(6, 5, []float64{
			0.1, 0.2, 0.0, 0.3, 0.1,
			0.0, 0.5, 0.1, 0.0, 0.2,
			0.4, 0.0, 0.3, 0.1, 0.0,
			0.2, 0.1, 0.0, 0.6, 0.1,
			0.0, 0.0, 0.7, 0.0, 0.3,
			0.3, 0.3, 0.1, 0.2, 0.4,
		}),
		Penalty:   pen,
		BlockDims: []int{3, 2},
		ReportDesign: mat.NewDense(2, 5, []float64{
			1, 0, 0, 1, 0,
			0, 0.5, 0.5, 0, 1,
		}),
	}
}

// richParams returns a non-trivial parameter set for richData.
func richParams() model.Params {
	return model.Params{
		Beta0:           0.3,
		BetaPeriod:      []float64{0.1, -0.2},
		BetaSubperiod:   []float64{0.05},
		BetaDestination: []float64{0, 0.4, -0.3},
		BetaDepth:       0.01,
		SmoothCoefs:     []float64{0.2, -0.1, 0.3, 0.5, -0.4},
		LogLambda:       0.2,
		LogSigma:        -0.5,
		LogOmega:        0.1,
	}
}

// mustModel builds a Model or fails.
func mustModel(t testing.TB, d model.Data, opts ...model.Option) *model.Model {
	t.Helper()
	m, err := model.New(d, opts...)
	require.NoError(t, err)

	return m
}
