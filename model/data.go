// SPDX-License-Identifier: MIT
package model

import (
	"github.com/katalvlaran/tpsgam/matrix"
	"gonum.org/v1/gonum/mat"
)

// Levels gives the coefficient-vector length of each categorical factor.
// A zero field is inferred as max(level)+1 over the observations.
type Levels struct {
	Period      int `yaml:"period" validate:"gte=0"`
	Subperiod   int `yaml:"subperiod" validate:"gte=0"`
	Destination int `yaml:"destination" validate:"gte=0"`
}

// Data is the typed request object bound once to a Model.
//
// Invariants checked by New:
//   - all observation vectors have the same length n > 0;
//   - Design is n×p and ReportDesign is r×p;
//   - Penalty is p×p and BlockDims sums to p;
//   - factor levels are 0-based and below the corresponding Levels field.
//
// Response positivity is not checked: a non-positive response is a numerical
// condition and yields a non-finite objective.
type Data struct {
	Family      Family
	Response    []float64
	Period      []int
	Subperiod   []int
	Destination []int
	Depth       []float64

	// Design maps observations to spline basis evaluations (n×p). A *matrix.CSR
	// is multiplied without densifying.
	Design mat.Matrix
	// Penalty is the block-diagonal smoothness penalty (p×p).
	Penalty *matrix.CSR
	// BlockDims lists the penalty block orders in coefficient order.
	BlockDims []int
	// ReportDesign evaluates the spline surface on a reporting grid (r×p).
	ReportDesign mat.Matrix

	Levels Levels
}

// N returns the number of observations.
func (d *Data) N() int { return len(d.Response) }

// clone copies the observation slices so later caller mutation cannot leak
// into a constructed Model. Matrices are immutable by contract and shared.
func (d Data) clone() Data {
	c := d
	c.Response = append([]float64(nil), d.Response...)
	c.Period = append([]int(nil), d.Period...)
	c.Subperiod = append([]int(nil), d.Subperiod...)
	c.Destination = append([]int(nil), d.Destination...)
	c.Depth = append([]float64(nil), d.Depth...)
	c.BlockDims = append([]int(nil), d.BlockDims...)

	return c
}
