// SPDX-License-Identifier: MIT
package fit

import (
	"fmt"

	"github.com/katalvlaran/tpsgam/deriv"
	"github.com/katalvlaran/tpsgam/model"
	"gonum.org/v1/gonum/mat"
)

// Estimate is one named value with its standard deviation.
type Estimate struct {
	Name  string  `yaml:"name"`
	Value float64 `yaml:"value"`
	SD    float64 `yaml:"sd"`
}

// Uncertainty holds Wald standard deviations of the free parameters and
// delta-method standard deviations of the derived quantities.
type Uncertainty struct {
	Cov     *mat.SymDense `yaml:"-"` // covariance of the flat parameters
	Params  []Estimate    `yaml:"params"`
	Derived []Estimate    `yaml:"derived"`
}

// SDReport computes parameter and derived-quantity uncertainty at p, which
// should be the optimum returned by Fit. d == nil ⇒ central differences.
//
// Errors: ErrStartLength for a mis-shaped p; deriv.ErrNotPositiveDefinite
// when the Hessian at p cannot be inverted.
func SDReport(e Evaluator, p model.Params, d deriv.Differentiator) (*Uncertainty, error) {
	if d == nil {
		d = deriv.FiniteDifference{}
	}
	layout := e.Layout()
	x, err := layout.Flatten(p)
	if err != nil {
		return nil, fmt.Errorf("SDReport: %w: %w", ErrStartLength, err)
	}

	cov, err := deriv.Covariance(d, e.Objective(), x)
	if err != nil {
		return nil, fmt.Errorf("SDReport: %w", err)
	}

	nd := e.NumDerived()
	values := make([]float64, nd)
	g := e.DerivedFunc()
	g(values, x)
	_, dsd, err := deriv.DeltaMethod(d, g, nd, x, cov)
	if err != nil {
		return nil, fmt.Errorf("SDReport: %w", err)
	}

	return &Uncertainty{
		Cov:     cov,
		Params:  zipEstimates(layout.Names(), x, deriv.StdDevs(cov)),
		Derived: zipEstimates(e.DerivedNames(), values, dsd),
	}, nil
}

func zipEstimates(names []string, values, sd []float64) []Estimate {
	out := make([]Estimate, len(names))
	for i := range names {
		out[i] = Estimate{Name: names[i], Value: values[i], SD: sd[i]}
	}

	return out
}
