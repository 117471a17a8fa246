// SPDX-License-Identifier: MIT

// Package deriv provides derivatives of the objective as a pluggable strategy
// and the uncertainty computations built on them.
//
// The evaluator is written as a plain func([]float64) float64; any
// Differentiator can be plugged under it without changing the pipeline.
// FiniteDifference is the bundled strategy, backed by gonum's diff/fd.
//
// Complexity quicksheet (n = len(x), m = outputs, c = stencil size):
//   - Gradient: c·n evaluations; Jacobian: c·n vector evaluations;
//   - Hessian: O(c²·n²) evaluations; Covariance: Hessian + O(n³).
package deriv

import (
	"fmt"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

// Differentiator computes first and second derivatives of objective-shaped
// functions. Implementations must not retain f or x.
type Differentiator interface {
	// Gradient returns ∇f(x).
	Gradient(f func([]float64) float64, x []float64) ([]float64, error)
	// Jacobian returns the m×len(x) Jacobian of the vector function f.
	Jacobian(f func(y, x []float64), m int, x []float64) (*mat.Dense, error)
	// Hessian returns ∇²f(x).
	Hessian(f func([]float64) float64, x []float64) (*mat.SymDense, error)
}

// FiniteDifference approximates derivatives numerically.
// The zero value uses central differences with gonum's default step.
type FiniteDifference struct {
	Formula    fd.Formula // first-derivative formula; zero ⇒ fd.Central
	Step       float64    // 0 ⇒ the formula's default step
	Concurrent bool       // evaluate stencil points in parallel
}

// Compile-time check.
var _ Differentiator = FiniteDifference{}

func (d FiniteDifference) formula() fd.Formula {
	if d.Formula.Stencil == nil {
		return fd.Central
	}

	return d.Formula
}

// Gradient implements Differentiator.
func (d FiniteDifference) Gradient(f func([]float64) float64, x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Gradient: empty x: %w", ErrDimensionMismatch)
	}

	return fd.Gradient(nil, f, x, &fd.Settings{
		Formula:    d.formula(),
		Step:       d.Step,
		Concurrent: d.Concurrent,
	}), nil
}

// Jacobian implements Differentiator.
func (d FiniteDifference) Jacobian(f func(y, x []float64), m int, x []float64) (*mat.Dense, error) {
	if len(x) == 0 || m <= 0 {
		return nil, fmt.Errorf("Jacobian: m=%d, n=%d: %w", m, len(x), ErrDimensionMismatch)
	}
	j := mat.NewDense(m, len(x), nil)
	fd.Jacobian(j, f, x, &fd.JacobianSettings{
		Formula:    d.formula(),
		Step:       d.Step,
		Concurrent: d.Concurrent,
	})

	return j, nil
}

// Hessian implements Differentiator. With Step == 0, fd.Hessian applies the
// square root of the formula step, since the step is taken once per
// derivative order.
func (d FiniteDifference) Hessian(f func([]float64) float64, x []float64) (*mat.SymDense, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("Hessian: empty x: %w", ErrDimensionMismatch)
	}
	h := mat.NewSymDense(len(x), nil)
	fd.Hessian(h, f, x, &fd.Settings{
		Formula:    d.formula(),
		Step:       d.Step,
		Concurrent: d.Concurrent,
	})

	return h, nil
}
