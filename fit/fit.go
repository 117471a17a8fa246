// SPDX-License-Identifier: MIT

// Package fit drives the evaluator: it minimizes the joint NLL with a gonum
// optimizer and reports Wald/delta-method uncertainty at the optimum.
//
// The evaluator itself never iterates; iteration control, convergence and
// cancellation live here.
package fit

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/tpsgam/model"
	"gonum.org/v1/gonum/optimize"
)

// Evaluator is the subset of *model.Model that Fit and SDReport use.
type Evaluator interface {
	Layout() model.Layout
	Objective() func([]float64) float64
	Evaluate(model.Params) (model.Result, error)
	NumDerived() int
	DerivedNames() []string
	DerivedFunc() func(y, x []float64)
}

var _ Evaluator = (*model.Model)(nil)

// Result is the outcome of Fit.
type Result struct {
	Params model.Params
	X      []float64 // flat optimum, Layout order
	JNLL   float64
	Status optimize.Status
	Stats  optimize.Stats
	Report model.Report
}

// Fit minimizes the joint NLL of e starting at start.
//
// Errors:
//   - ErrStartLength when start does not match e.Layout().
//   - ErrNoConvergence when the start objective is not finite, the optimizer
//     fails, or it stops on an iteration/evaluation limit. In the last case
//     the partial Result is returned alongside the error.
//   - ctx.Err() (wrapped) when ctx is cancelled between iterations.
func Fit(ctx context.Context, e Evaluator, start model.Params, s Settings) (*Result, error) {
	s = s.normalize()
	layout := e.Layout()
	x0, err := layout.Flatten(start)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w: %w", ErrStartLength, err)
	}

	f := e.Objective()
	if f0 := f(x0); math.IsNaN(f0) || math.IsInf(f0, 0) {
		return nil, fmt.Errorf("Fit: objective %v at start: %w", f0, ErrNoConvergence)
	}

	d := s.Differentiator
	problem := optimize.Problem{
		Func: f,
		Grad: func(grad, x []float64) {
			g, gerr := d.Gradient(f, x)
			if gerr != nil {
				for i := range grad {
					grad[i] = math.NaN()
				}
				return
			}
			copy(grad, g)
		},
	}
	settings := &optimize.Settings{
		GradientThreshold: s.GradientThreshold,
		MajorIterations:   s.MajorIterations,
		FuncEvaluations:   s.FuncEvaluations,
		Recorder:          &recorder{ctx: ctx, log: s.Logger},
	}

	s.Logger.Info("fit: start", "params", layout.Len(), "method", fmt.Sprintf("%T", s.Method))
	res, err := optimize.Minimize(problem, x0, settings, s.Method)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, fmt.Errorf("Fit: %w", cerr)
		}
		s.Logger.Warn("fit: optimizer error", "err", err)

		return nil, fmt.Errorf("Fit: %w: %w", ErrNoConvergence, err)
	}
	s.Logger.Info("fit: done",
		"status", res.Status.String(),
		"jnll", res.F,
		"iterations", res.MajorIterations,
		"func_evals", res.FuncEvaluations,
		"grad_evals", res.GradEvaluations,
		"runtime", res.Runtime,
	)

	out, err := buildResult(e, res)
	if err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	if serr := res.Status.Err(); serr != nil {
		return out, fmt.Errorf("Fit: %s: %w: %w", res.Status, ErrNoConvergence, serr)
	}

	return out, nil
}

// buildResult re-evaluates the optimum to attach its report.
func buildResult(e Evaluator, res *optimize.Result) (*Result, error) {
	p, err := e.Layout().Unflatten(res.X)
	if err != nil {
		return nil, err
	}
	ev, err := e.Evaluate(p)
	if err != nil {
		return nil, err
	}

	return &Result{
		Params: p,
		X:      append([]float64(nil), res.X...),
		JNLL:   ev.JNLL,
		Status: res.Status,
		Stats:  res.Stats,
		Report: ev.Report,
	}, nil
}

// recorder logs major iterations and aborts on context cancellation.
type recorder struct {
	ctx context.Context
	log *slog.Logger
}

func (r *recorder) Init() error { return nil }

func (r *recorder) Record(loc *optimize.Location, op optimize.Operation, st *optimize.Stats) error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	if op&optimize.MajorIteration == 0 {
		return nil
	}
	r.log.Debug("fit: iteration",
		"iter", st.MajorIterations,
		"jnll", loc.F,
		"func_evals", st.FuncEvaluations,
	)

	return nil
}
