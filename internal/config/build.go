// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tpsgam/matrix"
	"github.com/katalvlaran/tpsgam/model"
	"gonum.org/v1/gonum/mat"
)

// Build converts the problem into model inputs: the request object and the
// options implied by priors/simulation. The reporting design is stored as
// CSR, since reporting grids are mostly zeros.
func (p *Problem) Build() (model.Data, []model.Option, error) {
	fam, err := model.ParseFamilyName(p.Family)
	if err != nil {
		return model.Data{}, nil, fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	design, err := denseRows(p.Design)
	if err != nil {
		return model.Data{}, nil, fmt.Errorf("%w: design: %w", ErrInvalidProblem, err)
	}
	report, err := denseRows(p.ReportDesign)
	if err != nil {
		return model.Data{}, nil, fmt.Errorf("%w: report_design: %w", ErrInvalidProblem, err)
	}
	reportCSR, err := matrix.CSRFromDense(report)
	if err != nil {
		return model.Data{}, nil, fmt.Errorf("%w: report_design: %w", ErrInvalidProblem, err)
	}

	ts := make([]matrix.Triplet, len(p.Penalty.Entries))
	for i, e := range p.Penalty.Entries {
		ts[i] = matrix.Triplet{Row: e.Row, Col: e.Col, Value: e.Value}
	}
	pen, err := matrix.NewCSR(p.Penalty.Order, p.Penalty.Order, ts)
	if err != nil {
		return model.Data{}, nil, fmt.Errorf("%w: penalty: %w", ErrInvalidProblem, err)
	}

	opts, err := p.options()
	if err != nil {
		return model.Data{}, nil, err
	}

	return model.Data{
		Family:       fam,
		Response:     p.Response,
		Period:       p.Period,
		Subperiod:    p.Subperiod,
		Destination:  p.Destination,
		Depth:        p.Depth,
		Design:       design,
		Penalty:      pen,
		BlockDims:    p.BlockDims,
		ReportDesign: reportCSR,
		Levels:       p.Levels,
	}, opts, nil
}

// Start returns the configured start values, or zeros shaped by l.
func (p *Problem) Start(l model.Layout) model.Params {
	if p.Params == nil {
		return l.Zero()
	}
	s := *p.Params
	// Omitted vectors default to zeros of the right length.
	if s.BetaPeriod == nil {
		s.BetaPeriod = make([]float64, l.Period)
	}
	if s.BetaSubperiod == nil {
		s.BetaSubperiod = make([]float64, l.Subperiod)
	}
	if s.BetaDestination == nil {
		s.BetaDestination = make([]float64, l.Destination)
	}
	if s.SmoothCoefs == nil {
		s.SmoothCoefs = make([]float64, l.Smooth)
	}

	return s
}

func (p *Problem) options() ([]model.Option, error) {
	var opts []model.Option
	if p.Priors != nil {
		s := *p.Priors
		for _, v := range []float64{s.Intercept, s.Period, s.Subperiod, s.Destination, s.Depth, s.Smooth, s.Lambda, s.Omega, s.Sigma} {
			if !(v > 0) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: priors: scales must be finite and > 0", ErrInvalidProblem)
			}
		}
		opts = append(opts, model.WithPriorScales(s))
	}
	if p.Simulation == model.SimulateGammaLegacy.String() {
		opts = append(opts, model.WithSimulationPolicy(model.SimulateGammaLegacy))
	}

	return opts, nil
}

// denseRows packs equal-length rows into a *mat.Dense.
func denseRows(rows [][]float64) (*mat.Dense, error) {
	c := len(rows[0])
	flat := make([]float64, 0, len(rows)*c)
	for i, r := range rows {
		if len(r) != c {
			return nil, fmt.Errorf("row %d has %d columns, want %d", i, len(r), c)
		}
		flat = append(flat, r...)
	}

	return mat.NewDense(len(rows), c, flat), nil
}
