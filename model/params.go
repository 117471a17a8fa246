// SPDX-License-Identifier: MIT

// Package model - parameters and their flat-vector layout.
//
// Optimizers and differentiators work on []float64. Layout packs Params in a
// fixed order:
//
//	beta0, beta_period[·], beta_subperiod[·], beta_destination[·],
//	beta_depth, smooth_coefs[·], log_lambda, log_sigma, log_omega
package model

import "fmt"

// Params is one candidate parameter set. Hyperparameters stay on the log scale;
// use Transform for the positive quantities.
type Params struct {
	Beta0           float64   `yaml:"beta0"`
	BetaPeriod      []float64 `yaml:"beta_period"`
	BetaSubperiod   []float64 `yaml:"beta_subperiod"`
	BetaDestination []float64 `yaml:"beta_destination"`
	BetaDepth       float64   `yaml:"beta_depth"`
	SmoothCoefs     []float64 `yaml:"smooth_coefs"`
	LogLambda       float64   `yaml:"log_lambda"`
	LogSigma        float64   `yaml:"log_sigma"`
	LogOmega        float64   `yaml:"log_omega"`
}

// Layout describes the flat parameter vector of a Model.
type Layout struct {
	Period, Subperiod, Destination int // factor coefficient counts
	Smooth                         int // spline coefficient count
}

// Len returns the flat vector length.
func (l Layout) Len() int {
	return 1 + l.Period + l.Subperiod + l.Destination + 1 + l.Smooth + 3
}

// Zero returns a Params of the right shape with every value zero.
func (l Layout) Zero() Params {
	return Params{
		BetaPeriod:      make([]float64, l.Period),
		BetaSubperiod:   make([]float64, l.Subperiod),
		BetaDestination: make([]float64, l.Destination),
		SmoothCoefs:     make([]float64, l.Smooth),
	}
}

// Check validates the vector lengths of p against the layout.
func (l Layout) Check(p Params) error {
	switch {
	case len(p.BetaPeriod) != l.Period:
		return fmt.Errorf("beta_period: len %d, want %d: %w", len(p.BetaPeriod), l.Period, ErrParamLength)
	case len(p.BetaSubperiod) != l.Subperiod:
		return fmt.Errorf("beta_subperiod: len %d, want %d: %w", len(p.BetaSubperiod), l.Subperiod, ErrParamLength)
	case len(p.BetaDestination) != l.Destination:
		return fmt.Errorf("beta_destination: len %d, want %d: %w", len(p.BetaDestination), l.Destination, ErrParamLength)
	case len(p.SmoothCoefs) != l.Smooth:
		return fmt.Errorf("smooth_coefs: len %d, want %d: %w", len(p.SmoothCoefs), l.Smooth, ErrParamLength)
	}

	return nil
}

// Flatten packs p into a new flat vector. p must satisfy Check.
func (l Layout) Flatten(p Params) ([]float64, error) {
	if err := l.Check(p); err != nil {
		return nil, fmt.Errorf("Layout.Flatten: %w", err)
	}
	x := make([]float64, 0, l.Len())
	x = append(x, p.Beta0)
	x = append(x, p.BetaPeriod...)
	x = append(x, p.BetaSubperiod...)
	x = append(x, p.BetaDestination...)
	x = append(x, p.BetaDepth)
	x = append(x, p.SmoothCoefs...)
	x = append(x, p.LogLambda, p.LogSigma, p.LogOmega)

	return x, nil
}

// Unflatten unpacks x into a Params. Vector fields are copies of x's segments.
func (l Layout) Unflatten(x []float64) (Params, error) {
	if len(x) != l.Len() {
		return Params{}, fmt.Errorf("Layout.Unflatten: len %d, want %d: %w", len(x), l.Len(), ErrParamLength)
	}
	var (
		p Params
		k int
	)
	take := func(n int) []float64 {
		s := append([]float64(nil), x[k:k+n]...)
		k += n

		return s
	}
	p.Beta0 = x[k]
	k++
	p.BetaPeriod = take(l.Period)
	p.BetaSubperiod = take(l.Subperiod)
	p.BetaDestination = take(l.Destination)
	p.BetaDepth = x[k]
	k++
	p.SmoothCoefs = take(l.Smooth)
	p.LogLambda, p.LogSigma, p.LogOmega = x[k], x[k+1], x[k+2]

	return p, nil
}

// Names returns one label per flat-vector slot, e.g. "beta_period[2]".
func (l Layout) Names() []string {
	names := make([]string, 0, l.Len())
	indexed := func(base string, n int) {
		var i int
		for i = 0; i < n; i++ {
			names = append(names, fmt.Sprintf("%s[%d]", base, i))
		}
	}
	names = append(names, "beta0")
	indexed("beta_period", l.Period)
	indexed("beta_subperiod", l.Subperiod)
	indexed("beta_destination", l.Destination)
	names = append(names, "beta_depth")
	indexed("smooth_coefs", l.Smooth)
	names = append(names, "log_lambda", "log_sigma", "log_omega")

	return names
}
