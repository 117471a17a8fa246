// SPDX-License-Identifier: MIT
package model

// Report is the named bundle produced by one evaluation. It is rebuilt from
// scratch on every call and shares no memory with the Model.
type Report struct {
	JNLL     float64 `yaml:"jnll"`
	NLL      float64 `yaml:"nll"`      // likelihood term alone
	Penalty  float64 `yaml:"penalty"`  // smoothness term
	Prior    float64 `yaml:"prior"`    // negative log-prior
	Jacobian float64 `yaml:"jacobian"` // -(logσ + logλ + logω)

	Beta0           float64   `yaml:"beta0"`
	BetaPeriod      []float64 `yaml:"beta_period"`
	BetaSubperiod   []float64 `yaml:"beta_subperiod"`
	BetaDestination []float64 `yaml:"beta_destination"`
	BetaDepth       float64   `yaml:"beta_depth"`
	LogLambda       float64   `yaml:"log_lambda"`
	LogSigma        float64   `yaml:"log_sigma"`
	LogOmega        float64   `yaml:"log_omega"`
	SmoothCoefs     []float64 `yaml:"smooth_coefs"`

	BlockQ    []float64 `yaml:"block_q"`   // per-block quadratic forms
	Preds     []float64 `yaml:"preds"`     // linear predictor
	LogLik    []float64 `yaml:"log_lik"`   // per-observation log-density
	Splines2D []float64 `yaml:"splines2d"` // spline surface on the reporting grid

	// Simulated is set only by EvaluateAndSimulate.
	Simulated []float64 `yaml:"simulated,omitempty"`
}

// Result pairs the optimization target with its report.
type Result struct {
	JNLL   float64
	Report Report
}

// derivedFixed is the number of scalar entries leading the derived vector.
const derivedFixed = 4

// derived flattens the uncertainty-tracked subset of r: beta0, log_sigma,
// log_lambda, log_omega, smooth_coefs[·], splines2d[·].
func (r *Report) derived() []float64 {
	out := make([]float64, 0, derivedFixed+len(r.SmoothCoefs)+len(r.Splines2D))
	out = append(out, r.Beta0, r.LogSigma, r.LogLambda, r.LogOmega)
	out = append(out, r.SmoothCoefs...)
	out = append(out, r.Splines2D...)

	return out
}
