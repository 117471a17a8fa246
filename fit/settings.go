// SPDX-License-Identifier: MIT
package fit

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/tpsgam/deriv"
	"gonum.org/v1/gonum/optimize"
)

const (
	// DefaultGradientThreshold stops when ‖∇f‖∞ drops below it.
	DefaultGradientThreshold = 1e-6
	// DefaultMajorIterations caps the number of optimizer iterations.
	DefaultMajorIterations = 1000
)

// Settings configures Fit and SDReport.
type Settings struct {
	// Method is the gonum optimizer; nil ⇒ BFGS.
	Method optimize.Method
	// GradientThreshold, MajorIterations and FuncEvaluations map onto the
	// optimize.Settings fields of the same names (0 disables a limit).
	GradientThreshold float64
	MajorIterations   int
	FuncEvaluations   int
	// Differentiator supplies gradients and Hessians; nil ⇒ central differences.
	Differentiator deriv.Differentiator
	// Logger receives progress; nil ⇒ discarded.
	Logger *slog.Logger
}

// DefaultSettings returns BFGS with central-difference gradients and the
// process default logger.
func DefaultSettings() Settings {
	return Settings{
		Method:            &optimize.BFGS{},
		GradientThreshold: DefaultGradientThreshold,
		MajorIterations:   DefaultMajorIterations,
		Differentiator:    deriv.FiniteDifference{},
		Logger:            slog.Default(),
	}
}

// normalize fills nil fields so callers may pass a partially set Settings.
func (s Settings) normalize() Settings {
	if s.Method == nil {
		s.Method = &optimize.BFGS{}
	}
	if s.Differentiator == nil {
		s.Differentiator = deriv.FiniteDifference{}
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return s
}
