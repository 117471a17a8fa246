// SPDX-License-Identifier: MIT

// Package model - sentinel errors.
//
// Configuration errors are returned by New (and by the exported term
// functions when called directly) and abort evaluation. Numerical problems
// are never reported as errors: they surface as NaN/Inf in the objective.
package model

import "errors"

var (
	// ErrUnknownFamily indicates a likelihood mode outside {1, 2, 3}.
	ErrUnknownFamily = errors.New("model: unknown likelihood family")

	// ErrBlockDimsMismatch indicates that the penalty block orders do not sum
	// to the spline-coefficient count.
	ErrBlockDimsMismatch = errors.New("model: penalty block dimensions do not sum to coefficient count")

	// ErrFactorLevel indicates a factor level outside its coefficient vector.
	ErrFactorLevel = errors.New("model: factor level out of range")

	// ErrLengthMismatch indicates inconsistent observation or matrix sizes.
	ErrLengthMismatch = errors.New("model: length mismatch")

	// ErrEmptyData indicates an observation set with no records.
	ErrEmptyData = errors.New("model: empty observation set")

	// ErrParamLength indicates a parameter vector that does not fit the layout.
	ErrParamLength = errors.New("model: parameter length does not match layout")

	// ErrNilDesign indicates a missing spline or reporting design matrix.
	ErrNilDesign = errors.New("model: nil design matrix")

	// ErrNilPenalty indicates a missing penalty matrix.
	ErrNilPenalty = errors.New("model: nil penalty matrix")
)
