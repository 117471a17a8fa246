// SPDX-License-Identifier: MIT

// Package model - staged validation of the request object.
//
// Every configuration error is detected here, once, so that Evaluate can
// assume well-formed data. No logging, no panics on user input.
package model

import (
	"fmt"

	"github.com/katalvlaran/tpsgam/matrix"
)

// validateData checks d and resolves inferred factor levels in place.
// It returns the penalty block structure and the spline coefficient count.
func validateData(d *Data, o Options) (*matrix.BlockDiag, int, error) {
	// Stage 1: family.
	if !d.Family.Valid() {
		return nil, 0, fmt.Errorf("family %v: %w", d.Family, ErrUnknownFamily)
	}

	// Stage 2: observation vectors.
	n := len(d.Response)
	if n == 0 {
		return nil, 0, ErrEmptyData
	}
	if err := sameLen(n, len(d.Period), "period"); err != nil {
		return nil, 0, err
	}
	if err := sameLen(n, len(d.Subperiod), "subperiod"); err != nil {
		return nil, 0, err
	}
	if err := sameLen(n, len(d.Destination), "destination"); err != nil {
		return nil, 0, err
	}
	if err := sameLen(n, len(d.Depth), "depth"); err != nil {
		return nil, 0, err
	}

	// Stage 3: designs.
	if d.Design == nil {
		return nil, 0, fmt.Errorf("design: %w", ErrNilDesign)
	}
	if d.ReportDesign == nil {
		return nil, 0, fmt.Errorf("report design: %w", ErrNilDesign)
	}
	rows, p := d.Design.Dims()
	if err := sameLen(n, rows, "design rows"); err != nil {
		return nil, 0, err
	}
	if _, rc := d.ReportDesign.Dims(); rc != p {
		return nil, 0, fmt.Errorf("report design: %d columns, want %d: %w", rc, p, ErrLengthMismatch)
	}

	// Stage 4: penalty structure.
	if d.Penalty == nil {
		return nil, 0, ErrNilPenalty
	}
	if d.Penalty.Rows() != p || d.Penalty.Cols() != p {
		return nil, 0, fmt.Errorf("penalty %dx%d, want %dx%d: %w",
			d.Penalty.Rows(), d.Penalty.Cols(), p, p, ErrLengthMismatch)
	}
	var sum, m int
	for _, m = range d.BlockDims {
		sum += m
	}
	if sum != p {
		return nil, 0, fmt.Errorf("block dims sum %d, coefficients %d: %w", sum, p, ErrBlockDimsMismatch)
	}
	bd, err := matrix.NewBlockDiag(d.Penalty, d.BlockDims, matrix.WithStrictBlocks(o.strictBlocks))
	if err != nil {
		return nil, 0, fmt.Errorf("penalty: %w: %w", ErrBlockDimsMismatch, err)
	}

	// Stage 5: factor levels.
	if d.Levels.Period, err = resolveLevels(d.Period, d.Levels.Period, "period"); err != nil {
		return nil, 0, err
	}
	if d.Levels.Subperiod, err = resolveLevels(d.Subperiod, d.Levels.Subperiod, "subperiod"); err != nil {
		return nil, 0, err
	}
	if d.Levels.Destination, err = resolveLevels(d.Destination, d.Levels.Destination, "destination"); err != nil {
		return nil, 0, err
	}

	return bd, p, nil
}

// sameLen reports ErrLengthMismatch when got != n.
func sameLen(n, got int, what string) error {
	if got != n {
		return fmt.Errorf("%s: len %d, want %d: %w", what, got, n, ErrLengthMismatch)
	}

	return nil
}

// resolveLevels checks 0 <= level < count for every observation.
// count == 0 ⇒ count is inferred as max(level)+1; count < 0 is rejected.
func resolveLevels(levels []int, count int, what string) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("%s: declared level count %d: %w", what, count, ErrFactorLevel)
	}
	var (
		i, lv, hi int
	)
	for i, lv = range levels {
		if lv < 0 || (count > 0 && lv >= count) {
			return 0, fmt.Errorf("%s: observation %d level %d: %w", what, i, lv, ErrFactorLevel)
		}
		if lv > hi {
			hi = lv
		}
	}
	if count == 0 {
		count = hi + 1
	}

	return count, nil
}
