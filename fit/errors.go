// SPDX-License-Identifier: MIT
package fit

import "errors"

var (
	// ErrNoConvergence indicates that the optimizer stopped without meeting a
	// convergence criterion, or could not start from a non-finite objective.
	ErrNoConvergence = errors.New("fit: optimizer did not converge")

	// ErrStartLength indicates start values that do not fit the model layout.
	ErrStartLength = errors.New("fit: start values do not match parameter layout")
)
