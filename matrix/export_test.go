// SPDX-License-Identifier: MIT
package matrix

// OptionsSnapshot is a read-only copy of the resolved Options for tests.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
	StrictBlocks   bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, ValidateNaNInf: o.validateNaNInf, StrictBlocks: o.strictBlocks}
}
