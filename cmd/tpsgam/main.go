// SPDX-License-Identifier: MIT

// Command tpsgam evaluates, simulates and fits penalized thin-plate-spline
// regression problems described by a YAML problem file.
//
//	tpsgam eval     -f problem.yaml
//	tpsgam simulate -f problem.yaml --seed 7 --replicates 100
//	tpsgam fit      -f problem.yaml
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("tpsgam failed", "error", err)
		os.Exit(1)
	}
}
