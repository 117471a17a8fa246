// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/tpsgam/internal/config"
	"github.com/katalvlaran/tpsgam/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	problem  string
	verbose  bool
	jsonLogs bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	root := &cobra.Command{
		Use:           "tpsgam",
		Short:         "Penalized thin-plate-spline GAM evaluator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.problem, "file", "f", "problem.yaml", "problem file (YAML)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().BoolVar(&flags.jsonLogs, "json-logs", false, "log as JSON")

	root.AddCommand(
		newEvalCmd(&flags),
		newSimulateCmd(&flags),
		newFitCmd(&flags),
	)

	return root
}

// logger builds the process logger on the command's stderr.
func (f *rootFlags) logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if f.verbose {
		opts.Level = slog.LevelDebug
	}
	if f.jsonLogs {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// loadModel reads the problem file and constructs the model.
func (f *rootFlags) loadModel(log *slog.Logger) (*config.Problem, *model.Model, error) {
	p, err := config.Load(f.problem)
	if err != nil {
		return nil, nil, err
	}
	d, opts, err := p.Build()
	if err != nil {
		return nil, nil, err
	}
	m, err := model.New(d, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", f.problem, err)
	}
	log.Debug("problem loaded",
		"file", f.problem,
		"family", m.Family().String(),
		"observations", m.N(),
		"parameters", m.Layout().Len(),
	)

	return p, m, nil
}

// writeYAML encodes v to w with two-space indentation.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return enc.Close()
}
