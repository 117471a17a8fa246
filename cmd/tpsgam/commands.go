// SPDX-License-Identifier: MIT
package main

import (
	"github.com/katalvlaran/tpsgam/fit"
	"github.com/katalvlaran/tpsgam/model"
	"github.com/spf13/cobra"
)

func newEvalCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "eval",
		Short: "Evaluate the joint NLL and report at the configured parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := flags.logger(cmd.ErrOrStderr())
			p, m, err := flags.loadModel(log)
			if err != nil {
				return err
			}
			res, err := m.Evaluate(p.Start(m.Layout()))
			if err != nil {
				return err
			}
			log.Info("evaluated", "jnll", res.JNLL)

			return writeYAML(cmd.OutOrStdout(), res.Report)
		},
	}
}

// simulateOutput is the simulate command's document.
type simulateOutput struct {
	Seed       uint64      `yaml:"seed"`
	Policy     string      `yaml:"policy"`
	Replicates [][]float64 `yaml:"replicates"`
}

func newSimulateCmd(flags *rootFlags) *cobra.Command {
	var (
		seed       uint64
		replicates int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Draw simulated responses at the configured parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := flags.logger(cmd.ErrOrStderr())
			p, m, err := flags.loadModel(log)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = p.Seed
			}
			if !cmd.Flags().Changed("replicates") && p.Replicates > 0 {
				replicates = p.Replicates
			}
			sims, err := m.SimulateReplicates(p.Start(m.Layout()), seed, replicates)
			if err != nil {
				return err
			}
			policy := model.SimulateMatchFamily
			if p.Simulation == model.SimulateGammaLegacy.String() {
				policy = model.SimulateGammaLegacy
			}
			log.Info("simulated", "replicates", len(sims), "seed", seed, "policy", policy.String())

			return writeYAML(cmd.OutOrStdout(), simulateOutput{Seed: seed, Policy: policy.String(), Replicates: sims})
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 uses the fixed default)")
	cmd.Flags().IntVar(&replicates, "replicates", 1, "number of simulated datasets")

	return cmd
}

// fitOutput is the fit command's document.
type fitOutput struct {
	Status     string         `yaml:"status"`
	JNLL       float64        `yaml:"jnll"`
	Iterations int            `yaml:"iterations"`
	Params     []fit.Estimate `yaml:"params"`
	Derived    []fit.Estimate `yaml:"derived,omitempty"`
}

func newFitCmd(flags *rootFlags) *cobra.Command {
	var (
		maxIter int
		gradTol float64
		noSD    bool
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Minimize the joint NLL and report standard deviations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := flags.logger(cmd.ErrOrStderr())
			p, m, err := flags.loadModel(log)
			if err != nil {
				return err
			}
			s := fit.DefaultSettings()
			s.Logger = log
			s.MajorIterations = maxIter
			s.GradientThreshold = gradTol

			res, err := fit.Fit(cmd.Context(), m, p.Start(m.Layout()), s)
			if err != nil {
				return err
			}
			out := fitOutput{
				Status:     res.Status.String(),
				JNLL:       res.JNLL,
				Iterations: res.Stats.MajorIterations,
			}
			if noSD {
				names := m.Layout().Names()
				for i, v := range res.X {
					out.Params = append(out.Params, fit.Estimate{Name: names[i], Value: v})
				}
				return writeYAML(cmd.OutOrStdout(), out)
			}

			u, err := fit.SDReport(m, res.Params, s.Differentiator)
			if err != nil {
				return err
			}
			out.Params, out.Derived = u.Params, u.Derived

			return writeYAML(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&maxIter, "max-iter", fit.DefaultMajorIterations, "maximum optimizer iterations")
	cmd.Flags().Float64Var(&gradTol, "grad-tol", fit.DefaultGradientThreshold, "gradient infinity-norm threshold")
	cmd.Flags().BoolVar(&noSD, "no-sd", false, "skip the Hessian-based standard deviations")

	return cmd
}
