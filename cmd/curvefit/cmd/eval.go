package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezNNP/curvefit/expression"
	"github.com/ezNNP/curvefit/regression"
)

func newEvalCmd(a *app) *cobra.Command {
	var (
		formula  string
		variable string
		xs       []float64
	)

	cmd := &cobra.Command{
		Use:   "eval --formula TEXT --x VALUE...",
		Short: "Evaluate a formula",
		Long: `Evaluate formula text, as printed by fit, best and analyze, at one or
more points. Results are rounded with the configured precision and rounding.`,
		Example: `  curvefit eval --formula "2*x^2-3*x+1" --x 1.5
  curvefit eval --formula "e^(0.5+0.25 * x)" --x 0,1,2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ex, err := expression.Build(formula, variable)
			if err != nil {
				return err
			}

			mode, err := regression.ParseRoundingMode(a.cfg.Rounding)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, x := range xs {
				y, err := ex.Evaluate(x)
				if err != nil {
					return fmt.Errorf("evaluate at %s=%g: %w", variable, x, err)
				}

				rounded, err := regression.Round(y, a.cfg.Precision, mode)
				if err != nil {
					return fmt.Errorf("evaluate at %s=%g: %w", variable, x, err)
				}
				fmt.Fprintf(out, "f(%g) = %s\n", x, rounded)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&formula, "formula", "", "formula text, e.g. \"2*x+3\"")
	cmd.Flags().StringVar(&variable, "variable", expression.DefaultVariable, "name of the independent variable")
	cmd.Flags().Float64SliceVar(&xs, "x", nil, "values to evaluate at")
	_ = cmd.MarkFlagRequired("formula")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}
