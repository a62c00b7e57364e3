package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezNNP/curvefit/regression"
)

func newFitCmd(a *app) *cobra.Command {
	var familyName string

	cmd := &cobra.Command{
		Use:   "fit --family NAME FILE",
		Short: "Fit one model family",
		Long: `Fit one model family to the points in FILE and print the rounded formula
and its sum of squared residuals. Use "-" to read standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := regression.FamilyFromString(familyName)
			if err != nil {
				return err
			}

			points, err := a.readPoints(cmd, args[0])
			if err != nil {
				return err
			}

			opts, err := a.cfg.FitOptions(a.logger)
			if err != nil {
				return err
			}

			formula, err := regression.Fit(points, family, opts...)
			if err != nil {
				return fmt.Errorf("fit %s: %w", family, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", family, formula)
			fmt.Fprintf(out, "SSE: %g\n", formula.Residual(points))

			return nil
		},
	}

	cmd.Flags().StringVarP(&familyName, "family", "f", "", "model family: "+familyList())
	_ = cmd.MarkFlagRequired("family")

	return cmd
}

func familyList() string {
	names := make([]string, 0, len(regression.Families()))
	for _, f := range regression.Families() {
		names = append(names, f.String())
	}

	return strings.Join(names, ", ")
}
