package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezNNP/curvefit/regression"
)

func newBestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "best FILE...",
		Short: "Select the best-fitting model family",
		Long: `Fit every configured family to the points in each FILE and print the
formula with the smallest sum of squared residuals. Families that cannot be
fitted are skipped. Files holding the same points as an earlier file are
skipped as well.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := a.readSources(cmd, args)
			if err != nil {
				return err
			}

			opts, err := a.cfg.FitOptions(a.logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, src := range sources {
				best, err := regression.SelectBest(src.points, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", src.path, err)
				}

				if len(args) > 1 {
					fmt.Fprintf(out, "%s: ", src.path)
				}
				fmt.Fprintf(out, "%s: %s\n", best.Family(), best)
			}

			return nil
		},
	}
}
