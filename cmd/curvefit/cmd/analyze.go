package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ezNNP/curvefit/internal/jsonx"
	"github.com/ezNNP/curvefit/regression"
)

// analysisReport is the JSON form of one analyzed point file.
type analysisReport struct {
	Source   string          `json:"source"`
	Points   int             `json:"points"`
	Best     *modelReport    `json:"best"`
	Models   []modelReport   `json:"models"`
	Failures []failureReport `json:"failures,omitempty"`
}

type modelReport struct {
	Rank         int               `json:"rank"`
	Family       regression.Family `json:"family"`
	Formula      string            `json:"formula"`
	Coefficients []string          `json:"coefficients"`
	SSE          *float64          `json:"sse"`
	RMSE         *float64          `json:"rmse"`
	RSquared     *float64          `json:"r_squared"`
}

type failureReport struct {
	Family regression.Family `json:"family"`
	Error  string            `json:"error"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Compare every model family",
		Long: `Fit every configured family to the points in each FILE and list the
successful fits ranked by sum of squared residuals, with RMSE and R², followed
by the families that could not be fitted and why.`,
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

			reports := make([]analysisReport, 0, len(sources))
			for _, src := range sources {
				result, err := regression.Analyze(src.points, opts...)
				if err != nil {
					return fmt.Errorf("%s: %w", src.path, err)
				}
				reports = append(reports, newAnalysisReport(src, result))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := jsonx.NewEncoder(out)
				if len(reports) == 1 {
					return enc.Encode(reports[0])
				}

				return enc.Encode(reports)
			}

			for i, report := range reports {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if len(reports) > 1 {
					fmt.Fprintf(out, "%s (%d points)\n", report.Source, report.Points)
				}
				if err := writeAnalysisTable(out, report); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the analysis as JSON")

	return cmd
}

func newAnalysisReport(src source, result *regression.Result) analysisReport {
	report := analysisReport{
		Source: src.path,
		Points: len(src.points),
	}

	for i, m := range result.Ranked() {
		decimals := m.Formula.Decimals()
		coeffs := make([]string, len(decimals))
		for j, d := range decimals {
			coeffs[j] = d.String()
		}

		mr := modelReport{
			Rank:         i + 1,
			Family:       m.Family,
			Formula:      m.Formula.Text(),
			Coefficients: coeffs,
			SSE:          finite(m.SSE),
			RMSE:         finite(m.RMSE),
			RSquared:     finite(m.RSquared),
		}
		report.Models = append(report.Models, mr)
		if m == result.Best {
			best := mr
			report.Best = &best
		}
	}

	for _, f := range result.Failures {
		report.Failures = append(report.Failures, failureReport{Family: f.Family, Error: f.Err.Error()})
	}

	return report
}

func writeAnalysisTable(w io.Writer, report analysisReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tFAMILY\tSSE\tRMSE\tR²\tFORMULA")
	for _, m := range report.Models {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			m.Rank, m.Family, formatStat(m.SSE), formatStat(m.RMSE), formatStat(m.RSquared), m.Formula)
	}
	for _, f := range report.Failures {
		fmt.Fprintf(tw, "-\t%s\t-\t-\t-\t%s\n", f.Family, f.Error)
	}

	return tw.Flush()
}

// finite returns nil for NaN and ±Inf, which JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	return &v
}

func formatStat(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return strconv.FormatFloat(*v, 'g', 6, 64)
}
