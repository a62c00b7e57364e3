// Package cmd implements the curvefit command line.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/regression"
)

// app is the state shared by all subcommands of one root command.
type app struct {
	v           *viper.Viper
	cfgFile     string
	inputFormat string
	cfg         Config
	logger      *slog.Logger
}

// NewRootCmd builds the curvefit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: slog.New(slog.DiscardHandler),
	}

	root := &cobra.Command{
		Use:   "curvefit",
		Short: "Least-squares curve fitting for 2D samples",
		Long: `curvefit fits eight model families to a set of (x, y) samples and
reports the one with the smallest sum of squared residuals.

Families:
  linear       y = a*x + b
  quadratic    y = a*x^2 + b*x + c
  cubic        y = a*x^3 + b*x^2 + c*x + d
  power        y = a * x^b
  hyperbola    y = a + b/x
  indicative   y = a * b^x
  logarithmic  y = a + b*ln(x)
  exponential  y = e^(a + b*x)

Settings are read from flags, CURVEFIT_* environment variables and an
optional config file, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&a.inputFormat, "format", "", "input format: csv, json, yaml, snapshot (default: from file extension)")
	pf.Int32(keyPrecision, regression.DefaultPrecision, "fractional digits kept in coefficients")
	pf.String(keyRounding, regression.RoundCeiling.String(), "coefficient rounding: ceiling, floor, half-up, half-even, truncate")
	pf.StringSlice(keyFamilies, nil, "families to try, in order (default: all)")
	pf.String(keyScoring, regression.ScoreNative.String(), "residual evaluation: native or expression")
	pf.String(keyCompression, "none", "snapshot compression: none, zstd, s2, lz4")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		newFitCmd(a),
		newBestCmd(a),
		newAnalyzeCmd(a),
		newEvalCmd(a),
		newPackCmd(a),
		newUnpackCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}

	return nil
}

// load resolves the configuration and the logger before a subcommand runs.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.v, cmd.Flags(), a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.logger.Debug("configuration loaded",
		"precision", cfg.Precision,
		"rounding", cfg.Rounding,
		"families", cfg.Families,
		"scoring", cfg.Scoring,
		"compression", cfg.Compression,
		"config_file", a.v.ConfigFileUsed(),
	)

	return nil
}

// compression returns the configured snapshot compression.
func (a *app) compression() (format.CompressionType, error) {
	return format.ParseCompression(a.cfg.Compression)
}

func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	_, _ = io.WriteString(w, "Error: "+err.Error()+"\n")
}
