package regression

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/internal/options"
)

// Scoring selects how the selector evaluates fitted formulas at the samples.
type Scoring int

const (
	// ScoreNative evaluates formulas with native arithmetic on the rounded coefficients.
	ScoreNative Scoring = iota
	// ScoreExpression evaluates the rendered formula text through the expression engine.
	ScoreExpression
)

// String returns the string representation of the scoring mode.
func (s Scoring) String() string {
	switch s {
	case ScoreNative:
		return "native"
	case ScoreExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// ParseScoring returns the Scoring for "native" or "expression".
func ParseScoring(name string) (Scoring, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "native", "":
		return ScoreNative, nil
	case "expression", "expr":
		return ScoreExpression, nil
	default:
		return Scoring(-1), fmt.Errorf("%w: %q", errs.ErrInvalidScoring, name)
	}
}

// Ordinate selects which coordinate the logarithmic family regresses against ln(x).
type Ordinate int

const (
	// OrdinateY fits y = a + b*ln(x) against the sample y values.
	OrdinateY Ordinate = iota
	// OrdinateX regresses the sample x values instead of y. It reproduces the
	// output of the desktop tool this package was derived from and exists only
	// for comparing results with it.
	OrdinateX
)

// FitConfig holds the fitter and selector settings.
type FitConfig struct {
	// Precision is the number of fractional digits kept in every coefficient.
	Precision int32
	// Rounding is the rounding direction applied to coefficients.
	Rounding RoundingMode
	// Families lists the families the selector tries, in order.
	Families []Family
	// Scoring selects the evaluator used for residuals.
	Scoring Scoring
	// LogOrdinate selects the regressand of the logarithmic family.
	LogOrdinate Ordinate
	// Logger receives debug records about skipped families.
	Logger *slog.Logger
}

// defaultFitConfig returns 5 digits, ceiling rounding, all families, native scoring.
func defaultFitConfig() FitConfig {
	return FitConfig{
		Precision:   DefaultPrecision,
		Rounding:    RoundCeiling,
		Families:    Families(),
		Scoring:     ScoreNative,
		LogOrdinate: OrdinateY,
		Logger:      slog.New(slog.DiscardHandler),
	}
}

// newFitConfig applies opts over the defaults.
func newFitConfig(opts ...FitOption) (FitConfig, error) {
	cfg := defaultFitConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return FitConfig{}, err
	}

	return cfg, nil
}

// FitOption is a functional option for FitConfig.
type FitOption = options.Option[*FitConfig]

// WithPrecision sets the number of fractional digits kept in coefficients.
func WithPrecision(places int32) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if places < 0 || places > MaxPrecision {
			return fmt.Errorf("%w: %d (allowed 0-%d)", errs.ErrInvalidPrecision, places, MaxPrecision)
		}
		cfg.Precision = places

		return nil
	})
}

// WithRounding sets the rounding mode applied to coefficients.
func WithRounding(mode RoundingMode) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if _, ok := roundingModeNames[mode]; !ok {
			return fmt.Errorf("%w: %d", errs.ErrInvalidRoundingMode, int(mode))
		}
		cfg.Rounding = mode

		return nil
	})
}

// WithFamilies restricts the selector to the given families, tried in the given order.
func WithFamilies(families ...Family) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if len(families) == 0 {
			return errs.ErrNoFamilies
		}
		for _, f := range families {
			if !f.Valid() {
				return fmt.Errorf("%w: %d", errs.ErrUnknownFamily, int(f))
			}
		}
		cfg.Families = append([]Family(nil), families...)

		return nil
	})
}

// WithScoring sets the evaluator used to compute residuals.
func WithScoring(s Scoring) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if s != ScoreNative && s != ScoreExpression {
			return fmt.Errorf("%w: %d", errs.ErrInvalidScoring, int(s))
		}
		cfg.Scoring = s

		return nil
	})
}

// WithExpressionScoring scores fits by evaluating their rendered text.
func WithExpressionScoring() FitOption {
	return WithScoring(ScoreExpression)
}

// WithLogarithmicOrdinate selects the regressand of the logarithmic family.
func WithLogarithmicOrdinate(o Ordinate) FitOption {
	return options.New(func(cfg *FitConfig) error {
		if o != OrdinateY && o != OrdinateX {
			return fmt.Errorf("%w: %d", errs.ErrInvalidOrdinate, int(o))
		}
		cfg.LogOrdinate = o

		return nil
	})
}

// WithLogger sets the logger. A nil logger discards records.
func WithLogger(logger *slog.Logger) FitOption {
	return options.NoError(func(cfg *FitConfig) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		cfg.Logger = logger
	})
}
