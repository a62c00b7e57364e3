package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/ezNNP/curvefit/errs"
)

// SelectBest fits every configured family and returns the formula with the
// smallest sum of squared residuals.
//
// Families are tried in declaration order (or the order given by WithFamilies).
// A family that cannot be fitted, because a sample lies outside its domain or
// its normal equations are singular, is skipped. Ties keep the family tried
// first, and a non-finite residual never wins.
//
// Parameters:
//   - points: Non-empty sample set with finite coordinates
//   - opts: Optional settings
//
// Returns:
//   - *Formula: The best-fitting formula
//   - error: ErrEmptyPoints, ErrInvalidPoint, or ErrNoViableModel when every family failed
//
// Example:
//
//	best, err := regression.SelectBest(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %s\n", best.Family(), best)
func SelectBest(points []Point, opts ...FitOption) (*Formula, error) {
	result, err := Analyze(points, opts...)
	if err != nil {
		return nil, err
	}

	return result.Best.Formula, nil
}

// Analyze fits every configured family and reports all of them.
//
// The returned Result holds every successful fit with its goodness-of-fit
// statistics, the reason each remaining family failed, and the best model as
// chosen by SelectBest.
//
// Parameters:
//   - points: Non-empty sample set with finite coordinates
//   - opts: Optional settings
//
// Returns:
//   - *Result: All candidate models, failures and the best fit
//   - error: ErrEmptyPoints, ErrInvalidPoint, or ErrNoViableModel when every family failed
//
// Example:
//
//	result, err := regression.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range result.Ranked() {
//	    fmt.Printf("%-12s SSE=%.5f R²=%.4f %s\n", m.Family, m.SSE, m.RSquared, m.Formula)
//	}
func Analyze(points []Point, opts ...FitOption) (*Result, error) {
	cfg, err := newFitConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}

	result := &Result{}
	minSSE := math.MaxFloat64
	for _, family := range cfg.Families {
		formula, err := fit(points, family, &cfg)
		if err != nil {
			cfg.Logger.Debug("skipping model family", "family", family, "error", err)
			result.Failures = append(result.Failures, Failure{Family: family, Err: err})

			continue
		}

		model, err := evaluateModel(formula, points, cfg.Scoring)
		if err != nil {
			cfg.Logger.Debug("skipping model family", "family", family, "error", err)
			result.Failures = append(result.Failures, Failure{Family: family, Err: err})

			continue
		}
		result.Models = append(result.Models, model)

		if model.SSE < minSSE {
			minSSE = model.SSE
			result.Best = model
		}
	}

	if result.Best == nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrNoViableModel, result.failureCause())
	}
	cfg.Logger.Debug("selected model family",
		"family", result.Best.Family, "formula", result.Best.Formula.Text(), "sse", result.Best.SSE)

	return result, nil
}

// evaluateModel scores formula over points with the selected evaluator.
func evaluateModel(formula *Formula, points []Point, scoring Scoring) (*Model, error) {
	eval := formula.Eval
	if scoring == ScoreExpression {
		ex, err := formula.Expression()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", formula.Family(), err)
		}
		eval = func(x float64) float64 {
			y, err := ex.Evaluate(x)
			if err != nil {
				return math.NaN()
			}

			return y
		}
	}

	n := len(points)
	observed := make([]float64, n)
	predicted := make([]float64, n)
	sse := 0.0
	for i, p := range points {
		observed[i] = p.Y
		predicted[i] = eval(p.X)
		r := p.Y - predicted[i]
		sse += r * r
	}

	return &Model{
		Family:   formula.Family(),
		Formula:  formula,
		SSE:      sse,
		RMSE:     math.Sqrt(sse / float64(n)),
		RSquared: rSquared(predicted, observed),
	}, nil
}

// rSquared returns the coefficient of determination, or NaN when it is undefined
// (constant observations or non-finite predictions).
func rSquared(predicted, observed []float64) float64 {
	if len(observed) < 2 {
		return math.NaN()
	}
	for _, v := range predicted {
		if !isFinite(v) {
			return math.NaN()
		}
	}
	if stat.Variance(observed, nil) == 0 {
		return math.NaN()
	}

	return stat.RSquaredFrom(predicted, observed, nil)
}

// Model is a fitted family with its goodness-of-fit statistics.
type Model struct {
	// Family is the model family.
	Family Family
	// Formula is the fitted formula.
	Formula *Formula
	// SSE is the sum of squared residuals, the selection score.
	SSE float64
	// RMSE is the root mean square error.
	RMSE float64
	// RSquared is the coefficient of determination; NaN when undefined.
	RSquared float64
}

// String returns a summary of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Family: %s, SSE: %.6g, RMSE: %.6g, R²: %.4f, Formula: %s}",
		m.Family, m.SSE, m.RMSE, m.RSquared, m.Formula)
}

// Failure records why a family could not be fitted.
type Failure struct {
	Family Family
	Err    error
}

// Result is the outcome of Analyze.
type Result struct {
	// Best is the model with the smallest SSE; the earliest family wins ties.
	Best *Model
	// Models holds the successful fits in the order they were tried.
	Models []*Model
	// Failures holds the families that were skipped and why.
	Failures []Failure
}

// Ranked returns the models ordered by SSE, best first. Ties and non-finite
// scores keep their original order, non-finite scores last.
func (r *Result) Ranked() []*Model {
	ranked := slices.Clone(r.Models)
	slices.SortStableFunc(ranked, func(a, b *Model) int {
		aOK, bOK := isFinite(a.SSE), isFinite(b.SSE)
		switch {
		case aOK && !bOK:
			return -1
		case !aOK && bOK:
			return 1
		case !aOK && !bOK:
			return 0
		case a.SSE < b.SSE:
			return -1
		case a.SSE > b.SSE:
			return 1
		default:
			return 0
		}
	})

	return ranked
}

// Model returns the model fitted for family, if it succeeded.
func (r *Result) Model(family Family) (*Model, bool) {
	for _, m := range r.Models {
		if m.Family == family {
			return m, true
		}
	}

	return nil, false
}

// String returns a summary of the result.
func (r *Result) String() string {
	if r.Best == nil {
		return "Result{Best: nil}"
	}

	return fmt.Sprintf("Result{Best: %s, Models: %d, Failures: %d}", r.Best, len(r.Models), len(r.Failures))
}

func (r *Result) failureCause() error {
	if len(r.Failures) == 0 {
		return errors.New("all residuals are non-finite")
	}

	causes := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		causes[i] = f.Err
	}

	return errors.Join(causes...)
}
