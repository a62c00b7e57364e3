package regression

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/ezNNP/curvefit/errs"
)

// rounder rounds a raw coefficient with the configured precision and mode.
type rounder func(v float64) (decimal.Decimal, error)

// strategy is the per-family part of the fit pipeline:
// transform → accumulate → solve/round → render, plus native evaluation.
type strategy struct {
	degree    int
	transform func(cfg *FitConfig) transform
	solve     func(s *sums, round rounder) ([]decimal.Decimal, error)
	render    func(c []decimal.Decimal) string
	eval      func(c []float64, x float64) float64
}

func fixed(tf transform) func(*FitConfig) transform {
	return func(*FitConfig) transform { return tf }
}

// strategies is indexed by Family.
var strategies = [...]strategy{
	FamilyLinear: {
		degree:    1,
		transform: fixed(identity),
		solve:     solveLinear,
		render:    renderPolynomial,
		eval:      evalPolynomial,
	},
	FamilyQuadratic: {
		degree:    2,
		transform: fixed(identity),
		solve:     solvePolynomial,
		render:    renderPolynomial,
		eval:      evalPolynomial,
	},
	FamilyCubic: {
		degree:    3,
		transform: fixed(identity),
		solve:     solvePolynomial,
		render:    renderPolynomial,
		eval:      evalPolynomial,
	},
	FamilyPower: {
		degree:    1,
		transform: fixed(logBoth),
		solve:     solvePower,
		render:    renderPower,
		eval: func(c []float64, x float64) float64 {
			return c[0] * math.Pow(x, c[1])
		},
	},
	FamilyHyperbola: {
		degree:    1,
		transform: fixed(reciprocalX),
		solve:     solveShifted,
		render:    renderHyperbola,
		eval: func(c []float64, x float64) float64 {
			return c[0] + c[1]/x
		},
	},
	FamilyIndicative: {
		degree:    1,
		transform: fixed(logY),
		solve:     solveIndicative,
		render:    renderIndicative,
		eval: func(c []float64, x float64) float64 {
			return c[0] * math.Pow(c[1], x)
		},
	},
	FamilyLogarithmic: {
		degree: 1,
		transform: func(cfg *FitConfig) transform {
			if cfg.LogOrdinate == OrdinateX {
				return logXAgainstX
			}

			return logX
		},
		solve:  solveShifted,
		render: renderLogarithmic,
		eval: func(c []float64, x float64) float64 {
			return c[0] + c[1]*math.Log(x)
		},
	},
	FamilyExponential: {
		degree:    1,
		transform: fixed(logY),
		solve:     solveShifted,
		render:    renderExponential,
		eval: func(c []float64, x float64) float64 {
			return math.Exp(c[0] + c[1]*x)
		},
	},
}

func strategyFor(f Family) (*strategy, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownFamily, int(f))
	}

	return &strategies[f], nil
}

// Fit fits a single model family to points by least squares.
//
// Every coefficient is rounded (default: 5 fractional digits toward +∞) before
// it is stored, rendered or used to derive another coefficient, so the formula
// text and Formula.Eval always agree.
//
// Parameters:
//   - points: Non-empty sample set with finite coordinates
//   - family: Model family to fit
//   - opts: Optional settings (precision, rounding, logarithmic ordinate)
//
// Returns:
//   - *Formula: The fitted formula
//   - error: ErrEmptyPoints, ErrInvalidPoint, ErrUnknownFamily, ErrDomainViolation
//     when a sample lies outside the family's domain, or ErrSingularSystem when
//     the normal equations are singular or a coefficient is not finite
//
// Example:
//
//	points := []regression.Point{{X: 1, Y: 5}, {X: 2, Y: 7}, {X: 3, Y: 9}}
//	f, err := regression.Fit(points, regression.FamilyLinear)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(f) // 2*x+3
func Fit(points []Point, family Family, opts ...FitOption) (*Formula, error) {
	cfg, err := newFitConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}

	return fit(points, family, &cfg)
}

// fit runs the pipeline on pre-validated input.
func fit(points []Point, family Family, cfg *FitConfig) (*Formula, error) {
	st, err := strategyFor(family)
	if err != nil {
		return nil, err
	}

	s, err := accumulate(points, st.transform(cfg), st.degree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", family, err)
	}

	round := func(v float64) (decimal.Decimal, error) {
		if !isFinite(v) {
			return decimal.Zero, fmt.Errorf("%w: coefficient is %v", errs.ErrSingularSystem, v)
		}

		return Round(v, cfg.Precision, cfg.Rounding)
	}

	coeffs, err := st.solve(s, round)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", family, err)
	}

	return newFormula(family, coeffs, st.render(coeffs)), nil
}

// roundAll rounds every raw coefficient.
func roundAll(raw []float64, round rounder) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(raw))
	for i, v := range raw {
		d, err := round(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return out, nil
}

// solveLinear uses the closed form of the 2x2 normal equations for y = a*x + b.
func solveLinear(s *sums, round rounder) ([]decimal.Decimal, error) {
	n := s.n()
	sumX, sumX2 := s.pow[1], s.pow[2]
	sumY, sumXY := s.mix[0], s.mix[1]
	den := sumX*sumX - n*sumX2

	a := (sumX*sumY - n*sumXY) / den
	b := (sumX*sumXY - sumX2*sumY) / den

	return roundAll([]float64{a, b}, round)
}

// solvePolynomial solves the quadratic and cubic normal equations.
func solvePolynomial(s *sums, round rounder) ([]decimal.Decimal, error) {
	raw, err := s.solvePolynomial()
	if err != nil {
		return nil, err
	}

	return roundAll(raw, round)
}

// solveShifted fits v = a + b*u. The intercept is derived from the rounded slope.
func solveShifted(s *sums, round rounder) ([]decimal.Decimal, error) {
	b, err := round(s.slope())
	if err != nil {
		return nil, err
	}
	a, err := round(s.intercept(b.InexactFloat64()))
	if err != nil {
		return nil, err
	}

	return []decimal.Decimal{a, b}, nil
}

// solvePower fits ln y = ln a + b*ln x and returns a = e^(mean(ln y) − b*mean(ln x)).
func solvePower(s *sums, round rounder) ([]decimal.Decimal, error) {
	b, err := round(s.slope())
	if err != nil {
		return nil, err
	}
	a, err := round(math.Exp(s.intercept(b.InexactFloat64())))
	if err != nil {
		return nil, err
	}

	return []decimal.Decimal{a, b}, nil
}

// solveIndicative fits ln y = ln a + x*ln b, so b = e^slope and
// a = e^(mean(ln y) − ln(b)*mean(x)) with the rounded b.
func solveIndicative(s *sums, round rounder) ([]decimal.Decimal, error) {
	b, err := round(math.Exp(s.slope()))
	if err != nil {
		return nil, err
	}
	a, err := round(math.Exp(s.intercept(math.Log(b.InexactFloat64()))))
	if err != nil {
		return nil, err
	}

	return []decimal.Decimal{a, b}, nil
}
