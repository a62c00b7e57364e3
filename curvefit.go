// Package curvefit fits parametric curves to 2D samples by least squares.
//
// Eight model families are supported: linear, quadratic, cubic, power,
// hyperbola, indicative (a*b^x), logarithmic and exponential (e^(a+b*x)). Each
// family is fitted by solving its normal equations with Cramer's rule, the
// coefficients are rounded to a fixed number of fractional digits, and the
// result is rendered as formula text that the expression package can evaluate.
//
// # Core Features
//
//   - Exact cofactor determinants and Cramer's rule for systems up to 4×4
//   - Coefficients rounded to 5 fractional digits toward +∞ by default
//   - Selection of the family with the smallest sum of squared residuals
//   - Per-family failure reporting (domain violations, singular systems)
//   - Compact, checksummed point-set snapshots with optional compression
//
// # Basic Usage
//
// Fitting one family:
//
//	import "github.com/ezNNP/curvefit"
//
//	points := []regression.Point{{X: 1, Y: 5}, {X: 2, Y: 7}, {X: 3, Y: 9}}
//	formula, _ := curvefit.Fit(points, regression.FamilyLinear)
//	fmt.Println(formula) // 2*x+3
//
// Selecting the best family:
//
//	best, err := curvefit.SelectBest(points)
//	if errors.Is(err, errs.ErrNoViableModel) {
//	    // no family could be fitted
//	}
//
// Evaluating a rendered formula:
//
//	y, _ := curvefit.Evaluate("e^(0.5+0.25 * x)", 2)
//
// Storing samples:
//
//	data, _ := curvefit.EncodeCompact(points)
//	restored, _ := curvefit.Decode(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the regression,
// expression and dataset packages. For fine-grained control, use those
// packages directly.
package curvefit

import (
	"github.com/ezNNP/curvefit/dataset"
	"github.com/ezNNP/curvefit/expression"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/regression"
)

var defaultCompactOptions = []dataset.Option{
	dataset.WithLittleEndian(),
	dataset.WithEncoding(format.TypeGorilla),
	dataset.WithCompression(format.CompressionZstd),
}

// Fit fits a single model family to points.
//
// Parameters:
//   - points: Non-empty sample set with finite coordinates
//   - family: Model family to fit
//   - opts: Optional settings (see regression.FitOption)
//
// Returns:
//   - *regression.Formula: The rounded, rendered formula
//   - error: ErrEmptyPoints, ErrInvalidPoint, ErrDomainViolation or ErrSingularSystem
//
// Available options:
//   - regression.WithPrecision(places)
//   - regression.WithRounding(regression.RoundCeiling|RoundFloor|RoundHalfUp|RoundHalfEven|RoundTruncate)
//   - regression.WithLogarithmicOrdinate(regression.OrdinateY|OrdinateX)
//
// Example:
//
//	formula, err := curvefit.Fit(points, regression.FamilyPower,
//	    regression.WithPrecision(3),
//	)
func Fit(points []regression.Point, family regression.Family, opts ...regression.FitOption) (*regression.Formula, error) {
	return regression.Fit(points, family, opts...)
}

// FitXY fits a single model family to two coordinate columns.
//
// Returns ErrMismatchedLengths when xs and ys differ in length, otherwise the
// same as Fit.
func FitXY(xs, ys []float64, family regression.Family, opts ...regression.FitOption) (*regression.Formula, error) {
	points, err := regression.PointsFromXY(xs, ys)
	if err != nil {
		return nil, err
	}

	return regression.Fit(points, family, opts...)
}

// SelectBest fits every family and returns the formula with the smallest sum
// of squared residuals. Families that cannot be fitted are skipped; the
// earliest family wins ties.
//
// Parameters:
//   - points: Non-empty sample set with finite coordinates
//   - opts: Optional settings, e.g. regression.WithFamilies or regression.WithExpressionScoring
//
// Returns:
//   - *regression.Formula: The best formula
//   - error: ErrEmptyPoints, ErrInvalidPoint or ErrNoViableModel
//
// Example:
//
//	best, err := curvefit.SelectBest(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %s\n", best.Family(), best)
func SelectBest(points []regression.Point, opts ...regression.FitOption) (*regression.Formula, error) {
	return regression.SelectBest(points, opts...)
}

// SelectBestXY is SelectBest for two coordinate columns.
func SelectBestXY(xs, ys []float64, opts ...regression.FitOption) (*regression.Formula, error) {
	points, err := regression.PointsFromXY(xs, ys)
	if err != nil {
		return nil, err
	}

	return regression.SelectBest(points, opts...)
}

// Analyze fits every family and reports all candidates with their SSE, RMSE
// and R², the families that failed and why, and the best model.
//
// Example:
//
//	result, err := curvefit.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range result.Ranked() {
//	    fmt.Printf("%-12s %.5f %s\n", m.Family, m.SSE, m.Formula)
//	}
func Analyze(points []regression.Point, opts ...regression.FitOption) (*regression.Result, error) {
	return regression.Analyze(points, opts...)
}

// Evaluate evaluates formula text at x, with x as the independent variable.
// It accepts every formula rendered by Fit.
func Evaluate(formula string, x float64) (float64, error) {
	ex, err := expression.Build(formula, expression.DefaultVariable)
	if err != nil {
		return 0, err
	}

	return ex.Evaluate(x)
}

// Encode serializes points into a snapshot.
//
// Available options:
//   - dataset.WithLittleEndian() / dataset.WithBigEndian()
//   - dataset.WithEncoding(format.TypeRaw|TypeGorilla)
//   - dataset.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
func Encode(points []regression.Point, opts ...dataset.Option) ([]byte, error) {
	return dataset.Encode(points, opts...)
}

// EncodeCompact serializes points with the recommended compact settings:
//   - Little-endian byte order
//   - Gorilla column encoding (small for regular grids and slowly changing values)
//   - Zstd compression
//
// Additional options are applied after the defaults and override them.
func EncodeCompact(points []regression.Point, opts ...dataset.Option) ([]byte, error) {
	allOpts := append(append([]dataset.Option{}, defaultCompactOptions...), opts...)
	return dataset.Encode(points, allOpts...)
}

// Decode restores the points of a snapshot, verifying its checksum.
func Decode(data []byte) ([]regression.Point, error) {
	return dataset.Decode(data)
}
