package regression

import (
	"fmt"
	"math"

	"github.com/ezNNP/curvefit/errs"
)

// Point is a single (x, y) sample.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewPoint creates a point.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// PointsFromXY zips two columns into a point set.
func PointsFromXY(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrMismatchedLengths, len(xs), len(ys))
	}

	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}

	return points, nil
}

// ValidatePoints checks that points is non-empty and every coordinate is finite.
func ValidatePoints(points []Point) error {
	if len(points) == 0 {
		return errs.ErrEmptyPoints
	}
	for i, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return fmt.Errorf("%w: index %d %s", errs.ErrInvalidPoint, i, p)
		}
	}

	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
