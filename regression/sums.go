package regression

import (
	"fmt"
	"math"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/matrix"
)

// transform maps a sample to the (u, v) pair a family regresses on.
type transform func(p Point) (u, v float64, err error)

func identity(p Point) (float64, float64, error) {
	return p.X, p.Y, nil
}

// sums holds the power sums of a transformed sample set:
// pow[k] = Σu^k for k in [0, 2*degree] and mix[k] = Σu^k·v for k in [0, degree].
// pow[0] is the sample count.
type sums struct {
	degree int
	pow    []float64
	mix    []float64
}

// accumulate computes the power sums needed for a polynomial of the given degree in u.
func accumulate(points []Point, tf transform, degree int) (*sums, error) {
	s := &sums{
		degree: degree,
		pow:    make([]float64, 2*degree+1),
		mix:    make([]float64, degree+1),
	}

	for i, p := range points {
		u, v, err := tf(p)
		if err != nil {
			return nil, fmt.Errorf("%w: index %d %s", err, i, p)
		}

		uk := 1.0
		for k := range s.pow {
			s.pow[k] += uk
			if k <= degree {
				s.mix[k] += uk * v
			}
			uk *= u
		}
	}

	return s, nil
}

func (s *sums) n() float64 {
	return s.pow[0]
}

// slope returns the least-squares slope of v on u:
// (nΣuv − ΣuΣv) / (nΣu² − (Σu)²).
func (s *sums) slope() float64 {
	n := s.n()
	return (n*s.mix[1] - s.pow[1]*s.mix[0]) / (n*s.pow[2] - s.pow[1]*s.pow[1])
}

// intercept returns mean(v) − b·mean(u) for a given slope b.
func (s *sums) intercept(b float64) float64 {
	n := s.n()
	return s.mix[0]/n - b/n*s.pow[1]
}

// normalEquations assembles the polynomial normal equations with the highest
// power first: row k, column j holds Σu^(k+degree−j) and the right-hand side
// of row k is Σu^k·v. The unknowns come out in descending power order.
func (s *sums) normalEquations() ([][]float64, []float64) {
	d := s.degree
	a := make([][]float64, d+1)
	for k := range a {
		a[k] = make([]float64, d+1)
		for j := range a[k] {
			a[k][j] = s.pow[k+d-j]
		}
	}

	return a, append([]float64(nil), s.mix...)
}

// solvePolynomial solves the normal equations with Cramer's rule.
func (s *sums) solvePolynomial() ([]float64, error) {
	a, rhs := s.normalEquations()
	return matrix.Cramer(a, rhs)
}

// positive guards the arguments of ln.
func positive(name string, v float64) error {
	if v <= 0 {
		return fmt.Errorf("%w: ln(%s) needs %s > 0, got %g", errs.ErrDomainViolation, name, name, v)
	}

	return nil
}

func logBoth(p Point) (float64, float64, error) {
	if err := positive("x", p.X); err != nil {
		return 0, 0, err
	}
	if err := positive("y", p.Y); err != nil {
		return 0, 0, err
	}

	return math.Log(p.X), math.Log(p.Y), nil
}

func logY(p Point) (float64, float64, error) {
	if err := positive("y", p.Y); err != nil {
		return 0, 0, err
	}

	return p.X, math.Log(p.Y), nil
}

func logX(p Point) (float64, float64, error) {
	if err := positive("x", p.X); err != nil {
		return 0, 0, err
	}

	return math.Log(p.X), p.Y, nil
}

// logXAgainstX regresses x on ln(x); see OrdinateX.
func logXAgainstX(p Point) (float64, float64, error) {
	if err := positive("x", p.X); err != nil {
		return 0, 0, err
	}

	return math.Log(p.X), p.X, nil
}

func reciprocalX(p Point) (float64, float64, error) {
	if p.X == 0 {
		return 0, 0, fmt.Errorf("%w: 1/x needs x != 0", errs.ErrDomainViolation)
	}

	return 1 / p.X, p.Y, nil
}
