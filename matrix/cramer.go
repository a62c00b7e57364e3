package matrix

import (
	"fmt"

	"github.com/ezNNP/curvefit/errs"
)

// Cramer solves a·x = rhs with Cramer's rule.
//
// The determinant d of a is computed once; each unknown x[j] is the determinant
// of a private copy of a with column j replaced by rhs, divided by d. The input
// matrix and vector are left untouched.
//
// Parameters:
//   - a: Square coefficient matrix
//   - rhs: Right-hand side, len(rhs) == len(a)
//
// Returns:
//   - []float64: Solution vector
//   - error: ErrNonSquareMatrix, ErrDimensionMismatch, or ErrSingularSystem when d == 0
//
// The quotients are returned as computed. A nearly singular matrix may still
// produce huge or non-finite values, which the caller is expected to reject.
func Cramer(a [][]float64, rhs []float64) ([]float64, error) {
	if err := Validate(a); err != nil {
		return nil, err
	}
	n := len(a)
	if len(rhs) != n {
		return nil, fmt.Errorf("%w: matrix is %dx%d, rhs has %d entries", errs.ErrDimensionMismatch, n, n, len(rhs))
	}

	d := Determinant(a)
	if d == 0 {
		return nil, errs.ErrSingularSystem
	}

	x := make([]float64, n)
	for j := range n {
		x[j] = Determinant(replaceColumn(a, j, rhs)) / d
	}

	return x, nil
}

// replaceColumn returns a copy of a whose column col is set to v.
func replaceColumn(a [][]float64, col int, v []float64) [][]float64 {
	c := Clone(a)
	for i := range c {
		c[i][col] = v[i]
	}

	return c
}
