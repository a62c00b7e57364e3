// Package matrix solves the small normal-equation systems used by the model fitter.
//
// Determinants are computed by recursive cofactor expansion along the first row
// and systems are solved with Cramer's rule. There is no pivoting and no attempt
// at large-matrix robustness: the fitter never builds anything larger than 4×4,
// where the expansion costs at most a few dozen recursive calls.
//
// All functions are pure. Input matrices are never modified.
package matrix

import (
	"fmt"

	"github.com/ezNNP/curvefit/errs"
)

// Determinant returns the determinant of the square matrix a.
//
// The 1×1 and 2×2 cases are computed directly. Larger matrices are expanded
// along row 0: for each column i the minor drops row 0 and column i, and the
// term a[0][i]·det(minor) is accumulated with sign (−1)^i.
//
// An empty matrix has determinant 1. The caller must pass a square matrix;
// use Validate first when the shape is not guaranteed.
func Determinant(a [][]float64) float64 {
	n := len(a)
	switch n {
	case 0:
		return 1
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	sum := 0.0
	sign := 1.0
	for i := range n {
		sum += sign * a[0][i] * Determinant(minor(a, i))
		sign = -sign
	}

	return sum
}

// minor returns a fresh (n-1)×(n-1) matrix without row 0 and column col.
func minor(a [][]float64, col int) [][]float64 {
	n := len(a)
	m := make([][]float64, n-1)
	for row := 1; row < n; row++ {
		r := make([]float64, 0, n-1)
		r = append(r, a[row][:col]...)
		r = append(r, a[row][col+1:]...)
		m[row-1] = r
	}

	return m
}

// Validate reports whether a is a well-formed square matrix.
func Validate(a [][]float64) error {
	n := len(a)
	for i, row := range a {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", errs.ErrNonSquareMatrix, i, len(row), n)
		}
	}

	return nil
}

// Clone returns a deep copy of a.
func Clone(a [][]float64) [][]float64 {
	c := make([][]float64, len(a))
	for i, row := range a {
		c[i] = append([]float64(nil), row...)
	}

	return c
}
