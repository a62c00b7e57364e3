package regression

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/ezNNP/curvefit/expression"
)

// Formula is the immutable result of a successful fit.
//
// It holds the family, the rounded coefficients in the order they appear in
// the family's equation (a, b, c, d), and the rendered text. Eval and the
// compiled Expression use the same rounded coefficients, so both produce the
// same values up to floating-point evaluation order.
type Formula struct {
	family Family
	coeffs []float64
	exact  []decimal.Decimal
	text   string
}

func newFormula(family Family, coeffs []decimal.Decimal, text string) *Formula {
	f := &Formula{
		family: family,
		coeffs: make([]float64, len(coeffs)),
		exact:  slices.Clone(coeffs),
		text:   text,
	}
	for i, d := range coeffs {
		f.coeffs[i] = d.InexactFloat64()
	}

	return f
}

// Family returns the model family.
func (f *Formula) Family() Family {
	return f.family
}

// Coefficients returns a copy of the rounded coefficients.
func (f *Formula) Coefficients() []float64 {
	return slices.Clone(f.coeffs)
}

// Decimals returns a copy of the rounded coefficients as exact decimals.
func (f *Formula) Decimals() []decimal.Decimal {
	return slices.Clone(f.exact)
}

// Text returns the rendered formula, e.g. "2*x+3".
func (f *Formula) Text() string {
	return f.text
}

// String implements fmt.Stringer and returns the rendered formula.
func (f *Formula) String() string {
	return f.text
}

// Eval evaluates the formula at x with native arithmetic.
// Outside the family's domain the result is NaN or ±Inf.
func (f *Formula) Eval(x float64) float64 {
	return strategies[f.family].eval(f.coeffs, x)
}

// Expression compiles the rendered text with the expression engine, bound to x.
func (f *Formula) Expression() (*expression.Expression, error) {
	return expression.Build(f.text, expression.DefaultVariable)
}

// Residual returns the sum of squared residuals Σ(y − f(x))² over points.
func (f *Formula) Residual(points []Point) float64 {
	sse := 0.0
	for _, p := range points {
		r := p.Y - f.Eval(p.X)
		sse += r * r
	}

	return sse
}

// evalPolynomial evaluates c[0]*x^n + ... + c[n] with Horner's scheme.
func evalPolynomial(c []float64, x float64) float64 {
	y := 0.0
	for _, v := range c {
		y = y*x + v
	}

	return y
}
