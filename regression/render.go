package regression

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Rendered formulas are plain arithmetic text for the expression engine.
// Numbers never use exponent notation; a negative coefficient keeps its sign
// attached and replaces the joining '+'.

// maxIntLiteral is the largest whole number the expression engine parses as an
// integer literal.
var maxIntLiteral = decimal.NewFromInt(math.MaxInt64)

// literal renders d as a number literal. Whole numbers beyond the int64 range
// get a ".0" suffix so they parse as floats.
func literal(d decimal.Decimal) string {
	if d.IsInteger() && d.Abs().GreaterThan(maxIntLiteral) {
		return d.StringFixed(1)
	}

	return d.String()
}

// signed prefixes non-negative values with '+'.
func signed(d decimal.Decimal) string {
	if d.Sign() < 0 {
		return literal(d)
	}

	return "+" + literal(d)
}

// renderPolynomial renders coefficients in descending power order,
// e.g. "2*x^2-3*x+1" or "2*x+3".
func renderPolynomial(c []decimal.Decimal) string {
	var sb strings.Builder
	degree := len(c) - 1
	for i, d := range c {
		if i == 0 {
			sb.WriteString(literal(d))
		} else {
			sb.WriteString(signed(d))
		}

		switch p := degree - i; p {
		case 0:
		case 1:
			sb.WriteString("*x")
		default:
			sb.WriteString("*x^")
			sb.WriteString(strconv.Itoa(p))
		}
	}

	return sb.String()
}

// renderPower renders "a * x ^ b".
func renderPower(c []decimal.Decimal) string {
	return literal(c[0]) + " * x ^ " + literal(c[1])
}

// renderHyperbola renders "a + b/x", or "a -b/x" for negative b.
func renderHyperbola(c []decimal.Decimal) string {
	if c[1].Sign() < 0 {
		return literal(c[0]) + " " + literal(c[1]) + "/x"
	}

	return literal(c[0]) + " + " + literal(c[1]) + "/x"
}

// renderIndicative renders "a * b ^ x".
func renderIndicative(c []decimal.Decimal) string {
	return literal(c[0]) + " * " + literal(c[1]) + " ^ x"
}

// renderLogarithmic renders "a+b * log(x)".
func renderLogarithmic(c []decimal.Decimal) string {
	return literal(c[0]) + signed(c[1]) + " * log(x)"
}

// renderExponential renders "e^(a+b * x)".
func renderExponential(c []decimal.Decimal) string {
	return "e^(" + literal(c[0]) + signed(c[1]) + " * x)"
}
