package regression

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ezNNP/curvefit/errs"
)

// Family identifies one of the parametric model families the fitter supports.
//
// The declaration order is significant: the selector tries families in this
// order and keeps the earliest one when two fits score the same.
type Family int

const (
	// FamilyLinear is y = a*x + b.
	FamilyLinear Family = iota
	// FamilyQuadratic is y = a*x^2 + b*x + c.
	FamilyQuadratic
	// FamilyCubic is y = a*x^3 + b*x^2 + c*x + d.
	FamilyCubic
	// FamilyPower is y = a * x^b.
	FamilyPower
	// FamilyHyperbola is y = a + b/x.
	FamilyHyperbola
	// FamilyIndicative is y = a * b^x.
	FamilyIndicative
	// FamilyLogarithmic is y = a + b*ln(x).
	FamilyLogarithmic
	// FamilyExponential is y = e^(a + b*x).
	FamilyExponential
)

// familyNames maps Family to its string representation.
var familyNames = map[Family]string{
	FamilyLinear:      "linear",
	FamilyQuadratic:   "quadratic",
	FamilyCubic:       "cubic",
	FamilyPower:       "power",
	FamilyHyperbola:   "hyperbola",
	FamilyIndicative:  "indicative",
	FamilyLogarithmic: "logarithmic",
	FamilyExponential: "exponential",
}

// familyFromString maps names and common aliases to Family.
var familyFromString = map[string]Family{
	"linear":      FamilyLinear,
	"quadratic":   FamilyQuadratic,
	"square":      FamilyQuadratic,
	"cubic":       FamilyCubic,
	"cube":        FamilyCubic,
	"power":       FamilyPower,
	"hyperbola":   FamilyHyperbola,
	"hyperbolic":  FamilyHyperbola,
	"indicative":  FamilyIndicative,
	"logarithmic": FamilyLogarithmic,
	"log":         FamilyLogarithmic,
	"exponential": FamilyExponential,
	"exp":         FamilyExponential,
}

var familyEquations = map[Family]string{
	FamilyLinear:      "y = a*x + b",
	FamilyQuadratic:   "y = a*x^2 + b*x + c",
	FamilyCubic:       "y = a*x^3 + b*x^2 + c*x + d",
	FamilyPower:       "y = a * x^b",
	FamilyHyperbola:   "y = a + b/x",
	FamilyIndicative:  "y = a * b^x",
	FamilyLogarithmic: "y = a + b*ln(x)",
	FamilyExponential: "y = e^(a + b*x)",
}

// String returns the string representation of the family.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether f is one of the declared families.
func (f Family) Valid() bool {
	_, ok := familyNames[f]
	return ok
}

// Parameters returns the number of coefficients the family solves for.
func (f Family) Parameters() int {
	switch f {
	case FamilyQuadratic:
		return 3
	case FamilyCubic:
		return 4
	case FamilyLinear, FamilyPower, FamilyHyperbola, FamilyIndicative, FamilyLogarithmic, FamilyExponential:
		return 2
	default:
		return 0
	}
}

// Equation returns the symbolic model equation, e.g. "y = a + b/x".
func (f Family) Equation() string {
	return familyEquations[f]
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownFamily, int(f))
	}

	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := FamilyFromString(string(text))
	if err != nil {
		return err
	}
	*f = parsed

	return nil
}

// FamilyFromString returns the Family for a case-insensitive name or alias.
func FamilyFromString(name string) (Family, error) {
	if f, ok := familyFromString[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}

	supported := make([]string, 0, len(familyNames))
	for _, n := range familyNames {
		supported = append(supported, n)
	}
	slices.Sort(supported)

	return Family(-1), fmt.Errorf("%w: %q (supported: %s)", errs.ErrUnknownFamily, name, strings.Join(supported, ", "))
}

// Families returns every family in declaration order.
func Families() []Family {
	return []Family{
		FamilyLinear,
		FamilyQuadratic,
		FamilyCubic,
		FamilyPower,
		FamilyHyperbola,
		FamilyIndicative,
		FamilyLogarithmic,
		FamilyExponential,
	}
}
