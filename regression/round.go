package regression

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ezNNP/curvefit/errs"
)

// DefaultPrecision is the number of fractional digits kept in coefficients.
const DefaultPrecision int32 = 5

// MaxPrecision is the largest supported precision.
const MaxPrecision int32 = 15

// RoundingMode selects how coefficients are rounded to the configured precision.
type RoundingMode int

const (
	// RoundCeiling rounds toward positive infinity. This is the default.
	RoundCeiling RoundingMode = iota
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundHalfUp rounds to nearest, ties away from zero.
	RoundHalfUp
	// RoundHalfEven rounds to nearest, ties to even (banker's rounding).
	RoundHalfEven
	// RoundTruncate rounds toward zero.
	RoundTruncate
)

var roundingModeNames = map[RoundingMode]string{
	RoundCeiling:  "ceiling",
	RoundFloor:    "floor",
	RoundHalfUp:   "half-up",
	RoundHalfEven: "half-even",
	RoundTruncate: "truncate",
}

// String returns the string representation of the rounding mode.
func (m RoundingMode) String() string {
	if name, ok := roundingModeNames[m]; ok {
		return name
	}

	return "unknown"
}

// ParseRoundingMode returns the RoundingMode for a case-insensitive name.
func ParseRoundingMode(name string) (RoundingMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range roundingModeNames {
		if n == name {
			return m, nil
		}
	}

	return RoundingMode(-1), fmt.Errorf("%w: %q", errs.ErrInvalidRoundingMode, name)
}

// Round rounds v to places fractional digits using mode.
//
// The value is converted with the shortest decimal representation that
// round-trips to v, so 0.1 is treated as exactly 0.1. The result does not
// depend on the host locale and renders with '.' as the decimal separator.
//
// Parameters:
//   - v: Value to round, must be finite
//   - places: Fractional digits to keep, 0 to MaxPrecision
//   - mode: Rounding direction
//
// Returns:
//   - decimal.Decimal: Rounded value
//   - error: ErrNonFinite, ErrInvalidPrecision or ErrInvalidRoundingMode
//
// Example:
//
//	d, _ := regression.Round(1.234561, 5, regression.RoundCeiling)
//	fmt.Println(d) // 1.23457
func Round(v float64, places int32, mode RoundingMode) (decimal.Decimal, error) {
	if !isFinite(v) {
		return decimal.Zero, fmt.Errorf("%w: %v", errs.ErrNonFinite, v)
	}
	if places < 0 || places > MaxPrecision {
		return decimal.Zero, fmt.Errorf("%w: %d", errs.ErrInvalidPrecision, places)
	}

	d := decimal.NewFromFloat(v)
	switch mode {
	case RoundCeiling:
		return d.RoundCeil(places), nil
	case RoundFloor:
		return d.RoundFloor(places), nil
	case RoundHalfUp:
		return d.Round(places), nil
	case RoundHalfEven:
		return d.RoundBank(places), nil
	case RoundTruncate:
		return d.Truncate(places), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %d", errs.ErrInvalidRoundingMode, int(mode))
	}
}

// RoundFloat is Round returning a float64.
func RoundFloat(v float64, places int32, mode RoundingMode) (float64, error) {
	d, err := Round(v, places, mode)
	if err != nil {
		return 0, err
	}

	return d.InexactFloat64(), nil
}
