// Package errs defines the sentinel errors shared by all curvefit packages.
//
// Every error is a package-level value so callers can match it with errors.Is,
// even after it has been wrapped with context by the package that returned it:
//
//	formula, err := regression.Fit(points, regression.FamilyPower)
//	if errors.Is(err, errs.ErrDomainViolation) {
//	    // the power model cannot be fitted to non-positive samples
//	}
//
// Only ErrEmptyPoints, ErrInvalidPoint and ErrNoViableModel reach the caller of
// the model selector in normal operation; the per-family errors
// (ErrDomainViolation, ErrSingularSystem) are collected and skipped.
package errs

import "errors"

// Input validation.
var (
	// ErrEmptyPoints is returned when a fit or snapshot is requested for zero points.
	ErrEmptyPoints = errors.New("curvefit: point set is empty")
	// ErrInvalidPoint is returned when a sample coordinate is NaN or infinite.
	ErrInvalidPoint = errors.New("curvefit: point has a non-finite coordinate")
	// ErrUnknownFamily is returned for a model family outside the closed enumeration.
	ErrUnknownFamily = errors.New("curvefit: unknown model family")
	// ErrNoFamilies is returned when the family filter selects nothing.
	ErrNoFamilies = errors.New("curvefit: no model families selected")
	// ErrInvalidPrecision is returned for a rounding precision outside [0, 15].
	ErrInvalidPrecision = errors.New("curvefit: invalid rounding precision")
	// ErrInvalidRoundingMode is returned for an unknown rounding mode.
	ErrInvalidRoundingMode = errors.New("curvefit: invalid rounding mode")
	// ErrInvalidScoring is returned for an unknown scoring mode.
	ErrInvalidScoring = errors.New("curvefit: invalid scoring mode")
	// ErrInvalidOrdinate is returned for an unknown logarithmic ordinate.
	ErrInvalidOrdinate = errors.New("curvefit: invalid logarithmic ordinate")
	// ErrNonFinite is returned when a non-finite value is rounded.
	ErrNonFinite = errors.New("curvefit: value is not finite")
	// ErrMismatchedLengths is returned when x and y columns differ in length.
	ErrMismatchedLengths = errors.New("curvefit: x and y lengths differ")
)

// Fitting.
var (
	// ErrDomainViolation is returned when a family's transform (ln, reciprocal)
	// is undefined for at least one sample.
	ErrDomainViolation = errors.New("curvefit: sample outside model domain")
	// ErrSingularSystem is returned when the normal equations are singular or
	// a solved coefficient is not finite.
	ErrSingularSystem = errors.New("curvefit: singular normal equations")
	// ErrNoViableModel is returned by the selector when every family failed.
	ErrNoViableModel = errors.New("curvefit: no viable model")
)

// Linear algebra.
var (
	// ErrNonSquareMatrix is returned when a square matrix is required.
	ErrNonSquareMatrix = errors.New("curvefit: matrix is not square")
	// ErrDimensionMismatch is returned when the right-hand side does not match the matrix size.
	ErrDimensionMismatch = errors.New("curvefit: dimension mismatch")
)

// Snapshots and point files.
var (
	ErrInvalidMagicNumber     = errors.New("curvefit: invalid snapshot magic number")
	ErrUnsupportedVersion     = errors.New("curvefit: unsupported snapshot version")
	ErrInvalidHeaderSize      = errors.New("curvefit: invalid snapshot header size")
	ErrInvalidHeaderFlags     = errors.New("curvefit: invalid snapshot header flags")
	ErrInvalidPayload         = errors.New("curvefit: invalid snapshot payload")
	ErrChecksumMismatch       = errors.New("curvefit: snapshot checksum mismatch")
	ErrInvalidCompression     = errors.New("curvefit: invalid compression type")
	ErrUnsupportedInputFormat = errors.New("curvefit: unsupported input format")
	ErrMalformedRecord        = errors.New("curvefit: malformed point record")
	ErrInvalidSource          = errors.New("curvefit: invalid point source name")
)
