// Package regression fits parametric models to 2D samples by least squares and
// selects the model that reproduces the samples best.
//
// # Key Features
//
//   - **Eight Model Families**: linear, quadratic, cubic, power, hyperbola,
//     indicative (a*b^x), logarithmic and exponential (e^(a+b*x))
//   - **Exact Normal Equations**: polynomial systems up to 4×4 are solved with
//     Cramer's rule over cofactor-expanded determinants (package matrix)
//   - **Controlled Rounding**: coefficients are rounded to a fixed number of
//     fractional digits (default 5, toward +∞) before they are rendered or used
//   - **Renderable Formulas**: every fit renders to text that the expression
//     package can compile, e.g. "2*x^2-3*x+1" or "e^(0.5+1.2 * x)"
//   - **Robust Selection**: families whose fit fails are skipped, the rest are
//     ranked by the sum of squared residuals
//
// # Usage Patterns
//
// ## Fitting One Family
//
//	points := []regression.Point{{X: 1, Y: 5}, {X: 2, Y: 7}, {X: 3, Y: 9}}
//	formula, err := regression.Fit(points, regression.FamilyLinear)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(formula)          // 2*x+3
//	fmt.Println(formula.Eval(10)) // 23
//
// ## Selecting the Best Family
//
//	best, err := regression.SelectBest(points)
//	if errors.Is(err, errs.ErrNoViableModel) {
//	    // every family failed
//	}
//
// ## Comparing All Families
//
//	result, err := regression.Analyze(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, m := range result.Ranked() {
//	    fmt.Printf("%s: SSE=%.5f, Formula=%s\n", m.Family, m.SSE, m.Formula)
//	}
//	for _, f := range result.Failures {
//	    fmt.Printf("%s skipped: %v\n", f.Family, f.Err)
//	}
//
// # Model Families
//
//	linear       y = a*x + b            closed-form 2×2 solution
//	quadratic    y = a*x^2 + b*x + c    3×3 normal equations
//	cubic        y = a*x^3 + ... + d    4×4 normal equations
//	power        y = a * x^b            ln y on ln x        (x > 0, y > 0)
//	hyperbola    y = a + b/x            y on 1/x            (x ≠ 0)
//	indicative   y = a * b^x            ln y on x           (y > 0)
//	logarithmic  y = a + b*ln(x)        y on ln x           (x > 0)
//	exponential  y = e^(a + b*x)        ln y on x           (y > 0)
//
// For the linearized families the slope is rounded first and the intercept is
// derived from the rounded slope.
//
// # Failure Handling
//
// Fit returns ErrDomainViolation when a sample lies outside the family's domain
// and ErrSingularSystem when the normal equations are singular or a coefficient
// is not finite. SelectBest and Analyze skip such families and only fail with
// ErrNoViableModel when nothing could be fitted. Empty input fails immediately
// with ErrEmptyPoints. All errors come from package errs and can be matched with
// errors.Is.
//
// # Concurrency
//
// The package holds no mutable state. Formulas are immutable and all functions
// may be called concurrently.
package regression
