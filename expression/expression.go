// Package expression builds callable functions from formula text.
//
// It is the bridge between the rendered formulas produced by the regression
// package and anything that wants to evaluate them as text, for example a plot
// or a "calculate at x" command. Formulas use the grammar
//
//	2*x^2-3.5*x+1
//	1.5 * x ^ -0.25
//	4 -2.5/x
//	e^(0.3+1.2 * x)
//	2+3 * log(x)
//
// where ^ is exponentiation, log is the natural logarithm and e is Euler's
// number. Parsing and evaluation are delegated to github.com/expr-lang/expr.
//
// An Expression is immutable once built and is safe for concurrent use.
package expression

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultVariable is the independent variable used by fitted formulas.
const DefaultVariable = "x"

// ErrInvalidVariable is returned when the variable name collides with a
// built-in name or is empty.
var ErrInvalidVariable = errors.New("expression: invalid variable name")

// reserved names provided by every environment.
var reserved = map[string]struct{}{
	"e":   {},
	"log": {},
}

// Expression is a compiled formula bound to a single independent variable.
type Expression struct {
	text     string
	variable string
	program  *vm.Program
}

// Build compiles formula into an Expression bound to variable.
//
// Parameters:
//   - formula: Formula text, e.g. "2*x+3"
//   - variable: Name of the independent variable, e.g. "x"
//
// Returns:
//   - *Expression: Compiled expression ready for evaluation
//   - error: ErrInvalidVariable, or a compile error from the parser
//
// Example:
//
//	ex, err := expression.Build("e^(0.5+2 * x)", "x")
//	if err != nil {
//	    return err
//	}
//	y, err := ex.Evaluate(1.25)
func Build(formula, variable string) (*Expression, error) {
	variable = strings.TrimSpace(variable)
	if variable == "" {
		return nil, ErrInvalidVariable
	}
	if _, ok := reserved[variable]; ok {
		return nil, fmt.Errorf("%w: %q is reserved", ErrInvalidVariable, variable)
	}

	program, err := expr.Compile(formula, expr.Env(environment(variable, 0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("expression: compile %q: %w", formula, err)
	}

	return &Expression{
		text:     formula,
		variable: variable,
		program:  program,
	}, nil
}

// Evaluate computes the expression for the given variable value.
func (e *Expression) Evaluate(value float64) (float64, error) {
	out, err := expr.Run(e.program, environment(e.variable, value))
	if err != nil {
		return math.NaN(), fmt.Errorf("expression: evaluate %q at %s=%v: %w", e.text, e.variable, value, err)
	}

	f, ok := out.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("expression: %q produced %T, want float64", e.text, out)
	}

	return f, nil
}

// Text returns the formula text the expression was built from.
func (e *Expression) Text() string {
	return e.text
}

// Variable returns the name of the independent variable.
func (e *Expression) Variable() string {
	return e.variable
}

// String implements fmt.Stringer.
func (e *Expression) String() string {
	return e.text
}

// environment is rebuilt per evaluation so a compiled program never shares
// mutable state between calls.
func environment(variable string, value float64) map[string]any {
	return map[string]any{
		variable: value,
		"e":      math.E,
		"log":    math.Log,
	}
}
