package expression

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		x       float64
		want    float64
	}{
		{"linear", "2*x+3", 1.5, 6},
		{"linear negative intercept", "3.2*x-1.5", 2, 4.9},
		{"quadratic", "1*x^2+0*x+0", -3, 9},
		{"cubic", "0.5 * x^3-1*x^2+2*x-4", 2, -0},
		{"power", "2 * x ^ 0.5", 16, 8},
		{"power negative exponent", "3 * x ^ -1", 4, 0.75},
		{"hyperbola", "1 + 4/x", 2, 3},
		{"hyperbola negative", "1 -4/x", 2, -1},
		{"indicative", "2 * 3 ^ x", 2, 18},
		{"logarithmic", "1+2 * log(x)", math.E, 3},
		{"logarithmic negative", "1-2 * log(x)", math.E, -1},
		{"exponential", "e^(0+1 * x)", 1, math.E},
		{"exponential negative", "e^(1-1 * x)", 1, 1},
		{"small coefficient", "0.00001*x+0", 100000, 1},
		{"whole number beyond int64", "4999999999999994000000000.0*x", 2, 9999999999999988000000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := Build(tt.formula, DefaultVariable)
			require.NoError(t, err)
			require.Equal(t, tt.formula, ex.Text())
			require.Equal(t, "x", ex.Variable())

			got, err := ex.Evaluate(tt.x)
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBuild_CustomVariable(t *testing.T) {
	ex, err := Build("2*t+1", "t")
	require.NoError(t, err)

	got, err := ex.Evaluate(4)
	require.NoError(t, err)
	require.InDelta(t, 9.0, got, 1e-12)
}

func TestBuild_Errors(t *testing.T) {
	_, err := Build("2*x+", "x")
	require.Error(t, err)

	_, err = Build("2*x", "")
	require.ErrorIs(t, err, ErrInvalidVariable)

	_, err = Build("2*e", "e")
	require.ErrorIs(t, err, ErrInvalidVariable)

	_, err = Build("2*y", "x")
	require.Error(t, err, "unknown identifiers must not compile")
}

func TestEvaluate_OutsideDomain(t *testing.T) {
	ex, err := Build("1+2 * log(x)", "x")
	require.NoError(t, err)

	got, err := ex.Evaluate(-1)
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
}

func TestEvaluate_Concurrent(t *testing.T) {
	ex, err := Build("2*x^2-1", "x")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			got, err := ex.Evaluate(v)
			assert.NoError(t, err)
			assert.InDelta(t, 2*v*v-1, got, 1e-9)
		}(float64(i))
	}
	wg.Wait()
}
