package hash

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data string
		sum  uint64
	}{
		{"empty", "", 0xef46db3751d8e999},
		{"short", "test", 0x4fdcca5ddb678139},
		{"long", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sum, Sum([]byte(tt.data)))
		})
	}
}

func TestColumns(t *testing.T) {
	xs := []float64{1, 2, 3}
	ys := []float64{5, 7, 9}

	assert.Equal(t, Columns(xs, ys), Columns([]float64{1, 2, 3}, []float64{5, 7, 9}))
	assert.NotEqual(t, Columns(xs, ys), Columns([]float64{2, 1, 3}, []float64{7, 5, 9}), "order matters")
	assert.NotEqual(t, Columns(xs, ys), Columns(ys, xs), "columns are not interchangeable")
	assert.NotEqual(t, Columns([]float64{0}, []float64{1}), Columns([]float64{math.Copysign(0, -1)}, []float64{1}), "signed zero differs")
	assert.NotEqual(t, Columns(nil, nil), Columns([]float64{0}, []float64{0}), "length is part of the digest")
}

func BenchmarkColumns(b *testing.B) {
	xs := make([]float64, 1000)
	ys := make([]float64, 1000)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = float64(i) * 1.5
	}

	for b.Loop() {
		Columns(xs, ys)
	}
}
