package encoding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezNNP/curvefit/endian"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/internal/pool"
)

func testColumns() map[string][]float64 {
	grid := make([]float64, 200)
	smooth := make([]float64, 200)
	for i := range grid {
		grid[i] = float64(i) / 4
		smooth[i] = math.Sin(float64(i)/20) * 100
	}

	return map[string][]float64{
		"single":    {42.5},
		"pair":      {1, 2},
		"constant":  {3.25, 3.25, 3.25, 3.25, 3.25},
		"grid":      grid,
		"smooth":    smooth,
		"special":   {0, math.Copysign(0, -1), math.Inf(1), math.Inf(-1), math.MaxFloat64, math.SmallestNonzeroFloat64, -1},
		"alternate": {1, -1, 1, -1, 1e300, -1e-300},
	}
}

func codecs() map[string]ColumnCodec {
	return map[string]ColumnCodec{
		"raw-le":  NewRaw(endian.GetLittleEndianEngine()),
		"raw-be":  NewRaw(endian.GetBigEndianEngine()),
		"gorilla": Gorilla{},
	}
}

func TestColumnCodecs_RoundTrip(t *testing.T) {
	for codecName, codec := range codecs() {
		for name, values := range testColumns() {
			t.Run(codecName+"/"+name, func(t *testing.T) {
				bb := pool.NewByteBuffer(16)
				codec.Append(bb, values)

				got, n, err := codec.Decode(bb.Bytes(), len(values))
				require.NoError(t, err)
				require.Equal(t, bb.Len(), n)
				require.Len(t, got, len(values))
				for i := range values {
					require.Equal(t, math.Float64bits(values[i]), math.Float64bits(got[i]), "value %d", i)
				}
			})
		}
	}
}

func TestColumnCodecs_TwoColumns(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2.1, 3.9, 6.2, 7.8, 10.1}

	for name, codec := range codecs() {
		t.Run(name, func(t *testing.T) {
			bb := pool.NewByteBuffer(0)
			codec.Append(bb, xs)
			codec.Append(bb, ys)
			data := bb.Bytes()

			gotX, n, err := codec.Decode(data, len(xs))
			require.NoError(t, err)
			require.Equal(t, xs, gotX)

			gotY, m, err := codec.Decode(data[n:], len(ys))
			require.NoError(t, err)
			require.Equal(t, ys, gotY)
			require.Equal(t, len(data), n+m)
		})
	}
}

func TestGorilla_CompressesGrid(t *testing.T) {
	values := testColumns()["grid"]

	raw := pool.NewByteBuffer(0)
	NewRaw(endian.GetLittleEndianEngine()).Append(raw, values)

	packed := pool.NewByteBuffer(0)
	Gorilla{}.Append(packed, values)

	require.Less(t, packed.Len(), raw.Len()/2)

	constant := pool.NewByteBuffer(0)
	Gorilla{}.Append(constant, testColumns()["constant"])
	require.Equal(t, 9, constant.Len(), "64 bits plus four 0 bits")
}

func TestColumnCodecs_Truncated(t *testing.T) {
	values := testColumns()["smooth"]

	for name, codec := range codecs() {
		t.Run(name, func(t *testing.T) {
			bb := pool.NewByteBuffer(0)
			codec.Append(bb, values)

			_, _, err := codec.Decode(bb.Bytes()[:bb.Len()/2], len(values))
			require.ErrorIs(t, err, errs.ErrInvalidPayload)

			_, _, err = codec.Decode(bb.Bytes(), -1)
			require.ErrorIs(t, err, errs.ErrInvalidPayload)
		})
	}
}

func TestColumnCodecs_Empty(t *testing.T) {
	for name, codec := range codecs() {
		bb := pool.NewByteBuffer(0)
		codec.Append(bb, nil)
		require.Zero(t, bb.Len(), name)

		got, n, err := codec.Decode(nil, 0)
		require.NoError(t, err, name)
		require.Empty(t, got, name)
		require.Zero(t, n, name)
	}
}

func TestGorilla_ReusedWindowBeforeDefinition(t *testing.T) {
	// first value 0, then control bits 1 (changed) and 0 (reuse window)
	data := make([]byte, 9)
	data[8] = 0b1000_0000

	_, _, err := Gorilla{}.Decode(data, 2)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestGorilla_CountExceedsPayload(t *testing.T) {
	_, _, err := Gorilla{}.Decode(make([]byte, 8), 1<<30)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	_, _, err = Gorilla{}.Decode(make([]byte, 4), 1)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)

	// 9 bytes hold the first value plus at most 8 one-bit repeats
	got, _, err := Gorilla{}.Decode(make([]byte, 9), 9)
	require.NoError(t, err)
	require.Len(t, got, 9)

	_, _, err = Gorilla{}.Decode(make([]byte, 9), 10)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestCodecFor(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	c, err := CodecFor(format.TypeRaw, engine)
	require.NoError(t, err)
	require.IsType(t, Raw{}, c)

	c, err = CodecFor(format.TypeGorilla, engine)
	require.NoError(t, err)
	require.IsType(t, Gorilla{}, c)

	_, err = CodecFor(format.EncodingType(0x7), engine)
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func BenchmarkGorilla(b *testing.B) {
	values := testColumns()["smooth"]
	bb := pool.NewByteBuffer(0)
	Gorilla{}.Append(bb, values)
	data := append([]byte(nil), bb.Bytes()...)

	b.Run("Append", func(b *testing.B) {
		for b.Loop() {
			bb.Reset()
			Gorilla{}.Append(bb, values)
		}
	})

	b.Run("Decode", func(b *testing.B) {
		for b.Loop() {
			if _, _, err := (Gorilla{}).Decode(data, len(values)); err != nil {
				b.Fatal(err)
			}
		}
	})
}
