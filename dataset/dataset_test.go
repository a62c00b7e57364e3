package dataset

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/regression"
)

func samplePoints(n int) []regression.Point {
	points := make([]regression.Point, n)
	for i := range points {
		x := float64(i)/8 + 0.5
		points[i] = regression.Point{X: x, Y: 3*math.Log(x) - 1}
	}

	return points
}

func allOptions() map[string][]Option {
	combos := map[string][]Option{}
	for _, c := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		for _, e := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
			combos[c.String()+"/"+e.String()+"/le"] = []Option{WithCompression(c), WithEncoding(e)}
			combos[c.String()+"/"+e.String()+"/be"] = []Option{WithCompression(c), WithEncoding(e), WithBigEndian()}
		}
	}

	return combos
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	for _, n := range []int{1, 3, 250} {
		points := samplePoints(n)

		for name, opts := range allOptions() {
			t.Run(name, func(t *testing.T) {
				data, err := Encode(points, opts...)
				require.NoError(t, err)

				got, err := Decode(data)
				require.NoError(t, err)
				require.Equal(t, points, got)
			})
		}
	}
}

func TestEncode_Header(t *testing.T) {
	points := samplePoints(10)

	data, err := Encode(points, WithCompression(format.CompressionS2), WithEncoding(format.TypeGorilla), WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, []byte("CFPS"), data[:4])

	h, err := ParseHeader(data)
	require.NoError(t, err)
	require.Equal(t, Version, h.Version)
	require.True(t, h.BigEndian())
	require.Equal(t, format.CompressionS2, h.Compression)
	require.Equal(t, format.TypeGorilla, h.Encoding)
	require.Equal(t, uint32(10), h.Count)
	require.Equal(t, uint32(len(data)-HeaderSize), h.PayloadSize)
	require.Contains(t, h.String(), "10 points, big-endian, Gorilla encoding, S2 compression")

	data, err = Encode(points, WithBigEndian(), WithLittleEndian())
	require.NoError(t, err)
	h, err = ParseHeader(data)
	require.NoError(t, err)
	require.False(t, h.BigEndian())
	require.Equal(t, format.CompressionNone, h.Compression)
	require.Equal(t, format.TypeRaw, h.Encoding)
	require.Equal(t, uint32(160), h.RawSize)
	require.Equal(t, h.RawSize, h.PayloadSize)
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(nil)
	require.ErrorIs(t, err, errs.ErrEmptyPoints)

	_, err = Encode([]regression.Point{{X: math.NaN(), Y: 1}})
	require.ErrorIs(t, err, errs.ErrInvalidPoint)

	_, err = Encode(samplePoints(2), WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = Encode(samplePoints(2), WithEncoding(format.EncodingType(2)))
	require.ErrorIs(t, err, errs.ErrInvalidPayload)
}

func TestDecode_Corruption(t *testing.T) {
	valid, err := Encode(samplePoints(20))
	require.NoError(t, err)

	corrupt := func(fn func(b []byte) []byte) []byte {
		b := append([]byte(nil), valid...)
		return fn(b)
	}

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, errs.ErrInvalidHeaderSize},
		{"short header", valid[:HeaderSize-1], errs.ErrInvalidHeaderSize},
		{"magic", corrupt(func(b []byte) []byte { b[0] = 'X'; return b }), errs.ErrInvalidMagicNumber},
		{"version", corrupt(func(b []byte) []byte { b[4] = 2; return b }), errs.ErrUnsupportedVersion},
		{"flags", corrupt(func(b []byte) []byte { b[5] = 0x80; return b }), errs.ErrInvalidHeaderFlags},
		{"compression", corrupt(func(b []byte) []byte { b[6] = 0x7f; return b }), errs.ErrInvalidCompression},
		{"encoding", corrupt(func(b []byte) []byte { b[7] = 0x7f; return b }), errs.ErrInvalidPayload},
		{"truncated payload", valid[:len(valid)-1], errs.ErrInvalidPayload},
		{"trailing bytes", corrupt(func(b []byte) []byte { return append(b, 0) }), errs.ErrInvalidPayload},
		{"payload bit flip", corrupt(func(b []byte) []byte { b[HeaderSize+3] ^= 0x01; return b }), errs.ErrChecksumMismatch},
		{"zero count", corrupt(func(b []byte) []byte { clear(b[8:12]); return b }), errs.ErrInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_InflatedCount(t *testing.T) {
	for _, e := range []format.EncodingType{format.TypeRaw, format.TypeGorilla} {
		t.Run(e.String(), func(t *testing.T) {
			data, err := Encode(samplePoints(1), WithEncoding(e))
			require.NoError(t, err)

			// the checksum covers only the payload, so the header edit goes unnoticed
			data[8], data[9], data[10], data[11] = 0, 0, 0, 0x40

			_, err = Decode(data)
			require.ErrorIs(t, err, errs.ErrInvalidPayload)
		})
	}
}

func TestDecode_CorruptCompressedPayload(t *testing.T) {
	data, err := Encode(samplePoints(100), WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	for i := HeaderSize + 4; i < len(data); i++ {
		data[i] ^= 0xff
	}

	_, err = Decode(data)
	require.Error(t, err)
}

func TestGorillaIsSmallerForGrids(t *testing.T) {
	points := make([]regression.Point, 500)
	for i := range points {
		points[i] = regression.Point{X: float64(i), Y: 2}
	}

	raw, err := Encode(points)
	require.NoError(t, err)
	packed, err := Encode(points, WithEncoding(format.TypeGorilla))
	require.NoError(t, err)

	require.Less(t, len(packed), len(raw)/2)
}

func TestFingerprint(t *testing.T) {
	points := samplePoints(50)

	want := Fingerprint(points)
	for name, opts := range allOptions() {
		data, err := Encode(points, opts...)
		require.NoError(t, err, name)
		got, err := Decode(data)
		require.NoError(t, err, name)
		require.Equal(t, want, Fingerprint(got), name)
	}

	reversed := make([]regression.Point, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	require.NotEqual(t, want, Fingerprint(reversed))
	require.NotEqual(t, want, Fingerprint(points[1:]))
}

func BenchmarkEncode(b *testing.B) {
	points := samplePoints(1000)

	for name, opts := range allOptions() {
		b.Run(name, func(b *testing.B) {
			for b.Loop() {
				if _, err := Encode(points, opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
