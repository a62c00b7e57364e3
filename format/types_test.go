package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezNNP/curvefit/errs"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
	}{
		{"", CompressionNone},
		{"none", CompressionNone},
		{"ZSTD", CompressionZstd},
		{" s2 ", CompressionS2},
		{"lz4", CompressionLZ4},
	}
	for _, tt := range tests {
		got, err := ParseCompression(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}

	_, err := ParseCompression("gzip")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestParseEncoding(t *testing.T) {
	got, err := ParseEncoding("gorilla")
	require.NoError(t, err)
	require.Equal(t, TypeGorilla, got)

	got, err = ParseEncoding("")
	require.NoError(t, err)
	require.Equal(t, TypeRaw, got)

	_, err = ParseEncoding("delta")
	require.Error(t, err)
}

func TestDetectInputFormat(t *testing.T) {
	tests := []struct {
		path string
		want InputFormat
	}{
		{"points.csv", InputCSV},
		{"dir/points.TXT", InputCSV},
		{"points.json", InputJSON},
		{"points.yaml", InputYAML},
		{"points.yml", InputYAML},
		{"/tmp/points.cfps", InputSnapshot},
	}
	for _, tt := range tests {
		got, err := DetectInputFormat(tt.path)
		require.NoError(t, err, tt.path)
		require.Equal(t, tt.want, got, tt.path)
	}

	_, err := DetectInputFormat("points")
	require.ErrorIs(t, err, errs.ErrUnsupportedInputFormat)

	_, err = DetectInputFormat("points.xlsx")
	require.ErrorIs(t, err, errs.ErrUnsupportedInputFormat)
}

func TestStrings(t *testing.T) {
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
	require.Equal(t, "Gorilla", TypeGorilla.String())
	require.Equal(t, "Unknown", EncodingType(9).String())
	require.Equal(t, "YAML", InputYAML.String())
	require.Equal(t, "Unknown", InputFormat(0).String())
}
