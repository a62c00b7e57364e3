package pointio

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ezNNP/curvefit/dataset"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/regression"
)

var samplePoints = []regression.Point{
	{X: 1, Y: 5},
	{X: 2, Y: 7.5},
	{X: -3.25, Y: 1e-7},
}

func TestRead_CSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"comma", "1,5\n2,7.5\n-3.25,1e-7\n"},
		{"semicolon", "1;5\n2;7.5\n-3.25;1e-7\n"},
		{"tab", "1\t5\n2\t7.5\n-3.25\t1e-7\n"},
		{"header", "x,y\n1,5\n2,7.5\n-3.25,1e-7\n"},
		{"comments and blanks", "# samples\n\nx;y\n1; 5\n\n2;  7.5\n# tail\n-3.25;1e-7"},
		{"crlf", "x,y\r\n1,5\r\n2,7.5\r\n-3.25,1e-7\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Read(strings.NewReader(tt.input), format.InputCSV)
			require.NoError(t, err)
			require.Equal(t, samplePoints, points)
		})
	}
}

func TestRead_CSVErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"empty", "", errs.ErrEmptyPoints},
		{"header only", "x,y\n", errs.ErrEmptyPoints},
		{"three fields", "1,2,3\n", errs.ErrMalformedRecord},
		{"one field", "1\n2\n", errs.ErrMalformedRecord},
		{"text after data", "1,2\nfoo,bar\n", errs.ErrMalformedRecord},
		{"half numeric", "1,abc\n", errs.ErrMalformedRecord},
		{"nan", "1,NaN\n", errs.ErrInvalidPoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), format.InputCSV)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestRead_CSVReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("x,y\n1,2\n3,oops\n"), format.InputCSV)
	require.ErrorIs(t, err, errs.ErrMalformedRecord)
	require.Contains(t, err.Error(), "line 3")
}

func TestRead_JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"array", `[{"x":1,"y":5},{"x":2,"y":7.5},{"x":-3.25,"y":1e-7}]`},
		{"object", `{"points":[{"x":1,"y":5},{"x":2,"y":7.5},{"x":-3.25,"y":1e-7}]}`},
		{"whitespace", "\n  [ {\"x\": 1, \"y\": 5}, {\"x\": 2, \"y\": 7.5}, {\"x\": -3.25, \"y\": 1e-7} ]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Read(strings.NewReader(tt.input), format.InputJSON)
			require.NoError(t, err)
			require.Equal(t, samplePoints, points)
		})
	}

	_, err := Read(strings.NewReader(`[{"x":1,`), format.InputJSON)
	require.ErrorIs(t, err, errs.ErrMalformedRecord)

	_, err = Read(strings.NewReader(`{"points":[]}`), format.InputJSON)
	require.ErrorIs(t, err, errs.ErrEmptyPoints)

	_, err = Read(strings.NewReader("  "), format.InputJSON)
	require.ErrorIs(t, err, errs.ErrEmptyPoints)
}

func TestRead_YAML(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"sequence", "- {x: 1, y: 5}\n- {x: 2, y: 7.5}\n- {x: -3.25, y: 1e-7}\n"},
		{"mapping", "points:\n  - x: 1\n    y: 5\n  - x: 2\n    y: 7.5\n  - x: -3.25\n    y: 1e-7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Read(strings.NewReader(tt.input), format.InputYAML)
			require.NoError(t, err)
			require.Equal(t, samplePoints, points)
		})
	}

	_, err := Read(strings.NewReader("- x: [1\n"), format.InputYAML)
	require.ErrorIs(t, err, errs.ErrMalformedRecord)

	_, err = Read(strings.NewReader(""), format.InputYAML)
	require.ErrorIs(t, err, errs.ErrEmptyPoints)
}

func TestRoundTrip(t *testing.T) {
	points := []regression.Point{
		{X: 0.1, Y: math.Pi},
		{X: 1e-300, Y: -1e300},
		{X: 42, Y: 0},
	}

	for _, f := range []format.InputFormat{format.InputCSV, format.InputJSON, format.InputYAML, format.InputSnapshot} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, points, f))

			got, err := Read(&buf, f)
			require.NoError(t, err)
			require.Equal(t, points, got)
		})
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, samplePoints, format.InputCSV))
	require.Equal(t, "x,y\n1,5\n2,7.5\n-3.25,1e-07\n", buf.String())
}

func TestWrite_SnapshotOptions(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, samplePoints, format.InputSnapshot,
		dataset.WithCompression(format.CompressionZstd),
		dataset.WithBigEndian(),
	)
	require.NoError(t, err)

	header, err := dataset.ParseHeader(buf.Bytes())
	require.NoError(t, err)
	require.True(t, header.BigEndian())
	require.Equal(t, format.CompressionZstd, header.Compression)

	points, err := Read(&buf, format.InputSnapshot)
	require.NoError(t, err)
	require.Equal(t, samplePoints, points)
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := Read(strings.NewReader("1,2"), format.InputFormat(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedInputFormat)

	err = Write(&bytes.Buffer{}, samplePoints, format.InputFormat(99))
	require.ErrorIs(t, err, errs.ErrUnsupportedInputFormat)
}
