// Package format defines the enumerations shared by the snapshot codec, the
// point-file readers and the command line.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ezNNP/curvefit/errs"
)

type (
	// EncodingType is the column layout of a snapshot payload.
	EncodingType uint8
	// CompressionType is the codec applied to a snapshot payload.
	CompressionType uint8
	// InputFormat is the serialization of a point file.
	InputFormat uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores each float64 in 8 bytes.
	TypeGorilla EncodingType = 0x3 // TypeGorilla stores XOR-compressed float64 columns.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	InputCSV      InputFormat = 0x1 // InputCSV is "x,y" rows.
	InputJSON     InputFormat = 0x2 // InputJSON is an array of {"x","y"} objects.
	InputYAML     InputFormat = 0x3 // InputYAML is a sequence of {x, y} mappings.
	InputSnapshot InputFormat = 0x4 // InputSnapshot is the binary snapshot format.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// ParseEncoding returns the EncodingType for "raw" or "gorilla".
func ParseEncoding(name string) (EncodingType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw", "":
		return TypeRaw, nil
	case "gorilla", "xor":
		return TypeGorilla, nil
	default:
		return 0, fmt.Errorf("%w: unknown encoding %q", errs.ErrInvalidPayload, name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompression returns the CompressionType for a case-insensitive name.
// An empty name means no compression.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

func (f InputFormat) String() string {
	switch f {
	case InputCSV:
		return "CSV"
	case InputJSON:
		return "JSON"
	case InputYAML:
		return "YAML"
	case InputSnapshot:
		return "Snapshot"
	default:
		return "Unknown"
	}
}

// ParseInputFormat returns the InputFormat for a case-insensitive name.
func ParseInputFormat(name string) (InputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv", "txt":
		return InputCSV, nil
	case "json":
		return InputJSON, nil
	case "yaml", "yml":
		return InputYAML, nil
	case "snapshot", "cfps":
		return InputSnapshot, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnsupportedInputFormat, name)
	}
}

// DetectInputFormat infers the format from the file extension of path.
func DetectInputFormat(path string) (InputFormat, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", errs.ErrUnsupportedInputFormat, path)
	}

	return ParseInputFormat(ext)
}
