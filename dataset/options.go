package dataset

import (
	"fmt"

	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/internal/options"
)

// Config holds the snapshot encoder settings.
type Config struct {
	Compression format.CompressionType
	Encoding    format.EncodingType
	BigEndian   bool
}

// Option configures Encode.
type Option = options.Option[*Config]

func defaultConfig() Config {
	return Config{
		Compression: format.CompressionNone,
		Encoding:    format.TypeRaw,
	}
}

// WithCompression sets the payload codec.
func WithCompression(c format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		switch c {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.Compression = c
			return nil
		default:
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(c))
		}
	})
}

// WithEncoding sets the column layout.
func WithEncoding(e format.EncodingType) Option {
	return options.New(func(cfg *Config) error {
		switch e {
		case format.TypeRaw, format.TypeGorilla:
			cfg.Encoding = e
			return nil
		default:
			return fmt.Errorf("%w: unknown column encoding 0x%02x", errs.ErrInvalidPayload, uint8(e))
		}
	})
}

// WithBigEndian writes header fields and raw columns big endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.BigEndian = true
	})
}

// WithLittleEndian writes header fields and raw columns little endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.BigEndian = false
	})
}
