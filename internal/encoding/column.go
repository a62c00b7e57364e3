package encoding

import (
	"fmt"

	"github.com/ezNNP/curvefit/endian"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/internal/pool"
)

// ColumnCodec appends and decodes one float64 column.
type ColumnCodec interface {
	// Append appends values to bb as one column.
	Append(bb *pool.ByteBuffer, values []float64)
	// Decode reads count values from the start of data and reports how many
	// bytes the column occupied.
	Decode(data []byte, count int) ([]float64, int, error)
}

// CodecFor returns the codec for an encoding type. engine is used by the raw
// layout only.
func CodecFor(t format.EncodingType, engine endian.EndianEngine) (ColumnCodec, error) {
	switch t {
	case format.TypeRaw:
		return Raw{engine: engine}, nil
	case format.TypeGorilla:
		return Gorilla{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown column encoding 0x%02x", errs.ErrInvalidPayload, uint8(t))
	}
}

func checkCount(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative column length %d", errs.ErrInvalidPayload, count)
	}

	return nil
}
