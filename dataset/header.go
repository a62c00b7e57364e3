package dataset

import (
	"fmt"

	"github.com/ezNNP/curvefit/endian"
	"github.com/ezNNP/curvefit/errs"
	"github.com/ezNNP/curvefit/format"
)

const (
	// HeaderSize is the fixed size of the snapshot header.
	HeaderSize = 32
	// Version is the snapshot format version written by Encode.
	Version uint8 = 1
)

// Magic identifies a snapshot.
var Magic = [4]byte{'C', 'F', 'P', 'S'}

const (
	// flagBigEndian marks multi-byte header fields and raw columns as big endian.
	flagBigEndian uint8 = 1 << 0
	flagMask            = flagBigEndian
)

// Header is the fixed-size section at the start of a snapshot.
type Header struct {
	Version     uint8                  // byte offset 4
	Flags       uint8                  // byte offset 5
	Compression format.CompressionType // byte offset 6
	Encoding    format.EncodingType    // byte offset 7
	Count       uint32                 // byte offset 8-11, number of points
	PayloadSize uint32                 // byte offset 12-15, stored payload bytes
	RawSize     uint32                 // byte offset 16-19, payload bytes before compression
	Checksum    uint64                 // byte offset 20-27, xxHash64 of the uncompressed payload
	// byte offset 28-31 reserved, zero
}

// BigEndian reports whether the snapshot uses big-endian byte order.
func (h Header) BigEndian() bool {
	return h.Flags&flagBigEndian != 0
}

// Engine returns the byte-order engine of the snapshot.
func (h Header) Engine() endian.EndianEngine {
	return endian.ForBigEndian(h.BigEndian())
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	copy(b[0:4], Magic[:])
	b[4] = h.Version
	b[5] = h.Flags
	b[6] = uint8(h.Compression)
	b[7] = uint8(h.Encoding)

	engine := h.Engine()
	engine.PutUint32(b[8:12], h.Count)
	engine.PutUint32(b[12:16], h.PayloadSize)
	engine.PutUint32(b[16:20], h.RawSize)
	engine.PutUint64(b[20:28], h.Checksum)

	return b
}

// ParseHeader parses and validates the header at the start of data.
//
// Parameters:
//   - data: Snapshot bytes, at least HeaderSize long
//
// Returns:
//   - Header: Parsed header
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrUnsupportedVersion,
//     ErrInvalidHeaderFlags, ErrInvalidCompression or ErrInvalidPayload
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if [4]byte(data[0:4]) != Magic {
		return Header{}, fmt.Errorf("%w: % x", errs.ErrInvalidMagicNumber, data[0:4])
	}

	h := Header{
		Version:     data[4],
		Flags:       data[5],
		Compression: format.CompressionType(data[6]),
		Encoding:    format.EncodingType(data[7]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
	if h.Flags&^flagMask != 0 {
		return Header{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidHeaderFlags, h.Flags)
	}
	if err := h.validateCodecs(); err != nil {
		return Header{}, err
	}

	engine := h.Engine()
	h.Count = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])

	return h, nil
}

func (h Header) validateCodecs() error {
	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(h.Compression))
	}

	switch h.Encoding {
	case format.TypeRaw, format.TypeGorilla:
	default:
		return fmt.Errorf("%w: unknown column encoding 0x%02x", errs.ErrInvalidPayload, uint8(h.Encoding))
	}

	return nil
}

// String returns a one-line description of the header.
func (h Header) String() string {
	order := "little-endian"
	if h.BigEndian() {
		order = "big-endian"
	}

	return fmt.Sprintf("snapshot v%d: %d points, %s, %s encoding, %s compression, payload %d/%d bytes, checksum %016x",
		h.Version, h.Count, order, h.Encoding, h.Compression, h.PayloadSize, h.RawSize, h.Checksum)
}
