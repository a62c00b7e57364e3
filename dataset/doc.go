// Package dataset stores point sets as compact, checksummed binary snapshots.
//
// # Layout
//
// A snapshot is a 32-byte header followed by the payload:
//
//	offset  size  field
//	0       4     magic "CFPS"
//	4       1     version (1)
//	5       1     flags (bit 0: big endian)
//	6       1     compression (format.CompressionType)
//	7       1     column encoding (format.EncodingType)
//	8       4     point count
//	12      4     stored payload size
//	16      4     uncompressed payload size
//	20      8     xxHash64 of the uncompressed payload
//	28      4     reserved
//
// The uncompressed payload is the x column followed by the y column, each
// holding one float64 per point in the selected column encoding.
//
// # Usage
//
//	data, err := dataset.Encode(points,
//	    dataset.WithEncoding(format.TypeGorilla),
//	    dataset.WithCompression(format.CompressionZstd),
//	)
//	...
//	points, err := dataset.Decode(data)
//
// Fingerprint identifies a point set independently of how it was stored, so two
// snapshots of the same samples can be compared without decoding both.
package dataset
