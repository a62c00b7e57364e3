// Package compress provides the payload codecs of point-set snapshots.
//
// A snapshot payload is two float64 columns, optionally XOR-encoded. After
// encoding, the payload can be compressed with one of:
//
//   - None: no compression (format.CompressionNone)
//   - Zstd: best ratio (format.CompressionZstd)
//   - S2: fast, moderate ratio (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// Compress reports the achieved ratio alongside the packed bytes:
//
//	packed, stats, err := compress.Compress(format.CompressionS2, payload)
//	fmt.Println(stats) // S2 1600 -> 412 bytes (74.2% saved)
//
// # Build Tags
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// -tags gozstd switches to github.com/valyala/gozstd, which needs cgo.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Zstd encoders,
// Zstd decoders and LZ4 compressors are pooled internally.
package compress
