// Package endian selects the byte order of binary point-set snapshots.
//
// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so the
// snapshot encoder can append fixed-width values to a growing buffer and the
// decoder can read them back with the same value.
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, math.Float64bits(x))
//	x = math.Float64frombits(engine.Uint64(buf[off:]))
//
// Little endian is the default for snapshots. All engines are stateless and safe
// for concurrent use.
package endian

import (
	"encoding/binary"
)

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsBigEndian reports whether engine writes the most significant byte first.
func IsBigEndian(engine EndianEngine) bool {
	var buf [2]byte
	engine.PutUint16(buf[:], 0x0102)

	return buf[0] == 0x01
}

// ForBigEndian returns the big-endian engine when big is true and the
// little-endian engine otherwise.
func ForBigEndian(big bool) EndianEngine {
	if big {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
