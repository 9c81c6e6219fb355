// Package kind classifies reflect kinds and appends canonical byte forms of
// primitive values.
package kind

import (
	"encoding/binary"
	"math"
	"reflect"
)

// IsFixed reports whether k is a fixed-size primitive kind.
func IsFixed(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// FixedSize returns the byte width for fixed-size primitive kinds.
func FixedSize(k reflect.Kind) int {
	switch k {
	case reflect.Bool, reflect.Int8, reflect.Uint8:
		return 1
	case reflect.Int16, reflect.Uint16:
		return 2
	case reflect.Int32, reflect.Uint32, reflect.Float32:
		return 4
	case reflect.Int64, reflect.Uint64, reflect.Float64:
		return 8
	default:
		return -1
	}
}

// AppendUvarint appends varint-encoded x to dst using a small stack scratch.
func AppendUvarint(dst []byte, x uint64) []byte {
	var scratch [10]byte
	i := 0
	for x >= 0x80 {
		scratch[i] = byte(x) | 0x80
		x >>= 7
		i++
	}
	scratch[i] = byte(x)
	i++
	return append(dst, scratch[:i]...)
}

// AppendFixed appends the little-endian form of a fixed-size primitive.
// It reports false when v is not of a fixed kind.
func AppendFixed(dst []byte, v reflect.Value) ([]byte, bool) {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return append(dst, 1), true
		}
		return append(dst, 0), true
	case reflect.Int8:
		return append(dst, byte(v.Int())), true
	case reflect.Uint8:
		return append(dst, byte(v.Uint())), true
	case reflect.Int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.Int())), true
	case reflect.Uint16:
		return binary.LittleEndian.AppendUint16(dst, uint16(v.Uint())), true
	case reflect.Int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.Int())), true
	case reflect.Uint32:
		return binary.LittleEndian.AppendUint32(dst, uint32(v.Uint())), true
	case reflect.Int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(v.Int())), true
	case reflect.Uint64:
		return binary.LittleEndian.AppendUint64(dst, v.Uint()), true
	case reflect.Float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(v.Float()))), true
	case reflect.Float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(v.Float())), true
	default:
		return dst, false
	}
}
