package array

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
	"github.com/rawbytedev/bigarray/internal/kind"
)

// Hasher is implemented by element types that hash themselves.
type Hasher interface {
	Hash64() uint64
}

var hasherType = reflect.TypeFor[Hasher]()

// Hash returns the xxhash of a's elements. Equal arrays hash equally. Elements are
// hashed by a canonical byte form: primitives little-endian with -0 folded into
// +0, strings and slices length-prefixed, arrays and structs member by member,
// Hasher values by Hash64. It panics on maps, funcs and channels.
func Hash[T, A any](a Array[T, A]) uint64 {
	d := xxhash.New()
	elems := reflect.ValueOf(a.view())
	buf := make([]byte, 0, scratchSize(elems.Type().Elem()))
	for i := 0; i < elems.Len(); i++ {
		buf = appendValue(buf[:0], elems.Index(i))
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func (a Array[T, A]) Hash64() uint64 {
	return Hash(a)
}

// scratchSize is the byte form size of a fixed-size t, or a guess for the rest.
func scratchSize(t reflect.Type) int {
	if n := kind.FixedSize(t.Kind()); n > 0 {
		return n
	}
	return 64
}

// positiveZero maps -0 to +0 so that values comparing equal share a byte form.
func positiveZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

func appendValue(dst []byte, v reflect.Value) []byte {
	if v.CanInterface() && v.Type().Implements(hasherType) {
		if v.Kind() != reflect.Pointer || !v.IsNil() {
			return binary.LittleEndian.AppendUint64(dst, v.Interface().(Hasher).Hash64())
		}
	}
	switch v.Kind() {
	case reflect.Float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(float32(positiveZero(v.Float()))))
	case reflect.Float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(positiveZero(v.Float())))
	}
	if out, ok := kind.AppendFixed(dst, v); ok {
		return out
	}
	switch v.Kind() {
	case reflect.Int:
		return binary.LittleEndian.AppendUint64(dst, uint64(v.Int()))
	case reflect.Uint, reflect.Uintptr:
		return binary.LittleEndian.AppendUint64(dst, v.Uint())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		dst = binary.LittleEndian.AppendUint64(dst, math.Float64bits(positiveZero(real(c))))
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(positiveZero(imag(c))))
	case reflect.String:
		dst = kind.AppendUvarint(dst, uint64(v.Len()))
		return append(dst, v.String()...)
	case reflect.Slice:
		dst = kind.AppendUvarint(dst, uint64(v.Len()))
		fallthrough
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			dst = appendValue(dst, v.Index(i))
		}
		return dst
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			dst = appendValue(dst, v.Field(i))
		}
		return dst
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return append(dst, 0)
		}
		return appendValue(append(dst, 1), v.Elem())
	default:
		panic(fmt.Sprintf("array: cannot hash element of kind %s", v.Kind()))
	}
}
