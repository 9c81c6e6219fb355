// Package array provides Array, a fixed-length sequence that can be embedded in
// other records and (de)serialized by encoding/json or msgpack without any
// per-field hooks.
//
//	type Frame struct {
//		Payload array.Array[byte, [1024]byte]
//		Digest  *array.Array[uint32, [64]uint32]
//	}
//
// The second type argument is the Go array type [N]T that stores the elements,
// for any N. Array is a value: assignment copies the elements.
package array

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"

	"github.com/rawbytedev/bigarray"
)

var ErrLength = errors.New("array: element count differs from array length")

// Array holds the elements of T in A, which must be an array type [N]T. Using
// any other A panics on first use. The zero value holds N zero values.
type Array[T any, A any] struct {
	a A
}

var _ bigarray.Fixed = (*Array[int, [64]int])(nil)

// length returns N for A = [N]T.
func length[T, A any]() int {
	at, et := reflect.TypeFor[A](), reflect.TypeFor[T]()
	if at.Kind() != reflect.Array || at.Elem() != et {
		panic(fmt.Sprintf("array: %v is not an array of %v", at, et))
	}
	return at.Len()
}

// New returns an Array of default elements. See bigarray.DefaultSlice.
func New[T, A any]() Array[T, A] {
	var a Array[T, A]
	copy(a.view(), bigarray.DefaultSlice[T](length[T, A]()))
	return a
}

// Of wraps a Go array.
func Of[T, A any](arr A) Array[T, A] {
	length[T, A]()
	return Array[T, A]{a: arr}
}

// From returns an Array holding copies of elems, which must have exactly N
// elements. The elements are moved: the caller must not release elems afterwards.
func From[T, A any](elems []T) (Array[T, A], error) {
	var a Array[T, A]
	if n := a.Len(); len(elems) != n {
		return Array[T, A]{}, fmt.Errorf("%w: got %d, want %d", ErrLength, len(elems), n)
	}
	copy(a.view(), elems)
	return a, nil
}

// Filled returns an Array with every element set to v.
func Filled[T, A any](v T) Array[T, A] {
	var a Array[T, A]
	elems := a.view()
	for i := range elems {
		elems[i] = v
	}
	return a
}

func (a Array[T, A]) Len() int {
	return length[T, A]()
}

func (a *Array[T, A]) view() []T {
	return unsafe.Slice((*T)(unsafe.Pointer(&a.a)), length[T, A]())
}

// Value returns a copy of the underlying Go array.
func (a Array[T, A]) Value() A {
	return a.a
}

// At returns element i. It panics if i is out of range.
func (a Array[T, A]) At(i int) T {
	return a.view()[i]
}

// Set replaces element i with v and releases the replaced element.
func (a *Array[T, A]) Set(i int, v T) {
	elems := a.view()
	old := elems[i]
	elems[i] = v
	bigarray.ReleaseValue(old)
}

// Slice returns the elements of a for direct indexing. The slice aliases a;
// writes through it do not release replaced elements.
func (a *Array[T, A]) Slice() []T {
	return a.view()
}

// Release releases every element once and resets a to its zero value.
func (a *Array[T, A]) Release() {
	elems := a.view()
	bigarray.ReleaseAll(elems)
	clear(elems)
}

func (a Array[T, A]) String() string {
	return fmt.Sprint(a.view())
}

// Serialize writes the elements through enc.
func (a Array[T, A]) Serialize(enc bigarray.Encoder) error {
	return bigarray.Serialize(enc, a.view())
}

// Deserialize reads N elements from dec. On success the previous elements are
// released; on failure a is unchanged.
func (a *Array[T, A]) Deserialize(dec bigarray.Decoder) error {
	elems, err := bigarray.Deserialize[T](dec, a.Len())
	if err != nil {
		return err
	}
	a.replace(elems)
	return nil
}

// replace releases the current elements in place and moves elems in.
func (a *Array[T, A]) replace(elems []T) {
	view := a.view()
	bigarray.ReleaseAll(view)
	copy(view, elems)
}
