package bigarray

import "unsafe"

// SerializeArray writes a Go array of one of the BigArray lengths.
//
//	var a [64]byte
//	err := bigarray.SerializeArray[byte](enc, &a)
func SerializeArray[T any, A BigArray[T]](enc Encoder, arr *A) error {
	return Serialize(enc, view[T](arr))
}

// DeserializeArray reads len(*arr) elements into arr, with the semantics of
// DeserializeInto.
func DeserializeArray[T any, A BigArray[T]](dec Decoder, arr *A) error {
	return DeserializeInto(dec, view[T](arr))
}

func view[T any, A BigArray[T]](arr *A) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(arr)), len(*arr))
}
