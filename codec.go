package bigarray

import (
	"fmt"

	"go.uber.org/zap"
)

// Serialize writes elems as a sequence of exactly len(elems) elements, in index
// order. The first failing write aborts the sequence and its error is returned
// unchanged.
func Serialize[T any](enc Encoder, elems []T) error {
	tw, err := enc.EncodeTuple(len(elems))
	if err != nil {
		return err
	}
	for i := range elems {
		if err := tw.WriteElement(&elems[i]); err != nil {
			return err
		}
	}
	return tw.End()
}

// Deserialize reads exactly n elements. Either all n elements are returned or
// none are: on failure the elements decoded so far are released and the error is
// returned. A sequence shorter than n fails with a *LengthError.
func Deserialize[T any](dec Decoder, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidLength, n)
	}
	v := &arrayVisitor[T]{n: n}
	if err := dec.DecodeTuple(n, v); err != nil {
		// the format may reject the input after a complete visit
		if v.out != nil {
			ReleaseAll(v.out)
		}
		return nil, err
	}
	if !v.visited {
		return nil, fmt.Errorf("bigarray: decoder %T returned without visiting the sequence", dec)
	}
	return v.out, nil
}

// DeserializeInto reads len(dst) elements and moves them into dst. The replaced
// elements are released once each. On failure dst is left untouched.
func DeserializeInto[T any](dec Decoder, dst []T) error {
	elems, err := Deserialize[T](dec, len(dst))
	if err != nil {
		return err
	}
	Replace(dst, elems)
	return nil
}

// Replace moves src into dst element by element and releases each replaced
// element of dst once. src must be as long as dst and is not released.
func Replace[T any](dst, src []T) {
	if len(src) != len(dst) {
		panic(fmt.Sprintf("bigarray: replace %d elements with %d", len(dst), len(src)))
	}
	release := releaserFor[T]()
	for i := range dst {
		old := dst[i]
		dst[i] = src[i]
		if release != nil {
			release(&old)
		}
	}
}

type arrayVisitor[T any] struct {
	n       int
	out     []T
	visited bool
}

func (v *arrayVisitor[T]) Expecting() string {
	return expectingLength(v.n)
}

func (v *arrayVisitor[T]) VisitSeq(seq SeqReader) error {
	buf := newPartial[T](v.n)
	defer buf.abandon()

	for i := 0; i < v.n; i++ {
		var elem T
		ok, err := seq.NextElement(&elem)
		if err != nil {
			v.logAbort(buf.len(), err)
			return err
		}
		if !ok {
			err := &LengthError{Index: i, Expected: v.Expecting()}
			v.logAbort(buf.len(), err)
			return err
		}
		buf.push(elem)
	}
	v.out = buf.take()
	v.visited = true
	return nil
}

func (v *arrayVisitor[T]) logAbort(constructed int, err error) {
	Logger().Debug("fixed-length decode aborted",
		zap.Int("expected", v.n),
		zap.Int("constructed", constructed),
		zap.Error(err))
}
