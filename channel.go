// Package bigarray (de)serializes fixed-length arrays of any length through a
// sequential write/read channel supplied by a wire format.
//
// The codec never owns a wire format. A format adapter (see codec/jsonseq and
// codec/msgpackseq) turns its encoder/decoder into an Encoder or Decoder and the
// codec streams elements through it one at a time.
package bigarray

// Encoder opens a sequence of exactly n homogeneous elements on the wire.
type Encoder interface {
	EncodeTuple(n int) (TupleWriter, error)
}

// TupleWriter accepts the elements of an opened sequence in index order.
type TupleWriter interface {
	WriteElement(v any) error
	End() error
}

// Decoder reads a sequence that is expected to hold exactly n elements and
// hands it to v.
type Decoder interface {
	DecodeTuple(n int, v Visitor) error
}

// Visitor consumes a sequence. Expecting describes what the visitor wants; formats
// use it when the input has the wrong shape.
type Visitor interface {
	Expecting() string
	VisitSeq(seq SeqReader) error
}

// SeqReader yields elements on demand. NextElement decodes the next element into
// dst (a pointer) and reports false once the sequence is exhausted.
type SeqReader interface {
	NextElement(dst any) (bool, error)
}

// Fixed is implemented by containers holding a fixed number of elements.
type Fixed interface {
	Len() int
	Serialize(enc Encoder) error
	Deserialize(dec Decoder) error
}
