// Package msgpackseq adapts github.com/vmihailenco/msgpack/v5 to the bigarray
// channel interfaces. A fixed-length sequence is a msgpack array.
package msgpackseq

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/rawbytedev/bigarray"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

var ErrTrailingData = errors.New("msgpackseq: trailing data after array")

// Encoder writes sequences through a msgpack.Encoder.
type Encoder struct {
	enc *msgpack.Encoder
}

func NewEncoder(enc *msgpack.Encoder) *Encoder {
	return &Encoder{enc: enc}
}

func (e *Encoder) EncodeTuple(n int) (bigarray.TupleWriter, error) {
	if err := e.enc.EncodeArrayLen(n); err != nil {
		return nil, err
	}
	return &tupleWriter{enc: e.enc, n: n}, nil
}

type tupleWriter struct {
	enc     *msgpack.Encoder
	n       int
	written int
}

func (t *tupleWriter) WriteElement(v any) error {
	if t.written == t.n {
		return fmt.Errorf("%w: element %d of %d", bigarray.ErrTupleLength, t.written, t.n)
	}
	if err := t.enc.Encode(v); err != nil {
		return err
	}
	t.written++
	return nil
}

func (t *tupleWriter) End() error {
	if t.written != t.n {
		return fmt.Errorf("%w: wrote %d of %d", bigarray.ErrTupleLength, t.written, t.n)
	}
	return nil
}

// Decoder reads sequences through a msgpack.Decoder.
type Decoder struct {
	dec *msgpack.Decoder
}

func NewDecoder(dec *msgpack.Decoder) *Decoder {
	return &Decoder{dec: dec}
}

func (d *Decoder) DecodeTuple(n int, v bigarray.Visitor) error {
	code, err := d.dec.PeekCode()
	if err != nil {
		return unexpectedEOF(err)
	}
	if !isArray(code) {
		return &bigarray.TypeError{Got: describe(code), Expected: v.Expecting()}
	}
	l, err := d.dec.DecodeArrayLen()
	if err != nil {
		return unexpectedEOF(err)
	}

	seq := &seqReader{dec: d.dec, remaining: l}
	if err := v.VisitSeq(seq); err != nil {
		return err
	}
	if seq.remaining > 0 {
		return fmt.Errorf("%w: %d more, expected %s", bigarray.ErrTrailingElements, seq.remaining, v.Expecting())
	}
	return nil
}

type seqReader struct {
	dec       *msgpack.Decoder
	remaining int
}

func (s *seqReader) NextElement(dst any) (bool, error) {
	if s.remaining <= 0 {
		return false, nil
	}
	if err := s.dec.Decode(dst); err != nil {
		return false, unexpectedEOF(err)
	}
	s.remaining--
	return true, nil
}

func isArray(c byte) bool {
	return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32
}

func describe(c byte) string {
	switch {
	case c == msgpcode.Nil:
		return "null"
	case c == msgpcode.True || c == msgpcode.False:
		return "boolean"
	case msgpcode.IsString(c):
		return "string"
	case msgpcode.IsBin(c):
		return "bytes"
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		return "map"
	case msgpcode.IsFixedNum(c):
		return "number"
	default:
		return fmt.Sprintf("msgpack code 0x%02x", c)
	}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Marshal returns the msgpack array of elems.
func Marshal[T any](elems []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := bigarray.Serialize(NewEncoder(msgpack.NewEncoder(&buf)), elems); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a msgpack array of exactly n elements. Bytes after the array
// are an error.
func Unmarshal[T any](data []byte, n int) ([]T, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	elems, err := bigarray.Deserialize[T](NewDecoder(dec), n)
	if err != nil {
		return nil, err
	}
	if _, err := dec.PeekCode(); err != io.EOF {
		bigarray.ReleaseAll(elems)
		return nil, ErrTrailingData
	}
	return elems, nil
}

// UnmarshalInto decodes a msgpack array of len(dst) elements into dst.
func UnmarshalInto[T any](data []byte, dst []T) error {
	elems, err := Unmarshal[T](data, len(dst))
	if err != nil {
		return err
	}
	bigarray.Replace(dst, elems)
	return nil
}
