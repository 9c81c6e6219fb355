// Package jsonseq adapts encoding/json streaming to the bigarray channel
// interfaces. A fixed-length sequence is a JSON array.
package jsonseq

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/rawbytedev/bigarray"
)

var ErrTrailingData = errors.New("jsonseq: trailing data after array")

// Encoder writes sequences to w one element at a time.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) EncodeTuple(n int) (bigarray.TupleWriter, error) {
	if _, err := io.WriteString(e.w, "["); err != nil {
		return nil, err
	}
	return &tupleWriter{w: e.w, n: n}, nil
}

type tupleWriter struct {
	w       io.Writer
	n       int
	written int
}

func (t *tupleWriter) WriteElement(v any) error {
	if t.written == t.n {
		return fmt.Errorf("%w: element %d of %d", bigarray.ErrTupleLength, t.written, t.n)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if t.written > 0 {
		if _, err := io.WriteString(t.w, ","); err != nil {
			return err
		}
	}
	if _, err := t.w.Write(data); err != nil {
		return err
	}
	t.written++
	return nil
}

func (t *tupleWriter) End() error {
	if t.written != t.n {
		return fmt.Errorf("%w: wrote %d of %d", bigarray.ErrTupleLength, t.written, t.n)
	}
	_, err := io.WriteString(t.w, "]")
	return err
}

// Decoder reads sequences from a json.Decoder token stream.
type Decoder struct {
	dec *json.Decoder
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: json.NewDecoder(r)}
}

// Wrap reads sequences from an existing json.Decoder positioned before the array.
func Wrap(dec *json.Decoder) *Decoder {
	return &Decoder{dec: dec}
}

func (d *Decoder) DecodeTuple(n int, v bigarray.Visitor) error {
	tok, err := d.dec.Token()
	if err != nil {
		return unexpectedEOF(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return &bigarray.TypeError{Got: describe(tok), Expected: v.Expecting()}
	}

	seq := &seqReader{dec: d.dec}
	if err := v.VisitSeq(seq); err != nil {
		return err
	}
	if seq.closed {
		return nil
	}
	if d.dec.More() {
		return fmt.Errorf("%w: expected %s", bigarray.ErrTrailingElements, v.Expecting())
	}
	return expectClose(d.dec)
}

type seqReader struct {
	dec    *json.Decoder
	closed bool
}

func (s *seqReader) NextElement(dst any) (bool, error) {
	if s.closed {
		return false, nil
	}
	if s.dec.More() {
		if err := s.dec.Decode(dst); err != nil {
			return false, unexpectedEOF(err)
		}
		return true, nil
	}
	if err := expectClose(s.dec); err != nil {
		return false, err
	}
	s.closed = true
	return false, nil
}

func expectClose(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return unexpectedEOF(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != ']' {
		return fmt.Errorf("jsonseq: unexpected %s inside array", describe(tok))
	}
	return nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

func describe(tok json.Token) string {
	switch t := tok.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64, json.Number:
		return "number"
	case string:
		return "string"
	case json.Delim:
		switch t {
		case '{':
			return "map"
		case '[':
			return "sequence"
		default:
			return fmt.Sprintf("%q", t.String())
		}
	default:
		return fmt.Sprintf("%T", tok)
	}
}

// Marshal returns the JSON array of elems.
func Marshal[T any](elems []T) ([]byte, error) {
	var buf bytes.Buffer
	if err := bigarray.Serialize(NewEncoder(&buf), elems); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a JSON array of exactly n elements. Anything but whitespace
// after the array is an error.
func Unmarshal[T any](data []byte, n int) ([]T, error) {
	dec := NewDecoder(bytes.NewReader(data))
	elems, err := bigarray.Deserialize[T](dec, n)
	if err != nil {
		return nil, err
	}
	if err := dec.checkEOF(); err != nil {
		bigarray.ReleaseAll(elems)
		return nil, err
	}
	return elems, nil
}

// UnmarshalInto decodes a JSON array of len(dst) elements into dst.
func UnmarshalInto[T any](data []byte, dst []T) error {
	elems, err := Unmarshal[T](data, len(dst))
	if err != nil {
		return err
	}
	bigarray.Replace(dst, elems)
	return nil
}

func (d *Decoder) checkEOF() error {
	if _, err := d.dec.Token(); err != io.EOF {
		return ErrTrailingData
	}
	return nil
}
