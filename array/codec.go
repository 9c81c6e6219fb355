package array

import (
	"bytes"

	"github.com/rawbytedev/bigarray/codec/jsonseq"
	"github.com/rawbytedev/bigarray/codec/msgpackseq"
	"github.com/vmihailenco/msgpack/v5"
)

func (a Array[T, A]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := a.Serialize(jsonseq.NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *Array[T, A]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	elems, err := jsonseq.Unmarshal[T](data, a.Len())
	if err != nil {
		return err
	}
	a.replace(elems)
	return nil
}

func (a Array[T, A]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return a.Serialize(msgpackseq.NewEncoder(enc))
}

func (a *Array[T, A]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return a.Deserialize(msgpackseq.NewDecoder(dec))
}

var (
	_ msgpack.CustomEncoder = Array[byte, [64]byte]{}
	_ msgpack.CustomDecoder = (*Array[byte, [64]byte])(nil)
)
