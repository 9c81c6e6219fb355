package jsonseq

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"
	"strconv"
	"strings"
	"testing"
	"testing/quick"

	"github.com/rawbytedev/bigarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var released []uint32

type droppableU32 struct {
	V uint32
}

func (d *droppableU32) Release() { released = append(released, d.V) }

func (d droppableU32) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(d.V), 10)), nil
}

func (d *droppableU32) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 32)
	d.V = uint32(v)
	return err
}

func sortedReleased() []uint32 {
	out := slices.Clone(released)
	slices.Sort(out)
	return out
}

func TestBytesRoundTrip(t *testing.T) {
	in := bytes.Repeat([]byte{1}, 64)
	data, err := Marshal(in)
	require.NoError(t, err)
	require.Equal(t, "["+strings.Repeat("1,", 63)+"1]", string(data))

	out, err := Unmarshal[byte](data, 64)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestRoundTripProperty(t *testing.T) {
	condition := func(in []int64, s []string) bool {
		data, err := Marshal(in)
		require.NoError(t, err)
		out, err := Unmarshal[int64](data, len(in))
		require.NoError(t, err)

		sdata, err := Marshal(s)
		require.NoError(t, err)
		sout, err := Unmarshal[string](sdata, len(s))
		require.NoError(t, err)
		return len(out) == len(in) && slices.Equal(in, out) && slices.Equal(s, sout)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestComputedLength(t *testing.T) {
	const number = 137
	in := make([]uint8, number*number+17)
	for i := range in {
		in[i] = 1
	}
	data, err := Marshal(in)
	require.NoError(t, err)
	out, err := Unmarshal[uint8](data, len(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestZeroLength(t *testing.T) {
	data, err := Marshal([]int{})
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
	out, err := Unmarshal[int](data, 0)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestTruncatedStreamReleasesDecodedPrefix(t *testing.T) {
	const val = 20220325
	arr := []droppableU32{{0}, {3}, {val}, {9}}
	data, err := Marshal(arr)
	require.NoError(t, err)

	released = nil
	out, err := Unmarshal[droppableU32](data, 4)
	require.NoError(t, err)
	require.Equal(t, arr, out)
	require.Empty(t, released)

	cut := bytes.Index(data, []byte(strconv.Itoa(val)))
	_, err = Unmarshal[droppableU32](data[:cut], 4)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	require.Equal(t, []uint32{0, 3}, sortedReleased())
}

func TestShortArray(t *testing.T) {
	released = nil
	_, err := Unmarshal[droppableU32]([]byte(`[1, 2]`), 3)
	var lerr *bigarray.LengthError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 2, lerr.Index)
	require.Equal(t, "invalid length 2, expected an array of length 3", err.Error())
	require.Equal(t, []uint32{1, 2}, sortedReleased())
}

func TestTypeMismatch(t *testing.T) {
	cases := map[string]string{
		`"abc"`:   "string",
		`{"a":1}`: "map",
		`null`:    "null",
		`12`:      "number",
		`true`:    "boolean",
	}
	for in, got := range cases {
		_, err := Unmarshal[int]([]byte(in), 3)
		require.ErrorIs(t, err, bigarray.ErrInvalidType, in)
		var terr *bigarray.TypeError
		require.ErrorAs(t, err, &terr, in)
		require.Equal(t, got, terr.Got)
		require.Equal(t, "an array of length 3", terr.Expected)
	}
}

func TestTrailing(t *testing.T) {
	released = nil
	_, err := Unmarshal[droppableU32]([]byte(`[1,2,3,4]`), 3)
	require.ErrorIs(t, err, bigarray.ErrTrailingElements)
	require.Equal(t, []uint32{1, 2, 3}, sortedReleased())

	released = nil
	_, err = Unmarshal[droppableU32]([]byte(`[1,2,3] [4]`), 3)
	require.ErrorIs(t, err, ErrTrailingData)
	require.Equal(t, []uint32{1, 2, 3}, sortedReleased())

	out, err := Unmarshal[int]([]byte(" [1,2,3]\n"), 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, out)
}

func TestElementErrorIsVerbatim(t *testing.T) {
	_, err := Unmarshal[int]([]byte(`[1,"x",3]`), 3)
	var uerr *json.UnmarshalTypeError
	require.ErrorAs(t, err, &uerr)
	require.NotErrorIs(t, err, bigarray.ErrInvalidLength)
}

func TestUnmarshalInto(t *testing.T) {
	dst := []droppableU32{{7}, {8}}
	released = nil
	require.NoError(t, UnmarshalInto([]byte(`[1,2]`), dst))
	require.Equal(t, []droppableU32{{1}, {2}}, dst)
	require.Equal(t, []uint32{7, 8}, sortedReleased())

	released = nil
	require.Error(t, UnmarshalInto([]byte(`[3]`), dst))
	require.Equal(t, []droppableU32{{1}, {2}}, dst)
	require.Equal(t, []uint32{3}, released)
}

type serOnly struct {
	A uint8 `json:"a"`
}

type deOnly struct {
	B uint8 `json:"a"`
}

func TestSerializeAndDeserializeDistinctTypes(t *testing.T) {
	in := make([]serOnly, 64)
	for i := range in {
		in[i] = serOnly{A: 1}
	}
	data, err := Marshal(in)
	require.NoError(t, err)
	out, err := Unmarshal[deOnly](data, 64)
	require.NoError(t, err)
	for i := range in {
		assert.Equal(t, in[i].A, out[i].B)
	}
}

func TestTupleLengthIsEnforced(t *testing.T) {
	var buf bytes.Buffer
	tw, err := NewEncoder(&buf).EncodeTuple(2)
	require.NoError(t, err)
	require.NoError(t, tw.WriteElement(1))
	require.ErrorIs(t, tw.End(), bigarray.ErrTupleLength)
	require.NoError(t, tw.WriteElement(2))
	require.ErrorIs(t, tw.WriteElement(3), bigarray.ErrTupleLength)
	require.NoError(t, tw.End())
	require.Equal(t, "[1,2]", buf.String())
}

type failingWriter struct {
	budget int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.budget <= 0 {
		return 0, io.ErrShortWrite
	}
	w.budget--
	return len(p), nil
}

func TestWriteErrorStopsEncoding(t *testing.T) {
	// '[' then element 0, ',' and element 1 succeed
	w := &failingWriter{budget: 4}
	err := bigarray.Serialize(NewEncoder(w), []int{1, 2, 3, 4})
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Zero(t, w.budget)
}

func TestWrapSharesStream(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`[1,2] [3,4]`))
	first, err := bigarray.Deserialize[int](Wrap(dec), 2)
	require.NoError(t, err)
	second, err := bigarray.Deserialize[int](Wrap(dec), 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, first)
	require.Equal(t, []int{3, 4}, second)
}
