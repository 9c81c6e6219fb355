package kind

import (
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestFixedSizeMatchesAppend(t *testing.T) {
	values := []any{true, int8(-3), uint8(7), int16(-300), uint16(300), int32(-70000),
		uint32(70000), int64(-1 << 40), uint64(1 << 40), float32(1.5), float64(-2.25)}
	for _, val := range values {
		v := reflect.ValueOf(val)
		require.True(t, IsFixed(v.Kind()), v.Kind().String())
		out, ok := AppendFixed(nil, v)
		require.True(t, ok)
		require.Len(t, out, FixedSize(v.Kind()), v.Kind().String())
	}
}

func TestAppendFixedRejectsVariableKinds(t *testing.T) {
	for _, val := range []any{"abc", []byte{1}, 12, struct{}{}} {
		v := reflect.ValueOf(val)
		require.False(t, IsFixed(v.Kind()))
		out, ok := AppendFixed([]byte{9}, v)
		require.False(t, ok)
		require.Equal(t, []byte{9}, out)
		require.Equal(t, -1, FixedSize(v.Kind()))
	}
}

func TestAppendUvarint(t *testing.T) {
	condition := func(x uint64) bool {
		out := AppendUvarint(nil, x)
		var got uint64
		var s uint
		for _, c := range out {
			got |= uint64(c&0x7F) << s
			if c&0x80 == 0 {
				break
			}
			s += 7
		}
		return got == x
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
	require.Equal(t, []byte{0xAC, 0x02}, AppendUvarint(nil, 300))
}
