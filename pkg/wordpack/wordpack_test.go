package wordpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleWords(t *testing.T) {
	buf := make([]byte, 8)

	require.NoError(t, PutUint64(buf, 0x0102030405060708))
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, buf)

	v64, err := Uint64(buf)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), v64)

	require.NoError(t, PutUint32(buf, 0xdeadbeef))
	v32, err := Uint32(buf)
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), v32)

	require.NoError(t, PutUint16(buf, 0xcafe))
	v16, err := Uint16(buf)
	require.NoError(t, err)
	require.Equal(t, uint16(0xcafe), v16)
}

func TestShortBuffers(t *testing.T) {
	short := make([]byte, 1)

	require.Equal(t, ErrShortBuffer, PutUint16(short, 0))
	require.Equal(t, ErrShortBuffer, PutUint32(short, 0))
	require.Equal(t, ErrShortBuffer, PutUint64(short, 0))

	_, err := Uint16(short)
	require.Equal(t, ErrShortBuffer, err)
	_, err = Uint32(short)
	require.Equal(t, ErrShortBuffer, err)
	_, err = Uint64(short)
	require.Equal(t, ErrShortBuffer, err)

	require.Equal(t, ErrShortBuffer, BytesToWords32(make([]uint32, 2), short))
	require.Equal(t, ErrShortBuffer, BytesToWords64(make([]uint64, 1), short))
}

func TestWordArrays(t *testing.T) {
	words32 := []uint32{0x01020304, 0xa0b0c0d0}
	b := Words32ToBytes(nil, words32)
	require.Equal(t, []byte{1, 2, 3, 4, 0xa0, 0xb0, 0xc0, 0xd0}, b)

	got32 := make([]uint32, 2)
	require.NoError(t, BytesToWords32(got32, b))
	require.Equal(t, words32, got32)

	words64 := []uint64{0x1122334455667788, ^uint64(0)}
	b = Words64ToBytes(nil, words64)
	require.Len(t, b, 16)

	got64 := make([]uint64, 2)
	require.NoError(t, BytesToWords64(got64, b))
	require.Equal(t, words64, got64)
}

func TestAppendGrows(t *testing.T) {
	// Word arrays append to the destination rather than overwrite it, so
	// state encoders can prefix a cursor before the words.
	prefix := []byte{0xff}
	b := Words32ToBytes(prefix, []uint32{0x01020304})
	require.Equal(t, []byte{0xff, 1, 2, 3, 4}, b)
}
