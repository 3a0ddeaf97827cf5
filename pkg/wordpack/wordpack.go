// Package wordpack converts between fixed-width integer words and their
// big-endian byte encodings. Word arrays encode as the concatenation of
// their big-endian words with no padding or length prefix.
package wordpack

import (
	"encoding/binary"
	"errors"
)

// ErrShortBuffer is returned when a byte slice is too short to hold the
// requested words.
var ErrShortBuffer = errors.New("wordpack: buffer too short")

// PutUint16 writes v big-endian into the first 2 bytes of b.
func PutUint16(b []byte, v uint16) error {
	if len(b) < 2 {
		return ErrShortBuffer
	}
	binary.BigEndian.PutUint16(b, v)
	return nil
}

// PutUint32 writes v big-endian into the first 4 bytes of b.
func PutUint32(b []byte, v uint32) error {
	if len(b) < 4 {
		return ErrShortBuffer
	}
	binary.BigEndian.PutUint32(b, v)
	return nil
}

// PutUint64 writes v big-endian into the first 8 bytes of b.
func PutUint64(b []byte, v uint64) error {
	if len(b) < 8 {
		return ErrShortBuffer
	}
	binary.BigEndian.PutUint64(b, v)
	return nil
}

// Uint16 reads a big-endian uint16 from the first 2 bytes of b.
func Uint16(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint32 reads a big-endian uint32 from the first 4 bytes of b.
func Uint32(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint32(b), nil
}

// Uint64 reads a big-endian uint64 from the first 8 bytes of b.
func Uint64(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, ErrShortBuffer
	}
	return binary.BigEndian.Uint64(b), nil
}

// Words32ToBytes appends the big-endian encoding of words to dst and
// returns the extended slice.
func Words32ToBytes(dst []byte, words []uint32) []byte {
	for _, w := range words {
		var buf [4]byte
		binary.BigEndian.PutUint32(buf[:], w)
		dst = append(dst, buf[:]...)
	}
	return dst
}

// BytesToWords32 fills words from the big-endian encoding in b.
func BytesToWords32(words []uint32, b []byte) error {
	if len(b) < 4*len(words) {
		return ErrShortBuffer
	}
	for i := range words {
		words[i] = binary.BigEndian.Uint32(b[4*i:])
	}
	return nil
}

// Words64ToBytes appends the big-endian encoding of words to dst and
// returns the extended slice.
func Words64ToBytes(dst []byte, words []uint64) []byte {
	for _, w := range words {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], w)
		dst = append(dst, buf[:]...)
	}
	return dst
}

// BytesToWords64 fills words from the big-endian encoding in b.
func BytesToWords64(words []uint64, b []byte) error {
	if len(b) < 8*len(words) {
		return ErrShortBuffer
	}
	for i := range words {
		words[i] = binary.BigEndian.Uint64(b[8*i:])
	}
	return nil
}
