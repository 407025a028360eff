// Package varint implements the tiered self-describing integer codec used
// for lengths, counts and member tags.
//
// The low two bits of the first byte select the header width; the value
// occupies the remaining bits of a little-endian integer of that width:
//
//	tag  width  range
//	0    1      v < 2^6
//	1    2      v < 2^14
//	2    4      v < 2^30
//	3    8      v < 2^62
//
// Values of 2^62 and above cannot be represented and are rejected.
package varint

import (
	"encoding/binary"
	"io"

	"github.com/wippyai/wirepack/errors"
)

const (
	Max1 = 1<<6 - 1
	Max2 = 1<<14 - 1
	Max4 = 1<<30 - 1
	Max8 = 1<<62 - 1

	// MaxLen is the widest header in bytes.
	MaxLen = 8
)

const (
	tag1 = iota
	tag2
	tag4
	tag8
)

// Size returns the header width for v.
func Size(v uint64) (int, error) {
	switch {
	case v <= Max1:
		return 1, nil
	case v <= Max2:
		return 2, nil
	case v <= Max4:
		return 4, nil
	case v <= Max8:
		return 8, nil
	default:
		return 0, errors.SizeNotSupported(nil, v)
	}
}

// Put writes the header for v into dst and returns the bytes written.
// dst must hold at least Size(v) bytes. Nothing is written on error.
func Put(dst []byte, v uint64) (int, error) {
	n, err := Size(v)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, errors.OutOfBounds(errors.PhaseEncode, nil, n, len(dst))
	}
	switch n {
	case 1:
		dst[0] = byte(v<<2 | tag1)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v<<2|tag2))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v<<2|tag4))
	default:
		binary.LittleEndian.PutUint64(dst, v<<2|tag8)
	}
	return n, nil
}

// Append appends the header for v to dst.
func Append(dst []byte, v uint64) ([]byte, error) {
	var scratch [MaxLen]byte
	n, err := Put(scratch[:], v)
	if err != nil {
		return dst, err
	}
	return append(dst, scratch[:n]...), nil
}

// Write writes the header for v to w in a single call. Oversized values are
// rejected before anything reaches w.
func Write(w io.Writer, v uint64) error {
	var scratch [MaxLen]byte
	n, err := Put(scratch[:], v)
	if err != nil {
		return err
	}
	if _, err := w.Write(scratch[:n]); err != nil {
		return errors.IO(errors.PhaseEncode, nil, err)
	}
	return nil
}

// Len reports the header width announced by the first byte of an encoding.
func Len(first byte) int {
	return 1 << (first & 0x3)
}

// Decode reads one header from src, returning the value and bytes consumed.
func Decode(src []byte) (uint64, int, error) {
	if len(src) == 0 {
		return 0, 0, errors.Truncated(nil, 1, 0)
	}
	n := Len(src[0])
	if len(src) < n {
		return 0, 0, errors.Truncated(nil, n, len(src))
	}
	switch n {
	case 1:
		return uint64(src[0] >> 2), 1, nil
	case 2:
		return uint64(binary.LittleEndian.Uint16(src) >> 2), 2, nil
	case 4:
		return uint64(binary.LittleEndian.Uint32(src) >> 2), 4, nil
	default:
		return binary.LittleEndian.Uint64(src) >> 2, 8, nil
	}
}
