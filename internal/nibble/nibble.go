// Package nibble packs unsigned integers into fixed-length runs of 4-bit values,
// most-significant nibble first.
package nibble

import (
	"errors"
	"fmt"
)

// ErrOverflow is returned when a value does not fit in the requested width.
var ErrOverflow = errors.New("value exceeds nibble field width")

const (
	max16 = 0xFFFF
	max32 = 0xFFFFFFFF
)

// Encode16 splits n into 4 nibbles. n must fit in 16 bits.
func Encode16(n uint32) ([4]uint8, error) {
	var out [4]uint8
	if n > max16 {
		return out, fmt.Errorf("%w: %d > %d", ErrOverflow, n, max16)
	}
	for i := range out {
		out[i] = uint8((n >> (12 - 4*uint(i))) & 0xF) //nolint:gosec // masked to 4 bits
	}
	return out, nil
}

// Decode16 is the inverse of Encode16. Only the low 4 bits of each entry are used.
func Decode16(nibbles [4]uint8) uint16 {
	var n uint16
	for i, v := range nibbles {
		n |= uint16(v&0xF) << (12 - 4*uint(i))
	}
	return n
}

// Encode32 splits n into 8 nibbles. n must fit in 32 bits.
func Encode32(n uint64) ([8]uint8, error) {
	var out [8]uint8
	if n > max32 {
		return out, fmt.Errorf("%w: %d > %d", ErrOverflow, n, uint64(max32))
	}
	for i := range out {
		out[i] = uint8((n >> (28 - 4*uint(i))) & 0xF) //nolint:gosec // masked to 4 bits
	}
	return out, nil
}

// Decode32 is the inverse of Encode32.
func Decode32(nibbles [8]uint8) uint32 {
	var n uint32
	for i, v := range nibbles {
		n |= uint32(v&0xF) << (28 - 4*uint(i))
	}
	return n
}
