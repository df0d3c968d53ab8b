package stego

import (
	"fmt"

	"github.com/llehouerou/stegano/internal/nibble"
)

const (
	lowMask  = 0x0F
	highMask = 0xF0

	// tagSlot holds the method tag in its low nibble.
	tagSlot = 8
)

func setLow(slots []uint8, i int, v uint8) {
	slots[i] = slots[i]&highMask | v&lowMask
}

func clearLow(slots []uint8) {
	for i := range slots {
		slots[i] &= highMask
	}
}

func lowNibbles(slots []uint8, n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = slots[i] & lowMask
	}
	return out
}

func writeDims(slots []uint8, width, height int) error {
	w, err := nibble.Encode16(uint32(width)) //nolint:gosec // range checked by Encode16
	if err != nil {
		return fmt.Errorf("%w: width: %w", ErrInvalidDimension, err)
	}
	h, err := nibble.Encode16(uint32(height)) //nolint:gosec // range checked by Encode16
	if err != nil {
		return fmt.Errorf("%w: height: %w", ErrInvalidDimension, err)
	}
	for i := range 4 {
		setLow(slots, i, w[i])
		setLow(slots, 4+i, h[i])
	}
	return nil
}

func readDims(slots []uint8) (width, height int, err error) {
	if len(slots) < HeaderSize {
		return 0, 0, fmt.Errorf("%w: carrier has %d slots, header needs %d",
			ErrInvalidDimension, len(slots), HeaderSize)
	}
	var w, h [4]uint8
	copy(w[:], lowNibbles(slots[0:4], 4))
	copy(h[:], lowNibbles(slots[4:8], 4))
	width, height = int(nibble.Decode16(w)), int(nibble.Decode16(h))
	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("%w: header reads %dx%d", ErrInvalidDimension, width, height)
	}
	return width, height, nil
}

func writeLength(slots []uint8, nibbles int) error {
	n, err := nibble.Encode32(uint64(nibbles)) //nolint:gosec // nibbles is non-negative
	if err != nil {
		return fmt.Errorf("%w: payload length: %w", ErrInvalidDimension, err)
	}
	for i, v := range n {
		setLow(slots, i, v)
	}
	return nil
}

func readLength(slots []uint8) (int, error) {
	if len(slots) < HeaderSize {
		return 0, fmt.Errorf("%w: carrier has %d slots, header needs %d",
			ErrInvalidDimension, len(slots), HeaderSize)
	}
	var n [8]uint8
	copy(n[:], lowNibbles(slots[0:8], 8))
	return int(nibble.Decode32(n)), nil
}
