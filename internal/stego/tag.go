package stego

import (
	"fmt"

	"github.com/llehouerou/stegano/internal/pixel"
)

// Engrave writes m into the tag nibble of an embedded carrier.
// The tag nibble must still be zero.
func Engrave(carrier *pixel.Buffer, m Method) error {
	if !m.Valid() {
		return fmt.Errorf("%w: %s", ErrUnsupportedTag, m)
	}
	if carrier.Len() < HeaderSize {
		return fmt.Errorf("%w: carrier has %d slots", ErrInvalidDimension, carrier.Len())
	}
	if v := carrier.Pix[tagSlot] & lowMask; v != 0 {
		return fmt.Errorf("%w: holds 0x%02x", ErrTagOccupied, v)
	}
	carrier.Pix[tagSlot] |= uint8(m)
	return nil
}

// Detect reads the tag nibble. It returns false when the carrier is untagged
// or the value is not a known method.
func Detect(carrier *pixel.Buffer) (Method, bool) {
	if carrier.Len() < HeaderSize {
		return Untagged, false
	}
	m := Method(carrier.Pix[tagSlot] & lowMask)
	return m, m.Valid()
}
