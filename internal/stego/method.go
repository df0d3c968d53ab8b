// Package stego hides an image or a compressed byte stream in the low nibbles
// of a carrier's RGB channels and recovers it.
//
// Every carrier starts with a 9 byte-slot header. Lossless and Lossy store the
// secret's width and height there, Jpeg stores the payload length in nibbles.
// The low nibble of slot 8 optionally carries the method tag so extraction can
// tell the methods apart without being told.
package stego

import (
	"fmt"
	"strings"
)

// Method identifies one of the three embedding layouts. Its value is the tag
// written into the carrier.
type Method uint8

const (
	// Untagged is the tag value of a carrier embedded without engraving.
	Untagged Method = 0x00
	// Lossless stores two nibbles per secret byte, channel-planar.
	Lossless Method = 0x01
	// Lossy stores the high nibble of every secret byte, channel-interleaved.
	Lossy Method = 0x02
	// Jpeg stores a compressed byte stream, two nibbles per byte.
	Jpeg Method = 0x03
)

// Methods returns the known methods in order of preference.
func Methods() []Method {
	return []Method{Lossless, Lossy, Jpeg}
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	return m == Lossless || m == Lossy || m == Jpeg
}

func (m Method) String() string {
	switch m {
	case Untagged:
		return "untagged"
	case Lossless:
		return "lossless"
	case Lossy:
		return "lossy"
	case Jpeg:
		return "jpeg"
	default:
		return fmt.Sprintf("method(0x%02x)", uint8(m))
	}
}

// ParseMethod maps a method name to its value.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lossless":
		return Lossless, nil
	case "lossy":
		return Lossy, nil
	case "jpeg", "jpg":
		return Jpeg, nil
	default:
		return Untagged, fmt.Errorf("%w: %q", ErrUnsupportedTag, s)
	}
}
