package stego

import (
	"fmt"

	"github.com/llehouerou/stegano/internal/pixel"
)

// embedBytes writes data as consecutive (high, low) nibble pairs after a
// 32-bit nibble-count header.
func embedBytes(carrier *pixel.Buffer, data []byte, opts EmbedOptions) (*pixel.Buffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty byte stream", ErrMalformedPayload)
	}
	needed := JpegNeeded(len(data))
	if err := checkFit(Jpeg, needed, carrier); err != nil {
		return nil, err
	}

	out := carrier.Clone()
	clearLow(out.Pix[:needed])
	if err := writeLength(out.Pix, len(data)*2); err != nil {
		return nil, err
	}

	payload := out.Pix[HeaderSize:needed]
	for i, b := range data {
		payload[2*i] |= b >> 4
		payload[2*i+1] |= b & lowMask
	}

	if opts.Noise {
		fillNoise(out.Pix[needed:], opts.rand())
	}
	return out, nil
}

func extractBytes(carrier *pixel.Buffer) ([]byte, error) {
	nibbles, err := readLength(carrier.Pix)
	if err != nil {
		return nil, err
	}
	switch {
	case nibbles == 0:
		return nil, fmt.Errorf("%w: zero payload length", ErrInvalidDimension)
	case nibbles%2 != 0:
		return nil, fmt.Errorf("%w: odd nibble count %d", ErrMalformedPayload, nibbles)
	case HeaderSize+nibbles > carrier.Len():
		return nil, fmt.Errorf("%w: %d nibbles exceed carrier of %d slots",
			ErrInvalidDimension, nibbles, carrier.Len())
	}

	payload := carrier.Pix[HeaderSize : HeaderSize+nibbles]
	data := make([]byte, nibbles/2)
	for i := range data {
		data[i] = (payload[2*i]&lowMask)<<4 | payload[2*i+1]&lowMask
	}
	return data, nil
}
