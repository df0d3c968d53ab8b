package stego

import (
	"fmt"

	"github.com/llehouerou/stegano/internal/pixel"
)

// embedLossless clears every low nibble of the carrier, then writes each
// channel plane of the secret as (high, low) nibble pairs: all red pairs,
// then all green, then all blue.
func embedLossless(carrier, secret *pixel.Buffer, opts EmbedOptions) (*pixel.Buffer, error) {
	needed := LosslessNeeded(secret.Width, secret.Height)
	if err := checkFit(Lossless, needed, carrier); err != nil {
		return nil, err
	}

	out := carrier.Clone()
	clearLow(out.Pix)
	if err := writeDims(out.Pix, secret.Width, secret.Height); err != nil {
		return nil, err
	}

	slot := HeaderSize
	for c := range pixel.Channels {
		for i := c; i < len(secret.Pix); i += pixel.Channels {
			b := secret.Pix[i]
			out.Pix[slot] |= b >> 4
			out.Pix[slot+1] |= b & lowMask
			slot += 2
		}
	}

	if opts.Noise {
		fillNoise(out.Pix[slot:], opts.rand())
	}
	return out, nil
}

func extractLossless(carrier *pixel.Buffer) (*pixel.Buffer, error) {
	width, height, err := readDims(carrier.Pix)
	if err != nil {
		return nil, err
	}
	if needed := LosslessNeeded(width, height); needed > carrier.Len() {
		return nil, fmt.Errorf("%w: %dx%d secret needs %d slots, carrier has %d",
			ErrInvalidDimension, width, height, needed, carrier.Len())
	}

	out, err := pixel.New(width, height)
	if err != nil {
		return nil, err
	}
	pixels := width * height
	for c := range pixel.Channels {
		plane := carrier.Pix[HeaderSize+c*pixels*2:]
		for p := range pixels {
			hi := plane[2*p] & lowMask
			lo := plane[2*p+1] & lowMask
			out.Pix[p*pixel.Channels+c] = hi<<4 | lo
		}
	}
	return out, nil
}
