package stego

import (
	"fmt"

	"github.com/llehouerou/stegano/internal/pixel"
)

// embedLossy keeps only the high nibble of every secret byte. Carrier slots
// past the payload are left untouched unless noise is requested.
func embedLossy(carrier, secret *pixel.Buffer, opts EmbedOptions) (*pixel.Buffer, error) {
	needed := LossyNeeded(secret.Width, secret.Height)
	if err := checkFit(Lossy, needed, carrier); err != nil {
		return nil, err
	}

	out := carrier.Clone()
	clearLow(out.Pix[:needed])
	if err := writeDims(out.Pix, secret.Width, secret.Height); err != nil {
		return nil, err
	}

	payload := out.Pix[HeaderSize:needed]
	for i, b := range secret.Pix {
		payload[i] |= b >> 4
	}

	if opts.Noise {
		fillNoise(out.Pix[needed:], opts.rand())
	}
	return out, nil
}

// extractLossy returns the secret with the low 4 bits of every byte zeroed.
func extractLossy(carrier *pixel.Buffer) (*pixel.Buffer, error) {
	width, height, err := readDims(carrier.Pix)
	if err != nil {
		return nil, err
	}
	needed := LossyNeeded(width, height)
	if needed > carrier.Len() {
		return nil, fmt.Errorf("%w: %dx%d secret needs %d slots, carrier has %d",
			ErrInvalidDimension, width, height, needed, carrier.Len())
	}

	out, err := pixel.New(width, height)
	if err != nil {
		return nil, err
	}
	for i, v := range carrier.Pix[HeaderSize:needed] {
		out.Pix[i] = (v & lowMask) << 4
	}
	return out, nil
}
