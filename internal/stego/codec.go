package stego

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/llehouerou/stegano/internal/pixel"
)

// JPEGCodec compresses a secret image for the Jpeg method and turns the
// recovered stream back into pixels.
type JPEGCodec interface {
	Compress(img *pixel.Buffer) ([]byte, error)
	Decompress(data []byte) (*pixel.Buffer, error)
}

// Payload is the secret being hidden or recovered. Lossless and Lossy use
// Image; Jpeg uses Data, compressing Image when Data is empty.
type Payload struct {
	Image *pixel.Buffer
	Data  []byte
}

// EmbedOptions tunes a single Embed call.
type EmbedOptions struct {
	// Noise fills the low nibbles after the payload with random values.
	Noise bool
	// Engrave writes the method tag into slot 8.
	Engrave bool
	// Rand is the noise source. A fresh generator is created per call when nil.
	Rand *rand.Rand
}

func (o EmbedOptions) rand() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}
	return newRand()
}

// Codec dispatches embed and extract calls to the three methods.
// The zero value works for Lossless and Lossy, and for Jpeg with raw Data.
type Codec struct {
	JPEG JPEGCodec
}

// New returns a codec using j for the Jpeg method's compression step.
func New(j JPEGCodec) *Codec {
	return &Codec{JPEG: j}
}

// Compress fills p.Data from p.Image when it is not set yet.
func (c *Codec) Compress(p Payload) (Payload, error) {
	if len(p.Data) > 0 {
		return p, nil
	}
	if p.Image == nil {
		return p, fmt.Errorf("%w: no image or data to embed", ErrMalformedPayload)
	}
	if c.JPEG == nil {
		return p, ErrNoJPEGCodec
	}
	data, err := c.JPEG.Compress(p.Image)
	if err != nil {
		return p, fmt.Errorf("compress secret: %w", err)
	}
	p.Data = data
	return p, nil
}

// Needed returns the byte slots m needs to hide p. For Jpeg this compresses
// the image when p carries no data yet.
func (c *Codec) Needed(m Method, p Payload) (int, error) {
	switch m {
	case Lossless, Lossy:
		if p.Image == nil {
			return 0, fmt.Errorf("%w: %s needs an image payload", ErrMalformedPayload, m)
		}
		if m == Lossless {
			return LosslessNeeded(p.Image.Width, p.Image.Height), nil
		}
		return LossyNeeded(p.Image.Width, p.Image.Height), nil
	case Jpeg:
		p, err := c.Compress(p)
		if err != nil {
			return 0, err
		}
		return JpegNeeded(len(p.Data)), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedTag, m)
	}
}

// CanFit reports whether m can hide p inside carrier.
func (c *Codec) CanFit(m Method, carrier *pixel.Buffer, p Payload) (bool, error) {
	needed, err := c.Needed(m, p)
	if err != nil {
		return false, err
	}
	return CanFit(needed, carrier.Len()), nil
}

// Embed hides p in a copy of carrier using m. The carrier is never modified.
// Nothing is returned unless the whole payload was written.
func (c *Codec) Embed(m Method, carrier *pixel.Buffer, p Payload, opts EmbedOptions) (*pixel.Buffer, error) {
	var (
		out *pixel.Buffer
		err error
	)
	switch m {
	case Lossless, Lossy:
		if p.Image == nil {
			return nil, fmt.Errorf("%w: %s needs an image payload", ErrMalformedPayload, m)
		}
		if m == Lossless {
			out, err = embedLossless(carrier, p.Image, opts)
		} else {
			out, err = embedLossy(carrier, p.Image, opts)
		}
	case Jpeg:
		if p, err = c.Compress(p); err != nil {
			return nil, err
		}
		out, err = embedBytes(carrier, p.Data, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTag, m)
	}
	if err != nil {
		return nil, err
	}

	if opts.Engrave {
		if err := Engrave(out, m); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Extract recovers the payload hidden with m. Jpeg payloads carry both the
// raw stream and the decompressed image.
func (c *Codec) Extract(m Method, carrier *pixel.Buffer) (Payload, error) {
	switch m {
	case Lossless:
		img, err := extractLossless(carrier)
		return Payload{Image: img}, err
	case Lossy:
		img, err := extractLossy(carrier)
		return Payload{Image: img}, err
	case Jpeg:
		data, err := extractBytes(carrier)
		if err != nil {
			return Payload{}, err
		}
		if c.JPEG == nil {
			return Payload{}, ErrNoJPEGCodec
		}
		img, err := c.JPEG.Decompress(data)
		if err != nil {
			return Payload{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
		}
		return Payload{Image: img, Data: data}, nil
	default:
		return Payload{}, fmt.Errorf("%w: %s", ErrUnsupportedTag, m)
	}
}

// ExtractBytes returns the raw byte stream of a Jpeg-layout carrier without
// decompressing it.
func (c *Codec) ExtractBytes(carrier *pixel.Buffer) ([]byte, error) {
	return extractBytes(carrier)
}

// ExtractAuto reads the method tag and extracts with the method it names.
func (c *Codec) ExtractAuto(carrier *pixel.Buffer) (Method, Payload, error) {
	m, ok := Detect(carrier)
	if !ok {
		return m, Payload{}, fmt.Errorf("%w: tag nibble reads 0x%02x", ErrUnsupportedTag, uint8(m))
	}
	p, err := c.Extract(m, carrier)
	return m, p, err
}

// IsCapacity reports whether err is a capacity failure and returns its details
// when available.
func IsCapacity(err error) (*CapacityError, bool) {
	var ce *CapacityError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, errors.Is(err, ErrCapacityExceeded)
}
