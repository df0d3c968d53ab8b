package stego

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/stegano/internal/pixel"
)

// newBuffer returns a w x h buffer filled with a deterministic pattern.
func newBuffer(t *testing.T, w, h int, seed uint64) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(w, h)
	require.NoError(t, err)
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
	for i := range b.Pix {
		b.Pix[i] = uint8(rng.UintN(256))
	}
	return b
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

// fakeJPEG stores width and height followed by the raw pixels.
type fakeJPEG struct {
	compressErr error
}

var errBadStream = errors.New("bad stream")

func (f fakeJPEG) Compress(img *pixel.Buffer) ([]byte, error) {
	if f.compressErr != nil {
		return nil, f.compressErr
	}
	out := make([]byte, 4, 4+len(img.Pix))
	binary.BigEndian.PutUint16(out[0:], uint16(img.Width))
	binary.BigEndian.PutUint16(out[2:], uint16(img.Height))
	return append(out, img.Pix...), nil
}

func (fakeJPEG) Decompress(data []byte) (*pixel.Buffer, error) {
	if len(data) < 4 {
		return nil, errBadStream
	}
	w := int(binary.BigEndian.Uint16(data[0:]))
	h := int(binary.BigEndian.Uint16(data[2:]))
	pix := make([]uint8, len(data)-4)
	copy(pix, data[4:])
	b, err := pixel.FromPix(w, h, pix)
	if err != nil {
		return nil, errBadStream
	}
	return b, nil
}

// fakeResizer allocates a buffer of the requested size, copying nothing.
type fakeResizer struct {
	calls int
}

func (r *fakeResizer) Resize(_ *pixel.Buffer, w, h int) (*pixel.Buffer, error) {
	r.calls++
	return pixel.New(w, h)
}
