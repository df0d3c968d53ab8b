package imageio

import (
	"bytes"
	"fmt"
	"image/jpeg"

	"github.com/gen2brain/jpegn"

	"github.com/llehouerou/stegano/internal/pixel"
)

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 90

// JPEG compresses secrets for the Jpeg method and decodes recovered streams.
type JPEG struct {
	Quality int
}

// Compress encodes img as a baseline JPEG.
func (j JPEG) Compress(img *pixel.Buffer) ([]byte, error) {
	q := j.Quality
	if q < 1 || q > 100 {
		q = DefaultQuality
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img.Image(), &jpeg.Options{Quality: q}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Decompress decodes a JPEG stream into pixels.
func (JPEG) Decompress(data []byte) (*pixel.Buffer, error) {
	img, err := jpegn.Decode(bytes.NewReader(data), &jpegn.Options{ToRGBA: true})
	if err != nil {
		return nil, fmt.Errorf("decode jpeg: %w", err)
	}
	return pixel.FromImage(img)
}
