// Package pixel holds the RGB byte grid the steganography codec works on.
package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// Channels is the number of color channels per pixel (R, G, B).
const Channels = 3

// Channel indexes.
const (
	R = 0
	G = 1
	B = 2
)

// ErrDimensions is returned for non-positive or inconsistent sizes.
var ErrDimensions = errors.New("invalid buffer dimensions")

// Buffer is a row-major, channel-interleaved RGB grid.
// Pix[(y*Width+x)*3+c] is channel c of the pixel at column x, row y.
type Buffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates a zeroed buffer.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, width, height)
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}, nil
}

// FromPix wraps an existing slice. The slice is owned by the buffer afterwards.
func FromPix(width, height int, pix []uint8) (*Buffer, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*Channels {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrDimensions, width, height, len(pix))
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

// Len returns the number of byte slots (width * height * 3).
func (b *Buffer) Len() int {
	return len(b.Pix)
}

// Offset returns the index of channel c of pixel (x, y) in Pix.
func (b *Buffer) Offset(x, y, c int) int {
	return (y*b.Width+x)*Channels + c
}

// At returns channel c of pixel (x, y).
func (b *Buffer) At(x, y, c int) uint8 {
	return b.Pix[b.Offset(x, y, c)]
}

// Set writes channel c of pixel (x, y).
func (b *Buffer) Set(x, y, c int, v uint8) {
	b.Pix[b.Offset(x, y, c)] = v
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// Equal reports whether both buffers have the same size and content.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.Width != o.Width || b.Height != o.Height || len(b.Pix) != len(o.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// FromImage copies any image into a buffer, dropping alpha.
// Colors are taken non-premultiplied so that channel bytes survive a save/load cycle.
func FromImage(src image.Image) (*Buffer, error) {
	bounds := src.Bounds()
	nrgba, ok := src.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)
	}

	buf, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < buf.Height; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < buf.Width; x++ {
			copy(buf.Pix[buf.Offset(x, y, 0):], row[x*4:x*4+3])
		}
	}
	return buf, nil
}

// Image converts the buffer into an opaque *image.NRGBA.
func (b *Buffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			o := b.Offset(x, y, 0)
			row[x*4] = b.Pix[o]
			row[x*4+1] = b.Pix[o+1]
			row[x*4+2] = b.Pix[o+2]
			row[x*4+3] = 0xFF
		}
	}
	return img
}
