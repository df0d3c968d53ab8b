// Package imageio loads and saves carrier and secret images and provides the
// JPEG, resize and byte-packing collaborators the codec relies on.
package imageio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // GIF decoder for secrets
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/jpegn"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"

	"github.com/llehouerou/stegano/internal/pixel"
)

// ErrLossyFormat is returned when asked to save a carrier in a format that
// would not preserve the low nibbles.
var ErrLossyFormat = errors.New("output format is lossy")

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	qoiMagic  = []byte("qoif")
)

// IsJPEG reports whether data starts like a JPEG stream.
func IsJPEG(data []byte) bool {
	return bytes.HasPrefix(data, jpegMagic)
}

// Decode reads any supported image. JPEG (through jpegn) and QOI are sniffed
// and decoded directly, everything else goes through the registered image
// decoders (PNG, GIF, BMP).
func Decode(r io.Reader) (*pixel.Buffer, string, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(len(qoiMagic))
	switch {
	case IsJPEG(head):
		img, err := jpegn.Decode(br, &jpegn.Options{ToRGBA: true, AutoRotate: true})
		if err != nil {
			return nil, "", fmt.Errorf("decode jpeg: %w", err)
		}
		buf, err := pixel.FromImage(img)
		return buf, "jpeg", err
	case bytes.HasPrefix(head, qoiMagic):
		img, err := qoi.Decode(br)
		if err != nil {
			return nil, "", fmt.Errorf("decode qoi: %w", err)
		}
		buf, err := pixel.FromImage(img)
		return buf, "qoi", err
	}

	img, format, err := image.Decode(br)
	if err != nil {
		return nil, "", err
	}
	buf, err := pixel.FromImage(img)
	return buf, format, err
}

// Load opens and decodes an image file.
func Load(path string) (*pixel.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}

// FormatFor returns the lossless format name for a file extension.
func FormatFor(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return "png", nil
	case ".bmp":
		return "bmp", nil
	case ".qoi":
		return "qoi", nil
	case ".jpg", ".jpeg", ".gif", ".webp":
		return "", fmt.Errorf("%w: %s", ErrLossyFormat, ext)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes b in a lossless format ("png", "bmp" or "qoi").
func Encode(w io.Writer, b *pixel.Buffer, format string) error {
	img := b.Image()
	switch format {
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "qoi":
		return qoi.Encode(w, img)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save encodes b into path, choosing the format from the extension.
// The file is only created once the format is known to be lossless.
func Save(path string, b *pixel.Buffer) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := Encode(w, b, format); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
