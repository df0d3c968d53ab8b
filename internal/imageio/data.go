package imageio

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Kind classifies a recovered byte stream.
type Kind int

const (
	KindUnknown Kind = iota
	KindJPEG
	KindData
)

func (k Kind) String() string {
	switch k {
	case KindJPEG:
		return "jpeg"
	case KindData:
		return "data"
	default:
		return "unknown"
	}
}

// Sniff tells a JPEG secret from a packed file by its leading bytes.
func Sniff(data []byte) Kind {
	switch {
	case IsJPEG(data):
		return KindJPEG
	case bytes.HasPrefix(data, zstdMagic):
		return KindData
	default:
		return KindUnknown
	}
}

// PackData compresses an arbitrary file for embedding as a byte stream.
func PackData(raw []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBestCompression),
	)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(raw, make([]byte, 0, len(raw)/2)), nil
}

// UnpackData reverses PackData.
func UnpackData(packed []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(packed, nil)
	if err != nil {
		return nil, fmt.Errorf("unpack data: %w", err)
	}
	return raw, nil
}
