package imageio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/stegano/internal/pixel"
)

func makeBuffer(t *testing.T, w, h int) *pixel.Buffer {
	t.Helper()
	b, err := pixel.New(w, h)
	require.NoError(t, err)
	for y := range h {
		for x := range w {
			b.Set(x, y, pixel.R, uint8((x*17)^(y*31)))
			b.Set(x, y, pixel.G, uint8(x*43+y*13))
			b.Set(x, y, pixel.B, uint8((x*7)^(y*11)))
		}
	}
	return b
}

func TestSaveLoad_LosslessFormats(t *testing.T) {
	src := makeBuffer(t, 23, 17)
	dir := t.TempDir()

	for _, ext := range []string{".png", ".bmp", ".qoi"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "carrier"+ext)
			require.NoError(t, Save(path, src))

			got, err := Load(path)
			require.NoError(t, err)
			assert.True(t, src.Equal(got), "pixels changed through %s", ext)
		})
	}
}

func TestSave_RefusesLossyFormats(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.jpg", "out.JPEG", "out.gif"} {
		path := filepath.Join(dir, name)
		err := Save(path, makeBuffer(t, 2, 2))
		require.ErrorIs(t, err, ErrLossyFormat, name)

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "%s should not be created", name)
	}
}

func TestSave_UnknownFormat(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.xyz"), makeBuffer(t, 2, 2))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestJPEG_RoundTrip(t *testing.T) {
	src := makeBuffer(t, 32, 24)
	j := JPEG{Quality: 95}

	data, err := j.Compress(src)
	require.NoError(t, err)
	assert.True(t, IsJPEG(data))
	assert.Equal(t, KindJPEG, Sniff(data))

	got, err := j.Decompress(data)
	require.NoError(t, err)
	assert.Equal(t, 32, got.Width)
	assert.Equal(t, 24, got.Height)
}

func TestJPEG_DefaultQuality(t *testing.T) {
	src := makeBuffer(t, 8, 8)

	a, err := JPEG{}.Compress(src)
	require.NoError(t, err)
	b, err := JPEG{Quality: DefaultQuality}.Compress(src)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestJPEG_DecompressGarbage(t *testing.T) {
	_, err := JPEG{}.Decompress([]byte{0x01, 0x02, 0x03})
	assert.Error(t, err)
}

func TestDecode_JPEGStream(t *testing.T) {
	data, err := JPEG{}.Compress(makeBuffer(t, 10, 6))
	require.NoError(t, err)

	buf, format, err := Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 10, buf.Width)
	assert.Equal(t, 6, buf.Height)
}

func TestResizer(t *testing.T) {
	src := makeBuffer(t, 10, 10)

	for _, name := range []string{"nearest", "bilinear", "lanczos3", ""} {
		r, err := NewResizer(name)
		require.NoError(t, err, name)

		out, err := r.Resize(src, 15, 7)
		require.NoError(t, err, name)
		assert.Equal(t, 15, out.Width)
		assert.Equal(t, 7, out.Height)
		assert.Len(t, out.Pix, 15*7*3)
	}

	r, err := NewResizer("nearest")
	require.NoError(t, err)
	_, err = r.Resize(src, 0, 3)
	assert.ErrorIs(t, err, pixel.ErrDimensions)
}

func TestParseFilter_Unknown(t *testing.T) {
	_, err := ParseFilter("sinc")
	assert.Error(t, err)
}

func TestPackData_RoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte("hidden payload "), 100)

	packed, err := PackData(raw)
	require.NoError(t, err)
	assert.Equal(t, KindData, Sniff(packed))
	assert.Less(t, len(packed), len(raw))

	got, err := UnpackData(packed)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
}

func TestUnpackData_Corrupt(t *testing.T) {
	_, err := UnpackData([]byte{0x28, 0xB5, 0x2F, 0xFD, 0x00})
	assert.Error(t, err)
}

func TestSniff_Unknown(t *testing.T) {
	assert.Equal(t, KindUnknown, Sniff([]byte("plain")))
	assert.Equal(t, KindUnknown, Sniff(nil))
}

func TestOutputPath(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	first := OutputPath(dir, "/photos/secret.jpg", "hidden", ".png", now)
	assert.Equal(t, filepath.Join(dir, "secret_hidden.png"), first)

	require.NoError(t, os.WriteFile(first, []byte("x"), 0o600))
	second := OutputPath(dir, "/photos/secret.jpg", "hidden", ".png", now)
	assert.Equal(t, filepath.Join(dir, "secret_hidden_2024-03-05-14-07-09.png"), second)
}
