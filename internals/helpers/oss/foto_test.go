package oss

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileHeaderDari(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	rd := multipart.NewReader(&buf, w.Boundary())
	form, err := rd.ReadForm(32 << 20)
	require.NoError(t, err)
	return form.File["file"][0]
}

func gambar(t *testing.T, w, h int, enc func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, enc(&buf, img))
	return buf.Bytes()
}

func TestNormalizeFotoJPEGDariPNG(t *testing.T) {
	pngBytes := gambar(t, 40, 60, func(b *bytes.Buffer, i image.Image) error { return png.Encode(b, i) })
	out, err := NormalizeFotoJPEG(fileHeaderDari(t, "pasfoto.png", pngBytes))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, out[:2], "hasil harus JPEG")
}

func TestNormalizeFotoJPEGDariJPEG(t *testing.T) {
	jpgBytes := gambar(t, 40, 60, func(b *bytes.Buffer, i image.Image) error {
		return jpeg.Encode(b, i, &jpeg.Options{Quality: 90})
	})
	out, err := NormalizeFotoJPEG(fileHeaderDari(t, "pasfoto.jpg", jpgBytes))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8}, out[:2])
}

func TestNormalizeFotoJPEGTolakBukanGambar(t *testing.T) {
	_, err := NormalizeFotoJPEG(fileHeaderDari(t, "pasfoto.jpg", []byte("bukan gambar sama sekali")))
	assert.Error(t, err)
}

func TestIsAllowedFotoName(t *testing.T) {
	assert.True(t, IsAllowedFotoName("a.jpg"))
	assert.True(t, IsAllowedFotoName("b.JPEG"))
	assert.True(t, IsAllowedFotoName("c.png"))
	assert.False(t, IsAllowedFotoName("d.webp"))
	assert.False(t, IsAllowedFotoName("e.pdf"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "budi-santoso", slugify("Budi Santoso"))
	assert.Equal(t, "ktp-asli", slugify("KTP_Asli"))
	assert.Equal(t, "file", slugify("???"))
}
