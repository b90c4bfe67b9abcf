// internals/helpers/oss/foto.go
package oss

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/disintegration/imaging"
)

// Batas dimensi foto pemohon sebelum disimpan. Foto dipakai lagi saat render
// PDF surat, jadi dinormalkan ke JPEG (renderer tidak mendukung webp).
const (
	fotoMaxW      = 1600
	fotoMaxH      = 1600
	fotoJPEGQ     = 85
	fotoSniffSize = 512
)

// NormalizeFotoJPEG membaca foto (jpg/jpeg/png), memperkecil bila melebihi
// batas, lalu re-encode sebagai JPEG. Hasilnya siap di-upload apa adanya.
func NormalizeFotoJPEG(fh *multipart.FileHeader) ([]byte, error) {
	if fh == nil {
		return nil, fmt.Errorf("nil file header")
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open foto: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read foto: %w", err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	sniff := all
	if len(sniff) > fotoSniffSize {
		sniff = sniff[:fotoSniffSize]
	}
	ct := http.DetectContentType(sniff)
	if ct != "image/jpeg" && ct != "image/png" {
		return nil, fmt.Errorf("format foto tidak didukung: %s (pakai jpg/jpeg/png)", ct)
	}

	img, err := imaging.Decode(bytes.NewReader(all), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode foto: %w", err)
	}

	img = downscaleIfNeeded(img, fotoMaxW, fotoMaxH)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: fotoJPEGQ}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func downscaleIfNeeded(src image.Image, maxW, maxH int) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return src
	}
	return imaging.Fit(src, maxW, maxH, imaging.Lanczos)
}

// IsAllowedFotoName guard ringan di controller sebelum buka file.
func IsAllowedFotoName(filename string) bool {
	low := strings.ToLower(filename)
	return strings.HasSuffix(low, ".jpg") || strings.HasSuffix(low, ".jpeg") || strings.HasSuffix(low, ".png")
}
