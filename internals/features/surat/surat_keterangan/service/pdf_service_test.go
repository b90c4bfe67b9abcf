package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSuratKeterangan(t *testing.T) {
	r := NewPDFRenderer()
	out, err := r.RenderSuratKeterangan(SuratPDFData{
		Nama:             "Budi Santoso",
		JenisKelamin:     "Laki-laki",
		TempatLahir:      "Bogor",
		TanggalLahir:     time.Date(1990, 5, 25, 0, 0, 0, 0, time.UTC),
		Pekerjaan:        "Wiraswasta",
		AlamatSesuaiKTP:  "Jl. Raya Pajajaran No. 10, Bogor",
		Pendidikan:       "S1 (Sarjana)",
		Nomor:            "123/SK/2026/PN.Cbi",
		AlasanPermohonan: "pendaftaran calon anggota legislatif tahun 2026.",
		Tanggal:          time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		Pejabat:          "Dr. Hakim Contoh, S.H., M.H.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	// satu halaman A4 dengan QR harusnya tidak mungkin sekecil ini
	assert.Greater(t, len(out), 1000)
}

func TestRenderTanpaFotoTetapJadi(t *testing.T) {
	r := NewPDFRenderer()
	out, err := r.RenderSuratKeterangan(SuratPDFData{
		Nama:    "Siti Aminah",
		Nomor:   "7/SK/2026/PN.Cbi",
		Tanggal: time.Now(),
		Pejabat: "Panitera Muda Hukum",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatTanggalIndonesia(t *testing.T) {
	assert.Equal(t, "15 - Januari - 2026", formatTanggalIndonesia(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "1 - Agustus - 1999", formatTanggalIndonesia(time.Date(1999, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "-", formatTanggalIndonesia(time.Time{}))
}
