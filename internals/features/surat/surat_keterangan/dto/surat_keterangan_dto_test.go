package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratku_backend/internals/features/surat/surat_keterangan/model"
)

func contoh() CreateSuratKeteranganRequest {
	return CreateSuratKeteranganRequest{
		Nama:              "Siti Aminah",
		NIK:               "3201014107880002",
		TempatLahir:       "Depok",
		TanggalLahir:      "1988-07-01",
		JenisKelamin:      "Perempuan",
		Pendidikan:        "Tamat SMA/Sederajat",
		Pekerjaan:         "Guru",
		Jabatan:           "Kepala Sekolah",
		AlamatSesuaiKTP:   "Jl. Margonda Raya No. 100, Depok",
		AlamatDomisili:    "Jl. Margonda Raya No. 100, Depok",
		AlasanPermohonan:  "melamar pekerjaan sebagai aparatur sipil negara.",
		TanggalPermohonan: "2026-02-01",
	}
}

func TestValidasiTagForm(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.Struct(contoh()))

	cases := []struct {
		nama  string
		mut   func(*CreateSuratKeteranganRequest)
	}{
		{"nik kurang dari 16 digit", func(r *CreateSuratKeteranganRequest) { r.NIK = "320101" }},
		{"nik bukan angka", func(r *CreateSuratKeteranganRequest) { r.NIK = "32010141078800AB" }},
		{"tanggal lahir salah format", func(r *CreateSuratKeteranganRequest) { r.TanggalLahir = "01-07-1988" }},
		{"alamat ktp terlalu pendek", func(r *CreateSuratKeteranganRequest) { r.AlamatSesuaiKTP = "Depok" }},
		{"alasan terlalu pendek", func(r *CreateSuratKeteranganRequest) { r.AlasanPermohonan = "perlu saja" }},
		{"nama terlalu pendek", func(r *CreateSuratKeteranganRequest) { r.Nama = "Si" }},
	}
	for _, tc := range cases {
		t.Run(tc.nama, func(t *testing.T) {
			r := contoh()
			tc.mut(&r)
			assert.Error(t, v.Struct(&r))
		})
	}
}

func TestValidasiDomain(t *testing.T) {
	r := contoh()
	require.NoError(t, r.ValidateDomain())

	var vErr *ValidationError

	r = contoh()
	r.Nama = "Budi-99"
	require.ErrorAs(t, r.ValidateDomain(), &vErr)

	r = contoh()
	r.JenisKelamin = "L"
	require.ErrorAs(t, r.ValidateDomain(), &vErr)

	r = contoh()
	r.Pendidikan = "S5"
	require.ErrorAs(t, r.ValidateDomain(), &vErr)
	assert.Equal(t, "Pendidikan tidak ada di daftar pilihan", vErr.Message)
}

func TestToModel(t *testing.T) {
	userID := uuid.New()
	r := contoh()
	m, err := r.ToModel(userID, "foto-user/a.jpg", "berkas-pendukung/b.pdf")
	require.NoError(t, err)

	assert.Equal(t, userID, m.UserID)
	assert.Equal(t, model.StatusMenungguVerifikasi, m.Status)
	assert.Equal(t, "foto-user/a.jpg", m.FotoURL)
	assert.Equal(t, "berkas-pendukung/b.pdf", m.BerkasURL)
	require.NotNil(t, m.Jabatan)
	assert.Equal(t, "Kepala Sekolah", *m.Jabatan)
	assert.Equal(t, "1988-07-01", time.Time(m.TanggalLahir).Format("2006-01-02"))
	assert.Nil(t, m.CekVerifikator)
	assert.Nil(t, m.FileURL)
}

func TestToModelJabatanKosongJadiNil(t *testing.T) {
	r := contoh()
	r.Jabatan = "  "
	m, err := r.ToModel(uuid.New(), "f", "b")
	require.NoError(t, err)
	assert.Nil(t, m.Jabatan)
}

func TestFromModelMenandaiSudahDiverifikasi(t *testing.T) {
	r := contoh()
	m, err := r.ToModel(uuid.New(), "f", "b")
	require.NoError(t, err)

	resp := FromModel(m)
	assert.False(t, resp.SudahDiverifikasi)
	assert.Equal(t, "1988-07-01", resp.TanggalLahir)

	key := "surat-keterangan/surat_keterangan_Siti_Aminah_123.pdf"
	m.CekVerifikator = &key
	resp = FromModel(m)
	assert.True(t, resp.SudahDiverifikasi)
}
