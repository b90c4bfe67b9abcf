// internals/features/surat/surat_keterangan/dto/surat_keterangan_dto.go
package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"suratku_backend/internals/constants"
	"suratku_backend/internals/features/surat/surat_keterangan/model"
)

// CreateSuratKeteranganRequest: field form-data pengajuan surat.
// Foto & berkas pendukung diambil dari multipart, bukan dari struct ini.
type CreateSuratKeteranganRequest struct {
	Nama              string `form:"nama" json:"nama" validate:"required,min=3"`
	NIK               string `form:"nik" json:"nik" validate:"required,len=16,numeric"`
	TempatLahir       string `form:"tempat_lahir" json:"tempat_lahir" validate:"required,min=2"`
	TanggalLahir      string `form:"tanggal_lahir" json:"tanggal_lahir" validate:"required,datetime=2006-01-02"`
	JenisKelamin      string `form:"jenis_kelamin" json:"jenis_kelamin" validate:"required"`
	Pendidikan        string `form:"pendidikan" json:"pendidikan" validate:"required"`
	Pekerjaan         string `form:"pekerjaan" json:"pekerjaan" validate:"required,min=2"`
	Jabatan           string `form:"jabatan" json:"jabatan"`
	AlamatSesuaiKTP   string `form:"alamat_sesuai_ktp" json:"alamat_sesuai_ktp" validate:"required,min=10"`
	AlamatDomisili    string `form:"alamat_domisili" json:"alamat_domisili" validate:"required,min=10"`
	AlasanPermohonan  string `form:"alasan_permohonan" json:"alasan_permohonan" validate:"required,min=20"`
	TanggalPermohonan string `form:"tanggal_permohonan" json:"tanggal_permohonan" validate:"required,datetime=2006-01-02"`
}

var namaRe = regexp.MustCompile(`^[A-Za-z ]+$`)

// ValidationError menandai input yang salah dari user, bukan kegagalan
// server. Controller memetakannya ke status 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError membuat error validasi domain.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// ValidateDomain: aturan yang tidak terwakili tag validator.
func (r *CreateSuratKeteranganRequest) ValidateDomain() error {
	if !namaRe.MatchString(strings.TrimSpace(r.Nama)) {
		return NewValidationError("Nama hanya boleh huruf dan spasi")
	}
	if !constants.ValidJenisKelamin(r.JenisKelamin) {
		return NewValidationError("Jenis kelamin harus Laki-laki atau Perempuan")
	}
	if !constants.ValidPendidikan(r.Pendidikan) {
		return NewValidationError("Pendidikan tidak ada di daftar pilihan")
	}
	return nil
}

// ToModel mengubah request jadi model siap insert. Tanggal sudah lolos
// validasi format, error parse di sini berarti bug.
func (r *CreateSuratKeteranganRequest) ToModel(userID uuid.UUID, fotoKey, berkasKey string) (*model.SuratKeteranganModel, error) {
	tglLahir, err := time.Parse("2006-01-02", r.TanggalLahir)
	if err != nil {
		return nil, err
	}
	tglPermohonan, err := time.Parse("2006-01-02", r.TanggalPermohonan)
	if err != nil {
		return nil, err
	}

	m := &model.SuratKeteranganModel{
		UserID:            userID,
		Nama:              strings.TrimSpace(r.Nama),
		NIK:               strings.TrimSpace(r.NIK),
		TempatLahir:       strings.TrimSpace(r.TempatLahir),
		TanggalLahir:      datatypes.Date(tglLahir),
		JenisKelamin:      r.JenisKelamin,
		Pendidikan:        r.Pendidikan,
		Pekerjaan:         strings.TrimSpace(r.Pekerjaan),
		AlamatSesuaiKTP:   strings.TrimSpace(r.AlamatSesuaiKTP),
		AlamatDomisili:    strings.TrimSpace(r.AlamatDomisili),
		AlasanPermohonan:  strings.TrimSpace(r.AlasanPermohonan),
		TanggalPermohonan: datatypes.Date(tglPermohonan),
		FotoURL:           fotoKey,
		BerkasURL:         berkasKey,
		Status:            model.StatusMenungguVerifikasi,
	}
	if jabatan := strings.TrimSpace(r.Jabatan); jabatan != "" {
		m.Jabatan = &jabatan
	}
	return m, nil
}

// AdminClearRequest: data surat yang diisi admin sebelum render PDF.
type AdminClearRequest struct {
	Nomor   string `json:"nomor" validate:"required,min=3"`
	Tanggal string `json:"tanggal" validate:"required,datetime=2006-01-02"`
	Pejabat string `json:"pejabat" validate:"required,min=3"`
}

// VerifikatorRejectRequest: alasan wajib diisi.
type VerifikatorRejectRequest struct {
	AlasanTolak string `json:"alasan_tolak" validate:"required,min=5"`
}

// SuratKeteranganResponse: bentuk JSON yang dikirim keluar.
// Object key internal OSS tidak diekspos mentah, ditukar jadi signed URL
// sesuai kebutuhan di service.
type SuratKeteranganResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	Nama              string    `json:"nama"`
	NIK               string    `json:"nik"`
	TempatLahir       string    `json:"tempat_lahir"`
	TanggalLahir      string    `json:"tanggal_lahir"`
	JenisKelamin      string    `json:"jenis_kelamin"`
	Pendidikan        string    `json:"pendidikan"`
	Pekerjaan         string    `json:"pekerjaan"`
	Jabatan           string    `json:"jabatan,omitempty"`
	AlamatSesuaiKTP   string    `json:"alamat_sesuai_ktp"`
	AlamatDomisili    string    `json:"alamat_domisili"`
	AlasanPermohonan  string    `json:"alasan_permohonan"`
	TanggalPermohonan string    `json:"tanggal_permohonan"`
	Nomor             string    `json:"nomor,omitempty"`
	Tanggal           string    `json:"tanggal,omitempty"`
	Pejabat           string    `json:"pejabat,omitempty"`
	FotoURL           string    `json:"foto_url,omitempty"`
	BerkasURL         string    `json:"berkas_url,omitempty"`
	Status            string    `json:"status"`
	SudahDiverifikasi bool      `json:"sudah_diverifikasi_admin"`
	AlasanTolak       string    `json:"alasan_tolak,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func dateString(d datatypes.Date) string {
	t := time.Time(d)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func FromModel(m *model.SuratKeteranganModel) SuratKeteranganResponse {
	resp := SuratKeteranganResponse{
		ID:                m.ID,
		UserID:            m.UserID,
		Nama:              m.Nama,
		NIK:               m.NIK,
		TempatLahir:       m.TempatLahir,
		TanggalLahir:      dateString(m.TanggalLahir),
		JenisKelamin:      m.JenisKelamin,
		Pendidikan:        m.Pendidikan,
		Pekerjaan:         m.Pekerjaan,
		AlamatSesuaiKTP:   m.AlamatSesuaiKTP,
		AlamatDomisili:    m.AlamatDomisili,
		AlasanPermohonan:  m.AlasanPermohonan,
		TanggalPermohonan: dateString(m.TanggalPermohonan),
		FotoURL:           m.FotoURL,
		BerkasURL:         m.BerkasURL,
		Status:            m.Status,
		SudahDiverifikasi: m.CekVerifikator != nil && *m.CekVerifikator != "",
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.Jabatan != nil {
		resp.Jabatan = *m.Jabatan
	}
	if m.Nomor != nil {
		resp.Nomor = *m.Nomor
	}
	if m.Tanggal != nil {
		resp.Tanggal = dateString(*m.Tanggal)
	}
	if m.Pejabat != nil {
		resp.Pejabat = *m.Pejabat
	}
	if m.AlasanTolak != nil {
		resp.AlasanTolak = *m.AlasanTolak
	}
	return resp
}

func FromModels(list []model.SuratKeteranganModel) []SuratKeteranganResponse {
	out := make([]SuratKeteranganResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
