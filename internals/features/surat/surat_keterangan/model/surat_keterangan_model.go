// internals/features/surat/surat_keterangan/model/surat_keterangan_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status permohonan surat keterangan. String dipakai apa adanya di DB
// dan di frontend, jangan diubah tanpa migrasi.
const (
	StatusMenungguVerifikasi     = "Menunggu Verifikasi"
	StatusDisetujui              = "Disetujui"
	StatusDitolak                = "Ditolak"
	StatusDitolakOlehVerifikator = "Ditolak oleh Verifikator"
)

// TerminalStatus: permohonan di status ini tidak bisa berubah lagi.
func TerminalStatus(status string) bool {
	switch status {
	case StatusDisetujui, StatusDitolak, StatusDitolakOlehVerifikator:
		return true
	}
	return false
}

type SuratKeteranganModel struct {
	ID     uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;not null;index"`

	// Data pemohon
	Nama         string         `json:"nama" gorm:"column:nama;type:varchar(100);not null"`
	NIK          string         `json:"nik" gorm:"column:nik;type:char(16);not null"`
	TempatLahir  string         `json:"tempat_lahir" gorm:"column:tempat_lahir;type:varchar(100);not null"`
	TanggalLahir datatypes.Date `json:"tanggal_lahir" gorm:"column:tanggal_lahir;type:date;not null"`
	JenisKelamin string         `json:"jenis_kelamin" gorm:"column:jenis_kelamin;type:varchar(20);not null"`
	Pendidikan   string         `json:"pendidikan" gorm:"column:pendidikan;type:varchar(50);not null"`
	Pekerjaan    string         `json:"pekerjaan" gorm:"column:pekerjaan;type:varchar(100);not null"`
	Jabatan      *string        `json:"jabatan,omitempty" gorm:"column:jabatan;type:varchar(100)"`

	AlamatSesuaiKTP   string         `json:"alamat_sesuai_ktp" gorm:"column:alamat_sesuai_ktp;type:text;not null"`
	AlamatDomisili    string         `json:"alamat_domisili" gorm:"column:alamat_domisili;type:text;not null"`
	AlasanPermohonan  string         `json:"alasan_permohonan" gorm:"column:alasan_permohonan;type:text;not null"`
	TanggalPermohonan datatypes.Date `json:"tanggal_permohonan" gorm:"column:tanggal_permohonan;type:date;not null"`

	// Diisi admin saat menerbitkan surat
	Nomor   *string         `json:"nomor,omitempty" gorm:"column:nomor;type:varchar(100)"`
	Tanggal *datatypes.Date `json:"tanggal,omitempty" gorm:"column:tanggal;type:date"`
	Pejabat *string         `json:"pejabat,omitempty" gorm:"column:pejabat;type:varchar(100)"`

	// Object key di OSS
	FotoURL   string `json:"foto_url" gorm:"column:foto_url;type:text;not null"`
	BerkasURL string `json:"berkas_url" gorm:"column:berkas_url;type:text;not null"`

	Status string `json:"status" gorm:"column:status;type:varchar(40);not null;default:'Menunggu Verifikasi';index"`

	// CekVerifikator menampung object key PDF surat hasil render admin.
	// Terisi = permohonan masuk antrean verifikator. Hanya admin yang menulis kolom ini.
	CekVerifikator *string `json:"cek_verifikator,omitempty" gorm:"column:cek_verifikator;type:text"`

	// FileURL terisi saat verifikator menyetujui (disalin dari cek_verifikator).
	FileURL *string `json:"file_url,omitempty" gorm:"column:file_url;type:text"`

	// AlasanTolak wajib saat verifikator menolak.
	AlasanTolak *string `json:"alasan_tolak,omitempty" gorm:"column:alasan_tolak;type:text"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`
}

func (SuratKeteranganModel) TableName() string {
	return "surat_keterangan"
}
