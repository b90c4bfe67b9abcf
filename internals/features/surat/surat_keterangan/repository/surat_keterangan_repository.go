// internals/features/surat/surat_keterangan/repository/surat_keterangan_repository.go
package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"suratku_backend/internals/features/surat/surat_keterangan/model"
)

var (
	ErrNotFound = errors.New("surat keterangan tidak ditemukan")

	// ErrPreconditionFailed: update kondisional tidak mengenai baris apa pun.
	// Artinya status sudah berubah di belakang kita, atau id salah.
	ErrPreconditionFailed = errors.New("status permohonan sudah berubah, muat ulang data")
)

// ListFilter untuk daftar admin.
type ListFilter struct {
	Nama   string // ILIKE %nama%
	Status string // exact match, kosong = semua
	Limit  int
	Offset int
}

type SuratKeteranganRepository interface {
	Create(ctx context.Context, m *model.SuratKeteranganModel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.SuratKeteranganModel, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.SuratKeteranganModel, error)
	FindAll(ctx context.Context, f ListFilter) ([]model.SuratKeteranganModel, int64, error)
	FindMenungguVerifikasi(ctx context.Context) ([]model.SuratKeteranganModel, error)

	// Transisi status. Semua pakai precondition di WHERE; kalau baris tidak
	// kena, balikan ErrPreconditionFailed.
	SetCekVerifikator(ctx context.Context, id uuid.UUID, pdfKey, nomor string, tanggal time.Time, pejabat string) error
	AdminReject(ctx context.Context, id uuid.UUID) error
	VerifikatorApprove(ctx context.Context, id uuid.UUID) error
	VerifikatorReject(ctx context.Context, id uuid.UUID, alasan string) error
}

type gormSuratKeteranganRepository struct {
	db *gorm.DB
}

func NewSuratKeteranganRepository(db *gorm.DB) SuratKeteranganRepository {
	return &gormSuratKeteranganRepository{db: db}
}

func (r *gormSuratKeteranganRepository) Create(ctx context.Context, m *model.SuratKeteranganModel) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *gormSuratKeteranganRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.SuratKeteranganModel, error) {
	var m model.SuratKeteranganModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *gormSuratKeteranganRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]model.SuratKeteranganModel, error) {
	var list []model.SuratKeteranganModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *gormSuratKeteranganRepository) FindAll(ctx context.Context, f ListFilter) ([]model.SuratKeteranganModel, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.SuratKeteranganModel{})
	if nama := strings.TrimSpace(f.Nama); nama != "" {
		q = q.Where("nama ILIKE ?", "%"+nama+"%")
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.SuratKeteranganModel
	err := q.Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&list).Error
	return list, total, err
}

// FindMenungguVerifikasi: antrean verifikator. Yang masuk hanya permohonan
// yang suratnya sudah dirender admin dan belum diputus verifikator.
func (r *gormSuratKeteranganRepository) FindMenungguVerifikasi(ctx context.Context) ([]model.SuratKeteranganModel, error) {
	var list []model.SuratKeteranganModel
	err := r.db.WithContext(ctx).
		Where("cek_verifikator IS NOT NULL").
		Where("status NOT IN ?", []string{model.StatusDisetujui, model.StatusDitolakOlehVerifikator}).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

// SetCekVerifikator menulis hasil render admin: object key PDF + data surat.
// Status TIDAK berubah di sini; persetujuan tetap di tangan verifikator.
func (r *gormSuratKeteranganRepository) SetCekVerifikator(ctx context.Context, id uuid.UUID, pdfKey, nomor string, tanggal time.Time, pejabat string) error {
	res := r.db.WithContext(ctx).
		Model(&model.SuratKeteranganModel{}).
		Where("id = ?", id).
		Where("status = ?", model.StatusMenungguVerifikasi).
		Where("cek_verifikator IS NULL").
		Updates(map[string]any{
			"cek_verifikator": pdfKey,
			"nomor":           nomor,
			"tanggal":         datatypes.Date(tanggal),
			"pejabat":         pejabat,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPreconditionFailed
	}
	return nil
}

func (r *gormSuratKeteranganRepository) AdminReject(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.SuratKeteranganModel{}).
		Where("id = ?", id).
		Where("status = ?", model.StatusMenungguVerifikasi).
		Where("cek_verifikator IS NULL").
		Update("status", model.StatusDitolak)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPreconditionFailed
	}
	return nil
}

// VerifikatorApprove menyalin cek_verifikator ke file_url dan menandai
// Disetujui dalam SATU update kondisional, supaya dua verifikator yang
// balapan tidak saling timpa.
func (r *gormSuratKeteranganRepository) VerifikatorApprove(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Model(&model.SuratKeteranganModel{}).
		Where("id = ?", id).
		Where("cek_verifikator IS NOT NULL").
		Where("status NOT IN ?", []string{model.StatusDisetujui, model.StatusDitolakOlehVerifikator}).
		Updates(map[string]any{
			"file_url": gorm.Expr("cek_verifikator"),
			"status":   model.StatusDisetujui,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPreconditionFailed
	}
	return nil
}

func (r *gormSuratKeteranganRepository) VerifikatorReject(ctx context.Context, id uuid.UUID, alasan string) error {
	res := r.db.WithContext(ctx).
		Model(&model.SuratKeteranganModel{}).
		Where("id = ?", id).
		Where("cek_verifikator IS NOT NULL").
		Where("status NOT IN ?", []string{model.StatusDisetujui, model.StatusDitolakOlehVerifikator}).
		Updates(map[string]any{
			"status":       model.StatusDitolakOlehVerifikator,
			"alasan_tolak": alasan,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPreconditionFailed
	}
	return nil
}
