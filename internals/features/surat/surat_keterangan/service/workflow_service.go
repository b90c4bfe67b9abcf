// internals/features/surat/surat_keterangan/service/workflow_service.go
package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"suratku_backend/internals/features/surat/surat_keterangan/dto"
	"suratku_backend/internals/features/surat/surat_keterangan/model"
	"suratku_backend/internals/features/surat/surat_keterangan/repository"
	"suratku_backend/internals/helpers/oss"
)

const (
	maxFotoBytes   = 2 << 20  // 2MB
	maxBerkasBytes = 10 << 20 // 10MB

	fotoSignedTTL     = time.Hour
	downloadSignedTTL = 60 * time.Second
)

var (
	ErrFotoInvalid      = errors.New("foto harus JPG/JPEG/PNG dan maksimal 2MB")
	ErrBerkasInvalid    = errors.New("berkas pendukung harus PDF dan maksimal 10MB")
	ErrSuratBelumTerbit = errors.New("surat belum diterbitkan, belum ada berkas untuk diunduh")
	ErrBukanMilikUser   = errors.New("permohonan ini bukan milik Anda")
)

// WorkflowService menjalankan alur pengajuan sampai penerbitan surat.
// Semua dependensi lewat interface supaya gampang dites.
type WorkflowService struct {
	repo     repository.SuratKeteranganRepository
	storage  oss.Storage
	pdf      PDFRenderer
	validate *validator.Validate

	// httpClient dipakai ambil pasfoto lewat signed URL saat render surat.
	httpClient *http.Client
}

func NewWorkflowService(repo repository.SuratKeteranganRepository, storage oss.Storage, pdf PDFRenderer) *WorkflowService {
	return &WorkflowService{
		repo:       repo,
		storage:    storage,
		pdf:        pdf,
		validate:   validator.New(),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// ========================== USER ==========================

// Create memvalidasi form + lampiran, upload keduanya, lalu insert.
// Kalau insert gagal, object yang telanjur terupload dihapus lagi:
// tidak boleh ada permohonan setengah jadi.
func (s *WorkflowService) Create(ctx context.Context, userID uuid.UUID, req dto.CreateSuratKeteranganRequest, foto, berkas *multipart.FileHeader) (*dto.SuratKeteranganResponse, error) {
	if err := s.validate.Struct(&req); err != nil {
		return nil, err
	}
	if err := req.ValidateDomain(); err != nil {
		return nil, err
	}
	if err := validateFoto(foto); err != nil {
		return nil, err
	}
	if err := validateBerkas(berkas); err != nil {
		return nil, err
	}

	// Pasfoto dinormalisasi ke JPEG supaya konsisten dipakai render surat.
	fotoJPEG, err := oss.NormalizeFotoJPEG(foto)
	if err != nil {
		return nil, ErrFotoInvalid
	}
	fotoKey := fmt.Sprintf("%s/%s_%d.jpg", oss.DirFotoUser, userID, time.Now().UnixMilli())
	if err := s.storage.UploadStream(ctx, fotoKey, bytes.NewReader(fotoJPEG), "image/jpeg"); err != nil {
		return nil, fmt.Errorf("upload foto: %w", err)
	}

	berkasKey, err := s.storage.UploadFromFormFile(ctx, oss.DirBerkasPendukung, berkas)
	if err != nil {
		s.cleanupObjects(ctx, fotoKey)
		return nil, fmt.Errorf("upload berkas pendukung: %w", err)
	}

	m, err := req.ToModel(userID, fotoKey, berkasKey)
	if err != nil {
		s.cleanupObjects(ctx, fotoKey, berkasKey)
		return nil, err
	}
	if err := s.repo.Create(ctx, m); err != nil {
		s.cleanupObjects(ctx, fotoKey, berkasKey)
		return nil, fmt.Errorf("simpan permohonan: %w", err)
	}

	resp := dto.FromModel(m)
	return &resp, nil
}

// ListByUser mengembalikan riwayat permohonan milik user, terbaru dulu.
func (s *WorkflowService) ListByUser(ctx context.Context, userID uuid.UUID) ([]dto.SuratKeteranganResponse, error) {
	list, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(list), nil
}

// Detail mengembalikan satu permohonan dengan foto_url sudah berupa signed URL
// (1 jam) supaya preview bisa langsung menampilkan pasfoto.
func (s *WorkflowService) Detail(ctx context.Context, id uuid.UUID) (*dto.SuratKeteranganResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.FromModel(m)
	if m.FotoURL != "" {
		if url, err := s.storage.SignedURL(m.FotoURL, fotoSignedTTL); err == nil {
			resp.FotoURL = url
		}
	}
	if m.BerkasURL != "" {
		if url, err := s.storage.SignedURL(m.BerkasURL, fotoSignedTTL); err == nil {
			resp.BerkasURL = url
		}
	}
	return &resp, nil
}

// DetailMilik seperti Detail tapi menolak kalau bukan milik userID.
func (s *WorkflowService) DetailMilik(ctx context.Context, id, userID uuid.UUID) (*dto.SuratKeteranganResponse, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, ErrBukanMilikUser
	}
	return s.Detail(ctx, id)
}

// GetDownloadLink mengembalikan signed URL berumur pendek (60 detik) untuk
// surat yang sudah disetujui. ownerID nil = akses petugas, tidak dicek pemilik.
func (s *WorkflowService) GetDownloadLink(ctx context.Context, id uuid.UUID, ownerID *uuid.UUID) (string, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if ownerID != nil && m.UserID != *ownerID {
		return "", ErrBukanMilikUser
	}
	if m.FileURL == nil || *m.FileURL == "" {
		return "", ErrSuratBelumTerbit
	}
	return s.storage.SignedURL(*m.FileURL, downloadSignedTTL)
}

// ========================== ADMIN ==========================

// ListAll untuk dashboard admin, bisa difilter nama (ILIKE) dan status.
func (s *WorkflowService) ListAll(ctx context.Context, f repository.ListFilter) ([]dto.SuratKeteranganResponse, int64, error) {
	list, total, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return dto.FromModels(list), total, nil
}

// AdminClear merender PDF surat, upload ke OSS, lalu menulis object key-nya ke
// cek_verifikator. Status TIDAK berubah: permohonan baru dianggap masuk antrean
// verifikator karena cek_verifikator terisi. Kalau langkah terakhir gagal
// (permohonan keburu diputus), PDF yang telanjur terupload dihapus lagi.
func (s *WorkflowService) AdminClear(ctx context.Context, id uuid.UUID, req dto.AdminClearRequest) (*dto.SuratKeteranganResponse, error) {
	if err := s.validate.Struct(&req); err != nil {
		return nil, err
	}
	tanggal, err := time.Parse("2006-01-02", req.Tanggal)
	if err != nil {
		return nil, dto.NewValidationError("Tanggal surat tidak valid, gunakan format YYYY-MM-DD")
	}

	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Status != model.StatusMenungguVerifikasi || m.CekVerifikator != nil {
		return nil, repository.ErrPreconditionFailed
	}

	pdfBytes, err := s.pdf.RenderSuratKeterangan(SuratPDFData{
		Nama:             m.Nama,
		JenisKelamin:     m.JenisKelamin,
		TempatLahir:      m.TempatLahir,
		TanggalLahir:     time.Time(m.TanggalLahir),
		Pekerjaan:        m.Pekerjaan,
		AlamatSesuaiKTP:  m.AlamatSesuaiKTP,
		Pendidikan:       m.Pendidikan,
		Nomor:            req.Nomor,
		AlasanPermohonan: m.AlasanPermohonan,
		Tanggal:          tanggal,
		Pejabat:          req.Pejabat,
		FotoJPEG:         s.fetchFoto(ctx, m.FotoURL),
	})
	if err != nil {
		return nil, err
	}

	pdfKey := fmt.Sprintf("%s/surat_keterangan_%s_%d.pdf",
		oss.DirSuratKeterangan,
		strings.ReplaceAll(strings.TrimSpace(m.Nama), " ", "_"),
		time.Now().UnixMilli())
	if err := s.storage.UploadStream(ctx, pdfKey, bytes.NewReader(pdfBytes), "application/pdf"); err != nil {
		return nil, fmt.Errorf("upload surat: %w", err)
	}

	if err := s.repo.SetCekVerifikator(ctx, id, pdfKey, req.Nomor, tanggal, req.Pejabat); err != nil {
		s.cleanupObjects(ctx, pdfKey)
		return nil, err
	}

	return s.Detail(ctx, id)
}

// AdminReject menolak permohonan yang belum diterbitkan suratnya.
func (s *WorkflowService) AdminReject(ctx context.Context, id uuid.UUID) error {
	return s.repo.AdminReject(ctx, id)
}

// ========================== VERIFIKATOR ==========================

// ListMenungguVerifikasi: antrean verifikator, urut pengajuan tertua dulu.
func (s *WorkflowService) ListMenungguVerifikasi(ctx context.Context) ([]dto.SuratKeteranganResponse, error) {
	list, err := s.repo.FindMenungguVerifikasi(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromModels(list), nil
}

// PreviewSuratURL memberi verifikator link baca surat hasil render admin.
func (s *WorkflowService) PreviewSuratURL(ctx context.Context, id uuid.UUID) (string, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if m.CekVerifikator == nil || *m.CekVerifikator == "" {
		return "", ErrSuratBelumTerbit
	}
	return s.storage.SignedURL(*m.CekVerifikator, fotoSignedTTL)
}

// VerifikatorApprove menyalin cek_verifikator ke file_url + set Disetujui.
func (s *WorkflowService) VerifikatorApprove(ctx context.Context, id uuid.UUID) error {
	return s.repo.VerifikatorApprove(ctx, id)
}

// VerifikatorReject menolak dengan alasan wajib.
func (s *WorkflowService) VerifikatorReject(ctx context.Context, id uuid.UUID, req dto.VerifikatorRejectRequest) error {
	if err := s.validate.Struct(&req); err != nil {
		return err
	}
	return s.repo.VerifikatorReject(ctx, id, strings.TrimSpace(req.AlasanTolak))
}

// ========================== internal ==========================

// fetchFoto mengambil pasfoto lewat signed URL. Gagal ambil foto tidak
// menggagalkan render, surat tetap jadi dengan kotak foto kosong.
func (s *WorkflowService) fetchFoto(ctx context.Context, fotoKey string) []byte {
	if fotoKey == "" {
		return nil
	}
	url, err := s.storage.SignedURL(fotoKey, fotoSignedTTL)
	if err != nil {
		log.Printf("[surat] sign foto %s gagal: %v", fotoKey, err)
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("[surat] ambil foto %s gagal: %v", fotoKey, err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("[surat] ambil foto %s: status %d", fotoKey, resp.StatusCode)
		return nil
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxFotoBytes*4))
	if err != nil {
		return nil
	}
	return b
}

func (s *WorkflowService) cleanupObjects(ctx context.Context, keys ...string) {
	for _, k := range keys {
		if err := s.storage.DeleteObject(ctx, k); err != nil {
			log.Printf("[surat] cleanup object %s gagal: %v", k, err)
		}
	}
}

func validateFoto(fh *multipart.FileHeader) error {
	if fh == nil || fh.Size == 0 || fh.Size > maxFotoBytes {
		return ErrFotoInvalid
	}
	if !oss.IsAllowedFotoName(fh.Filename) {
		return ErrFotoInvalid
	}
	return nil
}

func validateBerkas(fh *multipart.FileHeader) error {
	if fh == nil || fh.Size == 0 || fh.Size > maxBerkasBytes {
		return ErrBerkasInvalid
	}
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return ErrBerkasInvalid
	}
	return nil
}
