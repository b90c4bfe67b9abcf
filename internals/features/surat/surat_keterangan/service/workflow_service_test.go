package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"suratku_backend/internals/features/surat/surat_keterangan/dto"
	"suratku_backend/internals/features/surat/surat_keterangan/model"
	"suratku_backend/internals/features/surat/surat_keterangan/repository"
	"suratku_backend/internals/helpers/oss"
)

// ===== repo fake: semantik sama dengan implementasi GORM, tapi in-memory =====

type fakeRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]*model.SuratKeteranganModel
	createErr error
	setCekErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uuid.UUID]*model.SuratKeteranganModel{}}
}

func (f *fakeRepo) Create(_ context.Context, m *model.SuratKeteranganModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	cp := *m
	f.rows[m.ID] = &cp
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.SuratKeteranganModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]model.SuratKeteranganModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.SuratKeteranganModel
	for _, m := range f.rows {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindAll(_ context.Context, fl repository.ListFilter) ([]model.SuratKeteranganModel, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.SuratKeteranganModel
	for _, m := range f.rows {
		if fl.Nama != "" && !strings.Contains(strings.ToLower(m.Nama), strings.ToLower(fl.Nama)) {
			continue
		}
		if fl.Status != "" && m.Status != fl.Status {
			continue
		}
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) FindMenungguVerifikasi(_ context.Context) ([]model.SuratKeteranganModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.SuratKeteranganModel
	for _, m := range f.rows {
		if m.CekVerifikator == nil {
			continue
		}
		if m.Status == model.StatusDisetujui || m.Status == model.StatusDitolakOlehVerifikator {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeRepo) SetCekVerifikator(_ context.Context, id uuid.UUID, pdfKey, nomor string, tanggal time.Time, pejabat string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setCekErr != nil {
		return f.setCekErr
	}
	m, ok := f.rows[id]
	if !ok || m.Status != model.StatusMenungguVerifikasi || m.CekVerifikator != nil {
		return repository.ErrPreconditionFailed
	}
	d := datatypes.Date(tanggal)
	m.CekVerifikator = &pdfKey
	m.Nomor = &nomor
	m.Tanggal = &d
	m.Pejabat = &pejabat
	return nil
}

func (f *fakeRepo) AdminReject(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok || m.Status != model.StatusMenungguVerifikasi || m.CekVerifikator != nil {
		return repository.ErrPreconditionFailed
	}
	m.Status = model.StatusDitolak
	return nil
}

func (f *fakeRepo) VerifikatorApprove(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok || m.CekVerifikator == nil ||
		m.Status == model.StatusDisetujui || m.Status == model.StatusDitolakOlehVerifikator {
		return repository.ErrPreconditionFailed
	}
	cp := *m.CekVerifikator
	m.FileURL = &cp
	m.Status = model.StatusDisetujui
	return nil
}

func (f *fakeRepo) VerifikatorReject(_ context.Context, id uuid.UUID, alasan string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok || m.CekVerifikator == nil ||
		m.Status == model.StatusDisetujui || m.Status == model.StatusDitolakOlehVerifikator {
		return repository.ErrPreconditionFailed
	}
	m.Status = model.StatusDitolakOlehVerifikator
	m.AlasanTolak = &alasan
	return nil
}

// ===== storage fake =====

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string

	failUploadContains string
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (s *memStorage) UploadStream(_ context.Context, key string, r io.Reader, _ string) error {
	if s.failUploadContains != "" && strings.Contains(key, s.failUploadContains) {
		return fmt.Errorf("upload %s ditolak", key)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = b
	return nil
}

func (s *memStorage) UploadFromFormFile(ctx context.Context, dir string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	key := dir + "/" + fh.Filename
	if err := s.UploadStream(ctx, key, src, ""); err != nil {
		return "", err
	}
	return key, nil
}

func (s *memStorage) SignedURL(key string, ttl time.Duration) (string, error) {
	return fmt.Sprintf("https://oss.test/%s?expires=%d", key, int(ttl.Seconds())), nil
}

func (s *memStorage) PublicURL(key string) string {
	return "https://oss.test/" + key
}

func (s *memStorage) DeleteObject(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

// ===== pdf fake =====

type fakePDF struct {
	mu   sync.Mutex
	last SuratPDFData
	err  error
}

func (p *fakePDF) RenderSuratKeterangan(d SuratPDFData) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	p.last = d
	return []byte("%PDF-1.4\nsurat " + d.Nomor), nil
}

// ===== helpers =====

type noNetworkTransport struct{}

func (noNetworkTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("no network in tests: %s", req.URL)
}

func newTestService(repo repository.SuratKeteranganRepository, st *memStorage, pdf PDFRenderer) *WorkflowService {
	svc := NewWorkflowService(repo, st, pdf)
	svc.httpClient = &http.Client{Transport: noNetworkTransport{}}
	return svc
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
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

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 150, B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func validRequest() dto.CreateSuratKeteranganRequest {
	return dto.CreateSuratKeteranganRequest{
		Nama:              "Budi Santoso",
		NIK:               "3201012505900001",
		TempatLahir:       "Bogor",
		TanggalLahir:      "1990-05-25",
		JenisKelamin:      "Laki-laki",
		Pendidikan:        "S1 (Sarjana)",
		Pekerjaan:         "Wiraswasta",
		AlamatSesuaiKTP:   "Jl. Raya Pajajaran No. 10, Bogor",
		AlamatDomisili:    "Jl. Tegar Beriman No. 21, Cibinong",
		AlasanPermohonan:  "pendaftaran calon anggota legislatif tahun 2026.",
		TanggalPermohonan: "2026-01-10",
	}
}

func submit(t *testing.T, svc *WorkflowService, repo *fakeRepo, userID uuid.UUID) uuid.UUID {
	t.Helper()
	foto := makeFileHeader(t, "pasfoto.png", tinyPNG(t))
	berkas := makeFileHeader(t, "ktp.pdf", []byte("%PDF-1.4 berkas"))
	resp, err := svc.Create(context.Background(), userID, validRequest(), foto, berkas)
	require.NoError(t, err)
	return resp.ID
}

func adminClearReq() dto.AdminClearRequest {
	return dto.AdminClearRequest{
		Nomor:   "123/SK/2026/PN.Cbi",
		Tanggal: "2026-01-15",
		Pejabat: "Dr. Hakim Contoh, S.H., M.H.",
	}
}

// ===== tests =====

func TestCreateBerhasil(t *testing.T) {
	repo := newFakeRepo()
	st := newMemStorage()
	svc := newTestService(repo, st, &fakePDF{})

	id := submit(t, svc, repo, uuid.New())

	m, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, model.StatusMenungguVerifikasi, m.Status)
	assert.Nil(t, m.CekVerifikator)
	assert.Nil(t, m.FileURL)
	assert.True(t, strings.HasPrefix(m.FotoURL, "foto-user/"))
	assert.True(t, strings.HasPrefix(m.BerkasURL, "berkas-pendukung/"))

	// foto dinormalisasi ke JPEG
	jpg := st.objects[m.FotoURL]
	require.NotEmpty(t, jpg)
	assert.Equal(t, []byte{0xFF, 0xD8}, jpg[:2])
}

func TestCreateGagalSimpanMembersihkanUpload(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = fmt.Errorf("db down")
	st := newMemStorage()
	svc := newTestService(repo, st, &fakePDF{})

	foto := makeFileHeader(t, "pasfoto.png", tinyPNG(t))
	berkas := makeFileHeader(t, "ktp.pdf", []byte("%PDF-1.4 berkas"))
	_, err := svc.Create(context.Background(), uuid.New(), validRequest(), foto, berkas)
	require.Error(t, err)

	assert.Empty(t, st.objects, "tidak boleh ada object tersisa kalau insert gagal")
	assert.Len(t, st.deleted, 2)
}

func TestCreateTolakLampiranTidakValid(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()

	pngBytes := tinyPNG(t)
	berkasPDF := makeFileHeader(t, "ktp.pdf", []byte("%PDF-1.4"))

	// ekstensi foto salah
	_, err := svc.Create(ctx, uuid.New(), validRequest(), makeFileHeader(t, "foto.gif", pngBytes), berkasPDF)
	assert.ErrorIs(t, err, ErrFotoInvalid)

	// berkas bukan PDF
	_, err = svc.Create(ctx, uuid.New(), validRequest(), makeFileHeader(t, "foto.png", pngBytes), makeFileHeader(t, "ktp.docx", []byte("x")))
	assert.ErrorIs(t, err, ErrBerkasInvalid)

	assert.Empty(t, repo.rows)
}

func TestCreateTolakFormTidakValid(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()
	foto := makeFileHeader(t, "foto.png", tinyPNG(t))
	berkas := makeFileHeader(t, "ktp.pdf", []byte("%PDF-1.4"))

	t.Run("nik bukan 16 digit", func(t *testing.T) {
		req := validRequest()
		req.NIK = "12345"
		_, err := svc.Create(ctx, uuid.New(), req, foto, berkas)
		var vErrs validator.ValidationErrors
		assert.ErrorAs(t, err, &vErrs)
	})

	t.Run("nama mengandung angka", func(t *testing.T) {
		req := validRequest()
		req.Nama = "Budi 99"
		_, err := svc.Create(ctx, uuid.New(), req, foto, berkas)
		assert.ErrorContains(t, err, "huruf dan spasi")
	})

	t.Run("pendidikan di luar daftar", func(t *testing.T) {
		req := validRequest()
		req.Pendidikan = "S4"
		_, err := svc.Create(ctx, uuid.New(), req, foto, berkas)
		assert.ErrorContains(t, err, "Pendidikan")
	})

	assert.Empty(t, repo.rows)
}

func TestAdminClearMenulisCekVerifikatorTanpaUbahStatus(t *testing.T) {
	repo := newFakeRepo()
	st := newMemStorage()
	pdf := &fakePDF{}
	svc := newTestService(repo, st, pdf)
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())

	resp, err := svc.AdminClear(ctx, id, adminClearReq())
	require.NoError(t, err)

	m, _ := repo.FindByID(ctx, id)
	assert.Equal(t, model.StatusMenungguVerifikasi, m.Status, "status tidak boleh berubah saat admin menerbitkan surat")
	require.NotNil(t, m.CekVerifikator)
	assert.True(t, strings.HasPrefix(*m.CekVerifikator, "surat-keterangan/surat_keterangan_Budi_Santoso_"))
	assert.True(t, strings.HasSuffix(*m.CekVerifikator, ".pdf"))
	assert.Nil(t, m.FileURL, "file_url baru terisi setelah verifikator setuju")
	require.NotNil(t, m.Nomor)
	assert.Equal(t, "123/SK/2026/PN.Cbi", *m.Nomor)

	// PDF benar-benar terupload
	assert.True(t, bytes.HasPrefix(st.objects[*m.CekVerifikator], []byte("%PDF")))

	// data render diambil dari permohonan
	assert.Equal(t, "Budi Santoso", pdf.last.Nama)
	assert.Equal(t, "123/SK/2026/PN.Cbi", pdf.last.Nomor)

	assert.True(t, resp.SudahDiverifikasi)
}

func TestAdminClearTanggalTidakValid(t *testing.T) {
	repo := newFakeRepo()
	st := newMemStorage()
	svc := newTestService(repo, st, &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())

	req := adminClearReq()
	req.Tanggal = "15-01-2026"
	_, err := svc.AdminClear(ctx, id, req)

	var vErr *dto.ValidationError
	require.ErrorAs(t, err, &vErr)

	m, _ := repo.FindByID(ctx, id)
	assert.Nil(t, m.CekVerifikator)
	assert.Equal(t, model.StatusMenungguVerifikasi, m.Status)
}

func TestAdminClearGagalRenderTidakMengubahData(t *testing.T) {
	repo := newFakeRepo()
	st := newMemStorage()
	pdf := &fakePDF{err: fmt.Errorf("font tidak termuat")}
	svc := newTestService(repo, st, pdf)
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())

	_, err := svc.AdminClear(ctx, id, adminClearReq())
	require.Error(t, err)

	m, _ := repo.FindByID(ctx, id)
	assert.Nil(t, m.CekVerifikator)
	assert.Nil(t, m.Nomor)
	assert.Equal(t, model.StatusMenungguVerifikasi, m.Status)
	for key := range st.objects {
		assert.False(t, strings.HasPrefix(key, oss.DirSuratKeterangan+"/"),
			"render gagal tidak boleh menyisakan PDF di storage: %s", key)
	}
}

func TestAdminClearGagalUploadPDFTidakMengubahData(t *testing.T) {
	repo := newFakeRepo()
	st := newMemStorage()
	svc := newTestService(repo, st, &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())
	st.failUploadContains = oss.DirSuratKeterangan + "/"

	_, err := svc.AdminClear(ctx, id, adminClearReq())
	require.Error(t, err)

	m, _ := repo.FindByID(ctx, id)
	assert.Nil(t, m.CekVerifikator)
	assert.Nil(t, m.Nomor)
	assert.Equal(t, model.StatusMenungguVerifikasi, m.Status)

	queue, err := repo.FindMenungguVerifikasi(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue, "permohonan belum boleh masuk antrean verifikator")
}

func TestAdminClearDuaKaliDitolak(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())
	_, err := svc.AdminClear(ctx, id, adminClearReq())
	require.NoError(t, err)

	_, err = svc.AdminClear(ctx, id, adminClearReq())
	assert.ErrorIs(t, err, repository.ErrPreconditionFailed)
}

func TestAdminClearKalahBalapanMembersihkanPDF(t *testing.T) {
	repo := newFakeRepo()
	st := newMemStorage()
	svc := newTestService(repo, st, &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())
	// simulasi: precheck lolos tapi update kondisional kalah balapan
	repo.setCekErr = repository.ErrPreconditionFailed

	_, err := svc.AdminClear(ctx, id, adminClearReq())
	assert.ErrorIs(t, err, repository.ErrPreconditionFailed)

	for key := range st.objects {
		assert.False(t, strings.HasPrefix(key, "surat-keterangan/"), "PDF yatim harus dihapus: %s", key)
	}
}

func TestAdminRejectHanyaSebelumTerbit(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())
	require.NoError(t, svc.AdminReject(ctx, id))
	m, _ := repo.FindByID(ctx, id)
	assert.Equal(t, model.StatusDitolak, m.Status)

	// sudah terbit → admin tidak bisa menolak lagi
	id2 := submit(t, svc, repo, uuid.New())
	_, err := svc.AdminClear(ctx, id2, adminClearReq())
	require.NoError(t, err)
	assert.ErrorIs(t, svc.AdminReject(ctx, id2), repository.ErrPreconditionFailed)
}

func TestAntreanVerifikator(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()

	baru := submit(t, svc, repo, uuid.New())
	terbit := submit(t, svc, repo, uuid.New())
	_, err := svc.AdminClear(ctx, terbit, adminClearReq())
	require.NoError(t, err)

	queue, err := svc.ListMenungguVerifikasi(ctx)
	require.NoError(t, err)
	require.Len(t, queue, 1, "hanya permohonan yang suratnya sudah dirender yang masuk antrean")
	assert.Equal(t, terbit, queue[0].ID)
	assert.NotEqual(t, baru, queue[0].ID)

	// setelah diputus, keluar dari antrean
	require.NoError(t, svc.VerifikatorApprove(ctx, terbit))
	queue, err = svc.ListMenungguVerifikasi(ctx)
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestVerifikatorApproveMenyalinReferensiSurat(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())
	_, err := svc.AdminClear(ctx, id, adminClearReq())
	require.NoError(t, err)

	require.NoError(t, svc.VerifikatorApprove(ctx, id))

	m, _ := repo.FindByID(ctx, id)
	assert.Equal(t, model.StatusDisetujui, m.Status)
	require.NotNil(t, m.FileURL)
	assert.Equal(t, *m.CekVerifikator, *m.FileURL)

	// status final tidak bisa diputus ulang
	assert.ErrorIs(t, svc.VerifikatorApprove(ctx, id), repository.ErrPreconditionFailed)
	assert.ErrorIs(t, svc.VerifikatorReject(ctx, id, dto.VerifikatorRejectRequest{AlasanTolak: "berkas kurang jelas"}), repository.ErrPreconditionFailed)
}

func TestVerifikatorRejectWajibAlasan(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())
	_, err := svc.AdminClear(ctx, id, adminClearReq())
	require.NoError(t, err)

	err = svc.VerifikatorReject(ctx, id, dto.VerifikatorRejectRequest{})
	var vErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &vErrs)

	require.NoError(t, svc.VerifikatorReject(ctx, id, dto.VerifikatorRejectRequest{AlasanTolak: "tanda tangan berkas tidak sesuai"}))
	m, _ := repo.FindByID(ctx, id)
	assert.Equal(t, model.StatusDitolakOlehVerifikator, m.Status)
	require.NotNil(t, m.AlasanTolak)
	assert.Equal(t, "tanda tangan berkas tidak sesuai", *m.AlasanTolak)
	assert.Nil(t, m.FileURL)
}

func TestVerifikatorTidakBisaMemutusSebelumSuratTerbit(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()

	id := submit(t, svc, repo, uuid.New())
	assert.ErrorIs(t, svc.VerifikatorApprove(ctx, id), repository.ErrPreconditionFailed)
	assert.ErrorIs(t, svc.VerifikatorReject(ctx, id, dto.VerifikatorRejectRequest{AlasanTolak: "berkas tidak lengkap"}), repository.ErrPreconditionFailed)
}

func TestGetDownloadLink(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()
	pemilik := uuid.New()

	id := submit(t, svc, repo, pemilik)

	// belum disetujui → belum ada berkas
	_, err := svc.GetDownloadLink(ctx, id, &pemilik)
	assert.ErrorIs(t, err, ErrSuratBelumTerbit)

	_, err = svc.AdminClear(ctx, id, adminClearReq())
	require.NoError(t, err)
	require.NoError(t, svc.VerifikatorApprove(ctx, id))

	// bukan pemilik → ditolak
	orangLain := uuid.New()
	_, err = svc.GetDownloadLink(ctx, id, &orangLain)
	assert.ErrorIs(t, err, ErrBukanMilikUser)

	url, err := svc.GetDownloadLink(ctx, id, &pemilik)
	require.NoError(t, err)
	assert.Contains(t, url, "surat-keterangan/surat_keterangan_Budi_Santoso_")
	assert.Contains(t, url, "expires=60")
}

func TestDetailMilikMenolakPermohonanOrangLain(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, newMemStorage(), &fakePDF{})
	ctx := context.Background()
	pemilik := uuid.New()

	id := submit(t, svc, repo, pemilik)

	_, err := svc.DetailMilik(ctx, id, uuid.New())
	assert.ErrorIs(t, err, ErrBukanMilikUser)

	resp, err := svc.DetailMilik(ctx, id, pemilik)
	require.NoError(t, err)
	assert.Contains(t, resp.FotoURL, "https://oss.test/foto-user/")
}

// Alur lengkap: pengajuan → terbit → disetujui → unduh.
func TestAlurLengkapSampaiUnduh(t *testing.T) {
	repo := newFakeRepo()
	st := newMemStorage()
	svc := newTestService(repo, st, &fakePDF{})
	ctx := context.Background()
	pemohon := uuid.New()

	id := submit(t, svc, repo, pemohon)

	riwayat, err := svc.ListByUser(ctx, pemohon)
	require.NoError(t, err)
	require.Len(t, riwayat, 1)
	assert.Equal(t, model.StatusMenungguVerifikasi, riwayat[0].Status)

	_, err = svc.AdminClear(ctx, id, adminClearReq())
	require.NoError(t, err)

	previewURL, err := svc.PreviewSuratURL(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, previewURL, "surat-keterangan/")

	require.NoError(t, svc.VerifikatorApprove(ctx, id))

	url, err := svc.GetDownloadLink(ctx, id, &pemohon)
	require.NoError(t, err)
	assert.Contains(t, url, ".pdf")

	riwayat, err = svc.ListByUser(ctx, pemohon)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDisetujui, riwayat[0].Status)
}
