// internals/features/surat/surat_keterangan/controller/user_controller_test.go
package controller

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suratku_backend/internals/features/surat/surat_keterangan/dto"
	"suratku_backend/internals/features/surat/surat_keterangan/repository"
	"suratku_backend/internals/features/surat/surat_keterangan/service"
)

func statusUntukError(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/uji", func(c *fiber.Ctx) error {
		return writeServiceError(c, err)
	})
	resp, errUji := app.Test(httptest.NewRequest("GET", "/uji", nil))
	require.NoError(t, errUji)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestWriteServiceErrorValidasiDomainJadi400(t *testing.T) {
	req := dto.CreateSuratKeteranganRequest{
		Nama:         "Budi Santoso",
		JenisKelamin: "X",
		Pendidikan:   "S1 (Sarjana)",
	}
	err := req.ValidateDomain()
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, statusUntukError(t, err))
}

func TestWriteServiceErrorPemetaanStatus(t *testing.T) {
	kasus := []struct {
		nama   string
		err    error
		status int
	}{
		{"tanggal surat salah format", dto.NewValidationError("Tanggal surat tidak valid, gunakan format YYYY-MM-DD"), fiber.StatusBadRequest},
		{"tidak ditemukan", repository.ErrNotFound, fiber.StatusNotFound},
		{"prasyarat gagal", repository.ErrPreconditionFailed, fiber.StatusConflict},
		{"bukan milik user", service.ErrBukanMilikUser, fiber.StatusForbidden},
		{"foto tidak valid", service.ErrFotoInvalid, fiber.StatusBadRequest},
		{"error tak dikenal", errors.New("koneksi database putus"), fiber.StatusInternalServerError},
	}
	for _, k := range kasus {
		t.Run(k.nama, func(t *testing.T) {
			assert.Equal(t, k.status, statusUntukError(t, k.err))
		})
	}
}
