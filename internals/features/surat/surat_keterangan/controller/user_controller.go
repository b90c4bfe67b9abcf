// internals/features/surat/surat_keterangan/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"suratku_backend/internals/features/surat/surat_keterangan/dto"
	"suratku_backend/internals/features/surat/surat_keterangan/repository"
	"suratku_backend/internals/features/surat/surat_keterangan/service"
	helper "suratku_backend/internals/helpers"
)

// SuratKeteranganUserController: endpoint milik pemohon.
type SuratKeteranganUserController struct {
	Service *service.WorkflowService
}

func NewSuratKeteranganUserController(svc *service.WorkflowService) *SuratKeteranganUserController {
	return &SuratKeteranganUserController{Service: svc}
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// writeServiceError memetakan error service/repo ke response JSON.
func writeServiceError(c *fiber.Ctx, err error) error {
	var vErrs validator.ValidationErrors
	var dErr *dto.ValidationError
	switch {
	case errors.As(err, &vErrs):
		return helper.JsonValidationError(c, err)
	case errors.As(err, &dErr):
		return helper.JsonError(c, fiber.StatusBadRequest, dErr.Message)
	case errors.Is(err, repository.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrPreconditionFailed):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBukanMilikUser):
		return helper.JsonError(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrFotoInvalid),
		errors.Is(err, service.ErrBerkasInvalid),
		errors.Is(err, service.ErrSuratBelumTerbit):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

// POST /api/surat-keterangan  (multipart: field form + foto + berkas)
func (ctl *SuratKeteranganUserController) Create(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateSuratKeteranganRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	foto, err := c.FormFile("foto")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Pasfoto wajib dilampirkan")
	}
	berkas, err := c.FormFile("berkas")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Berkas pendukung wajib dilampirkan")
	}

	resp, err := ctl.Service.Create(c.UserContext(), userID, req, foto, berkas)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonCreated(c, "Permohonan surat keterangan terkirim", resp)
}

// GET /api/surat-keterangan/saya
func (ctl *SuratKeteranganUserController) ListMine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	list, err := ctl.Service.ListByUser(c.UserContext(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Riwayat permohonan", list)
}

// GET /api/surat-keterangan/saya/:id
func (ctl *SuratKeteranganUserController) DetailMine(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	resp, err := ctl.Service.DetailMilik(c.UserContext(), id, userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Detail permohonan", resp)
}

// GET /api/surat-keterangan/saya/:id/download
// Signed URL hanya berumur 60 detik, frontend langsung redirect.
func (ctl *SuratKeteranganUserController) Download(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	url, err := ctl.Service.GetDownloadLink(c.UserContext(), id, &userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Link unduhan surat", fiber.Map{"url": url, "berlaku_detik": 60})
}
