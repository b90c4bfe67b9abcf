// internals/features/surat/surat_keterangan/controller/verifikator_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"suratku_backend/internals/features/surat/surat_keterangan/dto"
	"suratku_backend/internals/features/surat/surat_keterangan/service"
	helper "suratku_backend/internals/helpers"
)

// SuratKeteranganVerifikatorController: endpoint verifikator.
type SuratKeteranganVerifikatorController struct {
	Service *service.WorkflowService
}

func NewSuratKeteranganVerifikatorController(svc *service.WorkflowService) *SuratKeteranganVerifikatorController {
	return &SuratKeteranganVerifikatorController{Service: svc}
}

// GET /api/verifikator/surat-keterangan
func (ctl *SuratKeteranganVerifikatorController) ListQueue(c *fiber.Ctx) error {
	list, err := ctl.Service.ListMenungguVerifikasi(c.UserContext())
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Antrean verifikasi", list)
}

// GET /api/verifikator/surat-keterangan/:id/preview
func (ctl *SuratKeteranganVerifikatorController) Preview(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	url, err := ctl.Service.PreviewSuratURL(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Preview surat", fiber.Map{"url": url})
}

// POST /api/verifikator/surat-keterangan/:id/setujui
func (ctl *SuratKeteranganVerifikatorController) Approve(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctl.Service.VerifikatorApprove(c.UserContext(), id); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Permohonan disetujui", nil)
}

// POST /api/verifikator/surat-keterangan/:id/tolak {"alasan_tolak": "..."}
func (ctl *SuratKeteranganVerifikatorController) Reject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.VerifikatorRejectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Service.VerifikatorReject(c.UserContext(), id, req); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Permohonan ditolak verifikator", nil)
}
