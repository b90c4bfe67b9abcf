// internals/features/surat/surat_keterangan/controller/admin_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"suratku_backend/internals/features/surat/surat_keterangan/dto"
	"suratku_backend/internals/features/surat/surat_keterangan/repository"
	"suratku_backend/internals/features/surat/surat_keterangan/service"
	helper "suratku_backend/internals/helpers"
)

// SuratKeteranganAdminController: endpoint petugas admin.
type SuratKeteranganAdminController struct {
	Service *service.WorkflowService
}

func NewSuratKeteranganAdminController(svc *service.WorkflowService) *SuratKeteranganAdminController {
	return &SuratKeteranganAdminController{Service: svc}
}

// GET /api/admin/surat-keterangan?nama=&status=&page=&per_page=
func (ctl *SuratKeteranganAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)
	f := repository.ListFilter{
		Nama:   c.Query("nama"),
		Status: c.Query("status"),
		Limit:  paging.Limit,
		Offset: paging.Offset,
	}
	list, total, err := ctl.Service.ListAll(c.UserContext(), f)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonList(c, "Daftar permohonan", list,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/admin/surat-keterangan/:id
func (ctl *SuratKeteranganAdminController) Detail(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	resp, err := ctl.Service.Detail(c.UserContext(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "Detail permohonan", resp)
}

// POST /api/admin/surat-keterangan/:id/clear
// Render surat + kirim ke antrean verifikator. Status belum berubah.
func (ctl *SuratKeteranganAdminController) Clear(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.AdminClearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	resp, err := ctl.Service.AdminClear(c.UserContext(), id, req)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Surat diterbitkan dan dikirim ke verifikator", resp)
}

// POST /api/admin/surat-keterangan/:id/tolak
func (ctl *SuratKeteranganAdminController) Reject(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := ctl.Service.AdminReject(c.UserContext(), id); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Permohonan ditolak", nil)
}
