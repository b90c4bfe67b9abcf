// internals/features/surat/surat_keterangan/route/surat_keterangan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suratku_backend/internals/constants"
	suratController "suratku_backend/internals/features/surat/surat_keterangan/controller"
	"suratku_backend/internals/features/surat/surat_keterangan/repository"
	suratService "suratku_backend/internals/features/surat/surat_keterangan/service"
	"suratku_backend/internals/helpers/oss"
	authMw "suratku_backend/internals/middlewares/auth"
)

// SuratKeteranganRoutes memasang seluruh endpoint surat keterangan.
// Semua endpoint butuh login; pembagian role lewat OnlyRoles.
func SuratKeteranganRoutes(api fiber.Router, db *gorm.DB, storage oss.Storage) {
	repo := repository.NewSuratKeteranganRepository(db)
	svc := suratService.NewWorkflowService(repo, storage, suratService.NewPDFRenderer())

	userCtl := suratController.NewSuratKeteranganUserController(svc)
	adminCtl := suratController.NewSuratKeteranganAdminController(svc)
	verifCtl := suratController.NewSuratKeteranganVerifikatorController(svc)

	auth := authMw.AuthMiddleware(db)

	// ---- pemohon ----
	user := api.Group("/surat-keterangan", auth,
		authMw.OnlyRoles(constants.RoleErrorUser("surat keterangan"), constants.UserOnly...))
	user.Post("/", userCtl.Create)
	user.Get("/saya", userCtl.ListMine)
	user.Get("/saya/:id", userCtl.DetailMine)
	user.Get("/saya/:id/download", userCtl.Download)

	// ---- admin ----
	admin := api.Group("/admin/surat-keterangan", auth,
		authMw.OnlyRoles(constants.RoleErrorAdmin("surat keterangan"), constants.AdminOnly...))
	admin.Get("/", adminCtl.List)
	admin.Get("/:id", adminCtl.Detail)
	admin.Post("/:id/clear", adminCtl.Clear)
	admin.Post("/:id/tolak", adminCtl.Reject)

	// ---- verifikator ----
	verif := api.Group("/verifikator/surat-keterangan", auth,
		authMw.OnlyRoles(constants.RoleErrorVerifikator("surat keterangan"), constants.VerifikatorOnly...))
	verif.Get("/", verifCtl.ListQueue)
	verif.Get("/:id/preview", verifCtl.Preview)
	verif.Post("/:id/setujui", verifCtl.Approve)
	verif.Post("/:id/tolak", verifCtl.Reject)
}
