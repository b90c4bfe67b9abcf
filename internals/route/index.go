// internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	suratRoute "suratku_backend/internals/features/surat/surat_keterangan/route"
	authRoute "suratku_backend/internals/features/users/auth/route"
	"suratku_backend/internals/helpers/oss"
)

var startTime time.Time

// SetupRoutes memasang seluruh route aplikasi di bawah /api.
func SetupRoutes(app *fiber.App, db *gorm.DB, storage oss.Storage) {
	startTime = time.Now()

	BaseRoutes(app, db)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	log.Println("[INFO] Setting up SuratKeteranganRoutes...")
	suratRoute.SuratKeteranganRoutes(api, db, storage)
}
