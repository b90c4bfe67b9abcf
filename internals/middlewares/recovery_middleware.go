package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"suratku_backend/internals/configs"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500.
// Panic selalu dicatat satu baris dengan reqid; stack trace lengkap hanya
// dicetak di luar production (atau kalau DEBUG_STACKTRACE=true), supaya
// log Railway tidak penuh.
func RecoveryMiddleware() fiber.Handler {
	withStack := configs.GetEnv("DEBUG_STACKTRACE", "") == "true" ||
		configs.GetEnv("RAILWAY_ENVIRONMENT", "") == ""

	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("💥 [suratku] panic di %s %s (reqid=%v): %v",
				c.Method(), c.Path(), c.Locals("reqid"), e)
			if withStack {
				log.Printf("%s", debug.Stack())
			}
		},
	})
}
