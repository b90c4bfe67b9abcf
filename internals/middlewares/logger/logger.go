package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware mencatat semua request dengan reqid, supaya satu request
// bisa dilacak dari access log sampai log panic/SQL.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] suratku ${locals:reqid} ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	})
}
