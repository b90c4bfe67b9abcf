// internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "suratku_backend/internals/features/users/auth/controller"
	"suratku_backend/internals/middlewares"
	authMw "suratku_backend/internals/middlewares/auth"
)

// AuthRoutes memasang endpoint auth di bawah /api/auth.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := api.Group("/auth")

	// publik
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/register/admin", middlewares.RegisterRateLimiter(), ctrl.RegisterAdmin)
	auth.Post("/register/verifikator", middlewares.RegisterRateLimiter(), ctrl.RegisterVerifikator)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh-token", ctrl.RefreshToken)

	// butuh login
	protected := auth.Group("", authMw.AuthMiddleware(db))
	protected.Post("/logout", ctrl.Logout)
	protected.Post("/change-password", ctrl.ChangePassword)
	protected.Get("/me", ctrl.Me)
}
