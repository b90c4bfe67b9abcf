// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"suratku_backend/internals/constants"
	authRepo "suratku_backend/internals/features/users/auth/repository"
	authService "suratku_backend/internals/features/users/auth/service"
	helper "suratku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (a *AuthController) Register(c *fiber.Ctx) error {
	return authService.RegisterWithRole(a.DB, c, constants.RoleUser)
}

func (a *AuthController) RegisterAdmin(c *fiber.Ctx) error {
	return authService.RegisterWithRole(a.DB, c, constants.RoleAdmin)
}

func (a *AuthController) RegisterVerifikator(c *fiber.Ctx) error {
	return authService.RegisterWithRole(a.DB, c, constants.RoleVerifikator)
}

func (a *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(a.DB, c)
}

func (a *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(a.DB, c)
}

func (a *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(a.DB, c)
}

func (a *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(a.DB, c)
}

func (a *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(a.DB, c)
}

// Me mengembalikan identitas user yang sedang login (dipakai frontend untuk routing per role).
func (a *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	user, err := authRepo.FindUserByID(a.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	role, _ := c.Locals("userRole").(string)

	return helper.JsonOK(c, "OK", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      role,
	})
}
