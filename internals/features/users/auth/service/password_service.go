// internals/features/users/auth/service/password_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authRepo "suratku_backend/internals/features/users/auth/repository"
	helper "suratku_backend/internals/helpers"
)

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}

// ========================== CHANGE PASSWORD ==========================
// POST /api/auth/change-password (butuh login)
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password baru minimal 8 karakter")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	if user.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Akun ini login via Google, tidak punya password")
	}
	if !CheckPasswordHash(user.Password, input.OldPassword) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengganti password")
	}

	// paksa login ulang di perangkat lain
	_ = authRepo.DeleteRefreshTokensByUser(db, userID)

	return helper.JsonUpdated(c, "Password berhasil diganti", nil)
}
