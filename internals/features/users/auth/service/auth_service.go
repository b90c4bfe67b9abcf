// internals/features/users/auth/service/auth_service.go
package service

import (
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"suratku_backend/internals/configs"
	"suratku_backend/internals/constants"
	helpers "suratku_backend/internals/features/users/auth/helper"
	authModel "suratku_backend/internals/features/users/auth/model"
	authRepo "suratku_backend/internals/features/users/auth/repository"
	helper "suratku_backend/internals/helpers"
)

type registerInput struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ========================== REGISTER ==========================
// RegisterWithRole dipakai tiga endpoint: /register (user),
// /register/admin dan /register/verifikator (khusus setup internal).
func RegisterWithRole(db *gorm.DB, c *fiber.Ctx, role string) error {
	if !constants.ValidRole(role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role tidak dikenal")
	}

	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := helpers.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	taken, err := authRepo.IsEmailTaken(db, input.Email)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa email")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := authModel.UserModel{
		UserName: input.UserName,
		Email:    input.Email,
		Password: hashed,
		IsActive: true,
	}
	if err := authRepo.CreateUserWithProfile(db, &user, role); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	log.Printf("✅ Register %s berhasil: %s", role, user.Email)
	return helper.JsonCreated(c, "Registrasi berhasil", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
		"role":      role,
	})
}

// ========================== LOGIN ==========================
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if err := helpers.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		// jangan bocorkan email mana yang terdaftar
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if user.Password == "" || !CheckPasswordHash(user.Password, input.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	profile, err := authRepo.FindProfileByUserID(db, user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil role")
	}

	return issueTokens(c, db, *user, profile.Role)
}

// ========================== LOGIN GOOGLE ==========================
// POST /api/auth/login-google {"id_token": "..."}
// Akun baru via Google selalu role user.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}

	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "GOOGLE_CLIENT_ID belum diset")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "id_token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca id_token")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub
	name := strings.TrimSpace(claimSet.Name)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user, err := authRepo.FindUserByGoogleID(db, googleID)
	if err != nil {
		// belum pernah login Google: coba cocokkan via email, kalau tidak ada buat akun baru
		user, err = authRepo.FindUserByEmail(db, email)
		if err != nil {
			newUser := authModel.UserModel{
				UserName: name,
				Email:    email,
				GoogleID: &googleID,
				IsActive: true,
			}
			if err := authRepo.CreateUserWithProfile(db, &newUser, constants.RoleUser); err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun Google")
			}
			log.Printf("✅ Akun Google baru: %s", email)
			user = &newUser
		} else {
			user.GoogleID = &googleID
			if err := db.Model(&authModel.UserModel{}).
				Where("id = ?", user.ID).
				Update("google_id", googleID).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menautkan akun Google")
			}
		}
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	profile, err := authRepo.FindProfileByUserID(db, user.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal ambil role")
	}

	return issueTokens(c, db, *user, profile.Role)
}
