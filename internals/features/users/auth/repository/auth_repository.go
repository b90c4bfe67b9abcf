package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authModel "suratku_backend/internals/features/users/auth/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, userID uuid.UUID) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByGoogleID(db *gorm.DB, googleID string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func IsEmailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&authModel.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUserWithProfile membuat user + role record (profiles) dalam satu
// transaksi. Role ditulis SEKALI di sini dan tidak pernah diubah lewat API.
func CreateUserWithProfile(db *gorm.DB, user *authModel.UserModel, role string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := authModel.Profile{ID: user.ID, Role: role}
		return tx.Create(&profile).Error
	})
}

func FindProfileByUserID(db *gorm.DB, userID uuid.UUID) (*authModel.Profile, error) {
	var profile authModel.Profile
	if err := db.First(&profile, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func UpdateUserPassword(db *gorm.DB, userID uuid.UUID, newPassword string) error {
	return db.Model(&authModel.UserModel{}).
		Where("id = ?", userID).
		Update("password", newPassword).Error
}

/* ==========================
   Refresh token & blacklist
========================== */

func CreateRefreshToken(db *gorm.DB, token *authModel.RefreshToken) error {
	return db.Create(token).Error
}

func FindRefreshTokenByHash(db *gorm.DB, hash string) (*authModel.RefreshToken, error) {
	var rt authModel.RefreshToken
	if err := db.Where("token_hash = ?", hash).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func DeleteRefreshTokenByHash(db *gorm.DB, hash string) error {
	return db.Where("token_hash = ?", hash).Delete(&authModel.RefreshToken{}).Error
}

func DeleteRefreshTokensByUser(db *gorm.DB, userID uuid.UUID) error {
	return db.Where("user_id = ?", userID).Delete(&authModel.RefreshToken{}).Error
}

func BlacklistToken(db *gorm.DB, token string, expiredAt time.Time) error {
	entry := authModel.TokenBlacklist{Token: token, ExpiredAt: expiredAt}
	return db.Create(&entry).Error
}

func CleanupExpiredBlacklist(db *gorm.DB, before time.Time) (int64, error) {
	res := db.Where("expired_at < ? AND deleted_at IS NULL", before).
		Delete(&authModel.TokenBlacklist{})
	return res.RowsAffected, res.Error
}
