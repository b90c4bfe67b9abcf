package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile adalah role record: satu baris per user, dibuat sekali saat
// registrasi dan jadi satu-satunya sumber otorisasi. Session/token tidak
// membawa klaim role — middleware selalu baca ulang tabel ini.
type Profile struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"` // = users.id
	Role string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
