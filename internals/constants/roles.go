package constants

import "fmt"

// Role yang dikenal sistem. Disimpan di tabel profiles (satu baris per user),
// dibaca ulang setiap request oleh middleware — bukan dari klaim token.
const (
	RoleUser        = "user"
	RoleAdmin       = "admin"
	RoleVerifikator = "verifikator"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess      = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyVerifikatorCanAccess = "❌ Hanya verifikator yang boleh mengakses fitur %s."
	ErrOnlyUsersCanAccess       = "❌ Hanya pemohon (user) yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorVerifikator(feature string) string {
	return fmt.Sprintf(ErrOnlyVerifikatorCanAccess, feature)
}

func RoleErrorUser(feature string) string {
	return fmt.Sprintf(ErrOnlyUsersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleAdmin,
		RoleVerifikator,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	VerifikatorOnly = []string{
		RoleVerifikator,
	}

	UserOnly = []string{
		RoleUser,
	}
)

// ValidRole memastikan hanya role yang dikenal yang bisa disimpan ke profiles.
func ValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
