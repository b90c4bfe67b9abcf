package helpers

import (
	"fmt"
	"regexp"
	"strings"
)

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ValidateLoginInput cek minimal field login
func ValidateLoginInput(email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return fmt.Errorf("Email dan password wajib diisi")
	}
	if !isValidEmail(email) {
		return fmt.Errorf("Format email tidak valid")
	}
	return nil
}

// ValidateRegisterInput cek field pendaftaran
func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return fmt.Errorf("Nama wajib diisi")
	}
	if len(strings.TrimSpace(userName)) < 3 {
		return fmt.Errorf("Nama minimal 3 karakter")
	}
	if !isValidEmail(email) {
		return fmt.Errorf("Format email tidak valid")
	}
	if len(password) < 8 {
		return fmt.Errorf("Password minimal 8 karakter")
	}
	return nil
}
