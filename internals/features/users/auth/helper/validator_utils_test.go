package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterInput(t *testing.T) {
	assert.NoError(t, ValidateRegisterInput("Budi", "budi@mail.com", "rahasia123"))
	assert.Error(t, ValidateRegisterInput("", "budi@mail.com", "rahasia123"))
	assert.Error(t, ValidateRegisterInput("Budi", "bukan-email", "rahasia123"))
	assert.Error(t, ValidateRegisterInput("Budi", "budi@mail.com", "pendek"))
}

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("budi@mail.com", "rahasia123"))
	assert.Error(t, ValidateLoginInput("", "rahasia123"))
	assert.Error(t, ValidateLoginInput("budi@mail.com", ""))
	assert.Error(t, ValidateLoginInput("salah", "rahasia123"))
}
