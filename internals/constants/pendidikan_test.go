package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPendidikanOptions(t *testing.T) {
	assert.Len(t, PendidikanOptions, 12)
	assert.Equal(t, "Tidak Sekolah", PendidikanOptions[0])
	assert.Equal(t, "S3 (Doktor)", PendidikanOptions[len(PendidikanOptions)-1])

	assert.True(t, ValidPendidikan("S1 (Sarjana)"))
	assert.False(t, ValidPendidikan("S4"))
	assert.False(t, ValidPendidikan(""))
}

func TestValidJenisKelamin(t *testing.T) {
	assert.True(t, ValidJenisKelamin("Laki-laki"))
	assert.True(t, ValidJenisKelamin("Perempuan"))
	assert.False(t, ValidJenisKelamin("laki-laki"))
	assert.False(t, ValidJenisKelamin("L"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleUser))
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleVerifikator))
	assert.False(t, ValidRole("superadmin"))
}
