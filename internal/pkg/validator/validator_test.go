package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("juan.perez@example.com"))
	assert.True(t, IsValidEmail("a+b@sub.domain.pe"))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("juan@"))
}

func TestIsValidDNI(t *testing.T) {
	assert.True(t, IsValidDNI("12345678"))
	assert.False(t, IsValidDNI("1234567"))   // too short
	assert.False(t, IsValidDNI("123456789")) // too long
	assert.False(t, IsValidDNI("1234567a"))
	assert.False(t, IsValidDNI(""))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-10")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("10/03/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "dni", Message: "dni must be 8 digits"},
		{Field: "nombres", Message: "nombres is required"},
	}

	assert.Equal(t, "dni: dni must be 8 digits; nombres: nombres is required", errs.Error())
	assert.Equal(t, map[string]string{
		"dni":     "dni must be 8 digits",
		"nombres": "nombres is required",
	}, errs.ToMap())
}
