package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEcode(t *testing.T) {
	valid := []string{"E-1001", "EMP-2024-001", "A01", "X-Y-Z"}
	for _, code := range valid {
		assert.True(t, IsValidEcode(code), "expected %q to be valid", code)
	}

	invalid := []string{"", "ab", "e-1001", "-E1001", "E 1001", "E_1001", "E100120241234567890123"}
	for _, code := range invalid {
		assert.False(t, IsValidEcode(code), "expected %q to be invalid", code)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-03-31")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())
	assert.Equal(t, 31, date.Day())

	_, ok = IsValidDate("31-03-2025")
	assert.False(t, ok)
	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "ecode", Message: "is required"},
		{Field: "daily_rate", Message: "must be positive"},
	}

	assert.Equal(t, "ecode: is required; daily_rate: must be positive", errs.Error())
	assert.Equal(t, map[string]string{
		"ecode":      "is required",
		"daily_rate": "must be positive",
	}, errs.ToMap())
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}
