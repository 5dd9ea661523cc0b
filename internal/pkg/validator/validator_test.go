package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane@example.com"))
	assert.True(t, IsValidEmail("jane.doe+tag@sub.example.co"))
	assert.False(t, IsValidEmail("jane@"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("0192f4a2-6f1a-7c4d-9b3e-1a2b3c4d5e6f"))
	assert.True(t, IsValidUUID("0192F4A2-6F1A-7C4D-9B3E-1A2B3C4D5E6F"))
	assert.False(t, IsValidUUID("0192f4a2-6f1a-7c4d-9b3e"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}

func TestIsNumericValue(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"5000", true},
		{"5000.25", true},
		{"-12", true},
		{"1e3", true},
		{" 42 ", true},
		{"abc", false},
		{"12abc", false},
		{"", false},
		{"NaN", false},
		{"Inf", false},
		{"+Inf", false},
		{"-Infinity", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsNumericValue(tt.input), "input %q", tt.input)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password is required"},
	}
	assert.Equal(t, "email: email is required; password: password is required", errs.Error())
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
	}
	assert.Equal(t, map[string]string{"name": "name is required"}, errs.ToMap())
}
