package validator

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty(" \t "))
	assert.False(t, IsEmpty("ooo"))
	assert.False(t, IsEmpty(" ooo "))
}

func TestIsValidEmail(t *testing.T) {
	for _, email := range []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"} {
		assert.True(t, IsValidEmail(email), email)
	}
	for _, email := range []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""} {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID(uuid.Must(uuid.NewV7()).String()))
	assert.True(t, IsValidUUID("0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b"))
	assert.True(t, IsValidUUID("0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B"))

	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000",          // version 1
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",              // no dashes
		"{0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b}",        // braced
		"urn:uuid:0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // urn
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"42",
		"",
	}
	for _, id := range invalid {
		assert.False(t, IsValidUUID(id), id)
	}
}

func TestValidationErrors_Collect(t *testing.T) {
	var errs ValidationErrors
	require.NoError(t, errs.Err())

	assert.False(t, errs.Required("name", "  "))
	assert.True(t, errs.Required("email", "a@b.cd"))
	errs.MaxLength("email", strings.Repeat("x", 6), 5)
	errs.MaxLength("email", "ok", 5)
	errs.Add("name", "name is still wrong")

	err := errs.Err()
	require.Error(t, err)

	var got ValidationErrors
	require.ErrorAs(t, err, &got)
	assert.Len(t, got, 3)
	assert.Equal(t, "name: name is required; email: email must not exceed 5 characters; name: name is still wrong", err.Error())
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"email": "email must not exceed 5 characters",
	}, got.ToMap())
}
