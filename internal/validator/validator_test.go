package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"fullName" validate:"required"`
	Bio   string `json:"bio" validate:"max=10"`
}

func TestValidatePasses(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "a@b.com", Name: "Alice"})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := v.Validate(&sampleRequest{Email: "not-an-email", Bio: "way too long bio"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	assert.Contains(t, verr.Errors, "email")
	assert.Contains(t, verr.Errors, "fullName")
	assert.Contains(t, verr.Errors, "bio")
	assert.NotContains(t, verr.Errors, "Name")

	assert.Equal(t, "Must be a valid email address", verr.Errors["email"])
	assert.Equal(t, "This field is required", verr.Errors["fullName"])
	assert.Equal(t, "Must be at most 10", verr.Errors["bio"])
}
