package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixetron/job-portal/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	Configure("test-secret", 60)

	token, err := GenerateToken("user-1", models.UserRoleRecruiter)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, models.UserRoleRecruiter, claims.Role)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	Configure("secret-a", 60)
	token, err := GenerateToken("user-1", models.UserRoleApplicant)
	require.NoError(t, err)

	Configure("secret-b", 60)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	Configure("test-secret", 60)

	_, err := ParseToken("not.a.token")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	Configure("test-secret", -1)
	token, err := GenerateToken("user-1", models.UserRoleApplicant)
	require.NoError(t, err)

	Configure("test-secret", 60)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("12345678"))
	assert.Error(t, ValidatePassword("short"))
}
