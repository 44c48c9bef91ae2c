package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charankumarpalimara/jewelstock/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	signed, err := tokens.Issue(42, "admin@example.com", models.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	signed, err := issuer.Issue(1, "u@example.com", models.RoleWorker)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := NewTokenManager("test-secret", -time.Minute)

	signed, err := tokens.Issue(1, "u@example.com", models.RoleWorker)
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	_, err := tokens.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hashed)

	assert.True(t, CheckPassword(hashed, "admin123"))
	assert.False(t, CheckPassword(hashed, "admin124"))
}

func TestRolePermissions(t *testing.T) {
	assert.False(t, HasPermission(models.RoleWorker, PermManageUsers))
	assert.False(t, HasPermission(models.RoleWorker, PermUpdateRates))
	assert.True(t, HasPermission(models.RoleAdmin, PermManageUsers))
	assert.True(t, HasPermission(models.RoleAdmin, PermUpdateRates))
	assert.True(t, HasPermission(models.RoleSuperAdmin, PermManageUsers))
	assert.False(t, HasPermission("stranger", PermManageUsers))
}
