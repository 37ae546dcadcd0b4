package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influmatch_backend/internal/models"
)

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: "user-1"},
		Email:     "brand@test.com",
		Role:      models.UserRoleBrand,
	}
}

func TestTokenManager_IssueAndParse(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", 30*time.Minute)

	token, err := m.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "brand@test.com", claims.Email)
	assert.Equal(t, models.UserRoleBrand, claims.Role)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue(testUser())
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecretRejected(t *testing.T) {
	t.Parallel()

	token, err := NewTokenManager("secret-a", 30*time.Minute).Issue(testUser())
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 30*time.Minute).Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_GarbageRejected(t *testing.T) {
	t.Parallel()

	m := NewTokenManager("test-secret", 30*time.Minute)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Parse(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}
