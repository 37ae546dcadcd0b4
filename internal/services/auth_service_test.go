package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influmatch_backend/internal/appErrors"
	"influmatch_backend/internal/auth"
	"influmatch_backend/internal/models"
	"influmatch_backend/internal/services/dto"
)

func newAuthService(repo *fakeUserRepo) AuthService {
	tokens := auth.NewTokenManager("test-secret", 30*time.Minute)
	return NewAuthService(repo, tokens)
}

func TestRegister_BrandGetsTrialAndAutoApproval(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(&dto.RegisterRequest{
		Email:    "brand@test.com",
		Password: "super_password123",
		FullName: "Acme Brand",
		Role:     models.UserRoleBrand,
	})
	require.NoError(t, err)

	assert.True(t, user.IsApproved)
	assert.True(t, user.IsActive)
	require.NotNil(t, user.TrialStartTime)
	assert.WithinDuration(t, time.Now(), *user.TrialStartTime, time.Minute)
	assert.Nil(t, user.TrialProfileViewedID)
}

func TestRegister_InfluencerAwaitsApproval(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())

	user, err := svc.Register(&dto.RegisterRequest{
		Email:    "inf@test.com",
		Password: "super_password123",
		FullName: "Jane Influencer",
		Role:     models.UserRoleInfluencer,
	})
	require.NoError(t, err)

	assert.False(t, user.IsApproved)
	assert.True(t, user.IsActive)
	assert.Nil(t, user.TrialStartTime)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "admin@test.com",
		Password: "super_password123",
		FullName: "Wannabe Admin",
		Role:     models.UserRoleAdmin,
	})
	assert.ErrorIs(t, err, appErrors.ErrInvalidUserRole)
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "brand@test.com",
		Password: "short",
		FullName: "Acme Brand",
		Role:     models.UserRoleBrand,
	})
	assert.ErrorIs(t, err, appErrors.ErrWeakPassword)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())

	req := &dto.RegisterRequest{
		Email:    "brand@test.com",
		Password: "super_password123",
		FullName: "Acme Brand",
		Role:     models.UserRoleBrand,
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, appErrors.ErrEmailAlreadyExists)
}

func TestLogin_Flow(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	registered, err := svc.Register(&dto.RegisterRequest{
		Email:    "brand@test.com",
		Password: "super_password123",
		FullName: "Acme Brand",
		Role:     models.UserRoleBrand,
	})
	require.NoError(t, err)

	// Wrong password and unknown email report the same error.
	_, err = svc.Login(&dto.LoginRequest{Email: "brand@test.com", Password: "wrong_password"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)
	_, err = svc.Login(&dto.LoginRequest{Email: "nobody@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidCredentials)

	resp, err := svc.Login(&dto.LoginRequest{Email: "brand@test.com", Password: "super_password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, registered.ID, resp.User.ID)
}

func TestLogin_UnapprovedInfluencerBlocked(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo())

	_, err := svc.Register(&dto.RegisterRequest{
		Email:    "inf@test.com",
		Password: "super_password123",
		FullName: "Jane Influencer",
		Role:     models.UserRoleInfluencer,
	})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "inf@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, appErrors.ErrUserNotApproved)
}

func TestLogin_DeactivatedUserBlocked(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(&dto.RegisterRequest{
		Email:    "brand@test.com",
		Password: "super_password123",
		FullName: "Acme Brand",
		Role:     models.UserRoleBrand,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Deactivate(user.ID))

	_, err = svc.Login(&dto.LoginRequest{Email: "brand@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, appErrors.ErrUserInactive)
}
