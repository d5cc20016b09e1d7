package service

import (
	"testing"
	"time"

	"lms-backend/internal/models"
	"lms-backend/internal/repository"
	"lms-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := setupTestDB(t)
	userRepo := repository.NewUserRepo(db)
	return NewAuthService(userRepo, repository.NewAuditRepo(db)), userRepo
}

func TestRegisterAssignsLowestRole(t *testing.T) {
	svc, _ := newAuthService(t)

	summary, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)

	assert.Equal(t, models.RoleUser, summary.Role)
	assert.Equal(t, "alice@example.com", summary.Email)
	assert.NotEqual(t, "", summary.ID.String())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)

	_, err = svc.Register("alice@example.com", "otherpassword", "Other", "Alice")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginSuccess(t *testing.T) {
	svc, userRepo := newAuthService(t)

	summary, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)

	pair, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Access token carries the persisted identity
	claims, err := utils.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, summary.ID.String(), claims.Subject)
	assert.Equal(t, models.RoleUser, claims.Role)

	// Refresh token is persisted alongside its expiry
	user, err := userRepo.FindByID(summary.ID)
	require.NoError(t, err)
	require.NotNil(t, user.RefreshToken)
	assert.Equal(t, pair.RefreshToken, *user.RefreshToken)
	require.NotNil(t, user.RefreshTokenExpiresAt)
	assert.True(t, user.RefreshTokenExpiresAt.After(time.Now()))
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error
	_, err = svc.Login("alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotation(t *testing.T) {
	svc, _ := newAuthService(t)

	summary, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)

	first, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)

	second, err := svc.Refresh(summary.ID, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The rotated-out token is dead
	_, err = svc.Refresh(summary.ID, first.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)

	// The current one still works
	_, err = svc.Refresh(summary.ID, second.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshExpiredToken(t *testing.T) {
	svc, userRepo := newAuthService(t)

	summary, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)

	pair, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)

	// Force the stored expiry into the past
	expired := time.Now().UTC().Add(-time.Minute)
	require.NoError(t, userRepo.SetRefreshToken(summary.ID, pair.RefreshToken, expired))

	_, err = svc.Refresh(summary.ID, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestRefreshUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)
	pair, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)

	// A valid token presented under a different user id must not refresh
	_, err = svc.Refresh(uuid.New(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestLogoutInvalidatesRefresh(t *testing.T) {
	svc, userRepo := newAuthService(t)

	summary, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)
	pair, err := svc.Login("alice@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(summary.ID))

	user, err := userRepo.FindByID(summary.ID)
	require.NoError(t, err)
	assert.Nil(t, user.RefreshToken)
	assert.Nil(t, user.RefreshTokenExpiresAt)

	_, err = svc.Refresh(summary.ID, pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidRefreshToken)
}

func TestGetRole(t *testing.T) {
	svc, _ := newAuthService(t)

	summary, err := svc.Register("alice@example.com", "password123", "Alice", "Smith")
	require.NoError(t, err)

	role, err := svc.GetRole(summary.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}
