package service

import (
	"errors"
	"fmt"
	"time"

	"lms-backend/internal/models"
	"lms-backend/internal/repository"
	"lms-backend/pkg/utils"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	auditRepo *repository.AuditRepository
}

func NewAuthService(userRepo *repository.UserRepository, auditRepo *repository.AuditRepository) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
	}
}

// TokenPair is the response structure for login and refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
}

func summarize(user *models.User) UserSummary {
	return UserSummary{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}

// Register creates a new user account with the lowest-privilege role
func (s *AuthService) Register(email, password, firstName, lastName string) (*UserSummary, error) {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: passwordHash,
		Role:         models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_registration", fmt.Sprintf("User %s registered", email))

	summary := summarize(user)
	return &summary, nil
}

// Login authenticates a user and returns a fresh token pair
func (s *AuthService) Login(email, password string) (*TokenPair, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// Same outcome as a wrong password; no user-existence oracle.
		return nil, ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	userIDPtr := &user.ID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_login", fmt.Sprintf("User %s logged in", email))

	return pair, nil
}

// Refresh rotates the session: the presented refresh token must exactly match
// the stored one and be unexpired, and both tokens are re-issued on success.
// The previous refresh token is invalidated by overwrite.
func (s *AuthService) Refresh(userID uuid.UUID, refreshToken string) (*TokenPair, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, ErrInvalidRefreshToken
	}
	if user.RefreshTokenExpiresAt == nil || !user.RefreshTokenExpiresAt.After(time.Now().UTC()) {
		return nil, ErrInvalidRefreshToken
	}

	return s.issueTokens(user)
}

// Logout clears the stored refresh token so a stolen one becomes unusable.
// Already-issued access tokens stay valid until natural expiry.
func (s *AuthService) Logout(userID uuid.UUID) error {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return err
	}

	if err := s.userRepo.ClearRefreshToken(userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, "user_logout", "User logged out")

	return nil
}

// GetRole returns the persisted role for a user id
func (s *AuthService) GetRole(userID uuid.UUID) (string, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *AuthService) issueTokens(user *models.User) (*TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().UTC().Add(utils.GetRefreshTokenExpiry())
	if err := s.userRepo.SetRefreshToken(user.ID, refreshToken, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
