package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

const (
	testSecret   = "test-signing-secret"
	testIssuer   = "lms-backend-test"
	testAudience = "lms-frontend-test"
)

func initTestJWT(accessExp time.Duration) {
	InitJWT(testSecret, testIssuer, testAudience, accessExp, 7*24*time.Hour)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	initTestJWT(time.Hour)

	userID := uuid.New()
	email := "trainer@example.com"
	role := "Trainer"

	tokenString, err := GenerateAccessToken(userID, email, role)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenString == "" {
		t.Fatalf("empty token string")
	}

	claims, err := ValidateAccessToken(tokenString)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject=%s, got %s", userID, claims.Subject)
	}
	if claims.Email != email {
		t.Errorf("expected email=%s, got %s", email, claims.Email)
	}
	if claims.Role != role {
		t.Errorf("expected role=%s, got %s", role, claims.Role)
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		t.Errorf("token should not be expired, got expiresAt=%v", claims.ExpiresAt)
	}
}

func TestValidateAccessToken_Malformed(t *testing.T) {
	initTestJWT(time.Hour)

	if _, err := ValidateAccessToken("this.is.not.a.valid.jwt"); err == nil {
		t.Errorf("expected error for malformed token, got nil")
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	initTestJWT(time.Hour)
	tokenString, err := GenerateAccessToken(uuid.New(), "user@example.com", "User")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	InitJWT("totally-different-secret", testIssuer, testAudience, time.Hour, 7*24*time.Hour)
	if _, err := ValidateAccessToken(tokenString); err == nil {
		t.Errorf("expected error for wrong secret, got nil")
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	initTestJWT(-time.Minute)
	tokenString, err := GenerateAccessToken(uuid.New(), "user@example.com", "User")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := ValidateAccessToken(tokenString); err == nil {
		t.Errorf("expected error for expired token, got nil")
	}
}

func TestValidateAccessToken_IssuerMismatch(t *testing.T) {
	initTestJWT(time.Hour)
	tokenString, err := GenerateAccessToken(uuid.New(), "user@example.com", "User")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	InitJWT(testSecret, "some-other-issuer", testAudience, time.Hour, 7*24*time.Hour)
	if _, err := ValidateAccessToken(tokenString); err == nil {
		t.Errorf("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAccessToken_AudienceMismatch(t *testing.T) {
	initTestJWT(time.Hour)
	tokenString, err := GenerateAccessToken(uuid.New(), "user@example.com", "User")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	InitJWT(testSecret, testIssuer, "some-other-audience", time.Hour, 7*24*time.Hour)
	if _, err := ValidateAccessToken(tokenString); err == nil {
		t.Errorf("expected error for audience mismatch, got nil")
	}
}

func TestGenerateRefreshToken_Opaque(t *testing.T) {
	first, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}
	second, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	if first == second {
		t.Errorf("refresh tokens should be random, got identical values")
	}
	// 32 random bytes base64-encoded are 44 characters
	if len(first) != 44 {
		t.Errorf("expected 44-character refresh token, got %d", len(first))
	}
}
