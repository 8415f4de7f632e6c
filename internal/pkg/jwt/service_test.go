package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 168*time.Hour)
}

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "jane@example.com", "recruiter")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Role != "recruiter" {
		t.Fatalf("expected role recruiter, got %q", claims.Role)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token type, got %q", claims.TokenType)
	}
}

func TestHMACService_RefreshTokenCarriesNoIdentityDetails(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		t.Fatalf("expected refresh token type, got %q", claims.TokenType)
	}
	if claims.Email != "" || claims.Role != "" {
		t.Fatalf("refresh token must not carry email or role")
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := newTestService()

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateAccessToken(uuid.New(), "jane@example.com", "jobseeker")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_TamperedTokenRejected(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken(uuid.New(), "jane@example.com", "jobseeker")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewHMACService("different", "secrets", 15*time.Minute, 168*time.Hour)
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
