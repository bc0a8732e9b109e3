package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/campushub/placement-portal/internal/app/models"
)

func newTestJWTService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "unit-test-secret",
		TokenExp:    exp,
		TokenIssuer: "placement-portal-test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	token, expiresIn, err := svc.GenerateToken("CS2021001", "asha@college.edu", "Asha Patel", models.RoleStudent)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.UserID != "CS2021001" {
		t.Errorf("UserID = %q, want CS2021001", claims.UserID)
	}
	if claims.Email != "asha@college.edu" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != models.RoleStudent {
		t.Errorf("Role = %q, want %q", claims.Role, models.RoleStudent)
	}
	if claims.Name != "Asha Patel" {
		t.Errorf("Name = %q", claims.Name)
	}
	if claims.Issuer != "placement-portal-test" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("expected a token id to be set")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	token, _, err := svc.GenerateToken("5", "admin@placement.portal", "Placement Admin", models.RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	token, _, err := newTestJWTService(time.Hour).GenerateToken("1", "hr@technova.io", "HR", models.RoleCompany)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "a-different-secret", TokenExp: time.Hour})
	if _, err := other.ValidateAndExtractClaims(token); err == nil {
		t.Error("expected validation to fail with a different signing key")
	}
}

func TestValidateEmptyToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("expected ErrInvalidFormat for empty header, got %v", err)
	}

	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken(Bearer ...) = %q, %v", token, err)
	}

	token, err = ExtractBearerToken("abc.def.ghi")
	if err != nil || token != "abc.def.ghi" {
		t.Errorf("ExtractBearerToken(raw) = %q, %v", token, err)
	}
}
