package authUtils

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("64f000000000000000000001", "asha@example.com", "ward_officer", "64f000000000000000000002")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.UserID != "64f000000000000000000001" {
		t.Errorf("UserID = %q", claims.UserID)
	}
	if claims.Email != "asha@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "ward_officer" {
		t.Errorf("Role = %q", claims.Role)
	}
	if claims.WardID != "64f000000000000000000002" {
		t.Errorf("WardID = %q", claims.WardID)
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > TokenLifetime || ttl < TokenLifetime-time.Minute {
		t.Errorf("token lifetime = %v, want about %v", ttl, TokenLifetime)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := Claims{
		UserID: "64f000000000000000000001",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseToken(signed); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken("64f000000000000000000001", "a@b.c", "citizen", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "second-secret")
	if _, err := ParseToken(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("id", "a@b.c", "citizen", ""); err == nil {
		t.Error("expected error when JWT_SECRET is unset")
	}
}
