package utils

import (
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("64f1c2d3e4a5b6c7d8e9f0a1", "admin")
	if err != nil {
		t.Fatal(err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != "64f1c2d3e4a5b6c7d8e9f0a1" {
		t.Fatalf("unexpected user id %q", claims.UserID)
	}
	if claims.Role != "admin" {
		t.Fatalf("unexpected role %q", claims.Role)
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT("64f1c2d3e4a5b6c7d8e9f0a1", "customer")
	if err != nil {
		t.Fatal(err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ValidateJWT(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}
