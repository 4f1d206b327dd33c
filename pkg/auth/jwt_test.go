package auth

import (
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "leia", true)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Username != "leia" {
		t.Errorf("expected username leia, got %q", claims.Username)
	}
	if !claims.IsAdmin {
		t.Error("expected admin claim to be set")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateTokenRejectsTamperedSignature(t *testing.T) {
	token, err := GenerateToken(1, "han", false)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}
