package jwt

import (
	"testing"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := []byte("test-secret-32-bytes-long-123456")

	raw, err := GenerateJWT(JWTParams{UserID: "42"}, secret, DefaultKID)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	token, err := ValidateJWT(raw, DefaultKID, secret)
	if err != nil {
		t.Fatalf("ValidateJWT() error = %v", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		t.Fatalf("GetSubject() error = %v", err)
	}
	if sub != "42" {
		t.Errorf("subject = %q, want %q", sub, "42")
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	raw, err := GenerateJWT(JWTParams{UserID: "42"}, []byte("test-secret-32-bytes-long-123456"), DefaultKID)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(raw, DefaultKID, []byte("another-secret-32-bytes-long-xyz")); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateJWT_WrongKID(t *testing.T) {
	secret := []byte("test-secret-32-bytes-long-123456")

	raw, err := GenerateJWT(JWTParams{UserID: "42"}, secret, "2")
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ValidateJWT(raw, DefaultKID, secret); err == nil {
		t.Error("expected validation to fail with a mismatched kid")
	}
}

func TestValidateJWT_Garbage(t *testing.T) {
	if _, err := ValidateJWT("not-a-jwt", DefaultKID, []byte("secret")); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}
