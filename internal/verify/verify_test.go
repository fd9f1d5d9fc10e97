package verify

import (
	"errors"
	"strings"
	"testing"
)

func TestCreateCode(t *testing.T) {
	code, err := CreateCode()
	if err != nil {
		t.Fatalf("CreateCode() error = %v", err)
	}
	if code == "" {
		t.Fatal("expected non-empty code")
	}
	if strings.ContainsRune(code, delimiter) {
		t.Errorf("code %q contains the token delimiter", code)
	}

	other, err := CreateCode()
	if err != nil {
		t.Fatalf("CreateCode() error = %v", err)
	}
	if code == other {
		t.Error("expected two codes to differ")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	code, err := CreateCode()
	if err != nil {
		t.Fatalf("CreateCode() error = %v", err)
	}

	token := EncodeToken(code, 42)
	gotCode, gotID, err := DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken() error = %v", err)
	}
	if gotID != 42 {
		t.Errorf("id = %d, want 42", gotID)
	}
	if gotCode != code {
		t.Errorf("code = %q, want %q", gotCode, code)
	}
}

func TestDecodeToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "no delimiter", token: "42abc"},
		{name: "missing code", token: "42$"},
		{name: "non-numeric id", token: "forty-two$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeToken(tt.token)
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("DecodeToken(%q) error = %v, want ErrInvalidToken", tt.token, err)
			}
		})
	}
}
