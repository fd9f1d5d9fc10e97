package argon2id

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeAndCompare(t *testing.T) {
	password := "TestP@ssw0rd123!"

	encoded, err := EncodeHash(password, DefaultParams)
	if err != nil {
		t.Fatalf("EncodeHash() error = %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$") {
		t.Errorf("encoded hash %q missing argon2id prefix", encoded)
	}

	match, err := ComparePasswordAndHash(password, encoded)
	if err != nil {
		t.Fatalf("ComparePasswordAndHash() error = %v", err)
	}
	if !match {
		t.Error("expected password to match its own hash")
	}

	match, err = ComparePasswordAndHash("WrongP@ssw0rd!", encoded)
	if err != nil {
		t.Fatalf("ComparePasswordAndHash() error = %v", err)
	}
	if match {
		t.Error("expected wrong password not to match")
	}
}

func TestEncodeHash_UniqueSalts(t *testing.T) {
	first, err := EncodeHash("same-password", DefaultParams)
	if err != nil {
		t.Fatalf("EncodeHash() error = %v", err)
	}
	second, err := EncodeHash("same-password", DefaultParams)
	if err != nil {
		t.Fatalf("EncodeHash() error = %v", err)
	}
	if first == second {
		t.Error("expected different salts to produce different hashes")
	}
}

func TestDecodeHash_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		wantErr error
	}{
		{name: "not a hash", encoded: "plaintext", wantErr: ErrInvalidHash},
		{name: "too few sections", encoded: "$argon2id$v=19$abc", wantErr: ErrInvalidHash},
		{name: "wrong version", encoded: "$argon2id$v=18$m=65536,t=1,p=4$c2FsdA$aGFzaA", wantErr: ErrIncompatibleVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := DecodeHash(tt.encoded)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeHash(%q) error = %v, want %v", tt.encoded, err, tt.wantErr)
			}
		})
	}
}
