package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("sufficiently-long")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "sufficiently-long" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := CheckPassword("sufficiently-long", hash); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := CheckPassword("something-else", hash); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	if _, err := HashPassword("short"); err == nil {
		t.Error("passwords under eight characters must be rejected")
	}
}

func TestCheckPassword_BadHash(t *testing.T) {
	if err := CheckPassword("whatever", "not-a-bcrypt-hash"); err == nil {
		t.Error("malformed hash must fail verification")
	}
}
