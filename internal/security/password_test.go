package security_test

import (
	"testing"

	"github.com/teamsynchq/teamsync/internal/security"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := security.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "correct horse battery staple" {
		t.Error("hash equals plaintext")
	}

	if !security.VerifyPassword(hash, "correct horse battery staple") {
		t.Error("expected password to verify against its hash")
	}

	if security.VerifyPassword(hash, "wrong password") {
		t.Error("expected wrong password to fail verification")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if security.VerifyPassword("not-a-bcrypt-hash", "anything") {
		t.Error("expected malformed hash to fail verification")
	}
}
