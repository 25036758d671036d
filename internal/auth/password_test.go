package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword("secret1", hash) {
		t.Fatal("expected password to verify against its own hash")
	}
	if CheckPassword("secret2", hash) {
		t.Fatal("expected different password to fail verification")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same plaintext must differ")
	}
	if !CheckPassword("secret1", h1) || !CheckPassword("secret1", h2) {
		t.Fatal("both hashes must verify against the plaintext")
	}
}

func TestHashPasswordCost(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost error: %v", err)
	}
	if cost != hashCost {
		t.Fatalf("expected cost %d, got %d", hashCost, cost)
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	if CheckPassword("secret1", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must never verify")
	}
}
