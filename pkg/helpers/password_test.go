package helpers

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordNeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret1" {
		t.Error("hash equals the plaintext password")
	}
	if !CompareHashAndPassword(hash, "secret1") {
		t.Error("hash does not verify against the original plaintext")
	}
	if CompareHashAndPassword(hash, "wrongpass") {
		t.Error("hash verified against a different password")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same plaintext are identical; expected distinct salts")
	}
	if !CompareHashAndPassword(h1, "secret1") || !CompareHashAndPassword(h2, "secret1") {
		t.Error("both hashes should verify against the original plaintext")
	}
}

func TestHashPasswordInvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret1", 99)
	if err != nil {
		t.Fatalf("HashPassword with out-of-range cost: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("bcrypt.Cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected fallback to default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
