package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// MinCost keeps the hashing tests fast; cost handling itself is
// covered separately.
func testHasher() *Hasher {
	return NewHasher(bcrypt.MinCost)
}

func TestHashPassword(t *testing.T) {
	h := testHasher()
	password := "MyPassword123"

	hashed, err := h.Hash(password)
	if err != nil {
		t.Fatalf("Hash(%q) error = %v, want nil", password, err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("Hash(%q) = %q, want bcrypt format", password, hashed)
	}
	if strings.Contains(hashed, password) {
		t.Error("hash must not contain the plaintext password")
	}

	// empty password is rejected
	if _, err := h.Hash(""); err == nil {
		t.Error("Hash(\"\") error = nil, want error")
	}

	// fresh salt per call
	hashed2, _ := h.Hash(password)
	if hashed == hashed2 {
		t.Error("two hashes of the same password must differ (random salt)")
	}
}

func TestVerifyPassword(t *testing.T) {
	h := testHasher()
	password := "TestPass456"
	hashed, _ := h.Hash(password)

	if !h.Verify(password, hashed) {
		t.Error("Verify with correct password = false, want true")
	}
	if h.Verify("WrongPass", hashed) {
		t.Error("Verify with wrong password = true, want false")
	}
}

// Verify must fail closed on malformed or empty input, never panic.
func TestVerifyFailsClosed(t *testing.T) {
	h := testHasher()
	hashed, _ := h.Hash("SomePass789")

	testCases := []struct {
		password string
		stored   string
	}{
		{"", hashed},
		{"SomePass789", ""},
		{"SomePass789", "invalid-format"},
		{"SomePass789", "$2a$12$tooshort"},
		{"SomePass789", "not-base64!$not-base64!"},
		{"SomePass789", "$$$"},
		{"SomePass789", "onlyonepart"},
	}

	for _, tc := range testCases {
		if h.Verify(tc.password, tc.stored) {
			t.Errorf("Verify(%q, %q) = true, want false", tc.password, tc.stored)
		}
	}
}

// Hashes written with other cost factors keep verifying: the cost is
// read from the stored hash, not the current configuration.
func TestVerifyOtherCost(t *testing.T) {
	password := "RotateMe123"
	old, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("generate bcrypt hash: %v", err)
	}

	h := NewHasher(DefaultBcryptCost)
	if !h.Verify(password, string(old)) {
		t.Error("Verify with hash of different cost = false, want true")
	}
}

// The legacy "salt$hash" PBKDF2 format still verifies.
func TestVerifyLegacyFormat(t *testing.T) {
	password := "LegacyPass001"

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		t.Fatalf("read salt: %v", err)
	}
	sum := pbkdf2.Key([]byte(password), salt, legacyIterations, 32, sha256.New)
	stored := base64.RawStdEncoding.EncodeToString(salt) + "$" + base64.RawStdEncoding.EncodeToString(sum)

	h := testHasher()
	if !h.Verify(password, stored) {
		t.Error("Verify legacy hash with correct password = false, want true")
	}
	if h.Verify("WrongPass", stored) {
		t.Error("Verify legacy hash with wrong password = true, want false")
	}
}

func TestNewHasherCostFallback(t *testing.T) {
	testCases := []int{-1, 0, 3, 32, 100}

	for _, cost := range testCases {
		h := NewHasher(cost)
		if h.cost != DefaultBcryptCost {
			t.Errorf("NewHasher(%d).cost = %d, want %d", cost, h.cost, DefaultBcryptCost)
		}
	}
}
