package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// DefaultBcryptCost is used when no cost is configured.
const DefaultBcryptCost = 12

// legacyIterations is the PBKDF2 iteration count of the old "salt$hash"
// format still present in migrated databases.
const legacyIterations = 100_000

// Hasher produces and verifies salted one-way password hashes. New
// hashes are bcrypt; verification also accepts the legacy
// PBKDF2-SHA256 "salt$hash" format so old accounts keep working until
// their next password change.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher with the given bcrypt cost. Costs outside
// the bcrypt range fall back to DefaultBcryptCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a bcrypt hash of password. The salt and cost are
// embedded in the output, so verification never depends on the current
// configuration.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored hash. Malformed
// or empty input fails closed.
func (h *Hasher) Verify(password, stored string) bool {
	if password == "" || stored == "" {
		return false
	}
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return verifyLegacy(password, stored)
}

// verifyLegacy checks the old "salt$hash" PBKDF2-SHA256 format, both
// parts base64 raw-std encoded.
func verifyLegacy(password, stored string) bool {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil || len(expected) == 0 {
		return false
	}

	hash := pbkdf2.Key([]byte(password), salt, legacyIterations, len(expected), sha256.New)

	// constant time compare
	if len(hash) != len(expected) {
		return false
	}
	var diff byte
	for i := range hash {
		diff |= hash[i] ^ expected[i]
	}
	return diff == 0
}
