package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret-do-not-ship"

func testCodec() *TokenCodec {
	return NewTokenCodec(testSecret, "todo-fast-api-test")
}

func TestTokenRoundTrip(t *testing.T) {
	tc := testCodec()

	testCases := []struct {
		subject string
		userID  uint
		role    string
		ttl     time.Duration
	}{
		{"alice", 1, "user", time.Minute},
		{"bob", 42, "admin", 45 * time.Minute},
		{"carol_99", 7, "", 24 * time.Hour},
	}

	for _, c := range testCases {
		token, err := tc.Issue(c.subject, c.userID, c.role, c.ttl)
		if err != nil {
			t.Fatalf("Issue(%q, %d) error = %v, want nil", c.subject, c.userID, err)
		}

		claims, err := tc.Decode(token)
		if err != nil {
			t.Fatalf("Decode after Issue(%q, %d) error = %v, want nil", c.subject, c.userID, err)
		}
		if claims.Subject != c.subject {
			t.Errorf("Decode subject = %q, want %q", claims.Subject, c.subject)
		}
		if claims.UserID != c.userID {
			t.Errorf("Decode user id = %d, want %d", claims.UserID, c.userID)
		}
		if claims.Role != c.role {
			t.Errorf("Decode role = %q, want %q", claims.Role, c.role)
		}
	}
}

func TestIssueDefaultTTL(t *testing.T) {
	tc := testCodec()

	token, err := tc.Issue("alice", 1, "user", 0)
	if err != nil {
		t.Fatalf("Issue error = %v, want nil", err)
	}
	claims, err := tc.Decode(token)
	if err != nil {
		t.Fatalf("Decode error = %v, want nil", err)
	}

	want := time.Now().Add(DefaultTokenTTL)
	got := claims.ExpiresAt.Time
	if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Errorf("default expiry = %v, want about %v", got, want)
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	issuing := NewTokenCodec("secret-one", "test")
	verifying := NewTokenCodec("secret-two", "test")

	token, err := issuing.Issue("alice", 1, "user", 45*time.Minute)
	if err != nil {
		t.Fatalf("Issue error = %v, want nil", err)
	}

	if _, err := verifying.Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode with different secret error = %v, want ErrInvalidToken", err)
	}
}

func TestDecodeExpired(t *testing.T) {
	tc := testCodec()

	// a token signed with the right secret but already past expiry,
	// as if issued 46 minutes ago with a 45 minute ttl
	now := time.Now()
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-46 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := tc.Decode(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode expired token error = %v, want ErrInvalidToken", err)
	}
}

func TestDecodeStillValidBeforeExpiry(t *testing.T) {
	tc := testCodec()

	// issued 44 minutes ago with a 45 minute window
	now := time.Now()
	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now.Add(-44 * time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := tc.Decode(token); err != nil {
		t.Errorf("Decode before expiry error = %v, want nil", err)
	}
}

// A validly signed token without a subject or user id is malformed,
// not anonymous.
func TestDecodeMissingIdentity(t *testing.T) {
	tc := testCodec()

	noSubject, err := tc.Issue("", 7, "user", time.Minute)
	if err != nil {
		t.Fatalf("Issue error = %v, want nil", err)
	}
	if _, err := tc.Decode(noSubject); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode token without subject error = %v, want ErrInvalidToken", err)
	}

	noID, err := tc.Issue("alice", 0, "user", time.Minute)
	if err != nil {
		t.Fatalf("Issue error = %v, want nil", err)
	}
	if _, err := tc.Decode(noID); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode token without user id error = %v, want ErrInvalidToken", err)
	}
}

func TestDecodeWrongAlgorithm(t *testing.T) {
	tc := testCodec()

	claims := &Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	// HS512 is HMAC too, but only HS256 is accepted
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := tc.Decode(hs512); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode HS512 token error = %v, want ErrInvalidToken", err)
	}

	// unsigned "none" tokens are rejected outright
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if _, err := tc.Decode(none); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode unsigned token error = %v, want ErrInvalidToken", err)
	}
}

func TestDecodeGarbage(t *testing.T) {
	tc := testCodec()

	testCases := []string{
		"",
		"not-a-token",
		"aaaa.bbbb.cccc",
		"eyJhbGciOiJIUzI1NiJ9..",
	}

	for _, raw := range testCases {
		if _, err := tc.Decode(raw); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidToken", raw, err)
		}
	}
}
