package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity window used when no TTL is
// configured.
const DefaultTokenTTL = 45 * time.Minute

// Claims is the signed payload of an access token. Role is captured at
// issuance; a role change takes effect at the next login.
type Claims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenCodec issues and verifies HS256-signed access tokens. The
// signing secret is injected at construction so tests can run with
// isolated secrets.
//
// There is no revocation list: a token stays valid for its full TTL
// even if the user is deactivated after issuance.
type TokenCodec struct {
	secret []byte
	issuer string
}

// NewTokenCodec builds a codec around the process-wide signing secret.
func NewTokenCodec(secret, issuer string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), issuer: issuer}
}

// Issue signs a token for the given subject and user id, valid for
// ttl from now. Non-positive ttl falls back to DefaultTokenTTL.
func (tc *TokenCodec) Issue(subject string, userID uint, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tc.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tc.secret)
}

// Decode verifies the signature and expiry of tokenStr and returns its
// claims. Every failure — bad signature, wrong algorithm, expired,
// malformed, missing subject or user id — returns the same
// ErrInvalidToken so callers cannot probe which check tripped.
func (tc *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// a validly signed token without identity is malformed, not anonymous
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
