package auth

import (
	"fmt"
	"time"

	"github.com/Rajnish-J/todo-fast-api/internal/models"
)

// CredentialStore is the narrow persistence interface the auth core
// reads and writes user records through.
type CredentialStore interface {
	FindByUsername(username string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	Create(user *models.User) error
	UpdatePassword(id uint, passwordHash string) error
}

// dummyHash is compared against when the username is unknown so that
// path costs the same as a wrong password. bcrypt cost 12.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Authenticator verifies credentials and issues access tokens. It is
// stateless beyond the store lookup: no session table, no counters.
type Authenticator struct {
	users  CredentialStore
	hasher *Hasher
	codec  *TokenCodec
	ttl    time.Duration
}

// NewAuthenticator wires the credential store, hasher and token codec.
// Non-positive ttl falls back to DefaultTokenTTL.
func NewAuthenticator(users CredentialStore, hasher *Hasher, codec *TokenCodec, ttl time.Duration) *Authenticator {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Authenticator{users: users, hasher: hasher, codec: codec, ttl: ttl}
}

// Login verifies username/password and returns a signed access token.
// Unknown username, wrong password and deactivated account all return
// ErrInvalidCredentials, with no distinguishing detail.
func (a *Authenticator) Login(username, password string) (string, error) {
	user, err := a.users.FindByUsername(username)
	if err != nil {
		a.hasher.Verify(password, dummyHash)
		return "", ErrInvalidCredentials
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}

	token, err := a.codec.Issue(user.Username, user.ID, user.Role, a.ttl)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
