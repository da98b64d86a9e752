package auth

import "errors"

// Error taxonomy shared by the auth core and the transport layer.
// Messages are deliberately generic so responses never leak whether a
// username exists, a token was expired vs. forged, or a record was
// merely not owned by the caller.
var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password at login.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken covers malformed, badly signed, expired and
	// incomplete tokens alike.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized means no valid identity could be resolved for
	// the request.
	ErrUnauthorized = errors.New("could not validate user")

	// ErrForbidden means a valid identity lacks the required role.
	ErrForbidden = errors.New("insufficient privilege")

	// ErrNotFound means the record is absent, or exists but is not
	// owned by the caller. The two cases are intentionally
	// indistinguishable.
	ErrNotFound = errors.New("record not found")
)
