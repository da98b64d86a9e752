package auth

// RoleAdmin is the role value with elevated privilege.
const RoleAdmin = "admin"

// Identity is the caller recovered from a bearer token. Role is the
// value embedded at issuance, not a live read of the user record.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == RoleAdmin
}

// Resolver recovers a caller identity from a bearer token. It is the
// gate in front of every protected operation and performs no store
// reads, so a failure costs the same regardless of whether the
// referenced user exists.
type Resolver struct {
	codec *TokenCodec
}

func NewResolver(codec *TokenCodec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve decodes and verifies tokenStr. Any codec failure maps to
// ErrUnauthorized.
func (r *Resolver) Resolve(tokenStr string) (Identity, error) {
	claims, err := r.codec.Decode(tokenStr)
	if err != nil {
		return Identity{}, ErrUnauthorized
	}
	return Identity{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Role:     claims.Role,
	}, nil
}
