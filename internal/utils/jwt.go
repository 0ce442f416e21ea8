package utils // package utils provides helpers for session token creation

import (
	"time" // time utilities for computing expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed JWT along with its expiry.  The token is
// self-contained: it carries the user id, email and role as claims, and its
// expiration is the only bound on its lifetime.  There is no server-side
// revocation list; logout is client-side deletion of the token.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user's id, email and role, and a TTL in days.  The JWT
// includes standard claims: subject (sub), email, role, expiration (exp) and
// issued at (iat).
func NewSessionToken(secret string, userID uint64, email, role string, ttlDays int) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   exp.Unix(),
		"iat":   now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
