package jwtx

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of an issued credential. Clients are
// expected to re-authenticate after expiry; there is no refresh flow.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims are the identity facts embedded in an issued token. Keeping changes
// additive preserves compatibility with tokens already held by clients.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the numeric id of the authenticated user.
	UserID int64 `json:"user_id"`

	// Email of the user at issue time.
	Email string `json:"email,omitempty"`

	// Role of the user at issue time. Informational only; handlers gate on
	// token validity, not on role.
	Role string `json:"role,omitempty"`
}

// NewClaims builds minimally-correct claims for a user identity.
func NewClaims(userID int64, email, role, issuer string, ttl time.Duration, now time.Time) Claims {
	now = now.UTC()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	}
}

// ValidateIssuer checks the issuer claim against an expected value.
// An empty expected value enforces nothing.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry(now time.Time) error {
	now = now.UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
