package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when no explicit cost is given.
const DefaultCost = 10

// ErrPasswordMismatch is returned by VerifyPassword when the plaintext does
// not match the stored digest, or when the digest itself is unusable. Both
// cases collapse into one error so a malformed digest can never read as a
// successful verification.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword derives a salted bcrypt digest from a plaintext password using
// DefaultCost. The salt is generated by bcrypt and embedded in the digest.
func HashPassword(password string) (string, error) {
	return HashPasswordCost(password, DefaultCost)
}

// HashPasswordCost is HashPassword with an explicit work factor. Costs below
// bcrypt.MinCost are raised to DefaultCost rather than producing weak digests.
func HashPasswordCost(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword compares a plaintext password against a bcrypt digest.
// The comparison is constant-time inside bcrypt. Any failure, including a
// digest that is not valid bcrypt output, returns ErrPasswordMismatch.
func VerifyPassword(password, digest string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
