package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer is anything that can mint a signed token from claims.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a token string and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256Signer issues tokens signed with a shared symmetric secret.
type HS256Signer struct {
	Secret []byte
	Issuer string

	// TTL applied by SignFor. Zero means DefaultTokenTTL.
	TTL time.Duration
}

// Sign serializes and signs the given claims.
func (s *HS256Signer) Sign(c Claims) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return tok.SignedString(s.Secret)
}

// SignFor builds claims for a user identity and signs them in one step.
func (s *HS256Signer) SignFor(userID int64, email, role string) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return s.Sign(NewClaims(userID, email, role, s.Issuer, ttl, time.Now()))
}

// HS256Verifier checks tokens against the shared secret. Verification is a
// pure function of token, secret and current time; no server-side state.
type HS256Verifier struct {
	Secret []byte

	// Issuer to enforce on the iss claim. Empty means "don't care".
	Issuer string
}

// Verify parses the token, checks the signature, algorithm, expiry and
// issuer. The returned errors distinguish failure modes for logging; callers
// presenting errors to clients should collapse them into one rejection.
func (v *HS256Verifier) Verify(raw string) (Claims, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return Claims{}, mapParseError(err)
	}
	if !tok.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(v.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(time.Now()); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, ErrAlgMismatch):
		return ErrAlgMismatch
	default:
		return ErrMalformed
	}
}
