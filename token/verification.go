package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("verification token expired")
	ErrTokenMalformed = errors.New("verification token malformed")
)

// VerificationTTL is how long an email-verification token stays valid.
const VerificationTTL = time.Hour

// Issuer signs and validates email-verification tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret, ttl: VerificationTTL, now: time.Now}
}

// Issue signs a token binding the given email, valid for one hour.
func (i *Issuer) Issue(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   i.now().Add(i.ttl).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}

// Validate checks signature and expiry and returns the bound email.
// Expiry and tampering are reported as distinct errors; one-time use is
// not tracked here — callers pair the token with the user's stored
// verification token to detect reuse.
func (i *Issuer) Validate(tokenString string) (string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return i.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return "", ErrTokenMalformed
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrTokenMalformed
	}
	return email, nil
}
