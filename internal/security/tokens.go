package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is malformed, tampered with, or expired.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims holds JWT claims for a session token. Subject carries the
// user's email; UserID the numeric identifier.
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// TokenProvider issues and validates stateless HS256 session tokens using a
// process-wide signing secret injected at startup. The secret is never
// rotated within a process lifetime.
type TokenProvider struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenProvider returns a TokenProvider that signs with the given secret.
// issuer and audience are set on claims and validated on the way back in.
func NewTokenProvider(secret []byte, issuer, audience string, ttl time.Duration) *TokenProvider {
	return &TokenProvider{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// IssueSession issues a session JWT for the given email and user id.
// Returns the token string and its expiration time.
func (p *TokenProvider) IssueSession(email string, userID int64) (string, time.Time, error) {
	now := p.now().UTC()
	expiresAt := now.Add(p.ttl)
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    p.issuer,
			Audience:  jwt.ClaimStrings{p.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: userID,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// VerifySession parses and validates a session token (signature, exp, iss, aud).
// Fails closed: any tampering, malformed structure, or expiry yields ErrInvalidToken.
func (p *TokenProvider) VerifySession(tokenString string) (email string, userID int64, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return p.secret, nil
	}, jwt.WithTimeFunc(p.now))
	if err != nil {
		return "", 0, ErrInvalidToken
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return "", 0, ErrInvalidToken
	}
	if claims.Issuer != p.issuer {
		return "", 0, ErrInvalidToken
	}
	audOk := false
	for _, a := range claims.Audience {
		if a == p.audience {
			audOk = true
			break
		}
	}
	if !audOk {
		return "", 0, ErrInvalidToken
	}
	return claims.Subject, claims.UserID, nil
}
