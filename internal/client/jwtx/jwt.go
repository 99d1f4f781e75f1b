// Package jwtx reads expiry from access tokens without verifying them. The
// client cannot check signatures; it only needs to know whether a token is
// worth sending.
package jwtx

import (
	"time"

	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the claims the backend puts into access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Type string `json:"type,omitempty"`
}

var parser = jwt.NewParser()

// ExpiresAt returns the exp claim. A token that cannot be decoded or has no
// exp yields common.ErrInvalidToken.
func ExpiresAt(token string) (time.Time, error) {
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, common.ErrInvalidToken
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, common.ErrInvalidToken
	}
	return exp.Time, nil
}

// IsExpired reports whether token is expired, or will be within margin.
func IsExpired(token string, margin time.Duration) bool {
	return IsExpiredAt(token, margin, time.Now())
}

// IsExpiredAt is IsExpired against a fixed clock. Tokens without a readable
// exp count as expired.
func IsExpiredAt(token string, margin time.Duration, now time.Time) bool {
	exp, err := ExpiresAt(token)
	if err != nil {
		return true
	}
	return !now.Add(margin).Before(exp)
}

// Sign mints an HS256 token for subject valid for ttl. Used by fake backends
// in tests and by local tooling.
func Sign(subject string, secret []byte, ttl time.Duration) (string, error) {
	jti, err := common.MakeRandHexString(8)
	if err != nil {
		return "", err
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
		Type: "access",
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}
