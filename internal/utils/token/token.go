// Package token issues and verifies the owner-scoped JWTs accepted by the API.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer is stamped on tokens minted by this service.
const Issuer = "money_planner"

// ErrMissingSubject is returned for a correctly signed token without an owner.
var ErrMissingSubject = errors.New("token subject is empty")

// IssueOwnerToken signs an HS256 token whose subject is ownerID.
func IssueOwnerToken(ownerID, secret string, ttl time.Duration) (string, error) {
	if ownerID == "" {
		return "", ErrMissingSubject
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   ownerID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseOwnerToken validates the signature and standard claims of tokenString
// and returns its subject. jwt sentinel errors (expired, not valid yet) are preserved.
func ParseOwnerToken(tokenString, secret string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
