// Package auth verifies bearer tokens and attaches the caller identity to
// incoming requests.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jyotimcanitrr/Your-AI-Doctor-Application/internal/domain"
)

// Claims is the token payload issued by the auth system: the user identifier
// plus the registered claims (an expiry is mandatory).
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Verifier validates HS256-signed bearer tokens.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a verifier for the given shared secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify validates the token and returns the stable user identifier.
// Every failure mode collapses to domain.ErrUnauthorized; no parser or
// signature detail crosses this boundary.
func (v *Verifier) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return v.secret, nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.UserID, nil
}
