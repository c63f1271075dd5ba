// Package auth issues and validates the anonymous visitor tokens that scope
// mission state. There are no accounts; a visitor is a signed random ID held
// in a cookie.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenTTL keeps visitor state alive roughly as long as a browser profile
const tokenTTL = 365 * 24 * time.Hour

// VisitorTokens signs and validates visitor identity tokens
type VisitorTokens struct {
	secret []byte
	issuer string
}

// NewVisitorTokens creates a token signer. secret must be non-empty outside
// development.
func NewVisitorTokens(secret, issuer string) *VisitorTokens {
	if secret == "" {
		secret = "development-secret-change-in-production"
	}
	return &VisitorTokens{secret: []byte(secret), issuer: issuer}
}

// NewVisitorID mints a fresh visitor identifier
func NewVisitorID() string {
	return uuid.New().String()
}

// Issue signs a token for the visitor ID
func (v *VisitorTokens) Issue(visitorID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   visitorID,
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign visitor token: %w", err)
	}
	return signed, nil
}

// Parse validates a token and returns the visitor ID it carries
func (v *VisitorTokens) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer))
	if err != nil {
		return "", fmt.Errorf("invalid visitor token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("visitor token missing subject")
	}
	return claims.Subject, nil
}
