// Package jwt issues and verifies the bearer tokens handed out at login.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/swipehome/api/internal/domain"
)

// Claims are the token claims the transport layer relies on.
type Claims struct {
	UserID string      `json:"uid"`
	Kind   domain.Kind `json:"kind"`
	jwt.RegisteredClaims
}

// Provider signs and parses HMAC-SHA256 tokens.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(secret string, expiry time.Duration) (*Provider, error) {
	if secret == "" {
		return nil, errors.New("jwt secret not configured")
	}
	return &Provider{secret: []byte(secret), expiry: expiry}, nil
}

// Sign issues a token for the given identity.
func (p *Provider) Sign(ident domain.Identity) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID: ident.ID,
		Kind:   ident.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ident.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

// Parse verifies the token signature and expiry and returns its claims.
func (p *Provider) Parse(tokenString string) (*Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrInvalidCredentials)
	}
	return &claims, nil
}
