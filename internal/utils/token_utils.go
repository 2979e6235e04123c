package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyJWTSecret is returned when signing or verifying without a key.
var ErrEmptyJWTSecret = errors.New("jwt secret is empty")

// GenerateJWT signs an HS256 token for userID that expires after ttl.
// The identity provider mints the same shape of token; booksctl uses this for development.
func GenerateJWT(userID string, secret string, ttl time.Duration, issuer string) (string, error) {
	if secret == "" {
		return "", ErrEmptyJWTSecret
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAndValidateJWT verifies the HS256 signature and time claims of tokenString.
// Errors from jwt (ErrTokenExpired, ErrTokenNotValidYet, ...) are returned as is.
func ParseAndValidateJWT(tokenString string, secret string) (*jwt.RegisteredClaims, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
