package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeAdmin grants access to the admin routes.
const ScopeAdmin = "admin"

var ErrMissingScope = errors.New("token lacks required scope")

// GenerateToken signs a service token for subject with the given scope.
// A zero ttl yields a token without expiry.
func GenerateToken(secret, subject, scope string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   subject,
		"scope": scope,
		"iat":   now.Unix(),
	}
	if ttl > 0 {
		claims["exp"] = now.Add(ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

// ParseToken verifies an HS256 token and checks it carries scope.
// It returns the token subject.
func ParseToken(secret, tokenString, scope string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	if s, _ := claims["scope"].(string); s != scope {
		return "", ErrMissingScope
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	return subject, nil
}
