package main

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// signDemoSession creates an HS256 token for one anonymous demo session. The
// UI surfaces the expiry so visitors know when the sandbox resets.
func signDemoSession(secret string, ttl time.Duration) (token string, expiresAt time.Time, err error) {
	expiresAt = time.Now().Add(ttl)
	claims := jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
		"iss": "skylens-demo",
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = t.SignedString([]byte(secret))
	return token, expiresAt, err
}

// parseDemoSession validates a demo token and returns the session id.
func parseDemoSession(secret, tokenStr string) (string, error) {
	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid token")
	}
	if claims, ok := tok.Claims.(jwt.MapClaims); ok {
		if sub, ok := claims["sub"].(string); ok {
			return sub, nil
		}
	}
	return "", errors.New("no subject")
}
