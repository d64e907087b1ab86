package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken = errors.New("malformed token")
	ErrNoExpiry       = errors.New("token carries no expiry")
)

// TokenExpiry reads the expiry claim out of a stored JWT without
// verifying its signature. The server remains the sole authority on
// token validity; this is only a hint so a host can warn the user
// before a request is bound to fail.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, ErrMalformedToken
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}

// TokenExpired reports whether the stored JWT is already past its
// expiry. Tokens without an expiry claim count as not expired.
func TokenExpired(token string, now time.Time) (bool, error) {
	expiresAt, err := TokenExpiry(token)
	if err != nil {
		if errors.Is(err, ErrNoExpiry) {
			return false, nil
		}
		return false, err
	}
	return expiresAt.Before(now), nil
}
