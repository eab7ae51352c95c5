package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by ParseTokenExpiry for tokens without an "exp" claim.
var ErrNoExpiry = errors.New("token has no expiration claim")

// ParseTokenExpiry reads the "exp" claim of a JWT without verifying its
// signature. The client only forwards the token, so it cannot verify it; the
// expiry is used for diagnostics.
//
// Returns an error if tokenString is not a well-formed JWT, or [ErrNoExpiry]
// if it carries no expiration time.
func ParseTokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading token expiration: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
