// Package auth provides authentication collaborators: password hashing
// and JWT token issuance/validation.
package auth

import "errors"

// Common authentication errors.
var (
	// ErrInvalidCredentials is returned when a supplied password does not
	// match the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a JWT fails signature or claims
	// validation.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a JWT is past its expiry.
	ErrExpiredToken = errors.New("token expired")
)
