package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials = errors.New("incorrect credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
