package service

import "errors"

// Flow-level failures the transport layer maps to the client surface.
// Store and mail failures are returned wrapped and treated as server
// errors by the handlers.
var (
	ErrEmptyFields      = errors.New("empty input fields")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrEmailNotVerified = errors.New("email not verified")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidToken     = errors.New("invalid or expired token")
)
