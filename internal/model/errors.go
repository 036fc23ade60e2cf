package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	// ErrDuplicateUsername indicates more than one row matched a username.
	// Should be impossible with the unique constraint in place; callers treat
	// it as an authentication failure rather than a server error.
	ErrDuplicateUsername = errors.New("duplicate rows for username")

	// Progress errors
	ErrProgressNotFound = errors.New("progress not found")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")
)
