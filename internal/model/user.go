package model

import "time"

// UserID uniquely identifies a registered user across the system
type UserID int64

// User represents a registered account
type User struct {
	ID           UserID
	Username     string // login username (immutable, case-sensitive)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}

// Progress holds a user's best recorded run.
// Score is the primary ordering; wave only improves on a score tie.
type Progress struct {
	UserID    UserID
	HighScore int64
	MaxWave   int64
}

// DefaultProgress is the conceptual state before a user's first submission
func DefaultProgress(userID UserID) Progress {
	return Progress{
		UserID:    userID,
		HighScore: 0,
		MaxWave:   1,
	}
}

// Session binds an opaque token to an authenticated user.
// Username is cached from the user row so whoami doesn't need a DB read.
type Session struct {
	Token     string    `json:"token"`
	UserID    UserID    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
