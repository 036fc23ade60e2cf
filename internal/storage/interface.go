package storage

import (
	"context"

	"github.com/arcadelab/wavearena-go/internal/model"
)

// UserStore persists registered user credentials
type UserStore interface {
	// CreateUser inserts a new user and returns it with the assigned ID.
	// Returns model.ErrUsernameTaken if the username is already in use.
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)

	// GetUserByUsername fetches a user by exact username match.
	// Returns model.ErrUserNotFound when no row matches and
	// model.ErrDuplicateUsername when more than one does.
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// GetUserID resolves a username to its user ID
	GetUserID(ctx context.Context, username string) (model.UserID, error)
}

// ProgressStore persists per-user best score and wave
type ProgressStore interface {
	// GetProgress fetches the stored progress for a user, or
	// model.ErrProgressNotFound when no row exists yet
	GetProgress(ctx context.Context, userID model.UserID) (*model.Progress, error)

	// InsertProgress creates the first progress row for a user
	InsertProgress(ctx context.Context, p *model.Progress) error

	// UpdateProgress overwrites the stored best for a user
	UpdateProgress(ctx context.Context, p *model.Progress) error
}

// SessionStore persists session records keyed by their opaque token
type SessionStore interface {
	SaveSession(ctx context.Context, session *model.Session) error

	// GetSession fetches a session by token, or model.ErrSessionNotFound
	// when the token is unknown or the record has expired out of the store
	GetSession(ctx context.Context, token string) (*model.Session, error)

	DeleteSession(ctx context.Context, token string) error
}
