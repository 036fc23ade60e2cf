package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/arcadelab/wavearena-go/internal/dependencies/clock"
	"github.com/arcadelab/wavearena-go/internal/model"
	"github.com/arcadelab/wavearena-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrWeakPassword       = errors.New("password does not meet strength requirements")
)

// Service handles account registration, login and session management
type Service struct {
	users    storage.UserStore
	sessions storage.SessionStore
	clock    clock.Clock
	logger   *slog.Logger

	sessionDuration time.Duration
	bcryptCost      int
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
	BcryptCost      int
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
		BcryptCost:      12,
	}
}

// New creates a new auth Service
func New(users storage.UserStore, sessions storage.SessionStore, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = DefaultConfig().BcryptCost
	}
	return &Service{
		users:           users,
		sessions:        sessions,
		clock:           clk,
		logger:          logger,
		sessionDuration: cfg.SessionDuration,
		bcryptCost:      cfg.BcryptCost,
	}
}

// Register creates an account and an initial session for it
func (s *Service) Register(ctx context.Context, username, password string) (*model.Session, error) {
	if !isStrongPassword(password) {
		return nil, ErrWeakPassword
	}

	// Check if username exists. The unique constraint below closes the
	// check-then-insert race; this lookup just makes the common case cheap.
	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil || errors.Is(err, model.ErrDuplicateUsername) {
		return nil, model.ErrUsernameTaken
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, username, string(hash))
	if err != nil {
		// A concurrent registration may land first; the constraint
		// violation surfaces as the same taken error.
		return nil, err
	}

	s.logger.Info("user registered", slog.String("username", user.Username))

	return s.createSession(ctx, user)
}

// Login authenticates a user and creates a session
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		// Unknown user and duplicate rows both read as bad credentials,
		// so callers can't probe which usernames exist
		if errors.Is(err, model.ErrUserNotFound) || errors.Is(err, model.ErrDuplicateUsername) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, user)
}

// Logout destroys the session for the given token.
// Store errors propagate so the handler can report the failure.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// ValidateSession checks a session token and returns the session
func (s *Service) ValidateSession(ctx context.Context, token string) (*model.Session, error) {
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if s.clock.Now().After(session.ExpiresAt) {
		_ = s.sessions.DeleteSession(ctx, token)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// createSession creates and persists a new session for a user
func (s *Service) createSession(ctx context.Context, user *model.User) (*model.Session, error) {
	now := s.clock.Now()

	session := &model.Session{
		Token:     generateToken("sess_"),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// generateToken generates a random opaque token with a prefix
func generateToken(prefix string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return prefix + base64.RawURLEncoding.EncodeToString(b)
}

// isStrongPassword reports whether pw is at least 10 characters and contains
// a lowercase letter, an uppercase letter, a digit and a symbol
func isStrongPassword(pw string) bool {
	var length int
	var lower, upper, digit, symbol bool

	for _, r := range pw {
		length++
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			symbol = true
		}
	}

	return length >= 10 && lower && upper && digit && symbol
}
