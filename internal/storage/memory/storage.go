package memory

import (
	"context"
	"sync"
	"time"

	"github.com/arcadelab/wavearena-go/internal/model"
	"github.com/arcadelab/wavearena-go/internal/storage"
)

// Storage is an in-memory implementation of all three stores, used for
// local development and hermetic tests
type Storage struct {
	mu sync.RWMutex

	nextUserID model.UserID
	users      map[model.UserID]*model.User
	byUsername map[string]model.UserID
	progress   map[model.UserID]*model.Progress
	sessions   map[string]*model.Session
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		nextUserID: 1,
		users:      make(map[model.UserID]*model.User),
		byUsername: make(map[string]model.UserID),
		progress:   make(map[model.UserID]*model.Progress),
		sessions:   make(map[string]*model.Session),
	}
}

// Ensure Storage implements the interfaces
var (
	_ storage.UserStore     = (*Storage)(nil)
	_ storage.ProgressStore = (*Storage)(nil)
	_ storage.SessionStore  = (*Storage)(nil)
)

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[username]; taken {
		return nil, model.ErrUsernameTaken
	}

	user := &model.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.nextUserID++

	s.users[user.ID] = user
	s.byUsername[username] = user.ID
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return s.users[id], nil
}

func (s *Storage) GetUserID(ctx context.Context, username string) (model.UserID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return 0, model.ErrUserNotFound
	}
	return id, nil
}

// Progress operations

func (s *Storage) GetProgress(ctx context.Context, userID model.UserID) (*model.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.progress[userID]
	if !ok {
		return nil, model.ErrProgressNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Storage) InsertProgress(ctx context.Context, p *model.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	s.progress[p.UserID] = &cp
	return nil
}

func (s *Storage) UpdateProgress(ctx context.Context, p *model.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *p
	s.progress[p.UserID] = &cp
	return nil
}

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	s.sessions[session.Token] = &cp
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token string) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *Storage) DeleteSession(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
