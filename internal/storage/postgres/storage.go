// Package postgres implements the user and progress stores over PostgreSQL,
// reached through database/sql with the pgx stdlib driver.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/arcadelab/wavearena-go/internal/model"
	"github.com/arcadelab/wavearena-go/internal/storage"
	"github.com/arcadelab/wavearena-go/internal/storage/postgres/migrations"
)

// DBTX is the subset of database/sql used by the store.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Storage is a PostgreSQL-backed implementation of the user and progress stores
type Storage struct {
	db   DBTX
	conn *sql.DB
}

// New opens a connection pool for the given DSN and verifies it
func New(dsn string) (*Storage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return &Storage{db: db, conn: db}, nil
}

// NewWithDB creates a Storage with an existing handle (for testing)
func NewWithDB(db DBTX) *Storage {
	return &Storage{db: db}
}

// Close closes the underlying connection pool
func (s *Storage) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// RunMigrations applies the embedded schema migrations
func (s *Storage) RunMigrations(ctx context.Context) error {
	if s.conn == nil {
		return errors.New("migrations require a *sql.DB connection")
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, s.conn, ".")
}

// Ensure Storage implements the interfaces
var (
	_ storage.UserStore     = (*Storage)(nil)
	_ storage.ProgressStore = (*Storage)(nil)
)

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	query := `INSERT INTO users (username, password_hash)
	          VALUES ($1, $2)
	          RETURNING user_id, created_at`

	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := s.db.QueryRowContext(ctx, query, username, passwordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `SELECT user_id, username, password_hash, created_at
	          FROM users
	          WHERE username = $1`

	rows, err := s.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var matches []*model.User
	for rows.Next() {
		user := &model.User{}
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		matches = append(matches, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, model.ErrUserNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, model.ErrDuplicateUsername
	}
}

func (s *Storage) GetUserID(ctx context.Context, username string) (model.UserID, error) {
	query := `SELECT user_id FROM users WHERE username = $1`

	var id model.UserID
	err := s.db.QueryRowContext(ctx, query, username).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrUserNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

// Progress operations

func (s *Storage) GetProgress(ctx context.Context, userID model.UserID) (*model.Progress, error) {
	query := `SELECT user_id, high_score, max_wave
	          FROM user_progress
	          WHERE user_id = $1`

	p := &model.Progress{}
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&p.UserID, &p.HighScore, &p.MaxWave)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrProgressNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (s *Storage) InsertProgress(ctx context.Context, p *model.Progress) error {
	query := `INSERT INTO user_progress (user_id, high_score, max_wave)
	          VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, p.UserID, p.HighScore, p.MaxWave); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *Storage) UpdateProgress(ctx context.Context, p *model.Progress) error {
	query := `UPDATE user_progress
	          SET high_score = $2, max_wave = $3
	          WHERE user_id = $1`

	if _, err := s.db.ExecContext(ctx, query, p.UserID, p.HighScore, p.MaxWave); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
