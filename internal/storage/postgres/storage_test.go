package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadelab/wavearena-go/internal/model"
)

func newStoreWithMock(t *testing.T) (*Storage, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewWithDB(db), mock, db
}

func TestCreateUser(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash123").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(int64(7), created))

	user, err := store.CreateUser(context.Background(), "alice", "hash123")
	require.NoError(t, err)
	assert.Equal(t, model.UserID(7), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hash123", user.PasswordHash)
	assert.Equal(t, created, user.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserUniqueViolation(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("alice", "hash123").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := store.CreateUser(context.Background(), "alice", "hash123")
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByUsername(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT user_id, username, password_hash, created_at").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
			AddRow(int64(7), "alice", "hash123", created))

	user, err := store.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, model.UserID(7), user.ID)
	assert.Equal(t, "hash123", user.PasswordHash)
}

func TestGetUserByUsernameNotFound(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	mock.ExpectQuery("SELECT user_id, username, password_hash, created_at").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}))

	_, err := store.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestGetUserByUsernameDuplicateRows(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT user_id, username, password_hash, created_at").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "username", "password_hash", "created_at"}).
			AddRow(int64(7), "alice", "hash1", created).
			AddRow(int64(8), "alice", "hash2", created))

	_, err := store.GetUserByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, model.ErrDuplicateUsername)
}

func TestGetUserID(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	mock.ExpectQuery("SELECT user_id FROM users").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

	id, err := store.GetUserID(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, model.UserID(7), id)
}

func TestGetProgress(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	mock.ExpectQuery("SELECT user_id, high_score, max_wave").
		WithArgs(model.UserID(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "high_score", "max_wave"}).
			AddRow(int64(7), int64(420), int64(5)))

	p, err := store.GetProgress(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(420), p.HighScore)
	assert.Equal(t, int64(5), p.MaxWave)
}

func TestGetProgressNotFound(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	mock.ExpectQuery("SELECT user_id, high_score, max_wave").
		WithArgs(model.UserID(7)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetProgress(context.Background(), 7)
	assert.ErrorIs(t, err, model.ErrProgressNotFound)
}

func TestInsertProgress(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_progress")).
		WithArgs(model.UserID(7), int64(100), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.InsertProgress(context.Background(), &model.Progress{UserID: 7, HighScore: 100, MaxWave: 3})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProgress(t *testing.T) {
	store, mock, _ := newStoreWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE user_progress")).
		WithArgs(model.UserID(7), int64(150), int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := store.UpdateProgress(context.Background(), &model.Progress{UserID: 7, HighScore: 150, MaxWave: 10})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
