package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/arcadelab/wavearena-go/internal/services/auth"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(context.Background(), Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	assert.Nil(t, app.DB)
	assert.Nil(t, app.SessionDB)
	assert.NotNil(t, app.Users)
	assert.NotNil(t, app.Progress)
	assert.NotNil(t, app.Sessions)
	assert.NotNil(t, app.AuthService)
	assert.NotNil(t, app.ProgressService)
}

func TestNewPreservesPartialAuthConfig(t *testing.T) {
	// Only the cost is set; the zero duration must not reset it
	app, err := New(context.Background(), Config{
		AuthConfig: auth.Config{BcryptCost: bcrypt.MinCost},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	session, err := app.AuthService.Register(context.Background(), "alice", "Str0ng!Pass")
	require.NoError(t, err)

	user, err := app.Users.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(user.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	// The unset duration still gets its default
	assert.WithinDuration(t,
		session.CreatedAt.Add(24*time.Hour), session.ExpiresAt, time.Second)
}
