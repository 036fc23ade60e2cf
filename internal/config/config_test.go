package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.ClientOrigins)
	assert.False(t, cfg.CookieSecure)
	assert.Equal(t, 24*time.Hour, cfg.SessionDuration)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/arena")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CLIENT_ORIGINS", "https://play.example.com, https://staging.example.com")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("SESSION_DURATION", "12h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "postgres://localhost/arena", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, []string{"https://play.example.com", "https://staging.example.com"}, cfg.ClientOrigins)
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 12*time.Hour, cfg.SessionDuration)
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "PORT", "abc"},
		{"port out of range", "PORT", "70000"},
		{"bad cookie flag", "COOKIE_SECURE", "maybe"},
		{"bad duration", "SESSION_DURATION", "soon"},
		{"negative duration", "SESSION_DURATION", "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
