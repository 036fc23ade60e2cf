package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds server configuration loaded from the environment
type Config struct {
	// Port is the TCP port the HTTP server listens on
	Port int
	// DatabaseURL is the Postgres connection string (empty selects in-memory storage)
	DatabaseURL string
	// RedisURL is the Redis connection string for sessions (empty selects in-memory storage)
	RedisURL string
	// ClientOrigins is the list of origins allowed to make credentialed requests
	ClientOrigins []string
	// CookieSecure marks session cookies as Secure (HTTPS only)
	CookieSecure bool
	// SessionDuration is how long sessions remain valid
	SessionDuration time.Duration
}

// Default returns a Config with default values
func Default() Config {
	return Config{
		Port:            3000,
		ClientOrigins:   []string{"http://localhost:5173"},
		CookieSecure:    false,
		SessionDuration: 24 * time.Hour,
	}
}

// Load reads configuration from environment variables, falling back to defaults
func Load() (Config, error) {
	cfg := Default()

	if val := os.Getenv("PORT"); val != "" {
		port, err := strconv.Atoi(val)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", val)
		}
		cfg.Port = port
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.RedisURL = os.Getenv("REDIS_URL")

	if val := os.Getenv("CLIENT_ORIGINS"); val != "" {
		var origins []string
		for _, o := range strings.Split(val, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.ClientOrigins = origins
		}
	}

	if val := os.Getenv("COOKIE_SECURE"); val != "" {
		secure, err := strconv.ParseBool(val)
		if err != nil {
			return Config{}, fmt.Errorf("invalid COOKIE_SECURE %q", val)
		}
		cfg.CookieSecure = secure
	}

	if val := os.Getenv("SESSION_DURATION"); val != "" {
		dur, err := time.ParseDuration(val)
		if err != nil || dur <= 0 {
			return Config{}, fmt.Errorf("invalid SESSION_DURATION %q", val)
		}
		cfg.SessionDuration = dur
	}

	return cfg, nil
}
