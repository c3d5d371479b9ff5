package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, "5000", cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.Database.Driver)
	require.Equal(t, "http://localhost:5000", cfg.Client.BaseURL)
	require.Equal(t, 15*time.Second, cfg.Client.Timeout)
	require.Equal(t, "file", cfg.Client.TokenStore)
	require.Equal(t, "en", cfg.Client.Language)
	require.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	require.Equal(t, "admin", cfg.Admin.Password)
	require.Empty(t, cfg.Admin.PasswordHash, "hash is derived at startup unless supplied")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("CLUB_HTTP_TIMEOUT", "3s")
	t.Setenv("CLUB_LANGUAGE", "kn")

	cfg := Load()
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "postgres", cfg.Database.Driver)
	require.Equal(t, 5433, cfg.Database.Port)
	require.Equal(t, 3*time.Second, cfg.Client.Timeout)
	require.Equal(t, "kn", cfg.Client.Language)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")
	t.Setenv("CLUB_HTTP_TIMEOUT", "not-a-duration")

	cfg := Load()
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 15*time.Second, cfg.Client.Timeout)
}

func TestDatabaseURL(t *testing.T) {
	c := DatabaseConfig{
		Host: "db.local", Port: 5432, User: "club", Password: "pw",
		DBName: "kalasangha", SSLMode: "disable",
	}
	require.Equal(t, "postgres://club:pw@db.local:5432/kalasangha?sslmode=disable", c.URL())
}
