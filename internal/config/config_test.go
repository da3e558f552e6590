package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.False(t, cfg.IsProduction())
	require.Equal(t, ":3000", cfg.App.HTTPAddr)
	require.Equal(t, 7*24*time.Hour, cfg.App.SessionTTL)
	require.Len(t, cfg.App.AllowedOrigins, 2)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	require.True(t, cfg.IsProduction())
	require.Contains(t, cfg.DB.DSN(), "hunter2")
}

func TestDSN(t *testing.T) {
	db := DBConfig{
		Host: "db", Port: 5432, User: "app", Password: "pw",
		Database: "clothify", SSLMode: "disable",
	}
	require.Equal(t, "postgres://app:pw@db:5432/clothify?sslmode=disable", db.DSN())
}
