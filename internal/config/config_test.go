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

	assert.Equal(t, "worker-directory", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, "0.0.0.0:9090", cfg.GRPC.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "creds", cfg.Auth.Mode)
	assert.Equal(t, "http://creds-api", cfg.Auth.CredsAPIURL)
	assert.Equal(t, 5*time.Second, cfg.Auth.CredsTimeout())
	assert.Zero(t, cfg.Auth.CacheTTL())
	assert.False(t, cfg.GRPC.TLSEnabled())
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "3000")
	t.Setenv("AUTH_MODE", "static")
	t.Setenv("AUTH_CACHE_TTL_SECONDS", "60")
	t.Setenv("POSTGRES_MAX_CONNS", "25")
	t.Setenv("GRPC_TLS_CERT_FILE", "server.crt")
	t.Setenv("GRPC_TLS_KEY_FILE", "server.key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.App.Addr())
	assert.Equal(t, "static", cfg.Auth.Mode)
	assert.Equal(t, time.Minute, cfg.Auth.CacheTTL())
	assert.Equal(t, int32(25), cfg.Postgres.MaxConns)
	assert.True(t, cfg.GRPC.TLSEnabled())
}

func TestLoadRejectsUnknownAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "ldap")

	_, err := Load()
	assert.Error(t, err)
}

func TestInvalidIntsFallBack(t *testing.T) {
	t.Setenv("POSTGRES_MAX_CONNS", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
}
