package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, "info", cfg.Log.Level)
	require.Empty(t, cfg.Redis.Addr)
	require.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	require.Equal(t, 5, cfg.RateLimit.Capacity)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	data := []byte("server:\n  port: \"9090\"\ncache:\n  ttl: 30s\nratelimit:\n  capacity: 20\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), data, 0o600))
	t.Setenv("LOANCALC_REDIS_ADDR", "localhost:6379")

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Cache.TTL)
	require.Equal(t, 20, cfg.RateLimit.Capacity)
	require.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.NoError(t, err)
}

func TestLoadRejectsBadCapacity(t *testing.T) {
	t.Setenv("LOANCALC_RATELIMIT_CAPACITY", "0")
	_, err := Load("")
	require.Error(t, err)
}
