package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err) // explicit CONFIG_PATH must exist

	t.Setenv("CONFIG_PATH", "")
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTP.Address)
	require.Equal(t, 70, cfg.FAQ.Threshold)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	payload := `
http:
  address: ":9090"
faq:
  threshold: 80
`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("FAQ_THRESHOLD", "90")
	t.Setenv("ADMIN_JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 90, cfg.FAQ.Threshold) // env wins over file
	require.Equal(t, "s3cret", cfg.Admin.JWTSecret)
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	cfg := defaultConfig()
	cfg.FAQ.Threshold = 101
	require.Error(t, cfg.Validate())

	cfg.FAQ.Threshold = 0
	require.Error(t, cfg.Validate())
}

func TestValidateValkeyNeedsAddr(t *testing.T) {
	cfg := defaultConfig()
	cfg.Valkey.Enabled = true
	require.Error(t, cfg.Validate())

	cfg.Valkey.Addr = "localhost:6379"
	require.NoError(t, cfg.Validate())
}
