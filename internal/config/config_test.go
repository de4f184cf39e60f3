package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig(".")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "nutrisync", cfg.Database.Name)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 60, cfg.Scoring.StreakMinScore)
	assert.Equal(t, 30, cfg.Scoring.StreakLookbackDays)
	assert.True(t, cfg.S3.UseSSL)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := []byte(`
server:
  address: ":9000"
jwt:
  secret: "file-secret"
  expiration: "24h"
scoring:
  streak_min_score: 75
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("DATABASE_NAME", "nutrisync_test")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Address)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "nutrisync_test", cfg.Database.Name)
	assert.Equal(t, 75, cfg.Scoring.StreakMinScore)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir()) // .env is read from the config directory, not the working directory
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SCORING_STREAK_MIN_SCORE=80\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SCORING_STREAK_MIN_SCORE") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Scoring.StreakMinScore)
}
