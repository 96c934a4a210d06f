package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/portfolio")
	t.Setenv("GITHUB_ACCOUNT", "octo")
	t.Setenv("JWT_SECRET", secret)

	cfg, err := LoadConfig(RequireServer)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, []string{"portfolio-website"}, cfg.GithubExcludedRepos)
	assert.Equal(t, 30*time.Second, cfg.GithubTimeout)
	assert.True(t, cfg.SyncOnPageLoad)
	assert.Equal(t, time.Duration(0), cfg.SyncInterval)
	assert.False(t, cfg.SyncPruneStale)
	assert.Equal(t, 2*time.Minute, cfg.SyncTimeout)
	assert.Equal(t, 168*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.CORSAllowedOrigins)
	assert.Equal(t, "admin", cfg.AdminDefaultUsername)
	assert.Equal(t, 12*time.Second, cfg.LoginRateInterval)
	assert.Equal(t, 5, cfg.LoginBurst)
	assert.Equal(t, 587, cfg.SMTPPort)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/portfolio")
	t.Setenv("GITHUB_ACCOUNT", "octo")
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("GITHUB_EXCLUDED_REPOS", "portfolio-website, dotfiles ,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("SYNC_INTERVAL", "30m")
	t.Setenv("SYNC_ON_PAGE_LOAD", "false")
	t.Setenv("SYNC_PRUNE_STALE", "true")
	t.Setenv("SMTP_PORT", "465")

	cfg, err := LoadConfig(RequireServer)
	require.NoError(t, err)

	assert.Equal(t, []string{"portfolio-website", "dotfiles"}, cfg.GithubExcludedRepos)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.SyncInterval)
	assert.False(t, cfg.SyncOnPageLoad)
	assert.True(t, cfg.SyncPruneStale)
	assert.Equal(t, 465, cfg.SMTPPort)
}

func TestLoadConfig_Requirements(t *testing.T) {
	t.Run("database only", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://localhost/portfolio")

		_, err := LoadConfig(RequireDatabase)
		assert.NoError(t, err)

		_, err = LoadConfig(RequireSync)
		assert.EqualError(t, err, "GITHUB_ACCOUNT is a required configuration field")
	})

	t.Run("missing database", func(t *testing.T) {
		t.Setenv("DB_URL", "")

		_, err := LoadConfig(RequireDatabase)
		assert.EqualError(t, err, "DB_URL is a required configuration field")
	})

	t.Run("server needs a long secret", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://localhost/portfolio")
		t.Setenv("GITHUB_ACCOUNT", "octo")
		t.Setenv("JWT_SECRET", "short")

		_, err := LoadConfig(RequireServer)
		assert.Error(t, err)

		cfg, err := LoadConfig(RequireSync)
		require.NoError(t, err)
		assert.Equal(t, "octo", cfg.GithubAccount)
	})
}
