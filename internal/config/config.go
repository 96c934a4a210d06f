// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	HTTPAddr       string `mapstructure:"HTTP_ADDR"`
	DBURL          string `mapstructure:"DB_URL"`
	MigrationsPath string `mapstructure:"MIGRATIONS_PATH"`

	GithubAccount       string        `mapstructure:"GITHUB_ACCOUNT"`
	GithubToken         string        `mapstructure:"GITHUB_TOKEN"`
	GithubAPIURL        string        `mapstructure:"GITHUB_API_URL"`
	GithubExcludedRepos []string      `mapstructure:"GITHUB_EXCLUDED_REPOS"`
	GithubTimeout       time.Duration `mapstructure:"GITHUB_TIMEOUT"`

	SyncOnPageLoad bool          `mapstructure:"SYNC_ON_PAGE_LOAD"`
	SyncInterval   time.Duration `mapstructure:"SYNC_INTERVAL"`
	SyncPruneStale bool          `mapstructure:"SYNC_PRUNE_STALE"`
	SyncTimeout    time.Duration `mapstructure:"SYNC_TIMEOUT"`

	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	SessionTTL         time.Duration `mapstructure:"SESSION_TTL"`
	CookieSecure       bool          `mapstructure:"COOKIE_SECURE"`
	CORSAllowedOrigins []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`

	AdminDefaultUsername string        `mapstructure:"ADMIN_DEFAULT_USERNAME"`
	AdminDefaultPassword string        `mapstructure:"ADMIN_DEFAULT_PASSWORD"`
	LoginRateInterval    time.Duration `mapstructure:"LOGIN_RATE_INTERVAL"`
	LoginBurst           int           `mapstructure:"LOGIN_BURST"`

	SMTPHost        string `mapstructure:"SMTP_HOST"`
	SMTPPort        int    `mapstructure:"SMTP_PORT"`
	SMTPUser        string `mapstructure:"SMTP_USER"`
	SMTPPass        string `mapstructure:"SMTP_PASS"`
	ContactNotifyTo string `mapstructure:"CONTACT_NOTIFY_TO"`
}

var defaults = map[string]interface{}{
	"LOG_LEVEL":              "info",
	"HTTP_ADDR":              ":8080",
	"DB_URL":                 "",
	"MIGRATIONS_PATH":        "file://migrations",
	"GITHUB_ACCOUNT":         "",
	"GITHUB_TOKEN":           "",
	"GITHUB_API_URL":         "",
	"GITHUB_EXCLUDED_REPOS":  "portfolio-website",
	"GITHUB_TIMEOUT":         "30s",
	"SYNC_ON_PAGE_LOAD":      true,
	"SYNC_INTERVAL":          "0s",
	"SYNC_PRUNE_STALE":       false,
	"SYNC_TIMEOUT":           "2m",
	"JWT_SECRET":             "",
	"SESSION_TTL":            "168h",
	"COOKIE_SECURE":          false,
	"CORS_ALLOWED_ORIGINS":   "",
	"ADMIN_DEFAULT_USERNAME": "admin",
	"ADMIN_DEFAULT_PASSWORD": "admin123",
	"LOGIN_RATE_INTERVAL":    "12s",
	"LOGIN_BURST":            5,
	"SMTP_HOST":              "smtp.gmail.com",
	"SMTP_PORT":              587,
	"SMTP_USER":              "",
	"SMTP_PASS":              "",
	"CONTACT_NOTIFY_TO":      "",
}

// Requirement says which fields must be present for a command.
type Requirement int

const (
	// RequireDatabase needs DB_URL only.
	RequireDatabase Requirement = iota
	// RequireSync also needs the GitHub account.
	RequireSync
	// RequireServer needs everything the HTTP server uses.
	RequireServer
)

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig(req Requirement) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.GithubExcludedRepos = cleanList(cfg.GithubExcludedRepos)
	cfg.CORSAllowedOrigins = cleanList(cfg.CORSAllowedOrigins)

	if err := cfg.Validate(req); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields needed for req.
func (c *Config) Validate(req Requirement) error {
	if c.DBURL == "" {
		return errors.New("DB_URL is a required configuration field")
	}
	if req == RequireDatabase {
		return nil
	}

	if c.GithubAccount == "" {
		return errors.New("GITHUB_ACCOUNT is a required configuration field")
	}
	if c.SyncInterval < 0 {
		return errors.New("SYNC_INTERVAL must not be negative")
	}
	if req == RequireSync {
		return nil
	}

	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET is required and must be at least 32 bytes")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.AdminDefaultUsername == "" || c.AdminDefaultPassword == "" {
		return errors.New("ADMIN_DEFAULT_USERNAME and ADMIN_DEFAULT_PASSWORD must not be empty")
	}
	if c.LoginBurst < 1 {
		return fmt.Errorf("LOGIN_BURST must be at least 1, got %d", c.LoginBurst)
	}
	return nil
}

// cleanList splits comma separated entries, which viper leaves joined when read from the environment.
func cleanList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
