package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"portfolio-site/internal/config"
	"portfolio-site/internal/github"
	"portfolio-site/internal/syncer"
)

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	m, err := migrate.New(cfg.MigrationsPath, cfg.DBURL)
	if err != nil {
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	return m, nil
}

func runMigrations(cfg *config.Config) error {
	m, err := newMigrate(cfg)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// newSyncer wires the GitHub client and the store into a Syncer.
func newSyncer(cfg *config.Config, store syncer.Store, logger *slog.Logger) (*syncer.Syncer, error) {
	opts := []github.Option{github.WithTimeout(cfg.GithubTimeout)}
	if cfg.GithubAPIURL != "" {
		opts = append(opts, github.WithBaseURL(cfg.GithubAPIURL))
	}
	ghClient, err := github.NewClient(cfg.GithubToken, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create github client: %w", err)
	}

	return syncer.NewSyncer(store, ghClient, logger, syncer.Options{
		Account:    cfg.GithubAccount,
		Excluded:   cfg.GithubExcludedRepos,
		PruneStale: cfg.SyncPruneStale,
		Timeout:    cfg.SyncTimeout,
	})
}
