// internal/syncer/syncer.go
package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"portfolio-site/internal/classifier"
	"portfolio-site/internal/database"
	"portfolio-site/internal/model"
	"portfolio-site/internal/slug"
)

// DefaultExcluded are repositories never imported as projects: the site's own source.
// The account's profile repository (named after the account) is always excluded as well.
var DefaultExcluded = []string{"portfolio-website"}

// DefaultRunTimeout bounds a single run when Options.Timeout is not set.
const DefaultRunTimeout = 2 * time.Minute

// Fetcher lists the repositories of an account.
type Fetcher interface {
	ListRepositories(ctx context.Context, account string) ([]model.Repository, error)
}

// Store is the subset of the database the syncer writes to.
type Store interface {
	UpsertGithubProject(ctx context.Context, arg database.UpsertGithubProjectParams) (database.UpsertGithubProjectRow, error)
	DeleteStaleGithubProjects(ctx context.Context, keepSlugs []string) ([]string, error)
}

// Options configures a Syncer.
type Options struct {
	Account    string
	Excluded   []string
	PruneStale bool
	// Timeout bounds a run independently of the callers waiting on it.
	Timeout time.Duration
}

// Syncer imports an account's public repositories as portfolio projects.
type Syncer struct {
	store    Store
	fetcher  Fetcher
	logger   *slog.Logger
	account  string
	excluded []string
	prune    bool
	timeout  time.Duration
	group    singleflight.Group
	newID    func() uuid.UUID
}

// NewSyncer creates a new Syncer instance.
func NewSyncer(store Store, fetcher Fetcher, logger *slog.Logger, opts Options) (*Syncer, error) {
	account := strings.TrimSpace(opts.Account)
	if account == "" {
		return nil, errors.New("syncer: account is required")
	}

	excluded := append([]string{account}, opts.Excluded...)

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultRunTimeout
	}

	return &Syncer{
		store:    store,
		fetcher:  fetcher,
		logger:   logger,
		account:  account,
		excluded: excluded,
		prune:    opts.PruneStale,
		timeout:  timeout,
		newID:    uuid.New,
	}, nil
}

// Account returns the GitHub account being synchronised.
func (s *Syncer) Account() string {
	return s.account
}

// Sync fetches the account's repositories and reconciles them into projects.
// Concurrent calls share a single in-flight run, detached from every caller's ctx and bounded
// by the run timeout. A caller whose ctx ends stops waiting and gets its own ctx error.
// Errors are reported in the result, never returned.
func (s *Syncer) Sync(ctx context.Context) model.SyncResult {
	if err := ctx.Err(); err != nil {
		return model.SyncResult{Error: err.Error()}
	}

	ch := s.group.DoChan(s.account, func() (interface{}, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()
		return s.sync(runCtx), nil
	})

	select {
	case res := <-ch:
		return res.Val.(model.SyncResult)
	case <-ctx.Done():
		return model.SyncResult{Error: ctx.Err().Error()}
	}
}

// SyncBestEffort runs Sync for read paths that must never fail because of it.
// Problems are logged and otherwise ignored.
func (s *Syncer) SyncBestEffort(ctx context.Context) {
	result := s.Sync(ctx)
	if result.Error != "" {
		s.logger.Warn("Background repository sync failed", "account", s.account, "error", result.Error)
		return
	}
	if len(result.Failed) > 0 {
		s.logger.Warn("Background repository sync finished with failures", "account", s.account, "failed", len(result.Failed))
	}
}

// Start runs Sync on a fixed interval until ctx is cancelled. A non-positive interval disables it.
func (s *Syncer) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.logger.Info("Periodic repository sync disabled")
		return
	}

	s.logger.Info("Starting periodic repository sync", "interval", interval.String())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SyncBestEffort(ctx)
		case <-ctx.Done():
			s.logger.Info("Periodic repository sync shutting down", "reason", ctx.Err())
			return
		}
	}
}

func (s *Syncer) sync(ctx context.Context) model.SyncResult {
	logger := s.logger.With("account", s.account)
	logger.Info("Starting repository sync")
	start := time.Now()

	repos, err := s.fetcher.ListRepositories(ctx, s.account)
	if err != nil {
		logger.Error("Failed to fetch repositories", "error", err)
		return model.SyncResult{Error: err.Error()}
	}

	var result model.SyncResult
	eligible := s.Eligible(repos)
	keep := make([]string, 0, len(eligible))

	for _, repo := range eligible {
		if err := ctx.Err(); err != nil {
			logger.Error("Repository sync aborted", "error", err,
				"synced", result.Synced, "failed", len(result.Failed))
			return model.SyncResult{Error: err.Error()}
		}

		params := upsertParams(s.newID(), repo)
		keep = append(keep, params.Slug)

		row, err := s.store.UpsertGithubProject(ctx, params)
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			logger.Warn("Slug belongs to a manually authored project, leaving it untouched", "slug", params.Slug)
			result.Skipped++
		case err != nil:
			logger.Error("Failed to upsert project", "slug", params.Slug, "error", err)
			result.Failed = append(result.Failed, model.SyncFailure{Slug: params.Slug, Error: err.Error()})
		case row.Inserted:
			logger.Debug("Created project", "slug", row.Slug)
			result.Created++
			result.Synced++
		default:
			logger.Debug("Refreshed project", "slug", row.Slug)
			result.Updated++
			result.Synced++
		}
	}

	if s.prune && len(repos) > 0 && len(result.Failed) == 0 {
		pruned, err := s.store.DeleteStaleGithubProjects(ctx, keep)
		if err != nil {
			logger.Error("Failed to prune stale projects", "error", err)
		} else {
			result.Pruned = len(pruned)
			if len(pruned) > 0 {
				logger.Info("Pruned stale projects", "slugs", pruned)
			}
		}
	}

	logger.Info("Repository sync finished",
		"fetched", len(repos),
		"synced", result.Synced,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", len(result.Failed),
		"pruned", result.Pruned,
		"duration", time.Since(start).String(),
	)
	return result
}

// Eligible drops forks, private repositories and excluded names, preserving upstream order.
func (s *Syncer) Eligible(repos []model.Repository) []model.Repository {
	eligible := make([]model.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork || r.Private || s.isExcluded(r.Name) {
			continue
		}
		eligible = append(eligible, r)
	}
	return eligible
}

func (s *Syncer) isExcluded(name string) bool {
	for _, e := range s.excluded {
		if strings.EqualFold(e, name) {
			return true
		}
	}
	return false
}

// upsertParams builds the sync-owned field set for repo. Title and the defaults in the
// insert statement only apply when the project is created.
func upsertParams(id uuid.UUID, repo model.Repository) database.UpsertGithubProjectParams {
	c := classifier.Classify(repo)

	description := repo.Description
	if description == "" {
		description = fmt.Sprintf("%s — GitHub project", repo.Name)
	}

	return database.UpsertGithubProjectParams{
		ID:          id,
		Title:       slug.Title(repo.Name),
		Slug:        slug.ForRepository(repo.Name),
		Description: description,
		TechStack:   c.TechStack,
		GithubUrl:   repo.URL,
		LiveUrl:     nonEmpty(repo.Homepage),
		Category:    c.Category,
		Language:    nonEmpty(repo.Language),
		GithubStars: int32(repo.Stars),
	}
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
