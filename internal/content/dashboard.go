package content

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"portfolio-site/internal/model"
)

// Dashboard gathers the admin overview.
func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var d model.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.db.GetProjectStats(gctx)
		if err != nil {
			return fmt.Errorf("project stats: %w", err)
		}
		d.TotalProjects = int(stats.Total)
		d.FeaturedProjects = int(stats.Featured)
		d.GithubProjects = int(stats.Github)
		return nil
	})
	g.Go(func() error {
		rows, err := s.db.ListRecentContacts(gctx, DashboardContacts)
		if err != nil {
			return fmt.Errorf("recent contacts: %w", err)
		}
		d.RecentContacts = toContacts(rows)
		return nil
	})
	g.Go(func() error {
		unread, err := s.db.CountUnreadContacts(gctx)
		if err != nil {
			return fmt.Errorf("unread contacts: %w", err)
		}
		d.UnreadContacts = int(unread)
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return d, nil
}
