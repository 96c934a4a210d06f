package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
)

// DefaultClientSiteCategory is used when a client site is created without one.
const DefaultClientSiteCategory = "Web Development"

// ClientSiteInput is the admin form for a client site.
type ClientSiteInput struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	TechStack   string `json:"techStack"` // comma separated
}

// PublishedClientSites lists the sites shown publicly, in display order.
func (s *Service) PublishedClientSites(ctx context.Context) ([]model.ClientSite, error) {
	rows, err := s.db.ListPublishedClientSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list published client sites: %w", err)
	}
	return toClientSites(rows), nil
}

// ClientSites lists every client site, in display order.
func (s *Service) ClientSites(ctx context.Context) ([]model.ClientSite, error) {
	rows, err := s.db.ListClientSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list client sites: %w", err)
	}
	return toClientSites(rows), nil
}

// CreateClientSite appends a site to the end of the display order.
func (s *Service) CreateClientSite(ctx context.Context, in ClientSiteInput) (model.ClientSite, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.URL = strings.TrimSpace(in.URL)
	if err := required("name", in.Name); err != nil {
		return model.ClientSite{}, err
	}
	if err := required("url", in.URL); err != nil {
		return model.ClientSite{}, err
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultClientSiteCategory
	}

	var row database.ClientSite
	err := s.db.ExecTx(ctx, func(q database.Querier) error {
		count, err := q.CountClientSites(ctx)
		if err != nil {
			return fmt.Errorf("count client sites: %w", err)
		}
		row, err = q.CreateClientSite(ctx, database.CreateClientSiteParams{
			ID:          s.newID(),
			Name:        in.Name,
			Url:         in.URL,
			Description: strings.TrimSpace(in.Description),
			Category:    category,
			TechStack:   splitList(in.TechStack),
			SortOrder:   int32(count),
		})
		if err != nil {
			return fmt.Errorf("create client site: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.ClientSite{}, err
	}
	return toClientSite(row), nil
}

// DeleteClientSite removes a client site.
func (s *Service) DeleteClientSite(ctx context.Context, id uuid.UUID) error {
	n, err := s.db.DeleteClientSite(ctx, id)
	if err != nil {
		return fmt.Errorf("delete client site %s: %w", id, err)
	}
	if n == 0 {
		return custom_errors.ErrNotFound
	}
	return nil
}

func toClientSites(rows []database.ClientSite) []model.ClientSite {
	out := make([]model.ClientSite, 0, len(rows))
	for _, r := range rows {
		out = append(out, toClientSite(r))
	}
	return out
}

func toClientSite(r database.ClientSite) model.ClientSite {
	return model.ClientSite{
		ID:          r.ID,
		Name:        r.Name,
		URL:         r.Url,
		Description: r.Description,
		Category:    r.Category,
		TechStack:   nonNil(r.TechStack),
		Published:   r.Published,
		Order:       int(r.SortOrder),
		CreatedAt:   r.CreatedAt,
	}
}
