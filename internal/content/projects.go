package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"portfolio-site/internal/database"
	custom_errors "portfolio-site/internal/errors"
	"portfolio-site/internal/model"
	"portfolio-site/internal/slug"
)

// CategoryAll is accepted as "no category filter".
const CategoryAll = "all"

// ListProjects returns all projects, featured first and newest first.
// A non-empty category other than CategoryAll filters the list.
func (s *Service) ListProjects(ctx context.Context, category string) ([]model.Project, error) {
	var (
		rows []database.Project
		err  error
	)
	category = strings.ToLower(strings.TrimSpace(category))
	switch {
	case category == "" || category == CategoryAll:
		rows, err = s.db.ListProjects(ctx)
	case model.IsValidCategory(category):
		rows, err = s.db.ListProjectsByCategory(ctx, category)
	default:
		return nil, &custom_errors.ErrValidation{Field: "category", Reason: "is not a known category"}
	}
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return toProjects(rows), nil
}

// FeaturedProjects returns the featured projects, newest first.
func (s *Service) FeaturedProjects(ctx context.Context) ([]model.Project, error) {
	rows, err := s.db.ListFeaturedProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	return toProjects(rows), nil
}

// ProjectBySlug looks up a single project.
func (s *Service) ProjectBySlug(ctx context.Context, projectSlug string) (mo.Option[model.Project], error) {
	row, err := s.db.GetProjectBySlug(ctx, projectSlug)
	if err != nil {
		if errors.Is(translateError(err), custom_errors.ErrNotFound) {
			return mo.None[model.Project](), nil
		}
		return mo.None[model.Project](), fmt.Errorf("get project %q: %w", projectSlug, err)
	}
	return mo.Some(toProject(row)), nil
}

// CreateProject stores a manually authored project.
func (s *Service) CreateProject(ctx context.Context, in model.ProjectInput) (model.Project, error) {
	fields, err := normalizeProjectInput(in)
	if err != nil {
		return model.Project{}, err
	}
	projectSlug, err := manualSlug(fields.Title)
	if err != nil {
		return model.Project{}, err
	}

	row, err := s.db.CreateProject(ctx, database.CreateProjectParams{
		ID:           s.newID(),
		Title:        fields.Title,
		Slug:         projectSlug,
		Description:  fields.Description,
		LongDesc:     fields.LongDesc,
		TechStack:    splitList(fields.TechStack),
		ImageUrl:     fields.ImageURL,
		Images:       []string{},
		GithubUrl:    fields.GithubURL,
		LiveUrl:      optional(fields.LiveURL),
		Featured:     fields.Featured,
		Category:     fields.Category,
		Status:       fields.Status,
		Problem:      fields.Problem,
		Solution:     fields.Solution,
		Architecture: fields.Architecture,
		Source:       model.SourceManual,
		Language:     optional(fields.Language),
	})
	if err != nil {
		return model.Project{}, fmt.Errorf("create project %q: %w", projectSlug, translateError(err))
	}

	s.logger.Info("Created project", "slug", row.Slug)
	return toProject(row), nil
}

// UpdateProject overwrites a project's editable fields. Manually authored projects
// follow their title's slug; imported projects keep theirs so the next sync still finds them.
func (s *Service) UpdateProject(ctx context.Context, id uuid.UUID, in model.ProjectInput) (model.Project, error) {
	fields, err := normalizeProjectInput(in)
	if err != nil {
		return model.Project{}, err
	}

	existing, err := s.db.GetProjectByID(ctx, id)
	if err != nil {
		return model.Project{}, fmt.Errorf("get project %s: %w", id, translateError(err))
	}

	projectSlug := existing.Slug
	if existing.Source != model.SourceGithub {
		if projectSlug, err = manualSlug(fields.Title); err != nil {
			return model.Project{}, err
		}
	}

	row, err := s.db.UpdateProject(ctx, database.UpdateProjectParams{
		ID:           id,
		Title:        fields.Title,
		Slug:         projectSlug,
		Description:  fields.Description,
		LongDesc:     fields.LongDesc,
		TechStack:    splitList(fields.TechStack),
		ImageUrl:     fields.ImageURL,
		GithubUrl:    fields.GithubURL,
		LiveUrl:      optional(fields.LiveURL),
		Featured:     fields.Featured,
		Category:     fields.Category,
		Status:       fields.Status,
		Problem:      fields.Problem,
		Solution:     fields.Solution,
		Architecture: fields.Architecture,
		Language:     optional(fields.Language),
	})
	if err != nil {
		return model.Project{}, fmt.Errorf("update project %s: %w", id, translateError(err))
	}
	return toProject(row), nil
}

// DeleteProject removes a project of either origin.
func (s *Service) DeleteProject(ctx context.Context, id uuid.UUID) error {
	n, err := s.db.DeleteProject(ctx, id)
	if err != nil {
		return fmt.Errorf("delete project %s: %w", id, err)
	}
	if n == 0 {
		return custom_errors.ErrNotFound
	}
	return nil
}

func normalizeProjectInput(in model.ProjectInput) (model.ProjectInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := required("title", in.Title); err != nil {
		return in, err
	}
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = NormalizeImageURL(in.ImageURL)

	in.Category = strings.ToLower(strings.TrimSpace(in.Category))
	if in.Category == "" {
		in.Category = model.CategoryFullstack
	}
	if !model.IsValidCategory(in.Category) {
		return in, &custom_errors.ErrValidation{Field: "category", Reason: "is not a known category"}
	}

	in.Status = strings.TrimSpace(in.Status)
	switch in.Status {
	case "":
		in.Status = model.StatusCompleted
	case model.StatusCompleted, model.StatusInProgress:
	default:
		return in, &custom_errors.ErrValidation{Field: "status", Reason: "must be completed or in-progress"}
	}
	return in, nil
}

// manualSlug derives a slug for an authored project, keeping it out of the sync namespace.
func manualSlug(title string) (string, error) {
	s := slug.Make(title)
	if s == "" {
		return "", &custom_errors.ErrValidation{Field: "title", Reason: "must contain letters or digits"}
	}
	if slug.IsSynced(s) {
		return "", &custom_errors.ErrReservedSlug{Slug: s}
	}
	return s, nil
}

func toProjects(rows []database.Project) []model.Project {
	out := make([]model.Project, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProject(r))
	}
	return out
}

func toProject(r database.Project) model.Project {
	return model.Project{
		ID:           r.ID,
		Title:        r.Title,
		Slug:         r.Slug,
		Description:  r.Description,
		LongDesc:     r.LongDesc,
		TechStack:    nonNil(r.TechStack),
		ImageURL:     r.ImageUrl,
		Images:       nonNil(r.Images),
		GithubURL:    r.GithubUrl,
		LiveURL:      r.LiveUrl,
		Featured:     r.Featured,
		Category:     r.Category,
		Status:       r.Status,
		Problem:      r.Problem,
		Solution:     r.Solution,
		Architecture: r.Architecture,
		Source:       r.Source,
		Language:     r.Language,
		GithubStars:  int(r.GithubStars),
		LastSyncedAt: r.LastSyncedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
