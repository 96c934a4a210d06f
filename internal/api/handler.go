// internal/api/handler.go
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/samber/mo"

	"portfolio-site/internal/auth"
	"portfolio-site/internal/content"
	"portfolio-site/internal/model"
)

// passiveSyncTimeout bounds a sync started by a page load.
const passiveSyncTimeout = 45 * time.Second

// SyncRunner runs the repository synchronisation.
type SyncRunner interface {
	Sync(ctx context.Context) model.SyncResult
	SyncBestEffort(ctx context.Context)
}

// ContentService is the content layer used by the handlers.
type ContentService interface {
	ListProjects(ctx context.Context, category string) ([]model.Project, error)
	FeaturedProjects(ctx context.Context) ([]model.Project, error)
	ProjectBySlug(ctx context.Context, slug string) (mo.Option[model.Project], error)
	CreateProject(ctx context.Context, in model.ProjectInput) (model.Project, error)
	UpdateProject(ctx context.Context, id uuid.UUID, in model.ProjectInput) (model.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error

	Profile(ctx context.Context) (model.Profile, error)
	UpdateProfile(ctx context.Context, in model.Profile) (model.Profile, error)
	Login(ctx context.Context, username, password string) (string, error)
	UpdateCredentials(ctx context.Context, in content.CredentialsInput) error

	PublishedClientSites(ctx context.Context) ([]model.ClientSite, error)
	ClientSites(ctx context.Context) ([]model.ClientSite, error)
	CreateClientSite(ctx context.Context, in content.ClientSiteInput) (model.ClientSite, error)
	DeleteClientSite(ctx context.Context, id uuid.UUID) error

	SubmitContact(ctx context.Context, in content.ContactInput) (model.Contact, error)
	RecentContacts(ctx context.Context, limit int) ([]model.Contact, error)
	MarkContactRead(ctx context.Context, id uuid.UUID) error

	Dashboard(ctx context.Context) (model.Dashboard, error)
}

// Options tunes the router.
type Options struct {
	SyncOnPageLoad bool
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Handler is the container for API dependencies.
type Handler struct {
	content        ContentService
	syncer         SyncRunner
	sessions       *auth.Manager
	limiter        *auth.LoginLimiter
	logger         *slog.Logger
	syncOnPageLoad bool
}

// NewRouter creates and configures a new chi router with all API routes.
func NewRouter(svc ContentService, syncer SyncRunner, sessions *auth.Manager, limiter *auth.LoginLimiter, logger *slog.Logger, opts Options) http.Handler {
	h := &Handler{
		content:        svc,
		syncer:         syncer,
		sessions:       sessions,
		limiter:        limiter,
		logger:         logger,
		syncOnPageLoad: opts.SyncOnPageLoad,
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Get("/health", h.healthCheck)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/projects", h.listProjects)
		r.Get("/projects/featured", h.featuredProjects)
		r.Get("/projects/{slug}", h.getProject)
		r.Get("/profile", h.getProfile)
		r.Get("/client-sites", h.publishedClientSites)
		r.Post("/contact", h.submitContact)

		r.With(h.limiter.Middleware).Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.sessions.RequireSession)

			r.Post("/github-sync", h.githubSync)
			r.Get("/dashboard", h.dashboard)

			r.Post("/projects", h.createProject)
			r.Put("/projects/{id}", h.updateProject)
			r.Delete("/projects/{id}", h.deleteProject)

			r.Put("/profile", h.updateProfile)
			r.Post("/security", h.updateSecurity)

			r.Get("/client-sites", h.listClientSites)
			r.Post("/client-sites", h.createClientSite)
			r.Delete("/client-sites/{id}", h.deleteClientSite)

			r.Get("/contacts", h.listContacts)
			r.Post("/contacts/{id}/read", h.markContactRead)
		})
	})

	if len(opts.AllowedOrigins) == 0 {
		return r
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})
	return c.Handler(r)
}

// healthCheck is a simple health endpoint.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// startPassiveSync refreshes imported projects in the background so the page renders from current data.
func (h *Handler) startPassiveSync(r *http.Request) {
	ctx := context.WithoutCancel(r.Context())
	go func() {
		ctx, cancel := context.WithTimeout(ctx, passiveSyncTimeout)
		defer cancel()
		h.syncer.SyncBestEffort(ctx)
	}()
}
