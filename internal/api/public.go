package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-site/internal/content"
)

// listProjects handles the public project listing.
// GET /v1/projects?category=ai
func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	if h.syncOnPageLoad {
		h.startPassiveSync(r)
	}

	projects, err := h.content.ListProjects(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.respondWithServiceError(w, r, err, "list projects")
		return
	}
	respondWithJSON(w, http.StatusOK, projects)
}

// GET /v1/projects/featured
func (h *Handler) featuredProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.content.FeaturedProjects(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err, "list featured projects")
		return
	}
	respondWithJSON(w, http.StatusOK, projects)
}

// GET /v1/projects/{slug}
func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	found, err := h.content.ProjectBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.respondWithServiceError(w, r, err, "get project")
		return
	}
	project, ok := found.Get()
	if !ok {
		respondWithError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

// GET /v1/profile
func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.content.Profile(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err, "get profile")
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// GET /v1/client-sites
func (h *Handler) publishedClientSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.content.PublishedClientSites(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err, "list client sites")
		return
	}
	respondWithJSON(w, http.StatusOK, sites)
}

// submitContact stores a contact form message.
// POST /v1/contact
func (h *Handler) submitContact(w http.ResponseWriter, r *http.Request) {
	var in content.ContactInput
	if !decodeJSON(w, r, &in) {
		return
	}
	contact, err := h.content.SubmitContact(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, err, "submit contact")
		return
	}
	respondWithJSON(w, http.StatusCreated, map[string]interface{}{"success": true, "id": contact.ID})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login checks the admin credentials and starts a session.
// POST /v1/auth/login
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	username, err := h.content.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.respondWithServiceError(w, r, err, "login")
		return
	}

	token, err := h.sessions.Issue(username)
	if err != nil {
		h.respondWithServiceError(w, r, err, "issue session")
		return
	}
	h.sessions.SetCookie(w, token)
	h.logger.Info("Admin logged in", "username", username)
	respondSuccess(w)
}

// POST /v1/auth/logout
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	respondSuccess(w)
}
