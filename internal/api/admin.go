package api

import (
	"net/http"
	"strconv"

	"portfolio-site/internal/content"
	"portfolio-site/internal/model"
)

type syncResponse struct {
	Success bool `json:"success"`
	model.SyncResult
}

// githubSync runs the repository sync on demand and reports its outcome.
// POST /v1/admin/github-sync
func (h *Handler) githubSync(w http.ResponseWriter, r *http.Request) {
	result := h.syncer.Sync(r.Context())
	if result.Error != "" {
		respondWithError(w, http.StatusInternalServerError, result.Error)
		return
	}
	respondWithJSON(w, http.StatusOK, syncResponse{Success: true, SyncResult: result})
}

// GET /v1/admin/dashboard
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.content.Dashboard(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err, "dashboard")
		return
	}
	respondWithJSON(w, http.StatusOK, d)
}

// POST /v1/admin/projects
func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	var in model.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	project, err := h.content.CreateProject(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, err, "create project")
		return
	}
	respondWithJSON(w, http.StatusCreated, project)
}

// PUT /v1/admin/projects/{id}
func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var in model.ProjectInput
	if !decodeJSON(w, r, &in) {
		return
	}
	project, err := h.content.UpdateProject(r.Context(), id, in)
	if err != nil {
		h.respondWithServiceError(w, r, err, "update project")
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

// DELETE /v1/admin/projects/{id}
func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.content.DeleteProject(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err, "delete project")
		return
	}
	respondSuccess(w)
}

// PUT /v1/admin/profile
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var in model.Profile
	if !decodeJSON(w, r, &in) {
		return
	}
	profile, err := h.content.UpdateProfile(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, err, "update profile")
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

// updateSecurity changes the admin username and/or password.
// POST /v1/admin/security
func (h *Handler) updateSecurity(w http.ResponseWriter, r *http.Request) {
	var in content.CredentialsInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if err := h.content.UpdateCredentials(r.Context(), in); err != nil {
		h.respondWithServiceError(w, r, err, "update credentials")
		return
	}
	respondSuccess(w)
}

// GET /v1/admin/client-sites
func (h *Handler) listClientSites(w http.ResponseWriter, r *http.Request) {
	sites, err := h.content.ClientSites(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err, "list client sites")
		return
	}
	respondWithJSON(w, http.StatusOK, sites)
}

// POST /v1/admin/client-sites
func (h *Handler) createClientSite(w http.ResponseWriter, r *http.Request) {
	var in content.ClientSiteInput
	if !decodeJSON(w, r, &in) {
		return
	}
	site, err := h.content.CreateClientSite(r.Context(), in)
	if err != nil {
		h.respondWithServiceError(w, r, err, "create client site")
		return
	}
	respondWithJSON(w, http.StatusCreated, site)
}

// DELETE /v1/admin/client-sites/{id}
func (h *Handler) deleteClientSite(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.content.DeleteClientSite(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err, "delete client site")
		return
	}
	respondSuccess(w)
}

// listContacts returns recent contact messages.
// GET /v1/admin/contacts?limit=N
func (h *Handler) listContacts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid 'limit' parameter. Must be a positive integer.")
			return
		}
		limit = n
	}
	contacts, err := h.content.RecentContacts(r.Context(), limit)
	if err != nil {
		h.respondWithServiceError(w, r, err, "list contacts")
		return
	}
	respondWithJSON(w, http.StatusOK, contacts)
}

// POST /v1/admin/contacts/{id}/read
func (h *Handler) markContactRead(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.content.MarkContactRead(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err, "mark contact read")
		return
	}
	respondSuccess(w)
}
