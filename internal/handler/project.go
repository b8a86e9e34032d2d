package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// ProjectHandler handles project HTTP requests
type ProjectHandler struct {
	projects services.ProjectMutations
	logger   *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects services.ProjectMutations, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		projects: projects,
		logger:   logger,
	}
}

// projectRequest accepts both JSON bodies and admin form posts, where
// featured arrives as a checkbox value.
type projectRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	TechStack   string                `json:"tech_stack"`
	GithubURL   string                `json:"github_url"`
	LiveURL     string                `json:"live_url"`
	ImageURL    string                `json:"image_url"`
	Status      string                `json:"status"`
	Featured    httputil.PresenceFlag `json:"featured"`
}

func (req *projectRequest) toInput() *services.ProjectInput {
	return &services.ProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		GithubURL:   req.GithubURL,
		LiveURL:     req.LiveURL,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		Featured:    bool(req.Featured),
	}
}

// CreateProject creates a new project
// POST /api/admin/projects
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if !parseBody(w, r, &req) {
		return
	}

	res := h.projects.CreateProject(r.Context(), httputil.GetIdentity(r), req.toInput())
	respondResult(w, http.StatusCreated, res)
}

// UpdateProject replaces a project's fields
// PUT /api/admin/projects/{id}
func (h *ProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Project")
	if !ok {
		return
	}

	var req projectRequest
	if !parseBody(w, r, &req) {
		return
	}

	res := h.projects.UpdateProject(r.Context(), httputil.GetIdentity(r), id, req.toInput())
	respondResult(w, http.StatusOK, res)
}

// DeleteProject deletes a project
// DELETE /api/admin/projects/{id}
func (h *ProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "Project")
	if !ok {
		return
	}

	res := h.projects.DeleteProject(r.Context(), httputil.GetIdentity(r), id)
	respondResult(w, http.StatusOK, res)
}
