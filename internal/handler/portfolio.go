package handler

import (
	"log/slog"
	"net/http"
	"time"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// PortfolioHandler serves the public read endpoints
type PortfolioHandler struct {
	content services.ContentService
	logger  *slog.Logger
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(content services.ContentService, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		content: content,
		logger:  logger,
	}
}

// HealthCheck reports liveness
// GET /health
func (h *PortfolioHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}

// Landing returns the public page view. Sections that could not be
// loaded are empty and marked unavailable; the response is still 200.
// GET /api/portfolio
func (h *PortfolioHandler) Landing(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, h.content.Landing(r.Context()))
}

// ListProjects returns all projects, newest first
// GET /api/projects
func (h *PortfolioHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.content.ListProjects(r.Context())
	if err != nil {
		h.logger.Error("failed to list projects", "error", err)
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"projects": projects})
}

// ListSkills returns all skills by category, strongest first
// GET /api/skills
func (h *PortfolioHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.content.ListSkills(r.Context())
	if err != nil {
		h.logger.Error("failed to list skills", "error", err)
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"skills": skills})
}

// ListAbout returns all about entries by section and order
// GET /api/about
func (h *PortfolioHandler) ListAbout(w http.ResponseWriter, r *http.Request) {
	entries, err := h.content.ListAbout(r.Context())
	if err != nil {
		h.logger.Error("failed to list about entries", "error", err)
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"about": entries})
}
