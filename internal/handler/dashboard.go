package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// DashboardHandler serves the admin read endpoints
type DashboardHandler struct {
	content services.ContentService
	logger  *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(content services.ContentService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		content: content,
		logger:  logger,
	}
}

// Dashboard returns the dashboard view for the signed-in admin
// GET /api/admin/dashboard
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	view := h.content.Dashboard(r.Context(), httputil.GetIdentity(r))
	httputil.RespondJSON(w, http.StatusOK, view)
}

// ListContacts returns contact submissions, optionally filtered by status
// GET /api/admin/contacts?status=unread
func (h *DashboardHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.content.ListContacts(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"contacts": contacts})
}
