package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// AboutHandler handles about-entry HTTP requests
type AboutHandler struct {
	about  services.AboutMutations
	logger *slog.Logger
}

// NewAboutHandler creates a new about handler
func NewAboutHandler(about services.AboutMutations, logger *slog.Logger) *AboutHandler {
	return &AboutHandler{
		about:  about,
		logger: logger,
	}
}

type aboutRequest struct {
	Section    string               `json:"section"`
	Title      string               `json:"title"`
	Content    string               `json:"content"`
	OrderIndex httputil.OptionalInt `json:"order_index"`
}

func (req *aboutRequest) toInput() *services.AboutInput {
	return &services.AboutInput{
		Section:    req.Section,
		Title:      req.Title,
		Content:    req.Content,
		OrderIndex: req.OrderIndex.Value,
	}
}

// CreateAbout creates a new about entry
// POST /api/admin/about
func (h *AboutHandler) CreateAbout(w http.ResponseWriter, r *http.Request) {
	var req aboutRequest
	if !parseBody(w, r, &req) {
		return
	}

	res := h.about.CreateAbout(r.Context(), httputil.GetIdentity(r), req.toInput())
	respondResult(w, http.StatusCreated, res)
}

// UpdateAbout replaces an about entry's fields
// PUT /api/admin/about/{id}
func (h *AboutHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "About entry")
	if !ok {
		return
	}

	var req aboutRequest
	if !parseBody(w, r, &req) {
		return
	}

	res := h.about.UpdateAbout(r.Context(), httputil.GetIdentity(r), id, req.toInput())
	respondResult(w, http.StatusOK, res)
}

// DeleteAbout deletes an about entry
// DELETE /api/admin/about/{id}
func (h *AboutHandler) DeleteAbout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "About entry")
	if !ok {
		return
	}

	res := h.about.DeleteAbout(r.Context(), httputil.GetIdentity(r), id)
	respondResult(w, http.StatusOK, res)
}
