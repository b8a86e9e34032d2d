package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/services"
)

// ContactHandler accepts public contact-form posts
type ContactHandler struct {
	contacts services.ContactMutations
	logger   *slog.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts services.ContactMutations, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		logger:   logger,
	}
}

// Submit stores a contact-form submission
// POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req services.ContactInput
	if !parseBody(w, r, &req) {
		return
	}

	res := h.contacts.SubmitContact(r.Context(), &req)
	respondResult(w, http.StatusCreated, res)
}
