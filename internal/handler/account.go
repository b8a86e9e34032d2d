package handler

import (
	"log/slog"
	"net/http"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
	"portfolio/internal/httputil"
)

// SessionWriter persists auth tokens in the browser session.
type SessionWriter interface {
	Save(w http.ResponseWriter, r *http.Request, sess *models.AuthSession) error
	Clear(w http.ResponseWriter, r *http.Request) error
}

// AccountHandler handles admin sign-in, sign-up and sign-out
type AccountHandler struct {
	accounts services.AccountService
	sessions SessionWriter
	logger   *slog.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts services.AccountService, sessions SessionWriter, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		sessions: sessions,
		logger:   logger,
	}
}

// Login signs an admin in and stores the session cookie
// POST /api/auth/login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.SignInRequest
	if !parseBody(w, r, &req) {
		return
	}

	sess, err := h.accounts.SignIn(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.sessions.Save(w, r, sess); err != nil {
		h.logger.Error("failed to save session", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sess)
}

// Signup registers a new admin account
// POST /api/auth/signup
func (h *AccountHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req services.SignUpRequest
	if !parseBody(w, r, &req) {
		return
	}

	if err := h.accounts.SignUp(r.Context(), &req); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]string{
		"message": "Check your email to confirm your account",
	})
}

// Logout revokes the session and clears the cookie. It succeeds even
// when there is no session.
// POST /api/auth/logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.SignOut(r.Context(), httputil.GetAccessToken(r)); err != nil {
		// the cookie is cleared regardless; a stale remote session expires on its own
		h.logger.Warn("sign out failed", "error", err)
	}

	if err := h.sessions.Clear(w, r); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session returns the identity behind the current session
// GET /api/auth/session
func (h *AccountHandler) Session(w http.ResponseWriter, r *http.Request) {
	who, err := h.accounts.CurrentIdentity(r.Context(), httputil.GetAccessToken(r))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, who)
}
