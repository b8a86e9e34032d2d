package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"portfolio/internal/auth"
	"portfolio/internal/domain/models"
	"portfolio/internal/httputil"
)

// SessionStore holds the auth tokens of a browser session.
type SessionStore interface {
	AccessToken(r *http.Request) string
	RefreshToken(r *http.Request) string
	Save(w http.ResponseWriter, r *http.Request, sess *models.AuthSession) error
}

// SessionRefresher exchanges a refresh token for a new session.
type SessionRefresher interface {
	RefreshSession(ctx context.Context, refreshToken string) (*models.AuthSession, error)
}

// Authenticate resolves the caller's identity from a Bearer header or,
// failing that, the session cookie. When the cookie's access token has
// expired the refresh token is exchanged for a new session and the cookie
// rewritten. Requests without a valid token pass through as anonymous;
// RequireIdentity decides which routes need one.
func Authenticate(verifier auth.TokenVerifier, sessions SessionStore, refresher SessionRefresher, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// a bearer token is the caller's own business; it is never refreshed
			if token := bearerToken(r); token != "" {
				who, err := verifier.Verify(token)
				if err != nil {
					logger.Debug("ignoring invalid access token", "path", r.URL.Path, "error", err)
					next.ServeHTTP(w, r)
					return
				}
				next.ServeHTTP(w, httputil.WithIdentity(r, who, token))
				return
			}

			if sessions == nil {
				next.ServeHTTP(w, r)
				return
			}

			if token := sessions.AccessToken(r); token != "" {
				who, err := verifier.Verify(token)
				if err == nil {
					next.ServeHTTP(w, httputil.WithIdentity(r, who, token))
					return
				}
				logger.Debug("session access token rejected", "path", r.URL.Path, "error", err)
			}

			if refreshed, ok := refreshSession(w, r, verifier, sessions, refresher, logger); ok {
				next.ServeHTTP(w, refreshed)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func refreshSession(
	w http.ResponseWriter,
	r *http.Request,
	verifier auth.TokenVerifier,
	sessions SessionStore,
	refresher SessionRefresher,
	logger *slog.Logger,
) (*http.Request, bool) {
	if refresher == nil {
		return r, false
	}
	refreshToken := sessions.RefreshToken(r)
	if refreshToken == "" {
		return r, false
	}

	sess, err := refresher.RefreshSession(r.Context(), refreshToken)
	if err != nil {
		logger.Info("session refresh failed", "path", r.URL.Path, "error", err)
		return r, false
	}
	who, err := verifier.Verify(sess.AccessToken)
	if err != nil {
		logger.Warn("refreshed access token rejected", "error", err)
		return r, false
	}

	if err := sessions.Save(w, r, sess); err != nil {
		logger.Error("failed to save refreshed session", "user_id", who.UserID, "error", err)
	}
	logger.Debug("session refreshed", "user_id", who.UserID)
	return httputil.WithIdentity(r, who, sess.AccessToken), true
}

// RequireIdentity rejects anonymous requests with 401.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httputil.GetIdentity(r).IsZero() {
			httputil.RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
