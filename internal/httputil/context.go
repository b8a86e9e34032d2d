package httputil

import (
	"context"
	"net/http"

	"portfolio/internal/domain/models"
)

// Context key type to avoid collisions
type contextKey string

const (
	identityKey    contextKey = "identity"
	accessTokenKey contextKey = "accessToken"
)

// WithIdentity adds the authenticated identity and the token it came from
// to the request context.
func WithIdentity(r *http.Request, who models.Identity, accessToken string) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, who)
	ctx = context.WithValue(ctx, accessTokenKey, accessToken)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the identity from context. The zero Identity means
// the request is anonymous.
func GetIdentity(r *http.Request) models.Identity {
	who, _ := r.Context().Value(identityKey).(models.Identity)
	return who
}

// GetAccessToken retrieves the verified access token, or "".
func GetAccessToken(r *http.Request) string {
	token, _ := r.Context().Value(accessTokenKey).(string)
	return token
}
