package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
)

// GoTrueClient performs the user-facing auth flows against Supabase Auth
// with the project's anon key.
type GoTrueClient struct {
	rest        restClient
	redirectURL string
	logger      *slog.Logger
}

// NewGoTrueClient creates a client. redirectURL is where confirmation
// emails send new users.
func NewGoTrueClient(supabaseURL, anonKey, redirectURL string, logger *slog.Logger) *GoTrueClient {
	return &GoTrueClient{
		rest:        newRESTClient(supabaseURL, anonKey),
		redirectURL: redirectURL,
		logger:      logger,
	}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInWithPassword exchanges email and password for a session.
func (c *GoTrueClient) SignInWithPassword(ctx context.Context, email, password string) (*models.AuthSession, error) {
	var session models.AuthSession
	err := c.rest.do(ctx, http.MethodPost, "/token?grant_type=password", "",
		credentials{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, errors.New("auth service returned no access token")
	}
	return &session, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshSession exchanges a refresh token for a new session. Refresh
// tokens are single use; the returned session carries the next one.
func (c *GoTrueClient) RefreshSession(ctx context.Context, refreshToken string) (*models.AuthSession, error) {
	var session models.AuthSession
	err := c.rest.do(ctx, http.MethodPost, "/token?grant_type=refresh_token", "",
		refreshRequest{RefreshToken: refreshToken}, &session)
	if err != nil {
		return nil, err
	}
	if session.AccessToken == "" {
		return nil, errors.New("auth service returned no access token")
	}
	return &session, nil
}

// SignUp registers a user. The auth service emails a confirmation link.
func (c *GoTrueClient) SignUp(ctx context.Context, email, password string) error {
	path := "/signup"
	if c.redirectURL != "" {
		path += "?redirect_to=" + url.QueryEscape(c.redirectURL)
	}
	return c.rest.do(ctx, http.MethodPost, path, "", credentials{Email: email, Password: password}, nil)
}

// SignOut revokes the session behind accessToken. A token the service no
// longer accepts is treated as already signed out.
func (c *GoTrueClient) SignOut(ctx context.Context, accessToken string) error {
	err := c.rest.do(ctx, http.MethodPost, "/logout", accessToken, nil, nil)
	if errors.Is(err, domain.ErrUnauthorized) {
		c.logger.Debug("sign-out with stale token", "error", err)
		return nil
	}
	return err
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetUser returns the identity the auth service holds for accessToken.
func (c *GoTrueClient) GetUser(ctx context.Context, accessToken string) (models.Identity, error) {
	var user userResponse
	if err := c.rest.do(ctx, http.MethodGet, "/user", accessToken, nil, &user); err != nil {
		return models.Identity{}, err
	}
	if user.ID == "" {
		return models.Identity{}, domain.ErrUnauthorized
	}
	return models.Identity{UserID: user.ID, Email: user.Email}, nil
}
