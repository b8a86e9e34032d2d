package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// SignInRequest carries admin credentials
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest carries a new admin account
type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// AccountService fronts the managed auth service.
type AccountService interface {
	// SignIn exchanges credentials for a session
	SignIn(ctx context.Context, req *SignInRequest) (*models.AuthSession, error)

	// SignUp registers an admin account; the auth service sends a confirmation email
	SignUp(ctx context.Context, req *SignUpRequest) error

	// SignOut revokes the session behind the access token
	SignOut(ctx context.Context, accessToken string) error

	// CurrentIdentity resolves an access token to the identity it belongs to
	CurrentIdentity(ctx context.Context, accessToken string) (models.Identity, error)
}
