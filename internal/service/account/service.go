package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/config"
	"portfolio/internal/domain"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/services"
)

// AuthClient is the slice of the managed auth service the account flows use.
type AuthClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (*models.AuthSession, error)
	SignUp(ctx context.Context, email, password string) error
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (models.Identity, error)
}

// service implements services.AccountService
type service struct {
	client AuthClient
	logger *slog.Logger
}

// NewService creates the account service
func NewService(client AuthClient, logger *slog.Logger) services.AccountService {
	return &service{client: client, logger: logger}
}

func (s *service) SignIn(ctx context.Context, req *services.SignInRequest) (*models.AuthSession, error) {
	if req == nil {
		req = &services.SignInRequest{}
	}
	err := validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
	)
	if err != nil {
		return nil, &domain.ValidationError{Message: "Email and password are required"}
	}

	session, err := s.client.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.logger.Info("admin sign-in rejected", "email", req.Email)
			return nil, &domain.UnauthorizedError{Message: "Invalid login credentials"}
		}
		s.logger.Error("admin sign-in failed", "email", req.Email, "error", err)
		return nil, fmt.Errorf("sign in: %w", err)
	}

	s.logger.Info("admin signed in", "user_id", session.User.ID)
	return session, nil
}

func (s *service) SignUp(ctx context.Context, req *services.SignUpRequest) error {
	if err := validateSignUp(req); err != nil {
		return err
	}

	if err := s.client.SignUp(ctx, req.Email, req.Password); err != nil {
		s.logger.Warn("admin sign-up failed", "email", req.Email, "error", err)
		switch {
		case errors.Is(err, domain.ErrConflict):
			return fmt.Errorf("%w: an account with this email already exists", domain.ErrConflict)
		case errors.Is(err, domain.ErrValidation):
			return &domain.ValidationError{Message: "The auth service rejected this email or password"}
		default:
			return fmt.Errorf("sign up: %w", err)
		}
	}

	s.logger.Info("admin account registered", "email", req.Email)
	return nil
}

func validateSignUp(req *services.SignUpRequest) error {
	if req == nil {
		req = &services.SignUpRequest{}
	}
	err := validation.ValidateStruct(req,
		validation.Field(&req.Email, validation.Required),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return &domain.ValidationError{Message: "All fields are required"}
	}
	if req.Password != req.ConfirmPassword {
		return &domain.ValidationError{Message: "Passwords do not match"}
	}
	err = validation.Validate(req.Password, validation.RuneLength(config.MinPasswordLength, 0))
	if err != nil {
		return &domain.ValidationError{Message: fmt.Sprintf("Password must be at least %d characters long", config.MinPasswordLength)}
	}
	return nil
}

func (s *service) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	if err := s.client.SignOut(ctx, accessToken); err != nil {
		s.logger.Error("admin sign-out failed", "error", err)
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func (s *service) CurrentIdentity(ctx context.Context, accessToken string) (models.Identity, error) {
	if accessToken == "" {
		return models.Identity{}, domain.ErrUnauthorized
	}
	who, err := s.client.GetUser(ctx, accessToken)
	if err != nil {
		return models.Identity{}, fmt.Errorf("current identity: %w", err)
	}
	return who, nil
}
