package mutation

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio/internal/config"
	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
	"portfolio/internal/domain/services"
	"portfolio/internal/viewcache"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactService implements services.ContactMutations
type contactService struct {
	repo repositories.ContactRepository
	guard
}

// NewContactService creates the public contact-form handler. A new
// submission only changes the dashboard, so only that view is invalidated.
func NewContactService(
	repo repositories.ContactRepository,
	invalidator services.Invalidator,
	logger *slog.Logger,
) services.ContactMutations {
	return &contactService{
		repo:  repo,
		guard: newGuard("contact submission", invalidator, logger, viewcache.RouteDashboard),
	}
}

func (s *contactService) SubmitContact(ctx context.Context, in *services.ContactInput) services.Result {
	return s.run(ctx, verbSubmit, models.Identity{}, false, func(ctx context.Context) services.Result {
		if res := validateContact(in); res != nil {
			return *res
		}

		submission := &models.ContactSubmission{
			Name:      in.Name,
			Email:     in.Email,
			Subject:   in.Subject,
			Message:   in.Message,
			Status:    models.ContactUnread,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, submission); err != nil {
			s.logger.Error("failed to store contact submission", "error", err)
			return services.Failed(services.KindBackendFailed, "Failed to submit contact form. Please try again.")
		}
		return services.Succeeded(submission.ID, "Thank you for your message! I'll get back to you soon.")
	})
}

func validateContact(in *services.ContactInput) *services.Result {
	if in == nil {
		in = &services.ContactInput{}
	}
	return validate(
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Name, validation.Required),
				validation.Field(&in.Email, validation.Required),
				validation.Field(&in.Subject, validation.Required),
				validation.Field(&in.Message, validation.Required),
			)
		},
		"All fields are required",
		func() error {
			return validation.ValidateStruct(in,
				validation.Field(&in.Email,
					validation.Match(emailPattern).Error("Please enter a valid email address"),
				),
				validation.Field(&in.Subject,
					validation.Length(1, config.MaxContactSubjectLength).Error("subject must be at most 255 characters"),
				),
				validation.Field(&in.Message,
					validation.Length(1, config.MaxContactMessageLength).Error("message must be at most 5000 characters"),
				),
			)
		},
	)
}
