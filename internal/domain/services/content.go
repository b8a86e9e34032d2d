package services

import (
	"context"

	"portfolio/internal/domain/models"
)

// ContentService assembles read-only views. Reads never fail as a whole:
// a collection that could not be fetched is reported through the view's
// status map.
type ContentService interface {
	// Landing returns the public page view
	Landing(ctx context.Context) *models.LandingView

	// Dashboard returns the admin dashboard view for the given identity
	Dashboard(ctx context.Context, who models.Identity) *models.DashboardView

	// ListProjects, ListSkills and ListAbout back the plain JSON listing endpoints
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListSkills(ctx context.Context) ([]models.Skill, error)
	ListAbout(ctx context.Context) ([]models.AboutEntry, error)

	// ListContacts returns contact submissions, optionally filtered by status
	ListContacts(ctx context.Context, status string) ([]models.ContactSubmission, error)
}
