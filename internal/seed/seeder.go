package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"portfolio/internal/domain/models"
	"portfolio/internal/domain/repositories"
)

// Seeder loads fixtures through the repositories in one transaction, so a
// bad row leaves the database untouched.
type Seeder struct {
	projects repositories.ProjectRepository
	skills   repositories.SkillRepository
	about    repositories.AboutRepository
	contacts repositories.ContactRepository
	tx       repositories.TransactionManager
	logger   *slog.Logger
	now      func() time.Time
}

// NewSeeder creates a new seeder
func NewSeeder(
	projects repositories.ProjectRepository,
	skills repositories.SkillRepository,
	about repositories.AboutRepository,
	contacts repositories.ContactRepository,
	tx repositories.TransactionManager,
	logger *slog.Logger,
) *Seeder {
	return &Seeder{
		projects: projects,
		skills:   skills,
		about:    about,
		contacts: contacts,
		tx:       tx,
		logger:   logger,
		now:      time.Now,
	}
}

// Counts reports how many rows of each kind were written.
type Counts struct {
	Projects int
	Skills   int
	About    int
	Contacts int
}

// Seed writes every fixture. Projects are timestamped a minute apart in
// file order, newest first, so listings come back in the order written.
func (s *Seeder) Seed(ctx context.Context, f *Fixtures) (Counts, error) {
	var counts Counts
	err := s.tx.ExecTx(ctx, func(ctx context.Context) error {
		counts = Counts{}
		base := s.now()

		for i, p := range f.Projects {
			at := base.Add(-time.Duration(i) * time.Minute)
			project := &models.Project{
				Title:       p.Title,
				Description: p.Description,
				TechStack:   p.TechStack,
				GithubURL:   optional(p.GithubURL),
				LiveURL:     optional(p.LiveURL),
				ImageURL:    optional(p.ImageURL),
				Status:      p.Status,
				Featured:    p.Featured,
				CreatedAt:   at,
				UpdatedAt:   at,
			}
			if project.Status == "" {
				project.Status = models.DefaultProjectStatus
			}
			if project.TechStack == nil {
				project.TechStack = []string{}
			}
			if err := s.projects.Create(ctx, project); err != nil {
				return fmt.Errorf("project %q: %w", p.Title, err)
			}
			counts.Projects++
		}

		for _, sk := range f.Skills {
			skill := &models.Skill{
				Name:        sk.Name,
				Category:    sk.Category,
				Proficiency: sk.Proficiency,
				Icon:        optional(sk.Icon),
				CreatedAt:   base,
				UpdatedAt:   base,
			}
			if err := s.skills.Create(ctx, skill); err != nil {
				return fmt.Errorf("skill %q: %w", sk.Name, err)
			}
			counts.Skills++
		}

		for _, a := range f.About {
			entry := &models.AboutEntry{
				Section:    a.Section,
				Title:      a.Title,
				Content:    a.Content,
				OrderIndex: a.OrderIndex,
				CreatedAt:  base,
				UpdatedAt:  base,
			}
			if err := s.about.Create(ctx, entry); err != nil {
				return fmt.Errorf("about entry %q: %w", a.Title, err)
			}
			counts.About++
		}

		for i, c := range f.Contacts {
			submission := &models.ContactSubmission{
				Name:      c.Name,
				Email:     c.Email,
				Subject:   c.Subject,
				Message:   c.Message,
				Status:    c.Status,
				CreatedAt: base.Add(-time.Duration(i) * time.Hour),
			}
			if submission.Status == "" {
				submission.Status = models.ContactUnread
			}
			if err := s.contacts.Create(ctx, submission); err != nil {
				return fmt.Errorf("contact from %q: %w", c.Email, err)
			}
			counts.Contacts++
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}

	s.logger.Info("fixtures seeded",
		"projects", counts.Projects,
		"skills", counts.Skills,
		"about", counts.About,
		"contacts", counts.Contacts,
	)
	return counts, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
