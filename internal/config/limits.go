package config

const (
	// MaxTitleLength bounds project and about-entry titles.
	// Fits PostgreSQL VARCHAR(255).
	MaxTitleLength = 255

	// MaxSkillNameLength bounds skill names.
	MaxSkillNameLength = 100

	// MaxContactSubjectLength bounds contact-form subjects.
	MaxContactSubjectLength = 255

	// MaxContactMessageLength bounds contact-form bodies. Public input, so keep it tight.
	MaxContactMessageLength = 5000

	// MinProficiency and MaxProficiency are the inclusive skill proficiency bounds.
	MinProficiency = 0
	MaxProficiency = 100

	// MinPasswordLength is the shortest admin password accepted at sign-up.
	MinPasswordLength = 8

	// LandingFeaturedLimit is how many featured projects the landing page shows.
	LandingFeaturedLimit = 4

	// DashboardTopN is the size of the "recent projects" and "top skills" slices.
	DashboardTopN = 5
)
