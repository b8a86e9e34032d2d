package models

// SectionStatus reports whether a collection behind a view was fetched.
type SectionStatus string

const (
	SectionOK SectionStatus = "ok"
	// SectionUnavailable means the fetch failed and the items are empty
	// because of the failure, not because there is no data.
	SectionUnavailable SectionStatus = "unavailable"
)

// Collection names used as keys in view status maps.
const (
	CollectionProjects = "projects"
	CollectionSkills   = "skills"
	CollectionAbout    = "about"
	CollectionContacts = "contacts"
)

// SkillGroup is one category bucket of skills with its aggregate.
type SkillGroup struct {
	Category           string  `json:"category"`
	Title              string  `json:"title"`
	Icon               string  `json:"icon"`
	Accent             string  `json:"accent,omitempty"`
	Count              int     `json:"count"`
	AverageProficiency int     `json:"average_proficiency"`
	Skills             []Skill `json:"skills"`
}

// AboutGroup is one section of about entries, sorted by order index.
type AboutGroup struct {
	Section string       `json:"section"`
	Title   string       `json:"title"`
	Icon    string       `json:"icon"`
	Entries []AboutEntry `json:"entries"`
}

// LandingView is everything the public page renders.
type LandingView struct {
	FeaturedProjects []Project                `json:"featured_projects"`
	SkillGroups      []SkillGroup             `json:"skill_groups"`
	AboutSections    []AboutGroup             `json:"about_sections"`
	Status           map[string]SectionStatus `json:"status"`
}

// DashboardStats are predicate counts over the full collections.
type DashboardStats struct {
	TotalProjects    int `json:"total_projects"`
	FeaturedProjects int `json:"featured_projects"`
	TotalSkills      int `json:"total_skills"`
	UnreadMessages   int `json:"unread_messages"`
	TotalMessages    int `json:"total_messages"`
	AboutEntries     int `json:"about_entries"`
}

// DashboardView is everything the admin dashboard renders.
type DashboardView struct {
	Identity       Identity                 `json:"identity"`
	Stats          DashboardStats           `json:"stats"`
	RecentProjects []Project                `json:"recent_projects"`
	TopSkills      []Skill                  `json:"top_skills"`
	Projects       []Project                `json:"projects"`
	SkillGroups    []SkillGroup             `json:"skill_groups"`
	AboutSections  []AboutGroup             `json:"about_sections"`
	Contacts       []ContactSubmission      `json:"contacts"`
	Status         map[string]SectionStatus `json:"status"`
}

// Complete reports whether every collection behind a view was fetched.
func Complete(status map[string]SectionStatus) bool {
	for _, s := range status {
		if s != SectionOK {
			return false
		}
	}
	return true
}
