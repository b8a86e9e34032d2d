package models

import (
	"time"
)

// Skill categories shown on the landing page.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDevOps   = "devops"
)

// About sections.
const (
	SectionPersonal   = "personal"
	SectionEducation  = "education"
	SectionExperience = "experience"
)

// Contact submission statuses. New submissions start unread.
const (
	ContactUnread  = "unread"
	ContactRead    = "read"
	ContactReplied = "replied"
)

// DefaultProjectStatus is applied when a project is saved without a status.
const DefaultProjectStatus = "completed"

// SkillCategories lists the accepted skill categories.
var SkillCategories = []interface{}{CategoryFrontend, CategoryBackend, CategoryDevOps}

// AboutSections lists the accepted about sections.
var AboutSections = []interface{}{SectionPersonal, SectionEducation, SectionExperience}

// ContactStatuses lists the accepted contact submission statuses.
var ContactStatuses = []interface{}{ContactUnread, ContactRead, ContactReplied}

type Project struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	TechStack   []string  `json:"tech_stack" db:"tech_stack"`
	GithubURL   *string   `json:"github_url,omitempty" db:"github_url"`
	LiveURL     *string   `json:"live_url,omitempty" db:"live_url"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	Status      string    `json:"status" db:"status"` // open set: "completed", "in-progress", "planned", ...
	Featured    bool      `json:"featured" db:"featured"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

type Skill struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Proficiency int       `json:"proficiency" db:"proficiency"` // 0..100 inclusive
	Icon        *string   `json:"icon,omitempty" db:"icon"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// AboutEntry is one block of biographical content. OrderIndex orders entries
// inside a section and need not be contiguous.
type AboutEntry struct {
	ID         string    `json:"id" db:"id"`
	Section    string    `json:"section" db:"section"`
	Title      string    `json:"title" db:"title"`
	Content    string    `json:"content" db:"content"`
	OrderIndex int       `json:"order_index" db:"order_index"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

type ContactSubmission struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
