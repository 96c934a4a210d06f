// internal/model/models.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Provenance markers stored in projects.source.
const (
	SourceManual = "manual"
	SourceGithub = "github"
)

// Project categories. The set is closed; the classifier only ever returns one of these.
const (
	CategorySystems   = "systems"
	CategoryAI        = "ai"
	CategoryFrontend  = "frontend"
	CategoryBackend   = "backend"
	CategoryFullstack = "fullstack"
)

// Display statuses for projects.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
)

// Categories lists every valid category in classifier precedence order.
var Categories = []string{CategorySystems, CategoryAI, CategoryFrontend, CategoryBackend, CategoryFullstack}

// IsValidCategory reports whether c belongs to the closed category set.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Repository is the upstream descriptor of a GitHub repository as returned by the listing endpoint.
type Repository struct {
	ID          int64
	Name        string
	Description string
	URL         string
	Homepage    string
	Language    string
	Stars       int
	Topics      []string
	UpdatedAt   time.Time
	Fork        bool
	Private     bool
}

// Project is a portfolio entry, either authored in the admin panel or imported from GitHub.
type Project struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Description  string     `json:"description"`
	LongDesc     string     `json:"longDesc"`
	TechStack    []string   `json:"techStack"`
	ImageURL     string     `json:"imageUrl"`
	Images       []string   `json:"images"`
	GithubURL    string     `json:"githubUrl"`
	LiveURL      *string    `json:"liveUrl"`
	Featured     bool       `json:"featured"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	Problem      string     `json:"problem"`
	Solution     string     `json:"solution"`
	Architecture string     `json:"architecture"`
	Source       string     `json:"source"`
	Language     *string    `json:"language"`
	GithubStars  int        `json:"githubStars"`
	LastSyncedAt *time.Time `json:"lastSyncedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ProjectInput carries the author-owned fields submitted from the admin panel.
type ProjectInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	LongDesc     string `json:"longDesc"`
	TechStack    string `json:"techStack"` // comma separated
	ImageURL     string `json:"imageUrl"`
	GithubURL    string `json:"githubUrl"`
	LiveURL      string `json:"liveUrl"`
	Featured     bool   `json:"featured"`
	Category     string `json:"category"`
	Status       string `json:"status"`
	Problem      string `json:"problem"`
	Solution     string `json:"solution"`
	Architecture string `json:"architecture"`
	Language     string `json:"language"`
}

// Profile is the public part of the site owner's profile.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Github   string `json:"github"`
	Youtube  string `json:"youtube"`
	Linkedin string `json:"linkedin"`
	Location string `json:"location"`
	CvURL    string `json:"cvUrl"`
}

// ClientSite is a website built for a client, shown on the services page.
type ClientSite struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	TechStack   []string  `json:"techStack"`
	Published   bool      `json:"published"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Contact is a message left through the contact form.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Dashboard summarises site content for the admin landing page.
type Dashboard struct {
	TotalProjects    int       `json:"totalProjects"`
	FeaturedProjects int       `json:"featuredProjects"`
	GithubProjects   int       `json:"githubProjects"`
	RecentContacts   []Contact `json:"recentContacts"`
	UnreadContacts   int       `json:"unreadContacts"`
}

// SyncFailure describes one repository that could not be reconciled.
type SyncFailure struct {
	Slug  string `json:"slug"`
	Error string `json:"error"`
}

// SyncResult is the outcome of one repository synchronisation run.
// Synced counts repositories that were created or refreshed.
type SyncResult struct {
	Synced  int           `json:"synced"`
	Created int           `json:"created"`
	Updated int           `json:"updated"`
	Skipped int           `json:"skipped"`
	Pruned  int           `json:"pruned"`
	Failed  []SyncFailure `json:"failed,omitempty"`
	Error   string        `json:"error,omitempty"`
}
