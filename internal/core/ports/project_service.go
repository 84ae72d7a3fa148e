package ports

import (
	"context"
	"time"
)

// CreateProjectInput carries all data needed to create a project.
type CreateProjectInput struct {
	CreatorID   string
	Name        string
	Description string
	StartDate   string
	EndDate     *string
	Status      string
}

// ProjectSummary is project metadata with the creator resolved to a display name.
type ProjectSummary struct {
	ID          string
	Name        string
	Description string
	StartDate   string
	EndDate     *string
	Status      string
	CreatorID   string
	CreatorName string
	CreatedAt   time.Time
}

// ProjectDetail is the full view returned by ViewProject.
type ProjectDetail struct {
	ProjectSummary
	Tasks []TaskView
}

// UserProject is one entry of ListUserProjects, annotated with the caller's role.
type UserProject struct {
	ProjectSummary
	UserRole string
}

// SearchProjectsInput carries all parameters for the search endpoint.
// Dates are calendar dates (YYYY-MM-DD) bounding the creation time.
type SearchProjectsInput struct {
	RequesterID string
	Keyword     string
	Status      string
	CreatedFrom string
	CreatedTo   string
	Page        int
	PageSize    int
}

// SearchProjectsResult is returned by SearchProjects.
type SearchProjectsResult struct {
	Items      []ProjectSummary
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

// ProjectService defines use-case operations for projects.
type ProjectService interface {
	CreateProject(ctx context.Context, input CreateProjectInput) (string, error)
	ViewProject(ctx context.Context, requesterID, projectID string) (*ProjectDetail, error)
	ListUserProjects(ctx context.Context, userID string) ([]UserProject, error)
	SearchProjects(ctx context.Context, input SearchProjectsInput) (*SearchProjectsResult, error)
	DeleteProject(ctx context.Context, requesterID, projectID string) error
}
