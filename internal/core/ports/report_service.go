package ports

import "context"

// ProjectReport summarises completion of one project's tasks.
type ProjectReport struct {
	TotalTasks     int
	CompletedTasks int
	CompletionPct  float64
}

// UserProjectProgress is one row of a user's progress report.
type UserProjectProgress struct {
	ProjectID      string
	ProjectName    string
	TotalTasks     int
	CompletedTasks int
	OngoingTasks   int
	OverdueTasks   int
	CompletionPct  float64
}

// ReportService derives statistics from tasks without mutating anything.
type ReportService interface {
	ProjectReport(ctx context.Context, projectID string) (*ProjectReport, error)
	UserProgressReport(ctx context.Context, userID string) ([]UserProjectProgress, error)
}
