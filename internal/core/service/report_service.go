package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Hunnisme/NT106-Projects/internal/api/metrics"
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// ReportService folds task lists into progress statistics. It never writes.
type ReportService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	log      zerolog.Logger
	now      func() time.Time
}

func NewReportService(projects ports.ProjectRepository, tasks ports.TaskRepository, log zerolog.Logger) *ReportService {
	return &ReportService{
		projects: projects,
		tasks:    tasks,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ProjectReport counts a project's tasks and how many are completed.
func (s *ReportService) ProjectReport(ctx context.Context, projectID string) (report *ports.ProjectReport, err error) {
	start := time.Now()
	defer func() { observeReport("project", start, err) }()

	pid, err := domain.ParseID("project_id", projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, pid)
	if err != nil {
		return nil, wrap("project report", err)
	}

	completed := 0
	for _, t := range tasks {
		if t.Status == domain.TaskCompleted {
			completed++
		}
	}
	return &ports.ProjectReport{
		TotalTasks:     len(tasks),
		CompletedTasks: completed,
		CompletionPct:  completionPct(completed, len(tasks)),
	}, nil
}

// UserProgressReport builds one row per project the user created or joined.
// A stored due date that does not parse aborts the whole report.
func (s *ReportService) UserProgressReport(ctx context.Context, userID string) (rows []ports.UserProjectProgress, err error) {
	start := time.Now()
	defer func() { observeReport("user_progress", start, err) }()

	uid, err := domain.ParseID("user_id", userID)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.ListByUser(ctx, uid)
	if err != nil {
		return nil, wrap("progress report", err)
	}
	if len(projects) == 0 {
		return nil, domain.ErrNoProjectsForUser
	}

	now := s.now()
	rows = make([]ports.UserProjectProgress, 0, len(projects))
	for _, p := range projects {
		tasks, err := s.tasks.ListByProject(ctx, p.ID)
		if err != nil {
			return nil, wrap("progress report", err)
		}

		row := ports.UserProjectProgress{
			ProjectID:   p.ID.Hex(),
			ProjectName: p.Name,
			TotalTasks:  len(tasks),
		}
		for _, t := range tasks {
			switch t.Status {
			case domain.TaskCompleted:
				row.CompletedTasks++
			case domain.TaskOngoing:
				row.OngoingTasks++
			}
			overdue, err := t.IsOverdue(now)
			if err != nil {
				s.log.Error().Err(err).Str("project_id", p.ID.Hex()).Msg("progress report aborted")
				return nil, err
			}
			if overdue {
				row.OverdueTasks++
			}
		}
		row.CompletionPct = completionPct(row.CompletedTasks, row.TotalTasks)
		rows = append(rows, row)
	}
	return rows, nil
}

// completionPct is completed/total as a percentage rounded to two decimals.
func completionPct(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*100) / 100
}

func observeReport(report string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.ReportDuration.WithLabelValues(report, result).Observe(time.Since(start).Seconds())
}
