package handler

import (
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// --- Service output → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.DisplayName,
		CreatedAt: u.CreatedAt,
	}
}

func toProjectResponse(p ports.ProjectSummary) projectResponse {
	return projectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      p.Status,
		CreatedBy:   p.CreatorID,
		CreatorName: p.CreatorName,
		CreatedAt:   p.CreatedAt,
	}
}

func toProjectResponses(items []ports.ProjectSummary) []projectResponse {
	out := make([]projectResponse, len(items))
	for i, p := range items {
		out[i] = toProjectResponse(p)
	}
	return out
}

func toTaskResponse(t ports.TaskView) taskResponse {
	return taskResponse{
		ID:           t.ID,
		ProjectID:    t.ProjectID,
		AssignedTo:   t.AssignedTo,
		AssigneeName: t.AssigneeName,
		Name:         t.Name,
		Description:  t.Description,
		DueDate:      t.DueDate,
		Status:       t.Status,
		Progress:     t.Progress,
		CreatedAt:    t.CreatedAt,
	}
}

func toTaskResponses(tasks []ports.TaskView) []taskResponse {
	out := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = toTaskResponse(t)
	}
	return out
}

func toUserProgressRows(rows []ports.UserProjectProgress) []userProgressRow {
	out := make([]userProgressRow, len(rows))
	for i, r := range rows {
		out[i] = userProgressRow{
			ProjectID:      r.ProjectID,
			ProjectName:    r.ProjectName,
			TotalTasks:     r.TotalTasks,
			CompletedTasks: r.CompletedTasks,
			OngoingTasks:   r.OngoingTasks,
			OverdueTasks:   r.OverdueTasks,
			CompletionPct:  r.CompletionPct,
		}
	}
	return out
}
