package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// ReportHandler serves read-only task statistics.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Project handles GET /v1/projects/:project_id/report.
//
// @Summary      Completion report of a project
// @Tags         reports
// @Produce      json
// @Param        project_id  path      string  true  "Project id"
// @Success      200         {object}  projectReportResponse
// @Failure      400         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /v1/projects/{project_id}/report [get]
func (h *ReportHandler) Project(c echo.Context) error {
	r, err := h.service.ProjectReport(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectReportResponse{
		TotalTasks:     r.TotalTasks,
		CompletedTasks: r.CompletedTasks,
		CompletionPct:  r.CompletionPct,
	})
}

// UserProgress handles GET /v1/reports/progress for the requester.
//
// @Summary      Progress of every project the requester belongs to
// @Tags         reports
// @Produce      json
// @Security     RequesterID
// @Success      200  {object}  userProgressResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/reports/progress [get]
func (h *ReportHandler) UserProgress(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}

	rows, err := h.service.UserProgressReport(c.Request().Context(), requester)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userProgressResponse{Projects: toUserProgressRows(rows)})
}
