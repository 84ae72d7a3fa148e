package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project lifecycle and listings.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /v1/projects. The requester becomes the project's creator.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     RequesterID
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  createdResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}
	var req createProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.CreateProject(c.Request().Context(), ports.CreateProjectInput{
		CreatorID:   requester,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// List handles GET /v1/projects: every project the requester created or belongs to.
//
// @Summary      List the requester's projects
// @Tags         projects
// @Produce      json
// @Security     RequesterID
// @Success      200  {object}  userProjectsResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListUserProjects(c.Request().Context(), requester)
	if err != nil {
		return err
	}

	out := make([]userProjectResponse, len(projects))
	for i, p := range projects {
		out[i] = userProjectResponse{
			projectResponse: toProjectResponse(p.ProjectSummary),
			UserRole:        p.UserRole,
		}
	}
	return c.JSON(http.StatusOK, userProjectsResponse{Projects: out})
}

// Search handles GET /v1/projects/search.
//
// @Summary      Search the requester's projects
// @Tags         projects
// @Produce      json
// @Security     RequesterID
// @Param        keyword       query     string  false  "Case-insensitive substring of the name"
// @Param        status        query     string  false  "Exact project status"
// @Param        created_from  query     string  false  "Lower creation date bound (YYYY-MM-DD)"
// @Param        created_to    query     string  false  "Upper creation date bound (YYYY-MM-DD), inclusive"
// @Param        page          query     int     false  "Page number, 1-based"  default(1)
// @Param        page_size     query     int     false  "Page size, max 100"    default(10)
// @Success      200           {object}  searchProjectsResponse
// @Failure      400           {object}  errorResponse
// @Failure      401           {object}  errorResponse
// @Router       /v1/projects/search [get]
func (h *ProjectHandler) Search(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}
	var q searchProjectsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}

	res, err := h.service.SearchProjects(c.Request().Context(), ports.SearchProjectsInput{
		RequesterID: requester,
		Keyword:     q.Keyword,
		Status:      q.Status,
		CreatedFrom: q.CreatedFrom,
		CreatedTo:   q.CreatedTo,
		Page:        q.Page,
		PageSize:    q.PageSize,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, searchProjectsResponse{
		Items:      toProjectResponses(res.Items),
		Total:      res.Total,
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalPages: res.TotalPages,
	})
}

// Get handles GET /v1/projects/:project_id.
//
// @Summary      View a project with its tasks
// @Tags         projects
// @Produce      json
// @Security     RequesterID
// @Param        project_id  path      string  true  "Project id"
// @Success      200         {object}  projectDetailResponse
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/projects/{project_id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}

	detail, err := h.service.ViewProject(c.Request().Context(), requester, c.Param("project_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectDetailResponse{
		projectResponse: toProjectResponse(detail.ProjectSummary),
		Tasks:           toTaskResponses(detail.Tasks),
	})
}

// Delete handles DELETE /v1/projects/:project_id. Tasks of the project go with it.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     RequesterID
// @Param        project_id  path      string  true  "Project id"
// @Success      200         {object}  messageResponse
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /v1/projects/{project_id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProject(c.Request().Context(), requester, c.Param("project_id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "project deleted"})
}
