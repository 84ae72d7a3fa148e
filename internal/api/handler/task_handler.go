package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// TaskHandler handles HTTP requests for tasks.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /v1/projects/:project_id/tasks.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     RequesterID
// @Param        project_id  path      string             true  "Project id"
// @Param        body        body      createTaskRequest  true  "Task details"
// @Success      201         {object}  createdResponse
// @Failure      400         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Router       /v1/projects/{project_id}/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	requester, err := requesterID(c)
	if err != nil {
		return err
	}
	var req createTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.service.CreateTask(c.Request().Context(), ports.CreateTaskInput{
		RequesterID: requester,
		ProjectID:   c.Param("project_id"),
		AssigneeID:  req.AssignedTo,
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: id})
}

// List handles GET /v1/projects/:project_id/tasks.
//
// @Summary      List a project's tasks
// @Tags         tasks
// @Produce      json
// @Param        project_id  path      string  true  "Project id"
// @Success      200         {object}  tasksResponse
// @Failure      400         {object}  errorResponse
// @Failure      500         {object}  errorResponse
// @Router       /v1/projects/{project_id}/tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	tasks, err := h.service.ListTasks(c.Request().Context(), c.Param("project_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasksResponse{Tasks: toTaskResponses(tasks)})
}

// Update handles PATCH /v1/tasks/:task_id. Absent fields are left unchanged.
//
// @Summary      Update a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task_id  path      string             true  "Task id"
// @Param        body     body      updateTaskRequest  true  "Fields to change"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/tasks/{task_id} [patch]
func (h *TaskHandler) Update(c echo.Context) error {
	var req updateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.service.UpdateTask(c.Request().Context(), ports.UpdateTaskInput{
		TaskID:      c.Param("task_id"),
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "task updated"})
}

// UpdateProgress handles PUT /v1/tasks/:task_id/progress.
//
// @Summary      Record task progress
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task_id  path      string                 true  "Task id"
// @Param        body     body      updateProgressRequest  true  "Progress value"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Router       /v1/tasks/{task_id}/progress [put]
func (h *TaskHandler) UpdateProgress(c echo.Context) error {
	var req updateProgressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.service.UpdateTaskProgress(c.Request().Context(), c.Param("task_id"), *req.Progress); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "progress updated"})
}
