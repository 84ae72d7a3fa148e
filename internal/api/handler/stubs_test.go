package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Hunnisme/NT106-Projects/internal/api/middleware"
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// newContext builds an echo context with the validator installed. An empty
// requester leaves the context as if the Requester middleware never ran.
func newContext(method, target, body, requester string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if requester != "" {
		c.Set(middleware.RequesterKey, requester)
	}
	return c, rec
}

type stubIdentityService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	verifyFn   func(ctx context.Context, identifier, password string) (*ports.CredentialsResult, error)
}

func (s *stubIdentityService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubIdentityService) VerifyCredentials(ctx context.Context, identifier, password string) (*ports.CredentialsResult, error) {
	return s.verifyFn(ctx, identifier, password)
}

type stubProjectService struct {
	createFn func(ctx context.Context, in ports.CreateProjectInput) (string, error)
	viewFn   func(ctx context.Context, requesterID, projectID string) (*ports.ProjectDetail, error)
	listFn   func(ctx context.Context, userID string) ([]ports.UserProject, error)
	searchFn func(ctx context.Context, in ports.SearchProjectsInput) (*ports.SearchProjectsResult, error)
	deleteFn func(ctx context.Context, requesterID, projectID string) error
}

func (s *stubProjectService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (string, error) {
	return s.createFn(ctx, in)
}

func (s *stubProjectService) ViewProject(ctx context.Context, requesterID, projectID string) (*ports.ProjectDetail, error) {
	return s.viewFn(ctx, requesterID, projectID)
}

func (s *stubProjectService) ListUserProjects(ctx context.Context, userID string) ([]ports.UserProject, error) {
	return s.listFn(ctx, userID)
}

func (s *stubProjectService) SearchProjects(ctx context.Context, in ports.SearchProjectsInput) (*ports.SearchProjectsResult, error) {
	return s.searchFn(ctx, in)
}

func (s *stubProjectService) DeleteProject(ctx context.Context, requesterID, projectID string) error {
	return s.deleteFn(ctx, requesterID, projectID)
}

type stubMembershipService struct {
	addFn    func(ctx context.Context, in ports.AddMembersInput) (*ports.AddMembersResult, error)
	updateFn func(ctx context.Context, in ports.UpdateRoleInput) error
}

func (s *stubMembershipService) AddMembers(ctx context.Context, in ports.AddMembersInput) (*ports.AddMembersResult, error) {
	return s.addFn(ctx, in)
}

func (s *stubMembershipService) UpdateRole(ctx context.Context, in ports.UpdateRoleInput) error {
	return s.updateFn(ctx, in)
}

type stubTaskService struct {
	createFn   func(ctx context.Context, in ports.CreateTaskInput) (string, error)
	updateFn   func(ctx context.Context, in ports.UpdateTaskInput) error
	progressFn func(ctx context.Context, taskID string, progress float64) error
	listFn     func(ctx context.Context, projectID string) ([]ports.TaskView, error)
}

func (s *stubTaskService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (string, error) {
	return s.createFn(ctx, in)
}

func (s *stubTaskService) UpdateTask(ctx context.Context, in ports.UpdateTaskInput) error {
	return s.updateFn(ctx, in)
}

func (s *stubTaskService) UpdateTaskProgress(ctx context.Context, taskID string, progress float64) error {
	return s.progressFn(ctx, taskID, progress)
}

func (s *stubTaskService) ListTasks(ctx context.Context, projectID string) ([]ports.TaskView, error) {
	return s.listFn(ctx, projectID)
}

type stubReportService struct {
	projectFn func(ctx context.Context, projectID string) (*ports.ProjectReport, error)
	userFn    func(ctx context.Context, userID string) ([]ports.UserProjectProgress, error)
}

func (s *stubReportService) ProjectReport(ctx context.Context, projectID string) (*ports.ProjectReport, error) {
	return s.projectFn(ctx, projectID)
}

func (s *stubReportService) UserProgressReport(ctx context.Context, userID string) ([]ports.UserProjectProgress, error) {
	return s.userFn(ctx, userID)
}
