package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/Hunnisme/NT106-Projects/docs"
	"github.com/Hunnisme/NT106-Projects/internal/api/handler"
	"github.com/Hunnisme/NT106-Projects/internal/api/middleware"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

const metricsSubsystem = "http"

// Dependencies are the use cases and probes the router mounts.
type Dependencies struct {
	Log      zerolog.Logger
	Identity ports.IdentityService
	Projects ports.ProjectService
	Members  ports.MembershipService
	Tasks    ports.TaskService
	Reports  ports.ReportService

	// Readiness is optional; without it only the liveness probe is served.
	Readiness *handler.HealthDependenciesHandler

	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// default prometheus registry, where the domain metrics also live.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLog(deps.Log))

	promCfg := echoprometheus.MiddlewareConfig{Subsystem: metricsSubsystem}
	var metricsHandler echo.HandlerFunc
	if deps.Registry != nil {
		promCfg.Registerer = deps.Registry
		metricsHandler = echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Registry})
	} else {
		metricsHandler = echoprometheus.NewHandler()
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))

	// --- Operational routes (no requester required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if deps.Readiness != nil {
		e.GET("/health/ready", deps.Readiness.Readiness)
	}
	e.GET("/metrics", metricsHandler)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	users := handler.NewUserHandler(deps.Identity)
	projects := handler.NewProjectHandler(deps.Projects)
	members := handler.NewMemberHandler(deps.Members)
	tasks := handler.NewTaskHandler(deps.Tasks)
	reports := handler.NewReportHandler(deps.Reports)

	v1 := e.Group("/v1")
	requester := middleware.Requester()

	// --- Identity directory ---
	v1.POST("/users", users.Register)
	v1.POST("/users/login", users.Login)

	// --- Projects and members ---
	v1.POST("/projects", projects.Create, requester)
	v1.GET("/projects", projects.List, requester)
	v1.GET("/projects/search", projects.Search, requester)
	v1.GET("/projects/:project_id", projects.Get, requester)
	v1.DELETE("/projects/:project_id", projects.Delete, requester)
	v1.POST("/projects/:project_id/members", members.Add, requester)
	v1.PUT("/projects/:project_id/members/role", members.UpdateRole, requester)

	// --- Tasks ---
	v1.POST("/projects/:project_id/tasks", tasks.Create, requester)
	v1.GET("/projects/:project_id/tasks", tasks.List)
	v1.PATCH("/tasks/:task_id", tasks.Update)
	v1.PUT("/tasks/:task_id/progress", tasks.UpdateProgress)

	// --- Reports ---
	v1.GET("/projects/:project_id/report", reports.Project)
	v1.GET("/reports/progress", reports.UserProgress, requester)

	return e
}
