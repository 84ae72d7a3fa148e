package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Users ---

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name"     validate:"required"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type loginRequest struct {
	// Identifier is a username or an email.
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type credentialsResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// --- Projects ---

type createProjectRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date"    validate:"omitempty,datetime=2006-01-02"`
	Status      string  `json:"status"      validate:"required"`
}

type createdResponse struct {
	ID string `json:"id"`
}

type projectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   string    `json:"start_date"`
	EndDate     *string   `json:"end_date,omitempty"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
}

type projectDetailResponse struct {
	projectResponse
	Tasks []taskResponse `json:"tasks"`
}

type userProjectResponse struct {
	projectResponse
	UserRole string `json:"user_role"`
}

type userProjectsResponse struct {
	Projects []userProjectResponse `json:"projects"`
}

type searchProjectsQuery struct {
	Keyword     string `query:"keyword"`
	Status      string `query:"status"`
	CreatedFrom string `query:"created_from" validate:"omitempty,datetime=2006-01-02"`
	CreatedTo   string `query:"created_to"   validate:"omitempty,datetime=2006-01-02"`
	Page        int    `query:"page"         validate:"min=0"`
	PageSize    int    `query:"page_size"    validate:"min=0"`
}

type searchProjectsResponse struct {
	Items      []projectResponse `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

// --- Members ---

type addMembersRequest struct {
	// Identifiers are usernames or emails, mixed freely.
	Identifiers []string `json:"identifiers" validate:"required,min=1"`
	Role        string   `json:"role"        validate:"required"`
}

type addMembersResponse struct {
	Message      string   `json:"message"`
	AddedMembers []string `json:"added_members"`
}

type updateRoleRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Role       string `json:"role"       validate:"required"`
}

// --- Tasks ---

type createTaskRequest struct {
	AssignedTo  string `json:"assigned_to" validate:"required,objectid"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"    validate:"required"`
	Status      string `json:"status"`
}

type updateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	AssignedTo  *string `json:"assigned_to" validate:"omitempty,objectid"`
}

type updateProgressRequest struct {
	Progress *float64 `json:"progress" validate:"required"`
}

type taskResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	AssignedTo   string    `json:"assigned_to"`
	AssigneeName string    `json:"assignee_name"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DueDate      string    `json:"due_date"`
	Status       string    `json:"status"`
	Progress     *float64  `json:"progress,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type tasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}

// --- Reports ---

type projectReportResponse struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	CompletionPct  float64 `json:"completion_percentage"`
}

type userProgressRow struct {
	ProjectID      string  `json:"project_id"`
	ProjectName    string  `json:"project_name"`
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	OngoingTasks   int     `json:"ongoing_tasks"`
	OverdueTasks   int     `json:"overdue_tasks"`
	CompletionPct  float64 `json:"completion_percentage"`
}

type userProgressResponse struct {
	Projects []userProgressRow `json:"projects"`
}
