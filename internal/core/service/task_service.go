package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hunnisme/NT106-Projects/internal/api/metrics"
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/policy"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// TaskService implements the task aggregate use cases.
type TaskService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	names    *NameResolver
	log      zerolog.Logger
	now      func() time.Time
}

func NewTaskService(projects ports.ProjectRepository, tasks ports.TaskRepository, names *NameResolver, log zerolog.Logger) *TaskService {
	return &TaskService{
		projects: projects,
		tasks:    tasks,
		names:    names,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateTask adds a task under a project. The assignee only needs to be a
// well-formed id; neither membership nor existence is checked.
func (s *TaskService) CreateTask(ctx context.Context, in ports.CreateTaskInput) (string, error) {
	rid, err := domain.ParseID("requester_id", in.RequesterID)
	if err != nil {
		return "", err
	}
	pid, err := domain.ParseID("project_id", in.ProjectID)
	if err != nil {
		return "", err
	}
	assignee, err := domain.ParseID("assigned_to", in.AssigneeID)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", domain.InvalidInput("name is required")
	}
	if strings.TrimSpace(in.DueDate) == "" {
		return "", domain.InvalidInput("due_date is required")
	}
	status := in.Status
	if status == "" {
		status = domain.TaskPending
	}

	p, err := s.projects.FindByID(ctx, pid)
	if err != nil {
		return "", wrap("create task", err)
	}
	if err := authorize(s.log, p, rid, policy.CreateTask, domain.RoleNone, domain.RoleNone); err != nil {
		return "", err
	}

	t := &domain.Task{
		ID:          primitive.NewObjectID(),
		ProjectID:   pid,
		AssignedTo:  assignee,
		Name:        name,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      status,
		CreatedAt:   s.now(),
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return "", wrap("create task", err)
	}
	metrics.TasksCreatedTotal.WithLabelValues(status).Inc()

	s.log.Info().
		Str("task_id", t.ID.Hex()).
		Str("project_id", pid.Hex()).
		Str("assigned_to", assignee.Hex()).
		Msg("task created")
	return t.ID.Hex(), nil
}

// UpdateTask applies the fields present in the input and leaves the rest.
func (s *TaskService) UpdateTask(ctx context.Context, in ports.UpdateTaskInput) error {
	tid, err := domain.ParseID("task_id", in.TaskID)
	if err != nil {
		return err
	}

	patch := domain.TaskPatch{
		Name:        in.Name,
		Description: in.Description,
		DueDate:     in.DueDate,
		Status:      in.Status,
	}
	if in.AssignedTo != nil {
		assignee, err := domain.ParseID("assigned_to", *in.AssignedTo)
		if err != nil {
			return err
		}
		patch.AssignedTo = &assignee
	}
	if patch.Empty() {
		return domain.ErrNoFieldsToUpdate
	}

	if err := s.tasks.Update(ctx, tid, patch); err != nil {
		return wrap("update task", err)
	}
	s.log.Info().Str("task_id", tid.Hex()).Msg("task updated")
	return nil
}

// UpdateTaskProgress stores progress as given. 0-100 is a client convention.
func (s *TaskService) UpdateTaskProgress(ctx context.Context, taskID string, progress float64) error {
	tid, err := domain.ParseID("task_id", taskID)
	if err != nil {
		return err
	}
	if err := s.tasks.SetProgress(ctx, tid, progress); err != nil {
		return wrap("update task progress", err)
	}
	s.log.Info().Str("task_id", tid.Hex()).Float64("progress", progress).Msg("task progress updated")
	return nil
}

// ListTasks returns every task of a project with assignees resolved.
func (s *TaskService) ListTasks(ctx context.Context, projectID string) ([]ports.TaskView, error) {
	pid, err := domain.ParseID("project_id", projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, pid)
	if err != nil {
		return nil, wrap("list tasks", err)
	}

	ids := make([]primitive.ObjectID, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.AssignedTo)
	}
	names, err := s.names.Resolve(ctx, ids)
	if err != nil {
		return nil, wrap("list tasks", err)
	}
	return toTaskViews(tasks, names), nil
}

func toTaskViews(tasks []*domain.Task, names map[primitive.ObjectID]string) []ports.TaskView {
	out := make([]ports.TaskView, 0, len(tasks))
	for _, t := range tasks {
		assignee, ok := names[t.AssignedTo]
		if !ok {
			assignee = domain.UnknownDisplayName
		}
		out = append(out, ports.TaskView{
			ID:           t.ID.Hex(),
			ProjectID:    t.ProjectID.Hex(),
			AssignedTo:   t.AssignedTo.Hex(),
			AssigneeName: assignee,
			Name:         t.Name,
			Description:  t.Description,
			DueDate:      t.DueDate,
			Status:       t.Status,
			Progress:     t.Progress,
			CreatedAt:    t.CreatedAt,
		})
	}
	return out
}
