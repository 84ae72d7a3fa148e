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

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ProjectService implements the project aggregate use cases.
type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	users    ports.UserDirectory
	names    *NameResolver
	log      zerolog.Logger
	now      func() time.Time
}

func NewProjectService(
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	users ports.UserDirectory,
	names *NameResolver,
	log zerolog.Logger,
) *ProjectService {
	return &ProjectService{
		projects: projects,
		tasks:    tasks,
		users:    users,
		names:    names,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateProject stores a new project with an empty ledger. The creator keeps
// authority through CreatedBy and is not written into Members.
func (s *ProjectService) CreateProject(ctx context.Context, in ports.CreateProjectInput) (string, error) {
	creatorID, err := domain.ParseID("creator_id", in.CreatorID)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", domain.InvalidInput("name is required")
	}
	if strings.TrimSpace(in.StartDate) == "" {
		return "", domain.InvalidInput("start_date is required")
	}
	status := domain.ProjectStatus(in.Status)
	if !status.Valid() {
		return "", domain.InvalidInput("status must be one of %s", joinStatuses(domain.ProjectStatuses()))
	}

	if _, err := s.users.FindByID(ctx, creatorID); err != nil {
		return "", wrap("create project: resolve creator", err)
	}

	p := &domain.Project{
		ID:          primitive.NewObjectID(),
		Name:        name,
		Description: in.Description,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      status,
		CreatedBy:   creatorID,
		CreatedAt:   s.now(),
		Members:     []domain.Membership{},
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return "", wrap("create project", err)
	}
	metrics.ProjectsCreatedTotal.WithLabelValues(string(status)).Inc()

	s.log.Info().
		Str("project_id", p.ID.Hex()).
		Str("creator_id", creatorID.Hex()).
		Str("status", string(status)).
		Msg("project created")
	return p.ID.Hex(), nil
}

// ViewProject returns the project, its creator's display name and its tasks.
func (s *ProjectService) ViewProject(ctx context.Context, requesterID, projectID string) (*ports.ProjectDetail, error) {
	rid, err := domain.ParseID("requester_id", requesterID)
	if err != nil {
		return nil, err
	}
	pid, err := domain.ParseID("project_id", projectID)
	if err != nil {
		return nil, err
	}

	p, err := s.projects.FindByID(ctx, pid)
	if err != nil {
		return nil, wrap("view project", err)
	}
	if err := authorize(s.log, p, rid, policy.ViewProject, domain.RoleNone, domain.RoleNone); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, pid)
	if err != nil {
		return nil, wrap("view project: list tasks", err)
	}

	ids := []primitive.ObjectID{p.CreatedBy}
	for _, t := range tasks {
		ids = append(ids, t.AssignedTo)
	}
	names, err := s.names.Resolve(ctx, ids)
	if err != nil {
		return nil, wrap("view project", err)
	}

	return &ports.ProjectDetail{
		ProjectSummary: toSummary(p, names),
		Tasks:          toTaskViews(tasks, names),
	}, nil
}

// ListUserProjects annotates every project the user created or joined with
// the user's role in it.
func (s *ProjectService) ListUserProjects(ctx context.Context, userID string) ([]ports.UserProject, error) {
	uid, err := domain.ParseID("user_id", userID)
	if err != nil {
		return nil, err
	}

	projects, err := s.projects.ListByUser(ctx, uid)
	if err != nil {
		return nil, wrap("list user projects", err)
	}
	if len(projects) == 0 {
		return nil, domain.ErrNoProjectsForUser
	}

	names, err := s.names.Resolve(ctx, creatorsOf(projects))
	if err != nil {
		return nil, wrap("list user projects", err)
	}

	out := make([]ports.UserProject, 0, len(projects))
	for _, p := range projects {
		out = append(out, ports.UserProject{
			ProjectSummary: toSummary(p, names),
			UserRole:       p.EffectiveRoleOf(uid).Label(),
		})
	}
	return out, nil
}

// SearchProjects pages through the projects visible to the requester.
func (s *ProjectService) SearchProjects(ctx context.Context, in ports.SearchProjectsInput) (*ports.SearchProjectsResult, error) {
	uid, err := domain.ParseID("requester_id", in.RequesterID)
	if err != nil {
		return nil, err
	}

	page, pageSize := in.Page, in.PageSize
	if page < 0 || pageSize < 0 {
		return nil, domain.InvalidInput("page and page_size must be positive")
	}
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	if in.Status != "" && !domain.ProjectStatus(in.Status).Valid() {
		return nil, domain.InvalidInput("status must be one of %s", joinStatuses(domain.ProjectStatuses()))
	}

	filter := ports.ProjectSearchFilter{
		UserID:   uid,
		Keyword:  strings.TrimSpace(in.Keyword),
		Status:   in.Status,
		Page:     page,
		PageSize: pageSize,
	}
	if in.CreatedFrom != "" {
		from, err := time.ParseInLocation(domain.DueDateLayout, in.CreatedFrom, time.UTC)
		if err != nil {
			return nil, domain.InvalidInput("created_from must be formatted YYYY-MM-DD")
		}
		filter.CreatedFrom = from
	}
	if in.CreatedTo != "" {
		to, err := time.ParseInLocation(domain.DueDateLayout, in.CreatedTo, time.UTC)
		if err != nil {
			return nil, domain.InvalidInput("created_to must be formatted YYYY-MM-DD")
		}
		// Inclusive of the whole day.
		filter.CreatedTo = to.Add(24*time.Hour - time.Nanosecond)
	}
	if !filter.CreatedFrom.IsZero() && !filter.CreatedTo.IsZero() && filter.CreatedTo.Before(filter.CreatedFrom) {
		return nil, domain.InvalidInput("created_to must not be before created_from")
	}

	projects, total, err := s.projects.Search(ctx, filter)
	if err != nil {
		return nil, wrap("search projects", err)
	}
	names, err := s.names.Resolve(ctx, creatorsOf(projects))
	if err != nil {
		return nil, wrap("search projects", err)
	}

	items := make([]ports.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		items = append(items, toSummary(p, names))
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	return &ports.SearchProjectsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// DeleteProject removes the project and then every task under it. Tasks are
// only touched once the project delete is confirmed.
func (s *ProjectService) DeleteProject(ctx context.Context, requesterID, projectID string) error {
	rid, err := domain.ParseID("requester_id", requesterID)
	if err != nil {
		return err
	}
	pid, err := domain.ParseID("project_id", projectID)
	if err != nil {
		return err
	}

	p, err := s.projects.FindByID(ctx, pid)
	if err != nil {
		return wrap("delete project", err)
	}
	if err := authorize(s.log, p, rid, policy.DeleteProject, domain.RoleNone, domain.RoleNone); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, pid); err != nil {
		return wrap("delete project", err)
	}
	metrics.ProjectsDeletedTotal.Inc()

	n, err := s.tasks.DeleteByProject(ctx, pid)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", pid.Hex()).Msg("task cascade failed after project delete")
		return wrap("delete project: cascade tasks", err)
	}
	metrics.CascadeDeletedTasksTotal.Add(float64(n))

	s.log.Info().
		Str("project_id", pid.Hex()).
		Str("requester_id", rid.Hex()).
		Int64("tasks_deleted", n).
		Msg("project deleted")
	return nil
}

func creatorsOf(projects []*domain.Project) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.CreatedBy)
	}
	return ids
}

func toSummary(p *domain.Project, names map[primitive.ObjectID]string) ports.ProjectSummary {
	creatorName, ok := names[p.CreatedBy]
	if !ok {
		creatorName = domain.UnknownDisplayName
	}
	return ports.ProjectSummary{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Status:      string(p.Status),
		CreatorID:   p.CreatedBy.Hex(),
		CreatorName: creatorName,
		CreatedAt:   p.CreatedAt,
	}
}

func joinStatuses(ss []domain.ProjectStatus) string {
	parts := make([]string, len(ss))
	for i, st := range ss {
		parts[i] = string(st)
	}
	return strings.Join(parts, ", ")
}
