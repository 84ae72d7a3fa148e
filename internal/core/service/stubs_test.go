package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory user directory
// ---------------------------------------------------------------------------

type stubUsers struct {
	byID  map[primitive.ObjectID]*domain.User
	order []primitive.ObjectID
	err   error // if set, every lookup returns it
}

func newStubUsers() *stubUsers {
	return &stubUsers{byID: make(map[primitive.ObjectID]*domain.User)}
}

func (r *stubUsers) add(username, email, name string) *domain.User {
	u := &domain.User{
		ID:          primitive.NewObjectID(),
		Username:    username,
		Email:       email,
		DisplayName: name,
		GlobalRole:  domain.GlobalRoleUser,
	}
	r.byID[u.ID] = u
	r.order = append(r.order, u.ID)
	return u
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUsers) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUsers) FindByIdentifier(_ context.Context, identifier string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, id := range r.order {
		u := r.byID[id]
		if u.Username == identifier || u.Email == identifier {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUsers) FindByIdentifiers(_ context.Context, identifiers []string) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	want := make(map[string]bool, len(identifiers))
	for _, i := range identifiers {
		want[i] = true
	}
	var out []*domain.User
	for _, id := range r.order {
		u := r.byID[id]
		if want[u.Username] || want[u.Email] {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUsers) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.User
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := cloneUser(user)
	if clone.ID.IsZero() {
		clone.ID = primitive.NewObjectID()
	}
	r.byID[clone.ID] = clone
	r.order = append(r.order, clone.ID)
	return cloneUser(clone), nil
}

// ---------------------------------------------------------------------------
// In-memory project repository
// ---------------------------------------------------------------------------

type stubProjects struct {
	byID        map[primitive.ObjectID]*domain.Project
	order       []primitive.ObjectID
	appendCalls int
	setCalls    int
	deleteErr   error
	lastFilter  ports.ProjectSearchFilter
}

func newStubProjects() *stubProjects {
	return &stubProjects{byID: make(map[primitive.ObjectID]*domain.Project)}
}

func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	clone.Members = append([]domain.Membership(nil), p.Members...)
	return &clone
}

// put stores p directly, bypassing services; used to seed fixtures.
func (r *stubProjects) put(p *domain.Project) *domain.Project {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if _, ok := r.byID[p.ID]; !ok {
		r.order = append(r.order, p.ID)
	}
	r.byID[p.ID] = cloneProject(p)
	return p
}

func (r *stubProjects) Create(_ context.Context, p *domain.Project) error {
	r.put(p)
	return nil
}

func (r *stubProjects) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Project, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (r *stubProjects) ListByUser(_ context.Context, userID primitive.ObjectID) ([]*domain.Project, error) {
	var out []*domain.Project
	for _, id := range r.order {
		p, ok := r.byID[id]
		if !ok {
			continue
		}
		if p.CreatedBy == userID || p.HasMember(userID) {
			out = append(out, cloneProject(p))
		}
	}
	return out, nil
}

// Search applies the same filters the Mongo repository builds.
func (r *stubProjects) Search(ctx context.Context, f ports.ProjectSearchFilter) ([]*domain.Project, int64, error) {
	r.lastFilter = f
	visible, _ := r.ListByUser(ctx, f.UserID)

	var matched []*domain.Project
	for _, p := range visible {
		if f.Keyword != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Keyword)) {
			continue
		}
		if f.Status != "" && string(p.Status) != f.Status {
			continue
		}
		if !f.CreatedFrom.IsZero() && p.CreatedAt.Before(f.CreatedFrom) {
			continue
		}
		if !f.CreatedTo.IsZero() && p.CreatedAt.After(f.CreatedTo) {
			continue
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	start := (f.Page - 1) * f.PageSize
	if start >= len(matched) {
		return []*domain.Project{}, total, nil
	}
	end := start + f.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubProjects) AppendMembers(_ context.Context, projectID primitive.ObjectID, members []domain.Membership) error {
	r.appendCalls++
	p, ok := r.byID[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	for _, m := range members {
		if p.HasMember(m.MemberID) {
			return domain.ErrMembershipChanged
		}
	}
	p.Members = append(p.Members, members...)
	return nil
}

func (r *stubProjects) SetMemberRole(_ context.Context, projectID, memberID primitive.ObjectID, role domain.Role) error {
	r.setCalls++
	p, ok := r.byID[projectID]
	if !ok {
		return domain.ErrMemberNotFound
	}
	for i := range p.Members {
		if p.Members[i].MemberID == memberID {
			p.Members[i].Role = role
			return nil
		}
	}
	return domain.ErrMemberNotFound
}

func (r *stubProjects) Delete(_ context.Context, id primitive.ObjectID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// In-memory task repository
// ---------------------------------------------------------------------------

type stubTasks struct {
	byID       map[primitive.ObjectID]*domain.Task
	order      []primitive.ObjectID
	cascadeFor []primitive.ObjectID
	cascadeErr error
	lastPatch  domain.TaskPatch
}

func newStubTasks() *stubTasks {
	return &stubTasks{byID: make(map[primitive.ObjectID]*domain.Task)}
}

func (r *stubTasks) put(t *domain.Task) *domain.Task {
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	clone := *t
	r.byID[t.ID] = &clone
	r.order = append(r.order, t.ID)
	return t
}

func (r *stubTasks) Create(_ context.Context, t *domain.Task) error {
	r.put(t)
	return nil
}

func (r *stubTasks) Update(_ context.Context, id primitive.ObjectID, patch domain.TaskPatch) error {
	r.lastPatch = patch
	t, ok := r.byID[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = *patch.AssignedTo
	}
	return nil
}

func (r *stubTasks) SetProgress(_ context.Context, id primitive.ObjectID, progress float64) error {
	t, ok := r.byID[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	t.Progress = &progress
	return nil
}

func (r *stubTasks) ListByProject(_ context.Context, projectID primitive.ObjectID) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, id := range r.order {
		t, ok := r.byID[id]
		if ok && t.ProjectID == projectID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTasks) DeleteByProject(_ context.Context, projectID primitive.ObjectID) (int64, error) {
	r.cascadeFor = append(r.cascadeFor, projectID)
	if r.cascadeErr != nil {
		return 0, r.cascadeErr
	}
	var n int64
	for id, t := range r.byID {
		if t.ProjectID == projectID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// In-memory name cache
// ---------------------------------------------------------------------------

type stubNameCache struct {
	names  map[string]string
	getErr error
	sets   int
}

func newStubNameCache() *stubNameCache {
	return &stubNameCache{names: make(map[string]string)}
}

func (c *stubNameCache) GetNames(_ context.Context, ids []string) (map[string]string, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	out := make(map[string]string)
	for _, id := range ids {
		if n, ok := c.names[id]; ok {
			out[id] = n
		}
	}
	return out, nil
}

func (c *stubNameCache) SetNames(_ context.Context, names map[string]string) error {
	c.sets++
	for k, v := range names {
		c.names[k] = v
	}
	return nil
}

var errStorage = errors.New("storage unavailable")
