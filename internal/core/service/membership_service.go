package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Hunnisme/NT106-Projects/internal/api/metrics"
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/policy"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

// MembershipService owns the member ledger of each project. Every mutation is
// authorized first and then written with a single atomic document update.
type MembershipService struct {
	projects ports.ProjectRepository
	users    ports.UserDirectory
	log      zerolog.Logger
}

func NewMembershipService(projects ports.ProjectRepository, users ports.UserDirectory, log zerolog.Logger) *MembershipService {
	return &MembershipService{projects: projects, users: users, log: log}
}

// AddMembers appends every resolved identifier not yet in the ledger.
// Identifiers that resolve to existing members are skipped silently.
func (s *MembershipService) AddMembers(ctx context.Context, in ports.AddMembersInput) (*ports.AddMembersResult, error) {
	requesterID, err := domain.ParseID("requester_id", in.RequesterID)
	if err != nil {
		return nil, err
	}
	projectID, err := domain.ParseID("project_id", in.ProjectID)
	if err != nil {
		return nil, err
	}
	identifiers := cleanIdentifiers(in.Identifiers)
	if len(identifiers) == 0 {
		return nil, domain.InvalidInput("identifiers are required")
	}
	role := domain.Role(in.Role)
	if !role.Assignable() {
		return nil, domain.InvalidInput("role must be one of %s", joinRoles(domain.AssignableRoles()))
	}

	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, wrap("add members", err)
	}
	if err := authorize(s.log, project, requesterID, policy.AddMembers, domain.RoleNone, role); err != nil {
		return nil, err
	}

	users, err := s.users.FindByIdentifiers(ctx, identifiers)
	if err != nil {
		return nil, wrap("add members: resolve identifiers", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsersMatched
	}

	var (
		entries []domain.Membership
		added   []string
	)
	for _, u := range users {
		if project.HasMember(u.ID) || containsMember(entries, u) {
			continue
		}
		entries = append(entries, domain.Membership{MemberID: u.ID, Role: role})
		added = append(added, u.Username)
	}
	if len(entries) == 0 {
		metrics.MembershipMutationsTotal.WithLabelValues("add_members", "noop").Inc()
		return nil, domain.ErrAllMembersPresent
	}

	if err := s.projects.AppendMembers(ctx, projectID, entries); err != nil {
		metrics.MembershipMutationsTotal.WithLabelValues("add_members", mutationResult(err)).Inc()
		return nil, wrap("add members", err)
	}
	metrics.MembershipMutationsTotal.WithLabelValues("add_members", "ok").Inc()
	metrics.MembersAddedTotal.WithLabelValues(string(role)).Add(float64(len(entries)))

	s.log.Info().
		Str("project_id", projectID.Hex()).
		Str("requester_id", requesterID.Hex()).
		Str("role", string(role)).
		Strs("usernames", added).
		Msg("members added")

	return &ports.AddMembersResult{AddedUsernames: added}, nil
}

// UpdateRole rewrites the role of one existing ledger entry. A subject outside
// the ledger, including a creator that never joined it, cannot be updated.
func (s *MembershipService) UpdateRole(ctx context.Context, in ports.UpdateRoleInput) error {
	requesterID, err := domain.ParseID("requester_id", in.RequesterID)
	if err != nil {
		return err
	}
	projectID, err := domain.ParseID("project_id", in.ProjectID)
	if err != nil {
		return err
	}
	identifier := strings.TrimSpace(in.Identifier)
	if identifier == "" {
		return domain.InvalidInput("identifier is required")
	}
	newRole := domain.Role(in.Role)
	if !newRole.Assignable() {
		return domain.InvalidInput("role must be one of %s", joinRoles(domain.AssignableRoles()))
	}

	target, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		return wrap("update role: resolve member", err)
	}
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return wrap("update role", err)
	}

	current, _ := project.LedgerRole(target.ID)
	if err := authorize(s.log, project, requesterID, policy.UpdateRole, current, newRole); err != nil {
		return err
	}

	if err := s.projects.SetMemberRole(ctx, projectID, target.ID, newRole); err != nil {
		metrics.MembershipMutationsTotal.WithLabelValues("update_role", mutationResult(err)).Inc()
		return wrap("update role", err)
	}
	metrics.MembershipMutationsTotal.WithLabelValues("update_role", "ok").Inc()

	s.log.Info().
		Str("project_id", projectID.Hex()).
		Str("requester_id", requesterID.Hex()).
		Str("member_id", target.ID.Hex()).
		Str("from", string(current)).
		Str("to", string(newRole)).
		Msg("member role updated")
	return nil
}

func cleanIdentifiers(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, id := range in {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func containsMember(entries []domain.Membership, u *domain.User) bool {
	for _, e := range entries {
		if e.MemberID == u.ID {
			return true
		}
	}
	return false
}

func joinRoles(rs []domain.Role) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func mutationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
