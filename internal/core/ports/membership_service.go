package ports

import "context"

// AddMembersInput invites users, by username or email, into a project with one role.
type AddMembersInput struct {
	RequesterID string
	ProjectID   string
	Identifiers []string
	Role        string
}

// AddMembersResult lists the usernames that were actually appended.
type AddMembersResult struct {
	AddedUsernames []string
}

// UpdateRoleInput changes the ledger role of the member named by Identifier.
type UpdateRoleInput struct {
	RequesterID string
	ProjectID   string
	Identifier  string
	Role        string
}

// MembershipService owns a project's member ledger.
type MembershipService interface {
	AddMembers(ctx context.Context, input AddMembersInput) (*AddMembersResult, error)
	UpdateRole(ctx context.Context, input UpdateRoleInput) error
}
