package domain

// Role is a ledger role stored against a member of a project.
type Role string

const (
	RoleOwner  Role = "Owner"
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
	RoleViewer Role = "Viewer"

	// RoleLeader is accepted by the task-creation rule but can never be
	// assigned through the ledger. Kept so stored legacy data keeps working.
	RoleLeader Role = "Leader"

	RoleNone Role = ""
)

// CreatorLabel is how a project's creator is annotated in per-user listings.
const CreatorLabel = "Admin/Creator"

var assignableRoles = []Role{RoleOwner, RoleAdmin, RoleMember, RoleViewer}

// AssignableRoles returns the roles that may be written to the ledger.
func AssignableRoles() []Role {
	out := make([]Role, len(assignableRoles))
	copy(out, assignableRoles)
	return out
}

// Assignable reports whether r may be stored in a Membership.
func (r Role) Assignable() bool {
	for _, v := range assignableRoles {
		if r == v {
			return true
		}
	}
	return false
}

// EffectiveRole is resolved once per call from a project and a user id.
// Creator is the implicit designation from Project.CreatedBy; Ledger is the
// explicit Members entry, RoleNone when absent. A creator may also appear in
// the ledger, in which case both are set.
type EffectiveRole struct {
	Creator bool
	Ledger  Role
}

// NoAccess is the effective role of a user unrelated to the project.
var NoAccess = EffectiveRole{}

// HasAccess reports whether the user is the creator or holds any ledger role.
func (e EffectiveRole) HasAccess() bool {
	return e.Creator || e.Ledger != RoleNone
}

// String renders the designation used for authorization: "Creator" wins over
// the ledger role.
func (e EffectiveRole) String() string {
	switch {
	case e.Creator:
		return "Creator"
	case e.Ledger != RoleNone:
		return string(e.Ledger)
	default:
		return "none"
	}
}

// Label is the role annotation shown to the user in project listings.
func (e EffectiveRole) Label() string {
	if e.Creator {
		return CreatorLabel
	}
	if e.Ledger == RoleNone {
		return string(RoleMember)
	}
	return string(e.Ledger)
}
