// Package policy decides whether a requester may perform a project action.
// It is pure: callers resolve the requester's effective role and the target's
// current ledger role beforehand and act on the returned Decision.
package policy

import (
	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
)

// Action is a project-scoped operation subject to authorization.
type Action string

const (
	AddMembers    Action = "add_members"
	UpdateRole    Action = "update_role"
	DeleteProject Action = "delete_project"
	CreateTask    Action = "create_task"
	ViewProject   Action = "view_project"
)

// Decision is the verdict for one request. Reason is empty when allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

// grant lists who passes the first gate of an action. The sets are not
// monotone in the role hierarchy: adding members skips Owner and deleting a
// project skips Admin.
type grant struct {
	creator   bool
	ledger    map[domain.Role]bool
	anyLedger bool
	denial    string
}

func roles(rs ...domain.Role) map[domain.Role]bool {
	m := make(map[domain.Role]bool, len(rs))
	for _, r := range rs {
		m[r] = true
	}
	return m
}

var table = map[Action]grant{
	AddMembers: {
		creator: true,
		ledger:  roles(domain.RoleAdmin),
		denial:  "only Admin or Creator can add project members",
	},
	UpdateRole: {
		creator: true,
		ledger:  roles(domain.RoleOwner, domain.RoleAdmin),
		denial:  "only Creator, Owner or Admin can update member roles",
	},
	DeleteProject: {
		creator: true,
		ledger:  roles(domain.RoleOwner),
		denial:  "only the Creator or Owner can delete the project",
	},
	// Task creation reads the ledger only; "Leader" is the legacy literal.
	CreateTask: {
		ledger: roles(domain.RoleOwner, domain.RoleLeader),
		denial: "you do not have permission to create tasks in this project",
	},
	ViewProject: {
		creator:   true,
		anyLedger: true,
		denial:    "you are not a member of this project",
	},
}

// Decide evaluates action for a requester. target and newRole only matter for
// UpdateRole: target is the subject's current ledger role (RoleNone when the
// subject is not in the ledger) and newRole is the requested role.
func Decide(requester domain.EffectiveRole, action Action, target, newRole domain.Role) Decision {
	g, ok := table[action]
	if !ok {
		return deny("unknown action")
	}
	if !g.admits(requester) {
		return deny(g.denial)
	}
	if action == UpdateRole {
		return decideRoleChange(requester, target, newRole)
	}
	return allow()
}

func (g grant) admits(r domain.EffectiveRole) bool {
	if g.creator && r.Creator {
		return true
	}
	if r.Ledger == domain.RoleNone {
		return false
	}
	return g.anyLedger || g.ledger[r.Ledger]
}

// decideRoleChange applies the restrictions on Admins once the requester has
// passed the UpdateRole gate.
func decideRoleChange(requester domain.EffectiveRole, target, newRole domain.Role) Decision {
	if requester.Creator || requester.Ledger == domain.RoleOwner {
		return allow()
	}
	switch {
	case target == domain.RoleOwner:
		return deny("Admin cannot change the role of the Owner")
	case target == domain.RoleAdmin:
		return deny("Admin cannot change the role of another Admin")
	case newRole == domain.RoleOwner:
		return deny("Admin cannot promote anyone to Owner")
	}
	return allow()
}
