package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProjectStatus is the closed set of lifecycle labels a project may carry.
type ProjectStatus string

const (
	ProjectOngoing   ProjectStatus = "Ongoing"
	ProjectCompleted ProjectStatus = "Completed"
	ProjectPending   ProjectStatus = "Pending"
	ProjectDelayed   ProjectStatus = "Delayed"
	ProjectCanceled  ProjectStatus = "Canceled"
)

var validProjectStatuses = []ProjectStatus{
	ProjectOngoing, ProjectCompleted, ProjectPending, ProjectDelayed, ProjectCanceled,
}

// ProjectStatuses returns the allowed statuses in display order.
func ProjectStatuses() []ProjectStatus {
	out := make([]ProjectStatus, len(validProjectStatuses))
	copy(out, validProjectStatuses)
	return out
}

func (s ProjectStatus) Valid() bool {
	for _, v := range validProjectStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Membership is one ledger entry: a user and the role they hold in the project.
type Membership struct {
	MemberID primitive.ObjectID `json:"member_id" bson:"member_id"`
	Role     Role               `json:"role" bson:"role"`
}

// Project is the aggregate root for access control. CreatedBy is deliberately
// independent of Members: the creator is not inserted into the ledger.
type Project struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description" bson:"description"`
	StartDate   string             `json:"start_date" bson:"start_date"`
	EndDate     *string            `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Status      ProjectStatus      `json:"status" bson:"status"`
	CreatedBy   primitive.ObjectID `json:"created_by" bson:"created_by"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	Members     []Membership       `json:"members" bson:"members"`
}

// LedgerRole returns the role userID holds in Members, if any.
func (p *Project) LedgerRole(userID primitive.ObjectID) (Role, bool) {
	for _, m := range p.Members {
		if m.MemberID == userID {
			return m.Role, true
		}
	}
	return RoleNone, false
}

// HasMember reports whether userID already has a ledger entry.
func (p *Project) HasMember(userID primitive.ObjectID) bool {
	_, ok := p.LedgerRole(userID)
	return ok
}

// EffectiveRoleOf resolves the role used for authorization decisions.
func (p *Project) EffectiveRoleOf(userID primitive.ObjectID) EffectiveRole {
	ledger, _ := p.LedgerRole(userID)
	return EffectiveRole{
		Creator: !userID.IsZero() && p.CreatedBy == userID,
		Ledger:  ledger,
	}
}
