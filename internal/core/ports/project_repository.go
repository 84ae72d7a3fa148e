package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
)

// ProjectSearchFilter carries the query parameters for SearchProjects.
// UserID is always enforced: only projects the user created or belongs to match.
type ProjectSearchFilter struct {
	UserID      primitive.ObjectID
	Keyword     string    // optional: case-insensitive substring of the name
	Status      string    // optional: exact status
	CreatedFrom time.Time // optional: created_at >= CreatedFrom
	CreatedTo   time.Time // optional: created_at <= CreatedTo
	Page        int       // 1-based
	PageSize    int
}

// ProjectRepository persists projects. Every mutation of Members is a single
// atomic document update.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) error
	// FindByID returns domain.ErrProjectNotFound when absent.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Project, error)
	// ListByUser returns projects where userID is the creator or a ledger member.
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]*domain.Project, error)
	// Search returns one page of matches and the total count.
	Search(ctx context.Context, filter ProjectSearchFilter) ([]*domain.Project, int64, error)
	// AppendMembers pushes all entries in one update, guarded so that none of
	// their member ids is already present. A guard miss on an existing project
	// returns domain.ErrMembershipChanged.
	AppendMembers(ctx context.Context, projectID primitive.ObjectID, members []domain.Membership) error
	// SetMemberRole updates the role of the ledger entry keyed by memberID.
	// Returns domain.ErrMemberNotFound when no entry matched.
	SetMemberRole(ctx context.Context, projectID, memberID primitive.ObjectID, role domain.Role) error
	// Delete returns domain.ErrProjectNotFound when nothing was deleted.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
