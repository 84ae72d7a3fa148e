package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
)

// TaskRepository persists tasks, addressed by document id.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) error
	// Update applies the non-nil fields of patch; domain.ErrTaskNotFound when no task matched.
	Update(ctx context.Context, id primitive.ObjectID, patch domain.TaskPatch) error
	// SetProgress writes the progress field only; domain.ErrTaskNotFound when no task matched.
	SetProgress(ctx context.Context, id primitive.ObjectID, progress float64) error
	ListByProject(ctx context.Context, projectID primitive.ObjectID) ([]*domain.Task, error)
	// DeleteByProject removes every task of a project and reports how many went.
	DeleteByProject(ctx context.Context, projectID primitive.ObjectID) (int64, error)
}
