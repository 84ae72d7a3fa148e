package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
)

// UserDirectory is the identity store the core resolves users through.
type UserDirectory interface {
	// FindByID returns domain.ErrUserNotFound when no user has the id.
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	// FindByIdentifier matches a username or an email.
	FindByIdentifier(ctx context.Context, identifier string) (*domain.User, error)
	// FindByIdentifiers returns every user whose username or email is listed.
	// Users matched by more than one identifier are returned once.
	FindByIdentifiers(ctx context.Context, identifiers []string) ([]*domain.User, error)
	// FindByIDs returns the users that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.User, error)
	// Create stores a new user; domain.ErrUserExists on a duplicate username or email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// NameCache is an optional side store for user display names keyed by hex id.
// Implementations are best-effort: callers fall back to the directory on error.
type NameCache interface {
	GetNames(ctx context.Context, ids []string) (map[string]string, error)
	SetNames(ctx context.Context, names map[string]string) error
}
