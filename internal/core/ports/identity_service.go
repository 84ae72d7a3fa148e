package ports

import (
	"context"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
)

// RegisterInput carries the fields needed to create a user.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Name     string
}

// CredentialsResult identifies the user whose credentials were verified.
type CredentialsResult struct {
	UserID   string
	Username string
}

// IdentityService is the identity directory's write and credential side.
// It issues no tokens: callers present the returned user id themselves.
type IdentityService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	VerifyCredentials(ctx context.Context, identifier, password string) (*CredentialsResult, error)
}
