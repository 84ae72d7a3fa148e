package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Hunnisme/NT106-Projects/internal/core/domain"
	"github.com/Hunnisme/NT106-Projects/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[\w.+-]+@[\w-]+\.[\w.-]+$`)

// IdentityService implements registration and credential checks against the
// user directory. It issues no tokens.
type IdentityService struct {
	users ports.UserDirectory
	log   zerolog.Logger
	cost  int
}

func NewIdentityService(users ports.UserDirectory, log zerolog.Logger) *IdentityService {
	return &IdentityService{users: users, log: log, cost: bcrypt.DefaultCost}
}

func (s *IdentityService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	name := strings.TrimSpace(in.Name)
	if username == "" || email == "" || in.Password == "" || name == "" {
		return nil, domain.InvalidInput("username, email, password and name are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.InvalidInput("email is not valid")
	}

	for _, identifier := range []string{username, email} {
		_, err := s.users.FindByIdentifier(ctx, identifier)
		if err == nil {
			return nil, domain.ErrUserExists
		}
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, wrap("register", err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, wrap("register: hash password", err)
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  name,
		GlobalRole:   domain.GlobalRoleUser,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, wrap("register", err)
	}
	s.log.Info().Str("user_id", created.ID.Hex()).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// VerifyCredentials accepts a username or an email as identifier. Unknown
// users and wrong passwords fail the same way.
func (s *IdentityService) VerifyCredentials(ctx context.Context, identifier, password string) (*ports.CredentialsResult, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, domain.InvalidInput("identifier and password are required")
	}

	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, wrap("verify credentials", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.CredentialsResult{UserID: user.ID.Hex(), Username: user.Username}, nil
}
