package service

import (
	"context"

	"github.com/fitrack/exercise-tracker/internal/model"
	"github.com/fitrack/exercise-tracker/internal/repository"
	"github.com/fitrack/exercise-tracker/internal/server"
)

// UserService implements user creation and listing.
type UserService struct {
	server *server.Server
	users  repository.Users
}

// NewUserService constructs a UserService.
func NewUserService(s *server.Server, users repository.Users) *UserService {
	return &UserService{server: s, users: users}
}

// Create persists a new user. The write is awaited: a store failure is
// returned to the caller instead of being swallowed.
func (s *UserService) Create(ctx context.Context, username string) (*model.User, error) {
	user, err := s.users.Create(ctx, username)
	if err != nil {
		return nil, err
	}

	s.server.Logger.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user created")

	return user, nil
}

// List returns all users in store iteration order.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}
