package service

import (
	"context"
	"fmt"

	"exlibris/internal/microservices/http-api/models"
	"exlibris/internal/microservices/http-api/repository"
	"exlibris/internal/shared"
)

// UserService keeps a local row for every identity that writes something,
// so posts, statuses and profiles have an owner to reference.
type UserService interface {
	Ensure(ctx context.Context, identity shared.Identity) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Ensure(ctx context.Context, identity shared.Identity) error {
	if !identity.Authenticated() {
		return ErrUnauthenticated
	}
	username := identity.Username
	if username == "" {
		username = identity.UserID
	}
	role := identity.Role
	if role == "" {
		role = "user"
	}
	user := &models.User{ID: identity.UserID, Username: username, Role: role}
	if err := s.repo.Ensure(ctx, user); err != nil {
		return fmt.Errorf("ensure user %s: %w", identity.UserID, err)
	}
	return nil
}
