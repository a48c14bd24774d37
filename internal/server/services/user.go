// Package services contains the server-side business logic: user account
// management, session recording with its integrity checks, and the
// per-user statistics aggregation.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/nanosensei/backend/internal/common"
	"github.com/nanosensei/backend/internal/server/models"
	"github.com/nanosensei/backend/internal/server/repositories/repomanager"
)

// UserService handles account creation and lookups.
type UserService struct {
	repos repomanager.RepositoryManager
}

// NewUserService constructs a UserService over the given repositories.
func NewUserService(m repomanager.RepositoryManager) *UserService {
	return &UserService{repos: m}
}

// Create registers a new user. A taken username yields
// common.ErrorAlreadyExists; the unique index backs up the pre-check under
// concurrent creates.
func (s *UserService) Create(ctx context.Context, username string, email *string) (*models.User, error) {
	repo := s.repos.Users(s.repos.Conn())

	_, err := repo.GetByUsername(ctx, username)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	user := &models.User{Username: username, Email: email}
	created, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return created, nil
}

// Get returns the user or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repos.Users(s.repos.Conn()).GetByID(ctx, id)
}

// List returns all users in creation order.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repos.Users(s.repos.Conn()).List(ctx)
}
