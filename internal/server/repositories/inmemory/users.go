// Package inmemory provides map-backed repositories honoring the same
// contracts as the PostgreSQL implementations. They back the "mem:" DSN and
// the service/handler tests.
package inmemory

import (
	"context"
	"sync"
	"time"

	"github.com/nanosensei/backend/internal/common"
	"github.com/nanosensei/backend/internal/server/models"
)

// UserRepository keeps users in memory. Safe for concurrent use.
type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  []*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, common.ErrorAlreadyExists
		}
	}

	r.nextID++
	stored := *user
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	r.users = append(r.users, &stored)

	out := stored
	return &out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		out := *u
		result = append(result, &out)
	}
	return result, nil
}
