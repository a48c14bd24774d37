package users

import (
	"context"

	"github.com/nanosensei/backend/internal/server/models"
)

// Repository is the persistence contract for users. Implementations map
// "no such row" to common.ErrorNotFound and username-uniqueness violations
// to common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
}
