package sessions

import (
	"context"

	"github.com/nanosensei/backend/internal/server/models"
)

// Repository is the persistence contract for coaching sessions. List honors
// the filter contract: set predicates combine with AND, results are ordered
// newest first with insertion order breaking timestamp ties.
type Repository interface {
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	GetByID(ctx context.Context, id int64) (*models.Session, error)
	List(ctx context.Context, filter models.SessionFilter) ([]*models.Session, error)
}
