package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/nanosensei/backend/internal/common"
	"github.com/nanosensei/backend/internal/server/models"
)

// SessionRepository keeps sessions in memory in insertion order.
// Safe for concurrent use.
type SessionRepository struct {
	mu       sync.Mutex
	nextID   int64
	sessions []*models.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := *session
	stored.ID = r.nextID
	stored.Timestamp = time.Now().UTC()
	r.sessions = append(r.sessions, &stored)

	out := stored
	return &out, nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.sessions {
		if s.ID == id {
			out := *s
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

// List mirrors the SQL implementation: predicate conjunction, timestamp
// descending, equal timestamps resolved by id descending.
func (r *SessionRepository) List(ctx context.Context, filter models.SessionFilter) ([]*models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*models.Session{}
	for _, s := range r.sessions {
		if filter.Matches(s) {
			out := *s
			result = append(result, &out)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Timestamp.Equal(result[j].Timestamp) {
			return result[i].Timestamp.After(result[j].Timestamp)
		}
		return result[i].ID > result[j].ID
	})

	return result, nil
}
