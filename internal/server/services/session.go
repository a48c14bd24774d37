package services

import (
	"context"

	"github.com/nanosensei/backend/internal/common"
	"github.com/nanosensei/backend/internal/dbx"
	"github.com/nanosensei/backend/internal/server/models"
	"github.com/nanosensei/backend/internal/server/repositories/repomanager"
)

// SessionService records coaching sessions and reports per-user statistics.
type SessionService struct {
	repos repomanager.RepositoryManager
}

// NewSessionService constructs a SessionService over the given repositories.
func NewSessionService(m repomanager.RepositoryManager) *SessionService {
	return &SessionService{repos: m}
}

// Create validates and persists a session. The score must be within [0,100]
// (common.ErrorInvalidScore otherwise) and the user must exist
// (common.ErrorNotFound). The existence check and the insert run in one
// transaction so a session is never persisted against a vanished user.
func (s *SessionService) Create(ctx context.Context, userID int64, skillType string, score int, feedback string, metadata *string) (*models.Session, error) {
	if score < 0 || score > 100 {
		return nil, common.ErrorInvalidScore
	}

	var created *models.Session
	err := s.repos.InTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repos.Users(tx).GetByID(ctx, userID); err != nil {
			return err
		}

		session := &models.Session{
			UserID:    userID,
			SkillType: skillType,
			Score:     score,
			Feedback:  feedback,
			Metadata:  metadata,
		}
		var err error
		created, err = s.repos.Sessions(tx).Create(ctx, session)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Get returns the session or common.ErrorNotFound.
func (s *SessionService) Get(ctx context.Context, id int64) (*models.Session, error) {
	return s.repos.Sessions(s.repos.Conn()).GetByID(ctx, id)
}

// List returns sessions matching the filter, newest first. An empty match is
// an empty list, not an error.
func (s *SessionService) List(ctx context.Context, filter models.SessionFilter) ([]*models.Session, error) {
	return s.repos.Sessions(s.repos.Conn()).List(ctx, filter)
}

// Summary aggregates all of the user's sessions. An unknown user is
// common.ErrorNotFound; a known user with no sessions gets the zero summary.
func (s *SessionService) Summary(ctx context.Context, userID int64) (*models.SessionSummary, error) {
	conn := s.repos.Conn()

	if _, err := s.repos.Users(conn).GetByID(ctx, userID); err != nil {
		return nil, err
	}

	list, err := s.repos.Sessions(conn).List(ctx, models.SessionFilter{UserID: &userID})
	if err != nil {
		return nil, err
	}

	return Summarize(list), nil
}
