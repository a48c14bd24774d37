// Package sessions provides the PostgreSQL-backed repository for coaching
// session records.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/nanosensei/backend/internal/common"
	"github.com/nanosensei/backend/internal/dbx"
	"github.com/nanosensei/backend/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the session and fills in the server-assigned id and
// timestamp. The referential check against users is the caller's concern.
func (r *PostgresRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	query :=
		`INSERT INTO sessions (user_id, skill_type, score, feedback, metadata)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, ts
		 `

	err := r.db.QueryRowContext(ctx, query,
		session.UserID, session.SkillType, session.Score, session.Feedback, session.Metadata).
		Scan(&session.ID, &session.Timestamp)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	query :=
		`SELECT id, user_id, skill_type, score, feedback, ts, metadata FROM sessions
		 WHERE id = $1
		 `

	session := &models.Session{}
	var metadata sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID, &session.UserID, &session.SkillType, &session.Score,
		&session.Feedback, &session.Timestamp, &metadata)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if metadata.Valid {
		session.Metadata = &metadata.String
	}

	return session, nil
}

// List returns sessions matching the filter, newest first. The secondary
// `id DESC` key makes timestamp ties resolve by insertion order.
func (r *PostgresRepository) List(ctx context.Context, filter models.SessionFilter) ([]*models.Session, error) {
	query := `SELECT id, user_id, skill_type, score, feedback, ts, metadata FROM sessions`

	var conds []string
	var args []any
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conds = append(conds, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.SkillType != nil {
		args = append(args, *filter.SkillType)
		conds = append(conds, fmt.Sprintf("skill_type = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY ts DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Session{}
	for rows.Next() {
		session := &models.Session{}
		var metadata sql.NullString
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.SkillType, &session.Score,
			&session.Feedback, &session.Timestamp, &metadata,
		); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if metadata.Valid {
			session.Metadata = &metadata.String
		}
		result = append(result, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
