package repomanager

import (
	"context"

	"github.com/nanosensei/backend/internal/dbx"
	"github.com/nanosensei/backend/internal/server/repositories/inmemory"
	"github.com/nanosensei/backend/internal/server/repositories/sessions"
	"github.com/nanosensei/backend/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends shared map-backed repositories. The DBTX
// arguments are ignored; InTx runs fn directly since there is no transaction
// to open.
type InMemoryRepositoryManager struct {
	users    *inmemory.UserRepository
	sessions *inmemory.SessionRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    inmemory.NewUserRepository(),
		sessions: inmemory.NewSessionRepository(),
	}
}

func (m *InMemoryRepositoryManager) Conn() dbx.DBTX {
	return nil
}

func (m *InMemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return m.sessions
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}
