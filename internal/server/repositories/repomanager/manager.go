package repomanager

import (
	"context"

	"github.com/nanosensei/backend/internal/dbx"
	"github.com/nanosensei/backend/internal/server/repositories/sessions"
	"github.com/nanosensei/backend/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a database handle and owns
// the transaction seam. Passing the handle per call lets the same repository
// code run against the pooled connection or inside a transaction.
type RepositoryManager interface {
	// RunMigrations brings the schema up to date. No-op for backends
	// without a schema.
	RunMigrations(ctx context.Context) error

	// Conn returns the handle for non-transactional repository use.
	// Backends without a database return nil, which their repositories ignore.
	Conn() dbx.DBTX

	// InTx runs fn transactionally; repositories used inside fn must be
	// bound to the handle fn receives.
	InTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error

	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
