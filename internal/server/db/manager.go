// Package db wires repository implementations to their storage backend and
// owns schema migrations.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/authkeeper/internal/server/users"
)

// RepositoryManager vends the repositories backing the credential store and
// owns the underlying database handle.
type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
