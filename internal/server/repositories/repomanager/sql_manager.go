// Package repomanager provides a RepositoryManager over database/sql,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/dmitrijs2005/spende/internal/server/migrations"
	"github.com/dmitrijs2005/spende/internal/server/repositories/users"
	"github.com/dmitrijs2005/spende/internal/server/repositories/wallets"
	"github.com/pressly/goose/v3"
)

// goose dialect per database/sql driver name.
var dialects = map[string]string{
	"pgx":    "pgx",
	"sqlite": "sqlite3",
}

// SQLRepositoryManager vends the SQL repositories and exposes a schema
// migration hook for one driver.
type SQLRepositoryManager struct {
	dialect string
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLRepository(db)
}

// Wallets returns a wallets.Repository bound to the provided DBTX.
func (m *SQLRepositoryManager) Wallets(db dbx.DBTX) wallets.Repository {
	return wallets.NewSQLRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded migrations that are not applied yet.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewSQLRepositoryManager constructs a RepositoryManager for driver
// ("pgx" or "sqlite").
func NewSQLRepositoryManager(driver string) (RepositoryManager, error) {
	dialect, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("no migration dialect for driver %q", driver)
	}
	return &SQLRepositoryManager{dialect: dialect}, nil
}
