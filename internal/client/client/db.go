package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/spende/internal/client/migrations"
	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenCache opens (creating if needed) the local SQLite cache at dsn and
// brings its schema up to date.
func OpenCache(ctx context.Context, dsn string) (*sqlx.DB, error) {
	db, err := dbx.Open(ctx, "sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db.DB); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache migrations: %w", err)
	}
	return db, nil
}
