package wallets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spende/internal/client/models"
	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/jmoiron/sqlx"
)

// SQLiteRepository implements Repository on the local SQLite cache.
type SQLiteRepository struct {
	db *sqlx.DB
}

func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const upsertQuery = `INSERT INTO cached_wallets (username, id, name, currency, rational, balance)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(username, id) DO UPDATE SET name = excluded.name,
		currency = excluded.currency,
		rational = excluded.rational,
		balance = excluded.balance`

func upsert(ctx context.Context, db dbx.DBTX, username string, w *models.Wallet) error {
	_, err := db.ExecContext(ctx, db.Rebind(upsertQuery), username, w.ID, w.Name, w.Currency, w.Rational, w.Balance)
	if err != nil {
		return fmt.Errorf("failed to upsert wallet: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, username string, ws []*models.Wallet) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM cached_wallets WHERE username = ?`), username); err != nil {
			return fmt.Errorf("failed to clear wallets: %w", err)
		}
		for _, w := range ws {
			if err := upsert(ctx, tx, username, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Upsert(ctx context.Context, username string, w *models.Wallet) error {
	return upsert(ctx, r.db, username, w)
}

func (r *SQLiteRepository) GetAll(ctx context.Context, username string) ([]*models.Wallet, error) {
	query := `SELECT id, name, currency, rational, balance FROM cached_wallets WHERE username = ? ORDER BY id`

	ws := make([]*models.Wallet, 0)
	if err := r.db.SelectContext(ctx, &ws, r.db.Rebind(query), username); err != nil {
		return nil, fmt.Errorf("failed to select wallets: %w", err)
	}
	return ws, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, username, id string) (*models.Wallet, error) {
	query := `SELECT id, name, currency, rational, balance FROM cached_wallets WHERE username = ? AND id = ?`

	w := &models.Wallet{}
	if err := r.db.GetContext(ctx, w, r.db.Rebind(query), username, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("query row scan failed: %w", err)
	}
	return w, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, username, id string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM cached_wallets WHERE username = ? AND id = ?`), username, id)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context, username string) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM cached_wallets WHERE username = ?`), username)
	if err != nil {
		return fmt.Errorf("failed to clear wallets: %w", err)
	}
	return nil
}
