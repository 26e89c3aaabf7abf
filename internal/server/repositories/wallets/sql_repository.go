package wallets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/dmitrijs2005/spende/internal/server/models"
)

type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) ListByUser(ctx context.Context, userID string) ([]*models.Wallet, error) {
	query := r.db.Rebind(`SELECT * FROM wallets WHERE user_id = ? ORDER BY id`)

	wallets := make([]*models.Wallet, 0)
	if err := r.db.SelectContext(ctx, &wallets, query, userID); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return wallets, nil
}

func (r *SQLRepository) GetForUser(ctx context.Context, id, userID string) (*models.Wallet, error) {
	query := r.db.Rebind(`SELECT * FROM wallets WHERE id = ? AND user_id = ?`)

	wallet := &models.Wallet{}
	if err := r.db.GetContext(ctx, wallet, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return wallet, nil
}

func (r *SQLRepository) Create(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	query := r.db.Rebind(
		`INSERT INTO wallets (id, user_id, name, currency, rational, balance)
		 VALUES (?, ?, ?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query,
		wallet.ID, wallet.UserID, wallet.Name, wallet.Currency, wallet.Rational, wallet.Balance)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", common.ErrConflict, err)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return wallet, nil
}

// Update writes name, currency and rational. Balance is not writable here.
func (r *SQLRepository) Update(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error) {
	query := r.db.Rebind(
		`UPDATE wallets SET name = ?, currency = ?, rational = ?
		 WHERE id = ? AND user_id = ?`)

	res, err := r.db.ExecContext(ctx, query,
		wallet.Name, wallet.Currency, wallet.Rational, wallet.ID, wallet.UserID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := expectOneRow(res); err != nil {
		return nil, err
	}

	return wallet, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id, userID string) error {
	query := r.db.Rebind(`DELETE FROM wallets WHERE id = ? AND user_id = ?`)

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
