package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/spende/internal/common"
	"github.com/dmitrijs2005/spende/internal/dbx"
	"github.com/dmitrijs2005/spende/internal/server/models"
)

// SQLRepository works on both PostgreSQL and SQLite; placeholders are
// rebound for the driver of db.
type SQLRepository struct {
	db dbx.DBTX
}

func NewSQLRepository(db dbx.DBTX) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := r.db.Rebind(
		`INSERT INTO users (id, name, username, hashed_password)
		 VALUES (?, ?, ?, ?)`)

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Username, user.HashedPassword)
	if err != nil {
		return nil, writeError(err)
	}

	return user, nil
}

func (r *SQLRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE id = ?`, id)
}

func (r *SQLRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT * FROM users WHERE username = ?`, username)
}

func (r *SQLRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	query := r.db.Rebind(
		`UPDATE users SET name = ?, username = ?, hashed_password = ?
		 WHERE id = ?`)

	res, err := r.db.ExecContext(ctx, query, user.Name, user.Username, user.HashedPassword, user.ID)
	if err != nil {
		return nil, writeError(err)
	}
	if err := expectOneRow(res); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(`DELETE FROM users WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return expectOneRow(res)
}

func (r *SQLRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.GetContext(ctx, user, r.db.Rebind(query), arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return user, nil
}

func writeError(err error) error {
	if dbx.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", common.ErrConflict, err)
	}
	return fmt.Errorf("db error: %w", err)
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
