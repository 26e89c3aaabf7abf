// Package wallets is the client's offline copy of the last wallet list seen
// per username. It is only ever read when the server is unreachable.
package wallets

import (
	"context"

	"github.com/dmitrijs2005/spende/internal/client/models"
)

type Repository interface {
	// ReplaceAll swaps the cached list for username with ws.
	ReplaceAll(ctx context.Context, username string, ws []*models.Wallet) error

	// Upsert stores or refreshes a single wallet.
	Upsert(ctx context.Context, username string, w *models.Wallet) error

	GetAll(ctx context.Context, username string) ([]*models.Wallet, error)

	// GetByID returns common.ErrNotFound for an unknown id.
	GetByID(ctx context.Context, username, id string) (*models.Wallet, error)

	DeleteByID(ctx context.Context, username, id string) error

	// Clear drops everything cached for username.
	Clear(ctx context.Context, username string) error
}
